package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
	// Freeze holds the last frame instead of looping.
	Freeze bool
}

// CharacterAnimations maps a character key to its animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		IdleRight:  {First: 0, Last: 3, Step: 1, Speed: 10},
		IdleLeft:   {First: 0, Last: 3, Step: 1, Speed: 10},
		RunRight:   {First: 0, Last: 7, Step: 1, Speed: 4},
		RunLeft:    {First: 0, Last: 7, Step: 1, Speed: 4},
		JumpRight:  {First: 0, Last: 2, Step: 1, Speed: 6, Freeze: true},
		JumpLeft:   {First: 0, Last: 2, Step: 1, Speed: 6, Freeze: true},
		FallRight:  {First: 0, Last: 1, Step: 1, Speed: 8},
		FallLeft:   {First: 0, Last: 1, Step: 1, Speed: 8},
		ClimbUp:    {First: 0, Last: 3, Step: 1, Speed: 6},
		ClimbDown:  {First: 0, Last: 3, Step: 1, Speed: 6},
		DieRight:   {First: 0, Last: 8, Step: 1, Speed: 5, Freeze: true},
		DieLeft:    {First: 0, Last: 8, Step: 1, Speed: 5, Freeze: true},
		DrownRight: {First: 0, Last: 11, Step: 1, Speed: 5, Freeze: true},
		DrownLeft:  {First: 0, Last: 11, Step: 1, Speed: 5, Freeze: true},
	},
}
