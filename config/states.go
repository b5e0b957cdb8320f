package config

import "github.com/automoto/playdead/shared/playstate"

// Type aliases so harness code can say config.StateID.
type StateID = playstate.StateID
type SoundID = playstate.SoundID

const (
	StateNone = playstate.StateNone

	IdleRight  = playstate.IdleRight
	IdleLeft   = playstate.IdleLeft
	RunRight   = playstate.RunRight
	RunLeft    = playstate.RunLeft
	JumpRight  = playstate.JumpRight
	JumpLeft   = playstate.JumpLeft
	FallRight  = playstate.FallRight
	FallLeft   = playstate.FallLeft
	ClimbUp    = playstate.ClimbUp
	ClimbDown  = playstate.ClimbDown
	DieRight   = playstate.DieRight
	DieLeft    = playstate.DieLeft
	DrownRight = playstate.DrownRight
	DrownLeft  = playstate.DrownLeft
)
