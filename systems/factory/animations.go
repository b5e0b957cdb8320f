package factory

import (
	"fmt"

	"github.com/automoto/playdead/assets/animations"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/shared/playstate"
)

// GenerateAnimator builds an animator from the definitions registered for a
// character key in config.
func GenerateAnimator(key string) *animations.Animator {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	converted := make(map[playstate.StateID]animations.Def, len(defs))
	for state, def := range defs {
		step := def.Step
		if step <= 0 {
			step = 1
		}
		converted[state] = animations.Def{
			First:  def.First,
			Last:   def.Last,
			Step:   step,
			Speed:  def.Speed,
			Freeze: def.Freeze,
		}
	}
	return animations.NewAnimator(converted)
}
