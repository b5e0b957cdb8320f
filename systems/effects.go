package systems

import (
	"math"

	"github.com/automoto/playdead/components"
	"github.com/automoto/playdead/tags"
	"github.com/yohamta/donburi/ecs"
)

const (
	landSquashX   = 1.25
	landSquashY   = 0.75
	jumpStretchX  = 0.8
	jumpStretchY  = 1.2
	squashEpsilon = 0.01
)

// UpdateSquashStretch squashes the actor on landing and stretches it on
// take-off, then eases the scale back to 1.
func UpdateSquashStretch(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	a := components.Player.Get(playerEntry).Actor
	ss := components.SquashStretch.Get(playerEntry)

	onGround := a.OnGround()
	switch {
	case !a.Alive():
		ss.ScaleX, ss.ScaleY = 1, 1
	case onGround && !ss.WasOnGround:
		ss.ScaleX, ss.ScaleY = landSquashX, landSquashY
	case !onGround && ss.WasOnGround && a.Velocity().Y < 0:
		ss.ScaleX, ss.ScaleY = jumpStretchX, jumpStretchY
	default:
		ss.ScaleX = easeToOne(ss.ScaleX, ss.LerpSpeed)
		ss.ScaleY = easeToOne(ss.ScaleY, ss.LerpSpeed)
	}
	ss.WasOnGround = onGround
}

func easeToOne(v, speed float64) float64 {
	v += (1 - v) * speed
	if math.Abs(v-1) < squashEpsilon {
		return 1
	}
	return v
}
