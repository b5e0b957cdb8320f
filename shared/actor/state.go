package actor

import (
	"math"

	"github.com/automoto/playdead/shared/playstate"
)

const (
	jumpCue   = playstate.SoundJump
	jumpRight = playstate.JumpRight
	jumpLeft  = playstate.JumpLeft
)

// Phase returns the coarse state machine phase the actor is in.
func (a *Actor) Phase() playstate.Phase {
	if !a.alive {
		return playstate.PhaseDead
	}
	return a.animation.Phase()
}

func (a *Actor) setAnimation(id playstate.StateID) {
	a.animation = id
	a.paused = false
}

func (a *Actor) idle() {
	if a.facing == FacingRight {
		a.setAnimation(playstate.IdleRight)
	} else {
		a.setAnimation(playstate.IdleLeft)
	}
}

// selectAnimation derives the animation from this frame's flags and velocity.
// While a jump is held the jump animation chosen by doJump stays.
func (a *Actor) selectAnimation() {
	threshold := a.params.MotionThreshold

	switch {
	case a.onGround:
		if math.Abs(a.velocity.X)-threshold > 0 {
			if a.velocity.X > 0 {
				a.setAnimation(playstate.RunRight)
				a.facing = FacingRight
			} else {
				a.setAnimation(playstate.RunLeft)
				a.facing = FacingLeft
			}
		} else {
			a.idle()
		}

	case a.climbing:
		if a.velocity.Y > threshold {
			a.setAnimation(playstate.ClimbDown)
		} else {
			a.setAnimation(playstate.ClimbUp)
		}
		a.paused = math.Abs(a.velocity.Y) <= threshold

	case !a.jumping:
		switch {
		case a.velocity.X > 0:
			a.setAnimation(playstate.FallRight)
		case a.velocity.X < 0:
			a.setAnimation(playstate.FallLeft)
		case a.facing == FacingRight:
			a.setAnimation(playstate.FallRight)
		default:
			a.setAnimation(playstate.FallLeft)
		}
	}
}

// checkFallDamage kills the actor when the distance since the last ground or
// ladder contact exceeds the safe fall distance. The reference point moves
// with every contact, so damage is measured from the most recent one.
func (a *Actor) checkFallDamage(w World) {
	if !a.alive || !(a.onGround || a.climbing) {
		return
	}

	_, tileH := w.TileSize()
	if a.lastGroundPos.Distance(a.position) > a.params.SafeFallTiles*tileH {
		a.Kill(playstate.DeathFall)
	}
	a.lastGroundPos = a.position
}

// Kill ends the current life. Only the first call after a Reset plays a cue
// and picks the terminal animation.
func (a *Actor) Kill(cause playstate.DeathCause) {
	a.alive = false
	if a.deathPlayed {
		return
	}
	a.deathPlayed = true
	a.deathCause = cause
	a.queueCue(playstate.DeathSound(cause))

	right := a.facing == FacingRight || a.velocity.X > 0
	switch {
	case cause == playstate.DeathWater && right:
		a.setAnimation(playstate.DrownRight)
	case cause == playstate.DeathWater:
		a.setAnimation(playstate.DrownLeft)
	case right:
		a.setAnimation(playstate.DieRight)
	default:
		a.setAnimation(playstate.DieLeft)
	}
}
