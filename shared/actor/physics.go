package actor

import (
	"math"

	"github.com/automoto/playdead/shared/gamemath"
)

// Step advances the actor by dt seconds: input, velocity, position, then
// collision resolution, followed by animation and fall-damage bookkeeping.
func (a *Actor) Step(w World, dt float64, in Intent) {
	if a.alive {
		a.applyInput(w, in)
	}

	a.applyPhysics(w, dt)

	if a.alive {
		a.selectAnimation()
	}

	a.checkFallDamage(w)

	// Input and ladder state are re-derived every frame.
	a.movement = gamemath.Vec2{}
	a.wasClimbing = a.climbing
	a.climbing = false
	a.jumping = false
	a.jumpPressed = false
}

func (a *Actor) applyInput(w World, in Intent) {
	a.movement.X, a.movement.Y = in.movement(a.params.AnalogDeadzone)
	a.applyLadderInput(w, in)
	a.jumping = in.Jump || in.JumpPressed
	a.jumpPressed = in.JumpPressed
}

func (a *Actor) applyPhysics(w World, dt float64) {
	p := a.params
	previousPosition := a.position

	if !a.climbing {
		if a.wasClimbing {
			a.velocity.Y = 0
		} else {
			a.velocity.Y = gamemath.Clamp(a.velocity.Y+p.GravityAcceleration*dt, -p.MaxFallSpeed, p.MaxFallSpeed)
		}
	} else {
		a.velocity.Y = a.movement.Y * p.MoveAcceleration * dt
	}

	a.velocity.X += a.movement.X * p.MoveAcceleration * dt
	a.velocity.Y = a.doJump(a.velocity.Y, dt)

	if a.onGround {
		a.velocity.X = gamemath.ApplyDrag(a.velocity.X, p.GroundDragFactor)
	} else {
		a.velocity.X = gamemath.ApplyDrag(a.velocity.X, p.AirDragFactor)
	}
	a.velocity.X = gamemath.ClampSpeed(a.velocity.X, p.MaxMoveSpeed)

	a.position = a.position.Add(a.velocity.Scale(dt))

	a.handleCollisions(w)

	if a.position.X == previousPosition.X {
		a.velocity.X = 0
	}
	if a.position.Y == previousPosition.Y {
		a.velocity.Y = 0
	}
}

// doJump returns the vertical velocity accounting for jumping. During the
// ascent the velocity is fully overridden by a power curve, which gives the
// player control over the jump height by releasing early. During the descent
// gravity takes over.
func (a *Actor) doJump(velocityY, dt float64) float64 {
	p := a.params

	if a.jumping {
		begin := a.onGround && (a.jumpPressed || !a.wasJumping)
		if begin || a.jumpTime > 0 {
			if a.jumpTime == 0 {
				a.queueCue(jumpCue)
			}
			a.jumpTime += dt
			if a.facing == FacingRight || a.velocity.X > 0 {
				a.setAnimation(jumpRight)
			} else {
				a.setAnimation(jumpLeft)
			}
		}

		if 0 < a.jumpTime && a.jumpTime <= p.MaxJumpTime {
			velocityY = p.JumpLaunchVelocity * (1 - math.Pow(a.jumpTime/p.MaxJumpTime, p.JumpControlPower))
		} else {
			// Apex reached.
			a.jumpTime = 0
		}
	} else {
		a.jumpTime = 0
	}
	a.wasJumping = a.jumping

	return velocityY
}
