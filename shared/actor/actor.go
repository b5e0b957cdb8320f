// Package actor is the physics and collision core for the single controllable
// player. It integrates input and gravity, resolves the result against the
// level's tile grid and derives the animation and death state the
// presentation layer consumes. It never blocks and is not safe for concurrent
// use; call Step once per frame from the simulation loop.
package actor

import (
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/shared/playstate"
)

// Facing is the horizontal direction the actor looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

type Actor struct {
	params Params

	position       gamemath.Vec2
	velocity       gamemath.Vec2
	previousBottom float64
	lastGroundPos  gamemath.Vec2
	localBounds    gamemath.Rect
	origin         gamemath.Vec2

	alive       bool
	deathPlayed bool
	deathCause  playstate.DeathCause

	onGround    bool
	climbing    bool
	wasClimbing bool
	jumping     bool
	wasJumping  bool
	jumpPressed bool
	jumpTime    float64

	facing   Facing
	movement gamemath.Vec2

	animation playstate.StateID
	paused    bool
	cues      []playstate.SoundID
}

// New creates an actor alive at spawn.
func New(params Params, spawn gamemath.Vec2) *Actor {
	a := &Actor{}
	a.SetParams(params)
	a.Reset(spawn)
	return a
}

// SetParams swaps the tuning. Safe to call between frames.
func (a *Actor) SetParams(params Params) {
	a.params = params

	width := params.FrameWidth * 0.4
	left := (params.FrameWidth - width) / 2
	height := params.FrameWidth * 0.8
	top := params.FrameHeight - height
	a.localBounds = gamemath.Rect{X: left, Y: top, W: width, H: height}
	a.origin = gamemath.Vec2{X: params.FrameWidth / 2, Y: params.FrameHeight}
}

func (a *Actor) Params() Params { return a.params }

// Reset brings the actor back to life at position.
func (a *Actor) Reset(position gamemath.Vec2) {
	a.position = position
	a.lastGroundPos = position
	a.velocity = gamemath.Vec2{}
	a.alive = true
	a.deathPlayed = false
	a.deathCause = playstate.DeathDefault
	a.facing = FacingRight
	a.animation = playstate.IdleRight
	a.paused = false

	a.onGround = false
	a.climbing, a.wasClimbing = false, false
	a.jumping, a.wasJumping, a.jumpPressed = false, false, false
	a.jumpTime = 0
	a.movement = gamemath.Vec2{}
	a.previousBottom = a.Bounds().Bottom()
}

// EnterLevel places the actor at a new level's spawn without reviving it.
func (a *Actor) EnterLevel(spawn gamemath.Vec2) {
	a.position = spawn
	a.lastGroundPos = spawn
	a.velocity = gamemath.Vec2{}
	a.previousBottom = a.Bounds().Bottom()
}

// Bounds returns the collision rectangle in world space.
func (a *Actor) Bounds() gamemath.Rect {
	return gamemath.Rect{
		X: a.position.X - a.origin.X + a.localBounds.X,
		Y: a.position.Y - a.origin.Y + a.localBounds.Y,
		W: a.localBounds.W,
		H: a.localBounds.H,
	}
}

// Position is the sprite origin: the bottom centre of the frame.
func (a *Actor) Position() gamemath.Vec2 { return a.position }

func (a *Actor) SetPosition(p gamemath.Vec2) { a.position = p }

func (a *Actor) Velocity() gamemath.Vec2 { return a.velocity }

func (a *Actor) SetVelocity(v gamemath.Vec2) { a.velocity = v }

func (a *Actor) Alive() bool { return a.alive }

func (a *Actor) OnGround() bool { return a.onGround }

// Climbing reports whether the actor was on a ladder during the last step.
func (a *Actor) Climbing() bool { return a.wasClimbing }

// Jumping reports whether the jump input was held during the last step.
func (a *Actor) Jumping() bool { return a.wasJumping }

// AscentTime is the time spent in the current jump ascent, zero when not
// ascending.
func (a *Actor) AscentTime() float64 { return a.jumpTime }

func (a *Actor) Facing() Facing { return a.facing }

func (a *Actor) Animation() playstate.StateID { return a.animation }

// AnimationPaused is set while hanging still on a ladder.
func (a *Actor) AnimationPaused() bool { return a.paused }

func (a *Actor) DeathCause() playstate.DeathCause { return a.deathCause }

// LastGroundPosition is the fall-damage reference point.
func (a *Actor) LastGroundPosition() gamemath.Vec2 { return a.lastGroundPos }

// DrainCues returns the sound cues queued since the last call.
func (a *Actor) DrainCues() []playstate.SoundID {
	cues := a.cues
	a.cues = nil
	return cues
}

func (a *Actor) queueCue(id playstate.SoundID) {
	a.cues = append(a.cues, id)
}
