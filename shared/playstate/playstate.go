// Package playstate defines the lightweight presentation keys the physics core
// emits: animation states, sound cues and death causes. It must have zero
// dependencies on ebiten or any graphics library so the core stays headless.
package playstate

// StateID identifies the logical animation the actor should be showing.
type StateID int

const StateNone StateID = -1

const (
	IdleRight StateID = iota
	IdleLeft
	RunRight
	RunLeft
	JumpRight
	JumpLeft
	FallRight
	FallLeft
	ClimbUp
	ClimbDown
	DieRight
	DieLeft
	DrownRight
	DrownLeft
)

// StateToFileName maps StateID to the sprite sheet name used by the content
// pipeline.
var StateToFileName = map[StateID]string{
	IdleRight:  "Idle-Right",
	IdleLeft:   "Idle-Left",
	RunRight:   "Walk-Right",
	RunLeft:    "Walk-Left",
	JumpRight:  "Jump-Right",
	JumpLeft:   "Jump-Left",
	FallRight:  "Fall-Right",
	FallLeft:   "Fall-Left",
	ClimbUp:    "Ladder",
	ClimbDown:  "Ladder",
	DieRight:   "Spiked-Right",
	DieLeft:    "Spiked-Left",
	DrownRight: "Drown-Right",
	DrownLeft:  "Drown-Left",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// Phase is the coarse state machine phase derived from a StateID.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseJumping
	PhaseFalling
	PhaseClimbing
	PhaseDead
)

var phaseNames = [...]string{"idle", "running", "jumping", "falling", "climbing", "dead"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Phase returns the state machine phase the animation belongs to.
func (s StateID) Phase() Phase {
	switch s {
	case RunRight, RunLeft:
		return PhaseRunning
	case JumpRight, JumpLeft:
		return PhaseJumping
	case FallRight, FallLeft:
		return PhaseFalling
	case ClimbUp, ClimbDown:
		return PhaseClimbing
	case DieRight, DieLeft, DrownRight, DrownLeft:
		return PhaseDead
	}
	return PhaseIdle
}

// DeathCause selects the terminal animation and cue. It is orthogonal to the
// physics state.
type DeathCause int

const (
	DeathDefault DeathCause = iota
	DeathWater
	DeathSpike
	DeathFall
)

var deathCauseNames = [...]string{"default", "water", "spike", "fall"}

func (c DeathCause) String() string {
	if int(c) < len(deathCauseNames) {
		return deathCauseNames[c]
	}
	return "unknown"
}

// SoundID represents a logical sound effect.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundKilled
	SoundKilledWater
	SoundKilledSpike
	SoundKilledFall
	SoundCheckpoint
	SoundExit
)

var soundNames = [...]string{
	"none", "jump", "killed", "killed_water", "killed_spike", "killed_fall", "checkpoint", "exit",
}

func (s SoundID) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// DeathSound returns the cue played for a death cause.
func DeathSound(cause DeathCause) SoundID {
	switch cause {
	case DeathWater:
		return SoundKilledWater
	case DeathSpike:
		return SoundKilledSpike
	case DeathFall:
		return SoundKilledFall
	}
	return SoundKilled
}
