package animations

import "github.com/automoto/playdead/shared/playstate"

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// Def describes one state's frame range.
type Def struct {
	First, Last, Step int
	Speed             float32
	Freeze            bool
}

// Animator follows the actor's animation state, restarting the clip when
// the state changes and holding the frame while the state is paused.
type Animator struct {
	defs    map[playstate.StateID]Def
	state   playstate.StateID
	current *Animation
}

func NewAnimator(defs map[playstate.StateID]Def) *Animator {
	return &Animator{defs: defs, state: playstate.StateNone}
}

// Update advances one tick.
func (a *Animator) Update(state playstate.StateID, paused bool) {
	if state != a.state {
		a.state = state
		a.current = nil
		if d, ok := a.defs[state]; ok {
			a.current = NewAnimation(d.First, d.Last, d.Step, d.Speed)
			a.current.FreezeOnComplete = d.Freeze
		}
		return
	}
	if a.current == nil || paused {
		return
	}
	a.current.Update()
}

func (a *Animator) State() playstate.StateID {
	return a.state
}

// Frame returns the frame index to draw, 0 for states without a clip.
func (a *Animator) Frame() int {
	if a.current == nil {
		return 0
	}
	return a.current.Frame()
}

// Finished reports whether a non-looping clip has reached its last frame.
func (a *Animator) Finished() bool {
	return a.current != nil && a.current.FreezeOnComplete && a.current.Looped
}
