package animations

import (
	"testing"

	"github.com/automoto/playdead/shared/playstate"
	"github.com/stretchr/testify/assert"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0)
	frames := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}
	assert.Equal(t, []int{1, 2, 0, 1}, frames)
	assert.True(t, a.Looped)
}

func TestAnimationFreezes(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0)
	a.FreezeOnComplete = true
	for i := 0; i < 10; i++ {
		a.Update()
	}
	assert.Equal(t, 2, a.Frame())

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
}

func TestAnimatorFollowsState(t *testing.T) {
	an := NewAnimator(map[playstate.StateID]Def{
		playstate.RunRight: {First: 0, Last: 3, Step: 1},
		playstate.DieRight: {First: 0, Last: 1, Step: 1, Freeze: true},
	})

	an.Update(playstate.RunRight, false)
	assert.Equal(t, playstate.RunRight, an.State())
	assert.Equal(t, 0, an.Frame())

	an.Update(playstate.RunRight, false)
	an.Update(playstate.RunRight, false)
	assert.Equal(t, 2, an.Frame())

	// Paused clips hold their frame.
	an.Update(playstate.RunRight, true)
	assert.Equal(t, 2, an.Frame())

	an.Update(playstate.DieRight, false)
	assert.Equal(t, 0, an.Frame())
	for i := 0; i < 5; i++ {
		an.Update(playstate.DieRight, false)
	}
	assert.True(t, an.Finished())
	assert.Equal(t, 1, an.Frame())

	an.Update(playstate.ClimbUp, false)
	assert.Equal(t, 0, an.Frame())
	assert.False(t, an.Finished())
}
