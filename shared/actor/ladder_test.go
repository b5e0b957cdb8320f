package actor

import (
	"testing"

	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/shared/playstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ladderTop has a ladder in column 1 starting on row 2, so an actor whose
// feet are at y=64 stands on top of it.
func ladderTop() *gridWorld {
	return newGridWorld(
		"....",
		"....",
		".H..",
		".H..",
		".H..",
		"####",
	)
}

func TestAlignToLadderBoundaries(t *testing.T) {
	// Column 1 spans x 40..80 with its centre at 60; alignment is 12.
	// The offset is taken from the truncated position, so 72.9 counts as 12.
	cases := []struct {
		x       float64
		aligned bool
		snapped float64
	}{
		{72, true, 60},
		{72.9, true, 60.9},
		{73, false, 73},
		{48, true, 60},
		{47.9, false, 47.9},
		{47, false, 47},
		{60, true, 60},
	}

	for _, c := range cases {
		a := New(DefaultParams(), gamemath.Vec2{X: c.x, Y: 64})
		got := a.alignToLadder(ladderTop())

		assert.Equal(t, c.aligned, got, "x=%v", c.x)
		assert.InDelta(t, c.snapped, a.Position().X, 1e-9, "x=%v", c.x)
	}
}

func TestLadderAboveFeetIgnoresAlignmentWindow(t *testing.T) {
	w := ladderTop()
	// Feet inside the top ladder cell: the check just above the feet hits the
	// ladder, so even a far offset snaps.
	a := New(DefaultParams(), gamemath.Vec2{X: 79, Y: 80})

	require.True(t, a.alignToLadder(w))
	assert.Equal(t, 60.0, a.Position().X)
}

func TestClimbDownFromLadderTop(t *testing.T) {
	w := ladderTop()
	a := New(DefaultParams(), gamemath.Vec2{X: 70, Y: 64})

	a.Step(w, frameDT, Intent{Down: true})

	assert.True(t, a.Climbing())
	assert.Equal(t, playstate.ClimbDown, a.Animation())
	assert.False(t, a.AnimationPaused())
	assert.Equal(t, 60.0, a.Position().X)
	assert.Greater(t, a.Position().Y, 64.0)
}

func TestClimbUpFromLadderBottom(t *testing.T) {
	w := ladderTop()
	floorTop := w.Tile(0, 5).Bounds.Top()
	a := New(DefaultParams(), gamemath.Vec2{X: 66, Y: floorTop})
	a.Step(w, frameDT, Intent{})

	a.Step(w, frameDT, Intent{Up: true})

	assert.True(t, a.Climbing())
	assert.Equal(t, playstate.ClimbUp, a.Animation())
	assert.Less(t, a.Position().Y, floorTop)
	assert.True(t, a.Alive())
}

func TestUpWithJumpClimbsInsteadOfJumping(t *testing.T) {
	w := ladderTop()
	floorTop := w.Tile(0, 5).Bounds.Top()
	a := New(DefaultParams(), gamemath.Vec2{X: 66, Y: floorTop})
	a.Step(w, frameDT, Intent{})
	a.DrainCues()

	// Up doubles as a jump key, so the climb arrives with a fresh jump press.
	a.Step(w, frameDT, Intent{Up: true, Jump: true, JumpPressed: true})

	assert.True(t, a.Climbing())
	assert.Zero(t, a.AscentTime())
	assert.NotContains(t, a.DrainCues(), playstate.SoundJump)
}

func TestHangingOnLadderPausesAnimation(t *testing.T) {
	w := ladderTop()
	a := New(DefaultParams(), gamemath.Vec2{X: 60, Y: 120})

	a.Step(w, frameDT, Intent{Up: true})
	require.True(t, a.Climbing())

	// No input: the ladder sensor keeps the actor climbing and the previous
	// frame's climb cancels gravity.
	a.Step(w, frameDT, Intent{})
	a.Step(w, frameDT, Intent{})

	assert.True(t, a.Climbing())
	assert.Equal(t, playstate.ClimbUp, a.Animation())
	assert.True(t, a.AnimationPaused())
	assert.Zero(t, a.Velocity().Y)
}

func TestLadderIgnoredWhenNotAligned(t *testing.T) {
	w := ladderTop()
	a := New(DefaultParams(), gamemath.Vec2{X: 140, Y: 64})

	a.Step(w, frameDT, Intent{Down: true})

	assert.False(t, a.Climbing())
	assert.Equal(t, 140.0, a.Position().X)
}
