package systems

import (
	"testing"

	"github.com/automoto/playdead/components"
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestSquashOnLanding(t *testing.T) {
	e, player, _ := newTestScene(t, nil)
	ss := components.SquashStretch.Get(player)

	// Let the actor settle onto the floor.
	UpdateLevel(e)
	UpdatePlayer(e)
	UpdateSquashStretch(e)
	assert.Equal(t, landSquashX, ss.ScaleX)
	assert.Equal(t, landSquashY, ss.ScaleY)

	for i := 0; i < 60; i++ {
		UpdateSquashStretch(e)
	}
	assert.Equal(t, 1.0, ss.ScaleX)
	assert.Equal(t, 1.0, ss.ScaleY)
}

func TestSquashedKeepsFeet(t *testing.T) {
	r := gamemath.Rect{X: 10, Y: 20, W: 20, H: 40}
	s := squashed(r, 1.5, 0.5)

	assert.Equal(t, r.Bottom(), s.Bottom())
	assert.Equal(t, r.Center().X, s.Center().X)
	assert.Equal(t, 30.0, s.W)
	assert.Equal(t, 20.0, s.H)
}
