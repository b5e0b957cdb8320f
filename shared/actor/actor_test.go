package actor

import (
	"math"
	"testing"

	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/shared/playstate"
	"github.com/automoto/playdead/shared/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTileW = 40.0
	testTileH = 32.0
	frameDT   = 1.0 / 60.0
)

var glyphs = map[rune]tiles.Collision{
	'.': tiles.Passable,
	'#': tiles.Impassable,
	'=': tiles.Platform,
	'H': tiles.Ladder,
	'~': tiles.Water,
	'^': tiles.Death,
}

// gridWorld is a minimal World backed by rows of glyphs.
type gridWorld struct {
	width, height int
	cells         []*tiles.Tile
	moving        []*tiles.Tile
}

func newGridWorld(rows ...string) *gridWorld {
	g := &gridWorld{width: len(rows[0]), height: len(rows)}
	g.cells = make([]*tiles.Tile, g.width*g.height)
	for y, row := range rows {
		for x, r := range row {
			g.cells[y*g.width+x] = &tiles.Tile{
				Collision: glyphs[r],
				Bounds: gamemath.Rect{
					X: float64(x) * testTileW,
					Y: float64(y) * testTileH,
					W: testTileW,
					H: testTileH,
				},
			}
		}
	}
	return g
}

func (g *gridWorld) Tile(x, y int) *tiles.Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y*g.width+x]
}

func (g *gridWorld) MovingTiles() []*tiles.Tile { return g.moving }

func (g *gridWorld) collisionAt(x, y float64) tiles.Collision {
	if t := g.Tile(int(math.Floor(x/testTileW)), int(math.Floor(y/testTileH))); t != nil {
		return t.Collision
	}
	return tiles.Passable
}

func (g *gridWorld) CollisionBelow(p gamemath.Vec2) tiles.Collision {
	return g.collisionAt(p.X, p.Y)
}

func (g *gridWorld) CollisionBehind(p gamemath.Vec2) tiles.Collision {
	return g.collisionAt(p.X, p.Y-1)
}

func (g *gridWorld) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *gridWorld) TileSize() (float64, float64) { return testTileW, testTileH }

func emptyWorld() *gridWorld {
	return newGridWorld("....", "....")
}

func stepN(a *Actor, w World, n int, in Intent) {
	for i := 0; i < n; i++ {
		a.Step(w, frameDT, in)
	}
}

func TestNewActorIsAliveAndIdle(t *testing.T) {
	spawn := gamemath.Vec2{X: 100, Y: 200}
	a := New(DefaultParams(), spawn)

	assert.True(t, a.Alive())
	assert.Equal(t, spawn, a.Position())
	assert.Equal(t, spawn, a.LastGroundPosition())
	assert.True(t, a.Velocity().IsZero())
	assert.Equal(t, playstate.IdleRight, a.Animation())
	assert.Equal(t, FacingRight, a.Facing())
	assert.Empty(t, a.DrainCues())
}

func TestBoundsAnchoredAtBottomCentre(t *testing.T) {
	a := New(DefaultParams(), gamemath.Vec2{X: 100, Y: 200})
	b := a.Bounds()

	assert.InDelta(t, 25.6, b.W, 1e-9)
	assert.InDelta(t, 51.2, b.H, 1e-9)
	assert.InDelta(t, 200, b.Bottom(), 1e-9)
	assert.InDelta(t, 100, b.Center().X, 1e-9)
}

func TestGravityRampsToMaxFall(t *testing.T) {
	p := DefaultParams()
	a := New(p, gamemath.Vec2{X: 60, Y: 40})
	w := emptyWorld()

	prev := 0.0
	for i := 0; i < 60; i++ {
		a.Step(w, frameDT, Intent{})
		v := a.Velocity().Y
		require.LessOrEqual(t, v, p.MaxFallSpeed, "frame %d", i)
		if prev < p.MaxFallSpeed {
			require.Greater(t, v, prev, "frame %d", i)
		}
		prev = v
	}
	assert.Equal(t, p.MaxFallSpeed, prev)
}

func TestZeroDeltaLeavesAirborneActorAtRest(t *testing.T) {
	spawn := gamemath.Vec2{X: 60, Y: 40}
	a := New(DefaultParams(), spawn)

	a.Step(emptyWorld(), 0, Intent{})

	assert.Equal(t, spawn, a.Position())
	assert.True(t, a.Velocity().IsZero())
}

func TestResetRoundTrip(t *testing.T) {
	w := emptyWorld()
	a := New(DefaultParams(), gamemath.Vec2{X: 60, Y: 40})
	stepN(a, w, 10, Intent{Right: true})
	a.Kill(playstate.DeathSpike)
	require.False(t, a.Alive())

	spawn := gamemath.Vec2{X: 75, Y: 50}
	a.Reset(spawn)
	a.Step(w, 0, Intent{})

	assert.Equal(t, spawn, a.Position())
	assert.Equal(t, gamemath.Vec2{}, a.Velocity())
	assert.True(t, a.Alive())
	assert.Equal(t, playstate.DeathDefault, a.DeathCause())
	assert.Equal(t, spawn, a.LastGroundPosition())
}

func TestResetClearsDeathCueGuard(t *testing.T) {
	a := New(DefaultParams(), gamemath.Vec2{X: 60, Y: 40})
	a.Kill(playstate.DeathDefault)
	a.DrainCues()

	a.Reset(gamemath.Vec2{X: 60, Y: 40})
	a.Kill(playstate.DeathDefault)

	assert.Equal(t, []playstate.SoundID{playstate.SoundKilled}, a.DrainCues())
}

func TestEnterLevelDoesNotRevive(t *testing.T) {
	a := New(DefaultParams(), gamemath.Vec2{X: 60, Y: 40})
	a.Kill(playstate.DeathFall)

	spawn := gamemath.Vec2{X: 10, Y: 10}
	a.EnterLevel(spawn)

	assert.False(t, a.Alive())
	assert.Equal(t, spawn, a.Position())
	assert.Equal(t, spawn, a.LastGroundPosition())
}

func TestIntentMovement(t *testing.T) {
	cases := []struct {
		name  string
		in    Intent
		wantX float64
		wantY float64
	}{
		{"inside deadzone", Intent{X: 0.3, Y: -0.49}, 0, 0},
		{"analog", Intent{X: 0.7, Y: 0.5}, 0.7, 0.5},
		{"digital left beats analog", Intent{X: 0.9, Left: true}, -1, 0},
		{"digital right beats analog", Intent{X: -0.8, Right: true}, 1, 0},
		{"left before right", Intent{Left: true, Right: true}, -1, 0},
		{"digital up leaves axis alone", Intent{Y: 0.2, Up: true}, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := c.in.movement(0.5)
			assert.Equal(t, c.wantX, x)
			assert.Equal(t, c.wantY, y)
		})
	}
}

func TestHorizontalSpeedIsClamped(t *testing.T) {
	p := DefaultParams()
	a := New(p, gamemath.Vec2{X: 60, Y: 40})

	// A single huge step would blow past the cap without the clamp.
	a.Step(emptyWorld(), 1, Intent{Right: true})

	assert.LessOrEqual(t, a.Velocity().X, p.MaxMoveSpeed)
}
