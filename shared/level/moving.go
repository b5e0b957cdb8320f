package level

import (
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/shared/tiles"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MovingTile travels back and forth between its origin and origin+Delta. The
// embedded Tile is what the resolver sees; its FrameVelocity is the
// displacement of the most recent Update.
type MovingTile struct {
	Tile tiles.Tile

	origin gamemath.Vec2
	delta  gamemath.Vec2
	// path drives a 0..1..0 progress value along delta.
	path *gween.Sequence
}

// NewMovingTile creates a tile at bounds that moves by delta over duration
// seconds, then back again, forever.
func NewMovingTile(bounds gamemath.Rect, collision tiles.Collision, delta gamemath.Vec2, duration float64) *MovingTile {
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, float32(duration), ease.InOutSine),
		gween.New(1, 0, float32(duration), ease.InOutSine),
	)
	return &MovingTile{
		Tile: tiles.Tile{
			Collision: collision,
			Bounds:    bounds,
			Moving:    true,
		},
		origin: gamemath.Vec2{X: bounds.X, Y: bounds.Y},
		delta:  delta,
		path:   seq,
	}
}

// Update moves the tile along its path and records the displacement.
func (m *MovingTile) Update(dt float64) {
	progress, _, done := m.path.Update(float32(dt))
	if done {
		m.path.Reset()
		progress = 0
	}

	next := m.origin.Add(m.delta.Scale(float64(progress)))
	prev := gamemath.Vec2{X: m.Tile.Bounds.X, Y: m.Tile.Bounds.Y}
	m.Tile.FrameVelocity = next.Sub(prev)
	m.Tile.Bounds.X, m.Tile.Bounds.Y = next.X, next.Y
}

func (m *MovingTile) Position() gamemath.Vec2 {
	return gamemath.Vec2{X: m.Tile.Bounds.X, Y: m.Tile.Bounds.Y}
}
