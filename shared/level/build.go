package level

import (
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/shared/leveldata"
)

// FromData builds a playable level from parsed TMX data. The first spawn point
// becomes the initial spawn.
func FromData(d *leveldata.Data) *Level {
	l := New(d.Width, d.Height, float64(d.TileWidth), float64(d.TileHeight))
	l.Name = d.Name

	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			l.SetCollision(x, y, d.Collision(x, y))
		}
	}

	for _, m := range d.MovingTiles {
		l.AddMovingTile(NewMovingTile(
			gamemath.Rect{X: m.X, Y: m.Y, W: m.W, H: m.H},
			m.Collision,
			gamemath.Vec2{X: m.DX, Y: m.DY},
			m.Duration,
		))
	}

	for _, s := range d.WaterSources {
		l.AddWaterSource(s.Col, s.Row, s.Level)
	}

	if len(d.SpawnPoints) > 0 {
		l.SetSpawn(gamemath.Vec2{X: d.SpawnPoints[0].X, Y: d.SpawnPoints[0].Y})
	}
	return l
}
