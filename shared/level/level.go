// Package level owns the collision grid the actor is resolved against: static
// cells, moving tiles and the water sources that flood neighbouring cells. It
// implements actor.World and has no dependencies on ebiten or donburi.
package level

import (
	"math"

	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/shared/tiles"
)

type Level struct {
	Name string

	width, height int
	tileW, tileH  float64

	cells  []tiles.Tile
	moving []*MovingTile
	// movingTiles mirrors moving so MovingTiles does not allocate per frame.
	movingTiles []*tiles.Tile
	sources     []*WaterSource

	spawn gamemath.Vec2
}

// New creates a width×height grid of passable cells.
func New(width, height int, tileW, tileH float64) *Level {
	l := &Level{
		width:  width,
		height: height,
		tileW:  tileW,
		tileH:  tileH,
		cells:  make([]tiles.Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			l.cells[y*width+x].Bounds = gamemath.Rect{
				X: float64(x) * tileW,
				Y: float64(y) * tileH,
				W: tileW,
				H: tileH,
			}
		}
	}
	return l
}

// Size returns the grid dimensions in cells.
func (l *Level) Size() (int, int) { return l.width, l.height }

// PixelSize returns the grid dimensions in world units.
func (l *Level) PixelSize() (float64, float64) {
	return float64(l.width) * l.tileW, float64(l.height) * l.tileH
}

func (l *Level) TileSize() (float64, float64) { return l.tileW, l.tileH }

func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.width && y < l.height
}

// Tile returns the cell at (x, y), or nil outside the grid.
func (l *Level) Tile(x, y int) *tiles.Tile {
	if !l.InBounds(x, y) {
		return nil
	}
	return &l.cells[y*l.width+x]
}

// Collision returns the category of the cell at (x, y). Cells outside the
// grid are passable.
func (l *Level) Collision(x, y int) tiles.Collision {
	if t := l.Tile(x, y); t != nil {
		return t.Collision
	}
	return tiles.Passable
}

// SetCollision changes the category of a cell. Out of range writes are
// ignored.
func (l *Level) SetCollision(x, y int, c tiles.Collision) {
	if t := l.Tile(x, y); t != nil {
		t.Collision = c
	}
}

// GridPosition returns the cell containing p.
func (l *Level) GridPosition(p gamemath.Vec2) (int, int) {
	return int(math.Floor(p.X / l.tileW)), int(math.Floor(p.Y / l.tileH))
}

// CollisionBelow returns the category of the cell containing p. For an actor
// standing on a tile, p is its feet and the cell is the one under them.
func (l *Level) CollisionBelow(p gamemath.Vec2) tiles.Collision {
	return l.Collision(l.GridPosition(p))
}

// CollisionBehind returns the category of the cell just above p, which is the
// one the actor's body is in.
func (l *Level) CollisionBehind(p gamemath.Vec2) tiles.Collision {
	return l.Collision(l.GridPosition(gamemath.Vec2{X: p.X, Y: p.Y - 1}))
}

func (l *Level) Spawn() gamemath.Vec2 { return l.spawn }

func (l *Level) SetSpawn(p gamemath.Vec2) { l.spawn = p }

// AddMovingTile registers m. Moving tiles are handed to the resolver in the
// order they were added.
func (l *Level) AddMovingTile(m *MovingTile) {
	l.moving = append(l.moving, m)
	l.movingTiles = append(l.movingTiles, &m.Tile)
}

func (l *Level) MovingTiles() []*tiles.Tile { return l.movingTiles }

// Movers returns the moving tiles with their paths.
func (l *Level) Movers() []*MovingTile { return l.moving }

// AddWaterSource places a source at cell (x, y) that fills waterLevel rows.
func (l *Level) AddWaterSource(x, y, waterLevel int) *WaterSource {
	s := &WaterSource{Col: x, Row: y}
	s.SetLevel(waterLevel)
	l.SetCollision(x, y, tiles.Water)
	l.sources = append(l.sources, s)
	return s
}

func (l *Level) WaterSources() []*WaterSource { return l.sources }

// Update advances the moving tiles by dt seconds. Call it before the actor
// step so the resolver sees this frame's displacement.
func (l *Level) Update(dt float64) {
	for _, m := range l.moving {
		m.Update(dt)
	}
}

// RaiseWater raises every water source by one row.
func (l *Level) RaiseWater() {
	for _, s := range l.sources {
		s.Raise()
	}
}
