package actor

import (
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/shared/tiles"
)

// World is everything the resolver needs to know about the level. Categories
// may change between frames (water fills, switches), so nothing is cached.
type World interface {
	// Tile returns the cell at grid coordinates, or nil when there is none.
	Tile(x, y int) *tiles.Tile
	// MovingTiles returns the moving tiles in a stable order.
	MovingTiles() []*tiles.Tile
	// CollisionBelow returns the category of the cell containing p.
	CollisionBelow(p gamemath.Vec2) tiles.Collision
	// CollisionBehind returns the category of the cell the actor standing at
	// p overlaps with its body.
	CollisionBehind(p gamemath.Vec2) tiles.Collision
	InBounds(x, y int) bool
	TileSize() (w, h float64)
}
