// Package leveldata parses Tiled TMX level files into plain collision data.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

import "github.com/automoto/playdead/shared/tiles"

// Data holds everything the game needs from one TMX file.
type Data struct {
	Name string

	// Grid size in cells and cell size in pixels.
	Width, Height         int
	TileWidth, TileHeight int

	// Cells is row-major, Width*Height long.
	Cells []tiles.Collision

	SpawnPoints  []SpawnPoint
	Checkpoints  []Area
	Exits        []Area
	KillPlanes   []Area
	MovingTiles  []MovingTileSpawn
	WaterSources []WaterSourceSpawn
}

// Collision returns the category of cell (x, y), Passable outside the grid.
func (d *Data) Collision(x, y int) tiles.Collision {
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return tiles.Passable
	}
	return d.Cells[y*d.Width+x]
}

// SpawnPoint is where the actor enters the level. The actor's position is the
// bottom centre of its sprite frame, so Y is the floor it stands on.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Area is a rectangular trigger region.
type Area struct {
	ID         int
	X, Y, W, H float64
}

type MovingTileSpawn struct {
	X, Y, W, H float64
	Collision  tiles.Collision
	DX, DY     float64
	// Duration is the one-way travel time in seconds.
	Duration float64
}

type WaterSourceSpawn struct {
	Col, Row int
	Level    int
}
