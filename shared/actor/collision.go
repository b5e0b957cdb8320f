package actor

import (
	"math"

	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/shared/playstate"
	"github.com/automoto/playdead/shared/tiles"
)

// candidates returns the tiles the actor may touch this frame in resolution
// order: the grid window row by row, then every moving tile. The order decides
// tie-breaks because later tiles observe corrections made by earlier ones.
func (a *Actor) candidates(w World, bounds gamemath.Rect) []*tiles.Tile {
	tileW, tileH := w.TileSize()
	leftTile := int(math.Floor(bounds.Left() / tileW))
	rightTile := int(math.Ceil(bounds.Right()/tileW)) - 1
	topTile := int(math.Floor(bounds.Top() / tileH))
	bottomTile := int(math.Ceil(bounds.Bottom()/tileH)) - 1

	moving := w.MovingTiles()
	out := make([]*tiles.Tile, 0, (rightTile-leftTile+1)*(bottomTile-topTile+1)+len(moving))
	for y := topTile; y <= bottomTile; y++ {
		for x := leftTile; x <= rightTile; x++ {
			if !w.InBounds(x, y) {
				continue
			}
			out = append(out, w.Tile(x, y))
		}
	}
	return append(out, moving...)
}

// handleCollisions separates the actor from every tile it overlaps, one axis
// at a time, and runs the ladder, water and hazard sensors. Platforms only
// push the actor up when it lands on them from above.
func (a *Actor) handleCollisions(w World) {
	bounds := a.Bounds()
	candidates := a.candidates(w, bounds)

	a.onGround = false
	movedByTile := false

	for _, tile := range candidates {
		if tile == nil {
			continue
		}
		collision := tile.Collision
		if collision == tiles.Passable {
			continue
		}

		tileBounds := tile.Bounds
		depth := gamemath.IntersectionDepth(bounds, tileBounds)
		if depth.IsZero() {
			continue
		}
		absDepthX := math.Abs(depth.X)
		absDepthY := math.Abs(depth.Y)

		switch {
		case !collision.Sensor() && (absDepthY < absDepthX || collision == tiles.Platform):
			// Moving tiles are compared against where their top was last
			// frame, otherwise a rising platform would never count as landed.
			tileTop := tileBounds.Top()
			if tile.Moving {
				tileTop -= tile.FrameVelocity.Y
			}
			landed := a.previousBottom-tileTop < a.params.GroundEpsilon
			if landed {
				a.land()
			}

			if landed && tile.Moving && !movedByTile {
				a.position = a.position.Add(tile.FrameVelocity)
				a.onGround = true
				movedByTile = true

				bounds = a.Bounds()
				depth = gamemath.IntersectionDepth(bounds, tileBounds)
			}

			// Platforms only push back when stood on from above.
			if collision == tiles.Impassable || landed {
				a.position.Y += depth.Y
				bounds = a.Bounds()
			}

		case collision == tiles.Impassable:
			a.position.X += depth.X
			bounds = a.Bounds()

		case collision == tiles.Ladder:
			if a.alive && !a.climbing {
				// Overlap alone makes the ladder climbable; moving along it
				// needs vertical input.
				a.climbing = true
				bounds = a.Bounds()
			}

		case collision == tiles.Death:
			if a.alive && absDepthY > tileBounds.H/2 {
				a.Kill(playstate.DeathSpike)
			}

		case collision == tiles.Water:
			if a.alive {
				head := bounds
				head.H /= 8
				if tileBounds.Intersects(head) {
					a.Kill(playstate.DeathWater)
				}
			}
		}
	}

	a.previousBottom = bounds.Bottom()
}

// land records contact with the top of a tile. Downward speed is meaningless
// once standing, so it is dropped here rather than on the next frame.
func (a *Actor) land() {
	a.onGround = true
	a.climbing = false
	a.jumping = false
	if a.velocity.Y > 0 {
		a.velocity.Y = 0
	}
}
