package actor

import (
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/automoto/playdead/shared/tiles"
)

// applyLadderInput grabs a ladder when up or down is held and the actor is
// lined up with one. Up checks the cell behind the actor, down the cell it
// stands on.
func (a *Actor) applyLadderInput(w World, in Intent) {
	switch {
	case in.Up:
		a.climbing = false
		if a.alignToLadder(w) && w.CollisionBehind(a.position) == tiles.Ladder {
			a.grabLadder(-1)
		}
	case in.Down:
		a.climbing = false
		if a.alignToLadder(w) && w.CollisionBelow(a.position) == tiles.Ladder {
			a.grabLadder(2)
		}
	}
}

func (a *Actor) grabLadder(direction float64) {
	a.climbing = true
	a.jumping = false
	a.onGround = false
	a.movement.Y = direction
}

// alignToLadder reports whether the actor may climb and, if so, snaps it to
// the centre of the ladder column. The alignment window only gates the check
// just below the feet; a ladder just above the feet always counts. Keep that
// precedence: it is what lets the actor step off the top of a ladder.
func (a *Actor) alignToLadder(w World) bool {
	tileW, _ := w.TileSize()
	offset := int(a.position.X)%int(tileW) - int(tileW)/2

	below := w.CollisionBelow(gamemath.Vec2{X: a.position.X, Y: a.position.Y + 1})
	above := w.CollisionBelow(gamemath.Vec2{X: a.position.X, Y: a.position.Y - 1})

	if abs(offset) <= a.params.LadderAlignment && below == tiles.Ladder || above == tiles.Ladder {
		a.position.X -= float64(offset)
		return true
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
