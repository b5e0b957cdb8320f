// Package tiles describes the collision behaviour of level grid cells. It has
// no dependencies on ebitengine or donburi so the physics core stays headless.
package tiles

import (
	"strings"

	"github.com/automoto/playdead/shared/gamemath"
)

// Collision controls how a tile interacts with the actor.
type Collision int

const (
	// Passable tiles do not hinder motion at all.
	Passable Collision = iota
	// Impassable tiles are completely solid.
	Impassable
	// Platform tiles only block from above. The actor can jump up through them
	// and walk past them sideways.
	Platform
	// Ladder tiles are sensors that allow climbing.
	Ladder
	// Water tiles drown the actor once its head is submerged.
	Water
	// Death tiles kill on deep contact.
	Death
)

var collisionNames = map[Collision]string{
	Passable:   "passable",
	Impassable: "impassable",
	Platform:   "platform",
	Ladder:     "ladder",
	Water:      "water",
	Death:      "death",
}

func (c Collision) String() string {
	if name, ok := collisionNames[c]; ok {
		return name
	}
	return "unknown"
}

// Sensor reports whether the category is detected by overlap only and never
// displaces the actor.
func (c Collision) Sensor() bool {
	return c == Ladder || c == Water || c == Death
}

// ParseCollision maps a level-file property value to a Collision. Unknown
// values report ok=false.
func ParseCollision(s string) (Collision, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range collisionNames {
		if name == s {
			return c, true
		}
	}
	switch s {
	case "solid":
		return Impassable, true
	case "spike", "hazard":
		return Death, true
	}
	return Passable, false
}

// Tile is one collidable cell. Static tiles have a zero FrameVelocity; moving
// tiles carry the displacement they travelled this frame.
type Tile struct {
	Collision     Collision
	Bounds        gamemath.Rect
	FrameVelocity gamemath.Vec2
	Moving        bool
}
