package components

import (
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is the world point drawn at the centre of the screen.
type CameraData struct {
	Position   gamemath.Vec2
	LookAheadX float64 // smoothed horizontal lead in the direction of travel
}

var Camera = donburi.NewComponentType[CameraData]()
