package components

import "github.com/yohamta/donburi"

// ScreenShakeData shakes the camera after a death.
type ScreenShakeData struct {
	Intensity float64 // peak offset in pixels, fades to zero
	Duration  int     // total frames
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// SquashStretchData scales the drawn actor about its feet. The collision
// bounds never change.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	LerpSpeed      float64 // fraction of the remaining distance to 1 per frame
	WasOnGround    bool
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
