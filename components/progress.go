package components

import "github.com/yohamta/donburi"

// ProgressData counts what the HUD shows and what gets saved.
type ProgressData struct {
	Deaths        int
	LevelsCleared int
}

var Progress = donburi.NewComponentType[ProgressData]()
