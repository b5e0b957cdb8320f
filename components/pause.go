package components

import (
	"github.com/automoto/playdead/ui"
	"github.com/yohamta/donburi"
)

// PauseData freezes the simulation. Input, settings toggles and audio keep
// running. Menu is built the first time the game pauses.
type PauseData struct {
	IsPaused bool
	Menu     *ui.PauseUI
}

var Pause = donburi.NewComponentType[PauseData]()
