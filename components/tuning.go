package components

import (
	"github.com/automoto/playdead/shared/actor"
	"github.com/yohamta/donburi"
)

// TuningData carries hot-reloaded physics tuning from the file watcher to
// the game loop. Both channels may be nil when reload is off.
type TuningData struct {
	Updates <-chan actor.Params
	Errors  <-chan error
	Reloads int
}

var Tuning = donburi.NewComponentType[TuningData]()
