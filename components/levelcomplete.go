package components

import "github.com/yohamta/donburi"

// LevelCompleteData is set when the player reaches an exit. Timer counts
// down to loading the next level.
type LevelCompleteData struct {
	IsComplete bool
	Timer      int
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
