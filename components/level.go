package components

import (
	"github.com/automoto/playdead/assets"
	"github.com/automoto/playdead/shared/level"
	"github.com/automoto/playdead/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel     *level.Level
	Data             *leveldata.Data
	Loader           *assets.LevelLoader
	LevelIndex       int
	ActiveCheckpoint *ActiveCheckpointData // Last activated checkpoint for respawn
	// WaterCooldown throttles the debug water-raise action.
	WaterCooldown int

	// Frames counts simulated frames since the level was entered.
	Frames int
	// DeathsAtEntry is the death counter when the level was entered.
	DeathsAtEntry int
	// BestFrames is the fastest recorded clear, 0 when there is none.
	BestFrames int
}

var Level = donburi.NewComponentType[LevelData]()
