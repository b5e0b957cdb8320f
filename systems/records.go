package systems

import (
	"github.com/automoto/playdead/components"
	"github.com/automoto/playdead/records"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// clearRecorder is the part of records.Store the game uses.
type clearRecorder interface {
	RecordClear(level string, frames, deaths int) (int64, error)
	Best(level string) (records.Clear, bool, error)
}

var (
	recorder    clearRecorder
	recordStore *records.Store
)

// InitRecords opens the clear-time database. Without it the game runs but
// keeps no times.
func InitRecords(dbPath string) error {
	s, err := records.Open(dbPath)
	if err != nil {
		return err
	}
	recordStore = s
	recorder = s
	return nil
}

func CloseRecords() error {
	recorder = nil
	if recordStore == nil {
		return nil
	}
	err := recordStore.Close()
	recordStore = nil
	return err
}

// RecordLevelClear logs and stores the run that just reached the exit.
func RecordLevelClear(ecs *ecs.ECS, levelData *components.LevelData) {
	name := levelData.CurrentLevel.Name
	frames := levelData.Frames
	deaths := GetOrCreateProgress(ecs).Deaths - levelData.DeathsAtEntry

	log.Info("level complete",
		"level", name,
		"time", records.FormatFrames(frames, ebiten.TPS()),
		"deaths", deaths)

	if recorder == nil {
		return
	}
	if _, err := recorder.RecordClear(name, frames, deaths); err != nil {
		log.Warn("could not record clear", "level", name, "err", err)
		return
	}
	if levelData.BestFrames == 0 || frames < levelData.BestFrames {
		levelData.BestFrames = frames
		log.Info("new best time", "level", name, "time", records.FormatFrames(frames, ebiten.TPS()))
	}
}

// LoadBestClear caches the level's best time for the HUD.
func LoadBestClear(levelData *components.LevelData) {
	levelData.BestFrames = 0
	if recorder == nil || levelData.CurrentLevel == nil {
		return
	}
	best, ok, err := recorder.Best(levelData.CurrentLevel.Name)
	if err != nil {
		log.Warn("could not read best time", "level", levelData.CurrentLevel.Name, "err", err)
		return
	}
	if ok {
		levelData.BestFrames = best.Frames
	}
}
