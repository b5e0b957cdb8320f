package systems

import (
	"encoding/json"

	"github.com/automoto/playdead/components"
	"github.com/automoto/playdead/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// itemStore is the part of gdata.Manager persistence uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const (
	settingsKey = "settings"
	progressKey = "progress"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	Fullscreen bool    `json:"fullscreen"`
}

// SavedGameProgress is where the player was and how it went.
type SavedGameProgress struct {
	Level            string  `json:"level"`
	LevelIndex       int     `json:"levelIndex"`
	CheckpointID     int     `json:"checkpointId"`
	CheckpointSpawnX float64 `json:"checkpointSpawnX"`
	CheckpointSpawnY float64 `json:"checkpointSpawnY"`
	HasCheckpoint    bool    `json:"hasCheckpoint"`
	Deaths           int     `json:"deaths"`
	LevelsCleared    int     `json:"levelsCleared"`
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadJSON(settingsKey, &settings)
	if !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveJSON(settingsKey, s)
}

// SaveCurrentSettings saves the live settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		SFXVolume:  s.SFXVolume,
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
	})
}

func LoadGameProgress() (*SavedGameProgress, error) {
	var progress SavedGameProgress
	ok, err := loadJSON(progressKey, &progress)
	if !ok {
		return nil, err
	}
	return &progress, nil
}

// SaveGameProgress records the current level, checkpoint and counters.
func SaveGameProgress(levelData *components.LevelData, stats *components.ProgressData) {
	if levelData == nil || levelData.CurrentLevel == nil {
		return
	}

	progress := &SavedGameProgress{
		Level:      levelData.CurrentLevel.Name,
		LevelIndex: levelData.LevelIndex,
	}
	if cp := levelData.ActiveCheckpoint; cp != nil {
		progress.HasCheckpoint = true
		progress.CheckpointID = cp.CheckpointID
		progress.CheckpointSpawnX = cp.SpawnX
		progress.CheckpointSpawnY = cp.SpawnY
	}
	if stats != nil {
		progress.Deaths = stats.Deaths
		progress.LevelsCleared = stats.LevelsCleared
	}
	_ = saveJSON(progressKey, progress)
}

// RestoreGameProgress copies saved counters into the scene and, when the
// save belongs to the loaded level, re-activates its checkpoint. It returns
// where the actor should start.
func RestoreGameProgress(ecs *ecs.ECS, saved *SavedGameProgress) gamemath.Vec2 {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return gamemath.Vec2{}
	}
	levelData := components.Level.Get(levelEntry)
	spawn := levelData.CurrentLevel.Spawn()
	if saved == nil {
		return spawn
	}

	progress := GetOrCreateProgress(ecs)
	progress.Deaths = saved.Deaths
	progress.LevelsCleared = saved.LevelsCleared

	if saved.Level != levelData.CurrentLevel.Name || !saved.HasCheckpoint {
		return spawn
	}
	levelData.ActiveCheckpoint = &components.ActiveCheckpointData{
		SpawnX:       saved.CheckpointSpawnX,
		SpawnY:       saved.CheckpointSpawnY,
		CheckpointID: saved.CheckpointID,
	}
	components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		checkpoint := components.Checkpoint.Get(e)
		if checkpoint.CheckpointID == saved.CheckpointID {
			checkpoint.Activated = true
		}
	})
	return gamemath.Vec2{X: saved.CheckpointSpawnX, Y: saved.CheckpointSpawnY}
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	p, err := LoadGameProgress()
	return err == nil && p != nil
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if store == nil {
		return nil
	}
	if err := store.SaveItem(progressKey, nil); err != nil {
		log.Warn("could not clear game progress", "err", err)
		return err
	}
	return nil
}

// loadJSON reports false when there is no store or no saved item.
func loadJSON(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}

	data, err := store.LoadItem(key)
	if err != nil {
		log.Warn("could not load item", "key", key, "err", err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("could not parse saved item", "key", key, "err", err)
		return false, err
	}
	return true, nil
}

func saveJSON(key string, v any) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("could not serialize item", "key", key, "err", err)
		return err
	}
	if err := store.SaveItem(key, data); err != nil {
		log.Warn("could not save item", "key", key, "err", err)
		return err
	}
	return nil
}
