package systems

import (
	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/fonts"
	"github.com/automoto/playdead/systems/factory"
	"github.com/automoto/playdead/tags"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelComplete waits out the level complete overlay, then loads the
// next level.
func UpdateLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	levelComplete.Timer--
	if levelComplete.Timer > 0 {
		return
	}

	if err := AdvanceLevel(e); err != nil {
		log.Error("could not load next level", "err", err)
	}
	levelComplete.IsComplete = false
}

// AdvanceLevel swaps in the level after the current one and moves the
// player to its spawn.
func AdvanceLevel(e *ecs.ECS) error {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	levelData := components.Level.Get(levelEntry)
	next := levelData.Loader.Next(levelData.CurrentLevel.Name)

	if err := factory.ReplaceLevel(e, next); err != nil {
		return err
	}

	progress := GetOrCreateProgress(e)
	progress.LevelsCleared++
	levelData.DeathsAtEntry = progress.Deaths
	LoadBestClear(levelData)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		spawn := levelData.CurrentLevel.Spawn()
		components.Player.Get(playerEntry).Actor.EnterLevel(spawn)
		syncPlayerObject(playerEntry)
		SnapCamera(e, spawn)
	}

	log.Info("level loaded", "level", next, "cleared", progress.LevelsCleared)
	SaveGameProgress(levelData, progress)
	return nil
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, height/2-16, width, 32, cfg.UI.Overlay, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(width)/2, float64(height)/2)
	op.ColorScale.ScaleWithColor(cfg.UI.Text)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, cfg.LevelComplete.Title, fonts.Title.Face(), op)
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	entry, ok := components.LevelComplete.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.LevelComplete))
	}
	return components.LevelComplete.Get(entry)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or level is complete
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelCompleteCheck(system))
}
