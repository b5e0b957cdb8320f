package systems

import (
	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle, the restart action and the pause
// menu. This system should run AFTER UpdateInput but BEFORE other game
// systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}

	// Restart works from the pause overlay too.
	if GetAction(input, cfg.ActionRestart).JustPressed {
		restartLevel(ecs)
	}

	if !pause.IsPaused {
		return
	}
	if pause.Menu == nil {
		pause.Menu = newPauseMenu(ecs)
	}
	pause.Menu.SetValues(pauseValues(ecs))
	pause.Menu.Update()
}

func newPauseMenu(e *ecs.ECS) *ui.PauseUI {
	return ui.NewPauseUI(ui.PauseActions{
		OnResume: func() {
			GetOrCreatePause(e).IsPaused = false
		},
		OnRestart: func() {
			restartLevel(e)
		},
		OnVolume: func(direction int) {
			AdjustVolume(GetOrCreateSettings(e), direction)
		},
		OnToggleMute: func() {
			ToggleMute(GetOrCreateSettings(e))
		},
		OnToggleFullscreen: func() {
			ToggleFullscreen(GetOrCreateSettings(e))
		},
	})
}

func pauseValues(e *ecs.ECS) ui.PauseValues {
	settings := GetOrCreateSettings(e)
	return ui.PauseValues{
		Volume:     settings.SFXVolume,
		Muted:      settings.Muted,
		Fullscreen: settings.Fullscreen,
		Hint:       getPauseHint(getOrCreateInput(e).LastInputMethod),
	}
}

// restartLevel unpauses and respawns the player at once.
func restartLevel(e *ecs.ECS) {
	GetOrCreatePause(e).IsPaused = false
	if playerEntry, ok := components.Player.First(e.World); ok {
		if playerEntry.HasComponent(components.Death) {
			playerEntry.RemoveComponent(components.Death)
		}
		RespawnPlayer(e, playerEntry)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused || pause.Menu == nil {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.UI.Overlay, false)
	pause.Menu.Draw(screen)
}

// getPauseHint returns the appropriate hint for the pause overlay
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume   Share: Restart"
	case components.InputXbox:
		return "Start: Resume   Back: Restart"
	}
	return "Esc: Resume   R: Restart   -/+: Volume   M: Mute"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
