package systems

import (
	"math"

	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the mute, volume, fullscreen and debug keys. The
// pause menu changes the same values through the exported helpers below.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(settings)
	}
	if GetAction(input, cfg.ActionVolumeDown).JustPressed {
		AdjustVolume(settings, -1)
	}
	if GetAction(input, cfg.ActionVolumeUp).JustPressed {
		AdjustVolume(settings, +1)
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		ToggleFullscreen(settings)
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// ToggleMute flips mute and saves.
func ToggleMute(s *components.SettingsData) {
	s.Muted = !s.Muted
	settingsChanged(s)
}

// ToggleFullscreen flips fullscreen, applies it to the window and saves.
func ToggleFullscreen(s *components.SettingsData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
	settingsChanged(s)
}

// AdjustVolume moves the volume one step up or down the configured steps and
// saves. Turning the volume up also unmutes.
func AdjustVolume(s *components.SettingsData, direction int) {
	next := adjustVolumeStep(s.SFXVolume, direction)
	if next == s.SFXVolume && !(direction > 0 && s.Muted) {
		return
	}
	s.SFXVolume = next
	if direction > 0 {
		s.Muted = false
	}
	settingsChanged(s)
}

func settingsChanged(s *components.SettingsData) {
	log.Debug("settings changed", "volume", s.SFXVolume, "muted", s.Muted, "fullscreen", s.Fullscreen)
	SaveCurrentSettings(s)
}

// adjustVolumeStep snaps current to the nearest step and moves direction
// steps from there, clamped to the ends.
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return current
	}
	idx := findClosestStepIndex(current, steps) + direction
	idx = max(0, min(idx, len(steps)-1))
	return steps[idx]
}

func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := math.Inf(1)
	for i, step := range steps {
		if diff := math.Abs(value - step); diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// ApplySavedSettings copies loaded settings into config before any scene
// exists.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Settings.SFXVolume = saved.SFXVolume
	cfg.Settings.Muted = saved.Muted
	cfg.Settings.Fullscreen = saved.Fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// config on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			SFXVolume:  cfg.Settings.SFXVolume,
			Muted:      cfg.Settings.Muted,
			Fullscreen: cfg.Settings.Fullscreen,
			Debug:      cfg.Debug.Enabled,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// GetOrCreateProgress returns the singleton Progress component.
func GetOrCreateProgress(ecs *ecs.ECS) *components.ProgressData {
	entry, ok := components.Progress.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Progress))
	}
	return components.Progress.Get(entry)
}
