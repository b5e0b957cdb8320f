package systems

import (
	"io/fs"
	"os"
	"sync"

	"github.com/automoto/playdead/assets"
	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/shared/playstate"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across level changes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)

		var dir fs.FS
		if cfg.C.SoundDir != "" {
			dir = os.DirFS(cfg.C.SoundDir)
		}
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, dir)
	})
}

// PreloadAllSFX decodes every cue at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Warn("could not preload sound", "sound", id, "err", err)
		}
	}
}

// PlaySFX queues a cue for the audio system.
func PlaySFX(ecs *ecs.ECS, id playstate.SoundID) {
	if id == playstate.SoundNone {
		return
	}
	audioData := getOrCreateAudio(ecs)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// UpdateAudio plays the cues queued this frame.
func UpdateAudio(e *ecs.ECS) {
	audioData := getOrCreateAudio(e)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	settings := GetOrCreateSettings(e)
	for _, soundID := range audioData.PendingSFX {
		log.Debug("sound cue", "sound", soundID)
		if settings.Muted || settings.SFXVolume <= 0 {
			continue
		}
		playSFX(soundID, settings.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID playstate.SoundID, volume float64) {
	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Warn("could not play sound", "sound", soundID, "err", err)
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

func getOrCreateAudio(ecs *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
