package config

// SettingsConfig holds the player-facing options that persist between runs.
type SettingsConfig struct {
	SFXVolume  float64
	Muted      bool
	Fullscreen bool

	// VolumeSteps are the values the volume buttons step through.
	VolumeSteps []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		SFXVolume:   Audio.DefaultSFXVol,
		VolumeSteps: []float64{0, 0.2, 0.4, 0.6, 0.8, 1},
	}
}
