package config

import "github.com/automoto/playdead/shared/playstate"

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes the synthesized fallback for a cue: a sweep from Freq to
// EndFreq over Seconds.
type Tone struct {
	Freq    float64
	EndFreq float64
	Seconds float64
}

// SoundConfig maps sound IDs to file names under C.SoundDir and to their
// synthesized fallbacks.
type SoundConfig struct {
	SFXFiles          map[SoundID]string
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		SFXFiles: map[SoundID]string{
			playstate.SoundJump:        "jump.wav",
			playstate.SoundKilled:      "killed.wav",
			playstate.SoundKilledWater: "drown.ogg",
			playstate.SoundKilledSpike: "spiked.wav",
			playstate.SoundKilledFall:  "splat.wav",
			playstate.SoundCheckpoint:  "checkpoint.wav",
			playstate.SoundExit:        "exit.wav",
		},
		Tones: map[SoundID]Tone{
			playstate.SoundJump:        {Freq: 330, EndFreq: 660, Seconds: 0.12},
			playstate.SoundKilled:      {Freq: 220, EndFreq: 110, Seconds: 0.4},
			playstate.SoundKilledWater: {Freq: 180, EndFreq: 60, Seconds: 0.6},
			playstate.SoundKilledSpike: {Freq: 880, EndFreq: 110, Seconds: 0.3},
			playstate.SoundKilledFall:  {Freq: 120, EndFreq: 40, Seconds: 0.35},
			playstate.SoundCheckpoint:  {Freq: 523, EndFreq: 784, Seconds: 0.2},
			playstate.SoundExit:        {Freq: 392, EndFreq: 1046, Seconds: 0.5},
		},
		VolumeMultipliers: map[SoundID]float64{
			playstate.SoundJump: 0.7,
		},
	}
}
