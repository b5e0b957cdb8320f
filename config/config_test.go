package config

import (
	"testing"

	"github.com/automoto/playdead/shared/playstate"
	"github.com/stretchr/testify/assert"
)

func TestEveryAnimationStateHasADefinition(t *testing.T) {
	defs := CharacterAnimations["player"]
	for id := range playstate.StateToFileName {
		def, ok := defs[id]
		if assert.True(t, ok, "missing animation for %s", id) {
			assert.LessOrEqual(t, def.First, def.Last)
			assert.Positive(t, def.Step)
		}
	}
}

func TestEveryCueHasAFallbackTone(t *testing.T) {
	for id := range Sound.SFXFiles {
		tone, ok := Sound.Tones[id]
		if assert.True(t, ok, "sound %d has no tone", id) {
			assert.Positive(t, tone.Freq)
			assert.Positive(t, tone.Seconds)
		}
	}
}

func TestEverySoundHasAFile(t *testing.T) {
	for id := playstate.SoundJump; id <= playstate.SoundExit; id++ {
		assert.Contains(t, Sound.SFXFiles, id, "sound %s has no file", id)
	}
	assert.Len(t, Sound.SFXFiles, int(playstate.SoundExit))
	assert.Equal(t, "killed", playstate.SoundKilled.String())
	assert.Equal(t, "exit", playstate.SoundExit.String())
}

func TestEveryActionIsBound(t *testing.T) {
	for id := ActionMoveLeft; id < ActionCount; id++ {
		b, ok := Input.Bindings[id]
		assert.True(t, ok, "action %d unbound", id)
		assert.NotEmpty(t, b.Keys)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, ValidateTuning(Physics))
	assert.Equal(t, Audio.DefaultSFXVol, Settings.SFXVolume)
}
