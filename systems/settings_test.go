package systems

import (
	"testing"

	"github.com/automoto/playdead/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustVolumeStep(t *testing.T) {
	cases := []struct {
		name      string
		current   float64
		direction int
		want      float64
	}{
		{"up one step", 0.6, +1, 0.8},
		{"down one step", 0.6, -1, 0.4},
		{"clamps at the top", 1, +1, 1},
		{"clamps at the bottom", 0, -1, 0},
		{"snaps off-step values", 0.55, +1, 0.8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, adjustVolumeStep(c.current, c.direction), 1e-9)
		})
	}
}

func TestAdjustVolumeSavesAndUnmutes(t *testing.T) {
	useMemStore(t)
	s := &components.SettingsData{SFXVolume: 0.6, Muted: true}

	AdjustVolume(s, -1)
	assert.InDelta(t, 0.4, s.SFXVolume, 1e-9)
	assert.True(t, s.Muted, "turning down keeps mute")

	AdjustVolume(s, +1)
	assert.InDelta(t, 0.6, s.SFXVolume, 1e-9)
	assert.False(t, s.Muted)

	saved, err := LoadSettings()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, saved.SFXVolume, 1e-9)
	assert.False(t, saved.Muted)
}

func TestAdjustVolumeAtTheTopUnmutes(t *testing.T) {
	useMemStore(t)
	s := &components.SettingsData{SFXVolume: 1, Muted: true}

	AdjustVolume(s, +1)

	assert.Equal(t, 1.0, s.SFXVolume)
	assert.False(t, s.Muted)
}

func TestToggleMuteSaves(t *testing.T) {
	useMemStore(t)
	s := &components.SettingsData{SFXVolume: 0.6}

	ToggleMute(s)
	assert.True(t, s.Muted)

	saved, err := LoadSettings()
	require.NoError(t, err)
	assert.True(t, saved.Muted)
}

func TestPauseHintMentionsSettingsKeys(t *testing.T) {
	assert.Contains(t, getPauseHint(components.InputKeyboard), "Volume")
	assert.Contains(t, getPauseHint(components.InputXbox), "Start")
}
