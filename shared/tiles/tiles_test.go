package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCollision(t *testing.T) {
	cases := []struct {
		in   string
		want Collision
		ok   bool
	}{
		{"impassable", Impassable, true},
		{" Platform ", Platform, true},
		{"ladder", Ladder, true},
		{"water", Water, true},
		{"death", Death, true},
		{"spike", Death, true},
		{"solid", Impassable, true},
		{"passable", Passable, true},
		{"lava", Passable, false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, ok := ParseCollision(c.in)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestSensor(t *testing.T) {
	assert.True(t, Ladder.Sensor())
	assert.True(t, Water.Sensor())
	assert.True(t, Death.Sensor())
	assert.False(t, Impassable.Sensor())
	assert.False(t, Platform.Sensor())
	assert.Equal(t, "water", Water.String())
}
