package systems

import (
	"testing"

	"github.com/automoto/playdead/components"
	cfg "github.com/automoto/playdead/config"
	"github.com/automoto/playdead/shared/actor"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetAction(t *testing.T) {
	cases := []struct {
		name       string
		prev, curr bool
		want       components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"pressed", false, true, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"released", true, false, components.ActionState{JustReleased: true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := &components.InputData{}
			input.Previous[cfg.ActionJump] = c.prev
			input.Current[cfg.ActionJump] = c.curr
			assert.Equal(t, c.want, GetAction(input, cfg.ActionJump))
		})
	}
}

func TestUpAndWAlsoJump(t *testing.T) {
	jump := cfg.Input.Bindings[cfg.ActionJump].Keys
	up := cfg.Input.Bindings[cfg.ActionMoveUp].Keys

	for _, k := range []ebiten.Key{ebiten.KeyUp, ebiten.KeyW} {
		assert.Contains(t, jump, k)
		assert.Contains(t, up, k)
	}
}

func TestIntentFrom(t *testing.T) {
	input := &components.InputData{StickX: 0.7, StickY: -0.2}
	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveUp] = true
	input.Current[cfg.ActionJump] = true

	assert.Equal(t, actor.Intent{
		X: 0.7, Y: -0.2,
		Left:        true,
		Up:          true,
		Jump:        true,
		JumpPressed: true,
	}, IntentFrom(input))

	// Holding jump into the next frame is no longer a fresh press.
	input.Previous = input.Current
	intent := IntentFrom(input)
	assert.True(t, intent.Jump)
	assert.False(t, intent.JumpPressed)
}
