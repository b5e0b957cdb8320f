package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/playdead/shared/actor"
	"gopkg.in/yaml.v3"
)

// ParseTuning overlays a YAML document onto base. Keys missing from the
// document keep their value from base.
func ParseTuning(data []byte, base actor.Params) (actor.Params, error) {
	params := base
	if err := yaml.Unmarshal(data, &params); err != nil {
		return base, err
	}
	if err := ValidateTuning(params); err != nil {
		return base, err
	}
	return params, nil
}

// LoadTuning reads a tuning file and overlays it onto base.
func LoadTuning(path string, base actor.Params) (actor.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	params, err := ParseTuning(data, base)
	if err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return params, nil
}

// ValidateTuning rejects values the physics step cannot work with.
func ValidateTuning(p actor.Params) error {
	var errs []error
	positive := []struct {
		name  string
		value float64
	}{
		{"move_acceleration", p.MoveAcceleration},
		{"max_move_speed", p.MaxMoveSpeed},
		{"max_jump_time", p.MaxJumpTime},
		{"jump_control_power", p.JumpControlPower},
		{"ground_epsilon", p.GroundEpsilon},
		{"gravity_acceleration", p.GravityAcceleration},
		{"max_fall_speed", p.MaxFallSpeed},
		{"safe_fall_tiles", p.SafeFallTiles},
		{"frame_width", p.FrameWidth},
		{"frame_height", p.FrameHeight},
	}
	for _, f := range positive {
		if f.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", f.name, f.value))
		}
	}
	if p.JumpLaunchVelocity >= 0 {
		errs = append(errs, fmt.Errorf("jump_launch_velocity must be negative, got %v", p.JumpLaunchVelocity))
	}
	drag := []struct {
		name  string
		value float64
	}{
		{"ground_drag_factor", p.GroundDragFactor},
		{"air_drag_factor", p.AirDragFactor},
	}
	for _, f := range drag {
		if f.value < 0 || f.value > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", f.name, f.value))
		}
	}
	if p.MotionThreshold < 0 {
		errs = append(errs, fmt.Errorf("motion_threshold must not be negative, got %v", p.MotionThreshold))
	}
	if p.AnalogDeadzone < 0 || p.AnalogDeadzone >= 1 {
		errs = append(errs, fmt.Errorf("analog_deadzone must be in [0,1), got %v", p.AnalogDeadzone))
	}
	if p.LadderAlignment < 0 {
		errs = append(errs, fmt.Errorf("ladder_alignment must not be negative, got %d", p.LadderAlignment))
	}
	return errors.Join(errs...)
}
