package actor

// Params holds every tunable constant used by the physics step. Velocities
// are in pixels per second, accelerations in pixels per second squared.
type Params struct {
	// Horizontal movement
	MoveAcceleration float64 `yaml:"move_acceleration"`
	MaxMoveSpeed     float64 `yaml:"max_move_speed"`
	GroundDragFactor float64 `yaml:"ground_drag_factor"`
	AirDragFactor    float64 `yaml:"air_drag_factor"`

	// Vertical movement
	MaxJumpTime         float64 `yaml:"max_jump_time"`
	JumpLaunchVelocity  float64 `yaml:"jump_launch_velocity"`
	GravityAcceleration float64 `yaml:"gravity_acceleration"`
	MaxFallSpeed        float64 `yaml:"max_fall_speed"`
	JumpControlPower    float64 `yaml:"jump_control_power"`

	// Input
	AnalogDeadzone float64 `yaml:"analog_deadzone"`

	// Ladders: max horizontal distance in pixels from a ladder column's
	// centre at which climbing snaps the actor onto the ladder.
	LadderAlignment int `yaml:"ladder_alignment"`

	// Fall damage threshold expressed in tile heights.
	SafeFallTiles float64 `yaml:"safe_fall_tiles"`

	// Tolerance for "was above the tile top last frame".
	GroundEpsilon float64 `yaml:"ground_epsilon"`

	// Speeds at or below this magnitude count as standing still for
	// animation selection.
	MotionThreshold float64 `yaml:"motion_threshold"`

	// Sprite frame size. The collision box is derived from it and anchored at
	// the bottom centre of the frame.
	FrameWidth  float64 `yaml:"frame_width"`
	FrameHeight float64 `yaml:"frame_height"`
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MoveAcceleration: 13000.0,
		MaxMoveSpeed:     1750.0,
		GroundDragFactor: 0.48,
		AirDragFactor:    0.58,

		MaxJumpTime:         0.35,
		JumpLaunchVelocity:  -3500.0,
		GravityAcceleration: 3400.0,
		MaxFallSpeed:        550.0,
		JumpControlPower:    0.14,

		AnalogDeadzone:  0.5,
		LadderAlignment: 12,
		SafeFallTiles:   6,
		GroundEpsilon:   0.001,
		MotionThreshold: 0.02,

		FrameWidth:  64,
		FrameHeight: 64,
	}
}
