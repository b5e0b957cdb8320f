package actor

import "math"

// Intent is one frame of device-agnostic input. X and Y are analog axes in
// [-1, 1] with Y pointing down the screen; the booleans are digital buttons.
type Intent struct {
	X, Y float64

	Left, Right bool
	Up, Down    bool

	// Jump is held this frame; JumpPressed is true only on the frame the
	// button went down.
	Jump        bool
	JumpPressed bool
}

// movement resolves the analog axes against the deadzone and lets digital
// horizontal input override the analog value. Left wins over right.
func (in Intent) movement(deadzone float64) (x, y float64) {
	x, y = in.X, in.Y
	if math.Abs(x) < deadzone {
		x = 0
	}
	if math.Abs(y) < deadzone {
		y = 0
	}

	if in.Left {
		x = -1
	} else if in.Right {
		x = 1
	}
	return x, y
}
