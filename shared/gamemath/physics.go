package gamemath

// ApplyDrag scales speedX by a per-frame drag factor. Drag is reapplied every
// frame, so speed decays exponentially toward zero when no input is held.
func ApplyDrag(speedX, factor float64) float64 {
	return speedX * factor
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
