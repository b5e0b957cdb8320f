package gamemath

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Offset returns r translated by d.
func (r Rect) Offset(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Intersects reports whether r and o overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left() < o.Right() &&
		o.Left() < r.Right() &&
		r.Top() < o.Bottom() &&
		o.Top() < r.Bottom()
}

// IntersectionDepth returns the signed per-axis translation that would move a
// out of b. The sign points from b toward a. A zero vector means the
// rectangles do not overlap; zero-area rectangles never overlap.
func IntersectionDepth(a, b Rect) Vec2 {
	if a.Empty() || b.Empty() {
		return Vec2{}
	}

	halfWidthA, halfHeightA := a.W/2, a.H/2
	halfWidthB, halfHeightB := b.W/2, b.H/2

	centerA := a.Center()
	centerB := b.Center()

	distanceX := centerA.X - centerB.X
	distanceY := centerA.Y - centerB.Y
	minDistanceX := halfWidthA + halfWidthB
	minDistanceY := halfHeightA + halfHeightB

	if math.Abs(distanceX) >= minDistanceX || math.Abs(distanceY) >= minDistanceY {
		return Vec2{}
	}

	depthX := -minDistanceX - distanceX
	if distanceX > 0 {
		depthX = minDistanceX - distanceX
	}
	depthY := -minDistanceY - distanceY
	if distanceY > 0 {
		depthY = minDistanceY - distanceY
	}
	return Vec2{X: depthX, Y: depthY}
}
