package world

import "math"

// Vec2 is a 2D vector in world units. X grows right, Y grows up.
type Vec2 struct {
	X float64
	Y float64
}

// Zero is the zero vector
var Zero = Vec2{}

// V is shorthand for constructing a Vec2
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the length of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalized returns v scaled to unit length, or the zero vector when v is
// too short to have a direction.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < 1e-9 {
		return Zero
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLen returns v shortened to at most max length
func (v Vec2) ClampLen(max float64) Vec2 {
	l := v.Len()
	if l <= max || l < 1e-9 {
		return v
	}
	return v.Scale(max / l)
}

// FromAngle returns the unit vector for an angle in degrees, measured
// counter-clockwise from +X.
func FromAngle(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Angle returns the angle of v in degrees, in (-180, 180]
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// MoveTowards moves current toward target by at most maxDelta without
// overshooting.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// Rect is an axis-aligned rectangle given by its min and max corners
type Rect struct {
	Min Vec2
	Max Vec2
}

// Contains reports whether p lies inside r (edges included)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Clamp returns p moved inside r, keeping margin distance from the edges
func (r Rect) Clamp(p Vec2, margin float64) Vec2 {
	return Vec2{
		X: math.Max(r.Min.X+margin, math.Min(r.Max.X-margin, p.X)),
		Y: math.Max(r.Min.Y+margin, math.Min(r.Max.Y-margin, p.Y)),
	}
}

// Width returns the horizontal size of r
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical size of r
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}
