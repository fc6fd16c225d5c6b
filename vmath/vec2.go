package vmath

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector in screen space (y grows downward).
type Vec2 struct {
	X, Y float64
}

var (
	Zero  = Vec2{}
	Up    = Vec2{X: 0, Y: -1}
	Down  = Vec2{X: 0, Y: 1}
	Right = Vec2{X: 1, Y: 0}
	Left  = Vec2{X: -1, Y: 0}
)

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{X: a.X * s, Y: a.Y * s}
}

func (a Vec2) Neg() Vec2 {
	return Vec2{X: -a.X, Y: -a.Y}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product of a and b.
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func (a Vec2) LengthSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

func (a Vec2) Length() float64 {
	return math.Hypot(a.X, a.Y)
}

func (a Vec2) Distance(b Vec2) float64 {
	return b.Sub(a).Length()
}

// Normalized returns the unit vector of a, or Zero when a has no length.
func (a Vec2) Normalized() Vec2 {
	l := a.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Zero
	}
	return Vec2{X: a.X / l, Y: a.Y / l}
}

// Perp rotates a by 90 degrees: (x, y) -> (-y, x).
// On screen (y down) this is a clockwise quarter turn.
func (a Vec2) Perp() Vec2 {
	return Vec2{X: -a.Y, Y: a.X}
}

// ClampLength limits the magnitude of a to max, keeping its direction.
func (a Vec2) ClampLength(max float64) Vec2 {
	l := a.Length()
	if l <= max || l == 0 {
		return a
	}
	return a.Scale(max / l)
}

func (a Vec2) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func (a Vec2) IsFinite() bool {
	return !math.IsNaN(a.X) && !math.IsNaN(a.Y) && !math.IsInf(a.X, 0) && !math.IsInf(a.Y, 0)
}

// ApproxEqual compares component-wise within eps.
func (a Vec2) ApproxEqual(b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func (a Vec2) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", a.X, a.Y)
}

// LerpVec interpolates linearly between a and b.
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
