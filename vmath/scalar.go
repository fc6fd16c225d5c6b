package vmath

import "math"

// Clamp constrains value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Clamp01 constrains value to [0, 1].
func Clamp01(value float64) float64 {
	return Clamp(value, 0, 1)
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// WrapAngle maps an angle in radians into (-Pi, Pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// DeltaAngle is the shortest signed difference from a to b in radians.
func DeltaAngle(a, b float64) float64 {
	return WrapAngle(b - a)
}

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(a, b, t float64) float64 {
	return a + DeltaAngle(a, b)*Clamp01(t)
}

// ExpFactor converts a per-second rate into the interpolation factor for one
// step of dt, so that repeated application converges exponentially.
func ExpFactor(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// UpAngle returns the rotation that turns the upright axis (0,-1) onto dir.
// ok is false when dir has no length.
func UpAngle(dir Vec2) (angle float64, ok bool) {
	if dir.IsZero() || !dir.IsFinite() {
		return 0, false
	}
	return math.Atan2(dir.X, -dir.Y), true
}

// UpFromAngle is the local up axis of a body rotated by angle.
func UpFromAngle(angle float64) Vec2 {
	return Vec2{X: math.Sin(angle), Y: -math.Cos(angle)}
}

// RightFromAngle is the local right axis of a body rotated by angle.
func RightFromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}
