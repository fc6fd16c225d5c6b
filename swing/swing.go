// Package swing holds the force law for a character hanging on the rope
// below an anchored partner. Everything here is a pure function of its
// arguments; the caller applies the results to its own body.
package swing

import (
	"math"

	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/vmath"
)

// Tangent is the unit direction of travel along the swing arc for a rope
// vector pointing from the anchor to the swinger. With y growing downward a
// character hanging straight below its anchor gets (1, 0), so positive
// tangential speed is movement to the right. ok is false for a zero rope.
func Tangent(rope vmath.Vec2) (vmath.Vec2, bool) {
	t := rope.Perp().Neg().Normalized()
	return t, !t.IsZero()
}

// State is what the force law reads from the swinging character.
type State struct {
	Velocity vmath.Vec2
	// Rope points from the anchored peer to the swinger.
	Rope vmath.Vec2
	// Down is the character's local down axis, which follows the rope while
	// swinging.
	Down vmath.Vec2
	// Input is the normalized horizontal input in [-1, 1].
	Input float64
	// LastTangent is used when Rope has no length.
	LastTangent vmath.Vec2
}

// Result is the force to apply this tick plus the values it was derived from.
type Result struct {
	Force           vmath.Vec2
	DownForce       vmath.Vec2
	DriveForce      vmath.Vec2
	Tangent         vmath.Vec2
	TangentialSpeed float64
	Momentum        float64
}

// Force evaluates the swing force law. The down force along the local down
// axis grows with tangential speed to keep the pendulum taut. Horizontal input
// outside the dead zone drives along the tangent, with a bonus when it pushes
// in the direction the character is already swinging.
func Force(cfg config.SwingConfig, s State) Result {
	tangent, ok := Tangent(s.Rope)
	if !ok {
		tangent = s.LastTangent.Normalized()
	}

	speed := s.Velocity.Dot(tangent)
	res := Result{
		Tangent:         tangent,
		TangentialSpeed: speed,
		Momentum:        1,
	}

	down := cfg.BaseDownForce + math.Abs(speed)*cfg.VelocityDownForceMultiplier
	res.DownForce = s.Down.Normalized().Scale(down)
	res.Force = res.DownForce

	if math.Abs(s.Input) < cfg.InputDeadZone || tangent.IsZero() {
		return res
	}

	if vmath.Sign(s.Input) == vmath.Sign(speed) && cfg.MaxSpeed > 0 {
		res.Momentum = 1 + math.Abs(speed)/cfg.MaxSpeed*cfg.MomentumBonus
	}

	res.DriveForce = tangent.Scale(s.Input * cfg.Force * res.Momentum)
	res.Force = res.Force.Add(res.DriveForce)
	return res
}

// ReleaseImpulse is the whip impulse both characters receive when a swing
// ends: along the rope tangent, scaled by the swinger's tangential speed at
// the moment of release.
func ReleaseImpulse(cfg config.SwingConfig, velocity, rope, lastTangent vmath.Vec2) (impulse, tangent vmath.Vec2) {
	tangent, ok := Tangent(rope)
	if !ok {
		tangent = lastTangent.Normalized()
	}
	speed := velocity.Dot(tangent)
	return tangent.Scale(speed * cfg.EndImpulseMultiplier), tangent
}

// Inverted reports whether the swinger is above its anchor, where the tangent
// points against the screen direction of the input.
func Inverted(rope vmath.Vec2) bool {
	return rope.Y < 0
}
