package sense

import (
	"github.com/automoto/tethered/physics"
	"github.com/automoto/tethered/vmath"
)

// GroundProbe configures the three downward rays under a body.
type GroundProbe struct {
	CheckDistance float64 // how far below the footprint still counts as ground
	SidePadding   float64 // inset of the side rays from the body edges
}

// Ground casts three rays straight down from the body's vertical centre: one
// through the middle and one near each side. The middle hit wins when there
// is one, otherwise the nearer side hit.
func (w *World) Ground(body *physics.Body, probe GroundProbe) (Hit, bool) {
	center := body.Position()
	half := body.Size().Scale(0.5)
	dist := half.Y + probe.CheckDistance

	if hit, ok := w.Ray(center, vmath.Down, dist, body.Object); ok {
		return hit, true
	}

	inset := half.X - probe.SidePadding
	left, okLeft := w.Ray(center.Add(vmath.V(-inset, 0)), vmath.Down, dist, body.Object)
	right, okRight := w.Ray(center.Add(vmath.V(inset, 0)), vmath.Down, dist, body.Object)
	switch {
	case okLeft && okRight:
		if right.Distance < left.Distance {
			return right, true
		}
		return left, true
	case okLeft:
		return left, true
	case okRight:
		return right, true
	}
	return Hit{}, false
}

// Ceiling casts a ray straight up from the body centre.
func (w *World) Ceiling(body *physics.Body, checkDistance float64) (Hit, bool) {
	half := body.Size().Y / 2
	return w.Ray(body.Position(), vmath.Up, half+checkDistance, body.Object)
}

// Wall casts a horizontal ray towards side (-1 or 1) at the given height
// offset from the body centre (negative is up).
func (w *World) Wall(body *physics.Body, side, offsetY, checkDistance float64) (Hit, bool) {
	if side == 0 {
		return Hit{}, false
	}
	half := body.Size().X / 2
	origin := body.Position().Add(vmath.V(0, offsetY))
	return w.Ray(origin, vmath.V(side, 0), half+checkDistance, body.Object)
}

// Surface casts along an arbitrary direction from the body centre. The
// rotation alignment uses it to read the slope ahead of the character.
func (w *World) Surface(body *physics.Body, dir vmath.Vec2, dist float64) (Hit, bool) {
	return w.Ray(body.Position(), dir, dist, body.Object)
}
