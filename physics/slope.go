package physics

import (
	"github.com/automoto/tethered/tags"
	"github.com/automoto/tethered/vmath"
	"github.com/solarlune/resolv"
)

// SlopeSurfaceY calculates the slope surface Y at world x. Objects without a
// slope tag are treated as flat and return their top edge.
func SlopeSurfaceY(ramp *resolv.Object, x float64) float64 {
	relativeX := vmath.Clamp(x-ramp.X, 0, ramp.W)
	slope := relativeX / ramp.W

	switch {
	case ramp.HasTags(tags.Slope45UpRight):
		// Surface rises from left (Y+H) to right (Y)
		return ramp.Y + ramp.H*(1-slope)
	case ramp.HasTags(tags.Slope45UpLeft):
		// Surface falls from left (Y) to right (Y+H)
		return ramp.Y + ramp.H*slope
	default:
		return ramp.Y
	}
}

// SlopeSurface returns the walkable diagonal of a ramp from its left end to
// its right end. ok is false for objects without a slope tag.
func SlopeSurface(ramp *resolv.Object) (from, to vmath.Vec2, ok bool) {
	switch {
	case ramp.HasTags(tags.Slope45UpRight):
		return vmath.V(ramp.X, ramp.Y+ramp.H), vmath.V(ramp.X+ramp.W, ramp.Y), true
	case ramp.HasTags(tags.Slope45UpLeft):
		return vmath.V(ramp.X, ramp.Y), vmath.V(ramp.X+ramp.W, ramp.Y+ramp.H), true
	default:
		return vmath.Zero, vmath.Zero, false
	}
}

// SlopeNormal is the outward surface normal of a ramp's diagonal.
func SlopeNormal(ramp *resolv.Object) vmath.Vec2 {
	from, to, ok := SlopeSurface(ramp)
	if !ok {
		return vmath.Up
	}
	// The diagonal runs left to right, so rotating it a quarter turn
	// counter-clockwise on screen points away from the filled side.
	d := to.Sub(from)
	return vmath.V(d.Y, -d.X).Normalized()
}
