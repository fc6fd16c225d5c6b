// Package sense casts probe rays against the level geometry held in a resolv
// space. resolv only answers overlap queries, so rays are intersected with the
// outline of every solid and ramp directly.
package sense

import (
	"math"

	"github.com/automoto/tethered/physics"
	"github.com/automoto/tethered/tags"
	"github.com/automoto/tethered/vmath"
	"github.com/solarlune/resolv"
)

// Hit describes the nearest surface a ray touched.
type Hit struct {
	Point    vmath.Vec2
	Normal   vmath.Vec2
	Distance float64
	Object   *resolv.Object
}

// Jumpable reports whether the surface allows jumping.
func (h Hit) Jumpable() bool {
	return h.Object != nil && h.Object.HasTags(tags.ResolvJumpable)
}

// Anchorable reports whether a character may anchor on the surface.
func (h Hit) Anchorable() bool {
	return h.Object != nil && h.Object.HasTags(tags.ResolvAnchorable)
}

// World answers probe queries against a level space.
type World struct {
	Space *resolv.Space
}

func NewWorld(space *resolv.Space) *World {
	return &World{Space: space}
}

type edge struct {
	a, b   vmath.Vec2
	normal vmath.Vec2
}

// Ray returns the nearest front-facing surface along dir within maxDist.
// Objects in exclude are ignored, which lets a probe start inside its own
// collision box.
func (w *World) Ray(origin, dir vmath.Vec2, maxDist float64, exclude ...*resolv.Object) (Hit, bool) {
	dir = dir.Normalized()
	if w == nil || w.Space == nil || dir.IsZero() || maxDist <= 0 || !origin.IsFinite() {
		return Hit{}, false
	}

	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, obj := range w.Space.Objects() {
		if isExcluded(obj, exclude) {
			continue
		}
		if !obj.HasTags(tags.ResolvSolid) && !obj.HasTags(tags.ResolvRamp) {
			continue
		}

		for _, e := range outline(obj) {
			// Back faces are skipped so rays can leave a shape they start in.
			if dir.Dot(e.normal) >= 0 {
				continue
			}
			t, ok := raySegment(origin, dir, e.a, e.b)
			if !ok || t > maxDist || t >= best.Distance {
				continue
			}
			best = Hit{
				Point:    origin.Add(dir.Scale(t)),
				Normal:   e.normal,
				Distance: t,
				Object:   obj,
			}
			found = true
		}
	}
	return best, found
}

func isExcluded(obj *resolv.Object, exclude []*resolv.Object) bool {
	for _, e := range exclude {
		if obj == e {
			return true
		}
	}
	return false
}

func outline(obj *resolv.Object) []edge {
	topLeft := vmath.V(obj.X, obj.Y)
	topRight := vmath.V(obj.X+obj.W, obj.Y)
	bottomLeft := vmath.V(obj.X, obj.Y+obj.H)
	bottomRight := vmath.V(obj.X+obj.W, obj.Y+obj.H)
	bottom := edge{bottomLeft, bottomRight, vmath.Down}

	if obj.HasTags(tags.ResolvRamp) {
		if from, to, ok := physics.SlopeSurface(obj); ok {
			diagonal := edge{from, to, physics.SlopeNormal(obj)}
			if obj.HasTags(tags.Slope45UpRight) {
				return []edge{diagonal, bottom, {topRight, bottomRight, vmath.Right}}
			}
			return []edge{diagonal, bottom, {topLeft, bottomLeft, vmath.Left}}
		}
	}

	return []edge{
		{topLeft, topRight, vmath.Up},
		bottom,
		{topLeft, bottomLeft, vmath.Left},
		{topRight, bottomRight, vmath.Right},
	}
}

// raySegment returns the ray parameter where origin+t*dir crosses segment ab.
func raySegment(origin, dir, a, b vmath.Vec2) (float64, bool) {
	e := b.Sub(a)
	denom := dir.Cross(e)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	diff := a.Sub(origin)
	t := diff.Cross(e) / denom
	s := diff.Cross(dir) / denom
	if t < -1e-9 || s < -1e-9 || s > 1+1e-9 {
		return 0, false
	}
	return math.Max(t, 0), true
}
