// Package render holds the presentation-side state of a match: smoothed rope
// points, character poses, the camera and the respawn fade. Nothing here
// feeds back into the simulation.
package render

import (
	"github.com/automoto/tethered/vmath"
	"github.com/charmbracelet/harmonica"
)

// RopeSmoother eases every drawn rope point toward its simulated link with a
// critically damped spring, hiding the jitter of the constraint solver. The
// two endpoints are never smoothed so the rope stays attached to the
// characters.
type RopeSmoother struct {
	spring   harmonica.Spring
	points   []vmath.Vec2
	velocity []vmath.Vec2
}

// NewRopeSmoother returns a smoother stepped at tickRate with the given
// harmonica angular frequency and damping ratio.
func NewRopeSmoother(tickRate int, frequency, damping float64) *RopeSmoother {
	return &RopeSmoother{
		spring: harmonica.NewSpring(harmonica.FPS(tickRate), frequency, damping),
	}
}

// Update advances every point one tick toward targets and returns the
// smoothed points. A change in link count snaps to the targets.
func (r *RopeSmoother) Update(targets []vmath.Vec2) []vmath.Vec2 {
	if len(targets) != len(r.points) {
		r.Snap(targets)
		return r.points
	}

	last := len(targets) - 1
	for i, target := range targets {
		if i == 0 || i == last {
			r.points[i] = target
			r.velocity[i] = vmath.Zero
			continue
		}
		p, v := r.points[i], r.velocity[i]
		p.X, v.X = r.spring.Update(p.X, v.X, target.X)
		p.Y, v.Y = r.spring.Update(p.Y, v.Y, target.Y)
		r.points[i], r.velocity[i] = p, v
	}
	return r.points
}

// Snap places every point on its target with no velocity, e.g. after a
// respawn.
func (r *RopeSmoother) Snap(targets []vmath.Vec2) {
	r.points = append(r.points[:0], targets...)
	if cap(r.velocity) >= len(targets) {
		r.velocity = r.velocity[:len(targets)]
	} else {
		r.velocity = make([]vmath.Vec2, len(targets))
	}
	for i := range r.velocity {
		r.velocity[i] = vmath.Zero
	}
}

// Points are the current smoothed positions.
func (r *RopeSmoother) Points() []vmath.Vec2 {
	return r.points
}
