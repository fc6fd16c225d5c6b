// Package tether simulates the rope between the two characters as a chain of
// Verlet point masses relaxed by iterative maximum-distance constraints.
//
// The chain is purely kinematic: it never collides with the world and never
// pushes the characters. Its two end links are pinned to positions supplied
// by the caller every step. The authoritative separation limit between the
// characters lives in the physics package and is kept in sync with
// MaxLength by the orchestrator.
package tether

import (
	"math"

	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/vmath"
	"github.com/pkg/errors"
)

// DefaultConstraintIterations is the relaxation pass count used when a
// caller passes a non-positive value. A single pass under-corrects and makes
// the rope visibly stretchy.
const DefaultConstraintIterations = 50

// Link is one point mass of the chain.
type Link struct {
	Position         vmath.Vec2
	PreviousPosition vmath.Vec2
}

// Velocity is the implicit per-step displacement of the link.
func (l Link) Velocity() vmath.Vec2 {
	return l.Position.Sub(l.PreviousPosition)
}

// Tether owns the ordered link chain.
type Tether struct {
	links            []Link
	segmentCount     int
	maxLength        float64
	lengthMultiplier float64
	segmentLength    float64
}

// New returns an uninitialized tether.
func New() *Tether {
	return &Tether{lengthMultiplier: 1}
}

// Initialize builds segmentCount segments (segmentCount+1 links) evenly spaced
// on the straight line from a to b, all at rest. It may be called again at any
// time to rebuild the chain, e.g. after a respawn.
func (t *Tether) Initialize(a, b vmath.Vec2, segmentCount int, maxLength float64) error {
	if segmentCount < 2 {
		return errors.Wrapf(config.ErrInvalidConfiguration, "tether segment count %d < 2", segmentCount)
	}
	if maxLength <= 0 || math.IsNaN(maxLength) || math.IsInf(maxLength, 0) {
		return errors.Wrapf(config.ErrInvalidConfiguration, "tether max length %v must be positive", maxLength)
	}

	t.segmentCount = segmentCount
	t.maxLength = maxLength
	t.updateSegmentLength()

	n := segmentCount + 1
	if cap(t.links) >= n {
		t.links = t.links[:n]
	} else {
		t.links = make([]Link, n)
	}
	for i := range t.links {
		p := vmath.LerpVec(a, b, float64(i)/float64(n-1))
		t.links[i] = Link{Position: p, PreviousPosition: p}
	}
	return nil
}

// Teardown drops the chain. Step panics until Initialize is called again.
func (t *Tether) Teardown() {
	t.links = t.links[:0]
}

func (t *Tether) Initialized() bool {
	return len(t.links) >= 3
}

// SetMaxLength changes the rest length of every segment.
func (t *Tether) SetMaxLength(length float64) error {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return errors.Wrapf(config.ErrInvalidConfiguration, "tether max length %v must be positive", length)
	}
	t.maxLength = length
	t.updateSegmentLength()
	return nil
}

// SetLengthMultiplier scales the visual chain's rest length without touching
// MaxLength. Values <= 0 are ignored.
func (t *Tether) SetLengthMultiplier(m float64) {
	if m <= 0 {
		return
	}
	t.lengthMultiplier = m
	t.updateSegmentLength()
}

func (t *Tether) updateSegmentLength() {
	if t.segmentCount == 0 {
		t.segmentLength = 0
		return
	}
	t.segmentLength = t.maxLength / float64(t.segmentCount) * t.lengthMultiplier
}

func (t *Tether) MaxLength() float64 {
	return t.maxLength
}

// SegmentLength is the target distance between adjacent links.
func (t *Tether) SegmentLength() float64 {
	return t.segmentLength
}

// Len returns the number of links.
func (t *Tether) Len() int {
	return len(t.links)
}

// Link returns a copy of link i.
func (t *Tether) Link(i int) Link {
	return t.links[i]
}

// Links returns a copy of the chain.
func (t *Tether) Links() []Link {
	out := make([]Link, len(t.links))
	copy(out, t.links)
	return out
}

// Positions appends every link position to dst and returns it.
func (t *Tether) Positions(dst []vmath.Vec2) []vmath.Vec2 {
	for _, l := range t.links {
		dst = append(dst, l.Position)
	}
	return dst
}

// EndpointVector is last link minus first link.
func (t *Tether) EndpointVector() vmath.Vec2 {
	if len(t.links) == 0 {
		return vmath.Zero
	}
	return t.links[len(t.links)-1].Position.Sub(t.links[0].Position)
}

// Step advances the chain by one fixed tick: Verlet integration of the
// interior links, then iterations relaxation passes, then a final hard pin of
// both ends to pinA and pinB.
//
// With 50 iterations a slack rope keeps every segment within about 1% of its
// rest length. A rope held at full length while an end sweeps several pixels
// per tick lags behind and can stretch a segment by up to about 5%.
//
// Calling Step before Initialize is a contract violation and panics.
func (t *Tether) Step(dt float64, pinA, pinB, gravity vmath.Vec2, damping float64, iterations int) {
	if !t.Initialized() {
		panic("tether: Step called before Initialize")
	}
	if iterations < 1 {
		iterations = DefaultConstraintIterations
	}
	damping = vmath.Clamp01(damping)

	t.integrate(dt, gravity, damping)
	for i := 0; i < iterations; i++ {
		t.relax(pinA, pinB)
	}
	t.pin(pinA, pinB)
}

func (t *Tether) integrate(dt float64, gravity vmath.Vec2, damping float64) {
	accel := gravity.Scale(dt * dt)
	last := len(t.links) - 1
	for i := 1; i < last; i++ {
		l := &t.links[i]
		velocity := l.Position.Sub(l.PreviousPosition).Scale(damping)
		l.PreviousPosition = l.Position
		l.Position = l.Position.Add(velocity).Add(accel)
	}
}

func (t *Tether) pin(pinA, pinB vmath.Vec2) {
	t.links[0].Position = pinA
	t.links[len(t.links)-1].Position = pinB
}

// relax runs one Gauss-Seidel pass over the segments. Only stretched segments
// are corrected, so the rope can go slack. The link next to a pinned end takes
// the whole correction so the pins stay exact.
func (t *Tether) relax(pinA, pinB vmath.Vec2) {
	t.pin(pinA, pinB)

	last := len(t.links) - 1
	target := t.segmentLength
	for i := 0; i < last; i++ {
		a := &t.links[i]
		b := &t.links[i+1]

		delta := b.Position.Sub(a.Position)
		dist := delta.Length()
		if dist <= target || dist == 0 {
			continue
		}

		change := delta.Scale((target - dist) / dist)
		switch {
		case i == 0:
			b.Position = b.Position.Add(change)
		case i+1 == last:
			a.Position = a.Position.Sub(change)
		default:
			half := change.Scale(0.5)
			a.Position = a.Position.Sub(half)
			b.Position = b.Position.Add(half)
		}
	}
}
