// Package physics owns the character rigid bodies: force and impulse
// accumulation, semi-implicit Euler integration and move-and-collide against
// the resolv level space, plus the hard maximum-distance joint that keeps the
// two characters within rope length of each other.
package physics

import (
	"math"

	"github.com/automoto/tethered/tags"
	"github.com/automoto/tethered/vmath"
	"github.com/solarlune/resolv"
)

// Kind selects whether a body is driven by the simulation.
type Kind int

const (
	Dynamic Kind = iota
	// Kinematic bodies ignore gravity, forces and impulses and never move on
	// their own. They behave as infinitely heavy for the distance joint.
	Kinematic
)

func (k Kind) String() string {
	if k == Kinematic {
		return "kinematic"
	}
	return "dynamic"
}

const (
	// maxMoveStep bounds a single collision sweep so fast bodies cannot skip
	// over thin geometry or resolv cells.
	maxMoveStep = 4.0

	// stepTolerance lets bodies climb onto lips smaller than this and keeps
	// float drift from turning a floor into a wall.
	stepTolerance = 0.5

	// rampSnapDistance is how far above a slope a body may be and still be
	// glued to it while moving horizontally.
	rampSnapDistance = 2.0
)

// Contacts records what the last Integrate collided with.
type Contacts struct {
	Floor   *resolv.Object
	Ceiling *resolv.Object
	Wall    *resolv.Object
	// WallSide is -1 for a wall on the left, 1 on the right.
	WallSide float64
}

// Body is a character rigid body. Its position is the centre of the resolv
// object, so the collision object is the single source of truth.
type Body struct {
	Object       *resolv.Object
	Velocity     vmath.Vec2
	Mass         float64
	GravityScale float64
	Rotation     float64 // radians, positive is clockwise on screen
	Contacts     Contacts

	kind          Kind
	previousKind  Kind
	force         vmath.Vec2
	bankedImpulse vmath.Vec2
	bankedFresh   bool
}

// NewBody creates a dynamic body centred on center and adds its collision
// object to space. space may be nil for bodies that never collide.
func NewBody(space *resolv.Space, center vmath.Vec2, w, h, mass float64, objectTags ...string) *Body {
	obj := resolv.NewObject(center.X-w/2, center.Y-h/2, w, h, objectTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	if space != nil {
		space.Add(obj)
	}

	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Object:       obj,
		Mass:         mass,
		GravityScale: 1,
	}
}

// Remove takes the body's collision object out of its space.
func (b *Body) Remove() {
	if b.Object.Space != nil {
		b.Object.Space.Remove(b.Object)
	}
}

func (b *Body) Position() vmath.Vec2 {
	return vmath.V(b.Object.X+b.Object.W/2, b.Object.Y+b.Object.H/2)
}

func (b *Body) Size() vmath.Vec2 {
	return vmath.V(b.Object.W, b.Object.H)
}

// Bottom is the y of the footprint.
func (b *Body) Bottom() float64 {
	return b.Object.Y + b.Object.H
}

// SetPosition moves the body centre to p without collision checks.
func (b *Body) SetPosition(p vmath.Vec2) {
	b.Object.X = p.X - b.Object.W/2
	b.Object.Y = p.Y - b.Object.H/2
	b.Object.Update()
}

// Teleport places the body at p with rotation rot and clears all motion.
func (b *Body) Teleport(p vmath.Vec2, rot float64) {
	b.SetPosition(p)
	b.Rotation = vmath.WrapAngle(rot)
	b.Velocity = vmath.Zero
	b.force = vmath.Zero
	b.bankedImpulse = vmath.Zero
	b.bankedFresh = false
	b.Contacts = Contacts{}
}

// Up is the body's local up axis.
func (b *Body) Up() vmath.Vec2 {
	return vmath.UpFromAngle(b.Rotation)
}

// Right is the body's local right axis.
func (b *Body) Right() vmath.Vec2 {
	return vmath.RightFromAngle(b.Rotation)
}

func (b *Body) Kind() Kind {
	return b.kind
}

func (b *Body) IsKinematic() bool {
	return b.kind == Kinematic
}

// SetKind switches the simulation mode. Entering Kinematic zeroes velocity
// and forgets pending forces. Returning to Dynamic releases the banked
// impulse, if it has not expired.
func (b *Body) SetKind(k Kind) {
	if k == b.kind {
		return
	}
	b.previousKind = b.kind
	b.kind = k

	switch k {
	case Kinematic:
		b.Velocity = vmath.Zero
		b.force = vmath.Zero
	case Dynamic:
		if !b.bankedImpulse.IsZero() {
			b.Velocity = b.Velocity.Add(b.bankedImpulse.Scale(1 / b.Mass))
			b.bankedImpulse = vmath.Zero
		}
		b.bankedFresh = false
	}
}

// RestoreKind switches back to the mode that was active before the last
// SetKind.
func (b *Body) RestoreKind() {
	b.SetKind(b.previousKind)
}

// AddForce accumulates a force for the next Integrate.
func (b *Body) AddForce(f vmath.Vec2) {
	if b.kind == Kinematic || !f.IsFinite() {
		return
	}
	b.force = b.force.Add(f)
}

// Force is the force accumulated since the last Integrate.
func (b *Body) Force() vmath.Vec2 {
	return b.force
}

// AddImpulse changes velocity by j/mass immediately. A kinematic body keeps
// only the latest impulse, and only until the end of the tick after it was
// delivered: it is released if the body turns dynamic by then and dropped
// otherwise.
func (b *Body) AddImpulse(j vmath.Vec2) {
	if !j.IsFinite() {
		return
	}
	if b.kind == Kinematic {
		b.bankedImpulse = j
		b.bankedFresh = true
		return
	}
	b.Velocity = b.Velocity.Add(j.Scale(1 / b.Mass))
}

// PendingImpulse is the impulse banked while kinematic.
func (b *Body) PendingImpulse() vmath.Vec2 {
	return b.bankedImpulse
}

// InverseMass is zero for kinematic bodies.
func (b *Body) InverseMass() float64 {
	if b.kind == Kinematic {
		return 0
	}
	return 1 / b.Mass
}

// Integrate advances a dynamic body by dt: forces and gravity update the
// velocity first, then the body moves horizontally and vertically against the
// level geometry.
func (b *Body) Integrate(dt float64, gravity vmath.Vec2) {
	b.Contacts = Contacts{}
	if b.kind == Kinematic {
		b.force = vmath.Zero
		if !b.bankedFresh {
			b.bankedImpulse = vmath.Zero
		}
		b.bankedFresh = false
		return
	}

	accel := gravity.Scale(b.GravityScale).Add(b.force.Scale(1 / b.Mass))
	b.force = vmath.Zero
	b.Velocity = b.Velocity.Add(accel.Scale(dt))
	if !b.Velocity.IsFinite() {
		b.Velocity = vmath.Zero
	}

	b.Move(b.Velocity.Scale(dt))
}

// Move displaces the body by delta, stopping at solids and following ramps.
// Velocity along a blocked axis is zeroed.
func (b *Body) Move(delta vmath.Vec2) {
	steps := int(math.Ceil(math.Max(math.Abs(delta.X), math.Abs(delta.Y)) / maxMoveStep))
	if steps < 1 {
		steps = 1
	}
	step := delta.Scale(1 / float64(steps))
	for i := 0; i < steps; i++ {
		b.moveX(step.X)
		b.moveY(step.Y)
	}
	b.Object.Update()
}

func (b *Body) moveX(dx float64) {
	if dx == 0 {
		return
	}
	obj := b.Object

	// Stay glued to ramps while walking up or down them. Rising bodies are
	// only pushed out when they would end up inside the slope.
	if ramp := b.rampUnder(dx, b.Velocity.Y >= 0); ramp != nil {
		obj.X += dx
		b.snapToRamp(ramp)
		return
	}

	check := obj.Check(dx+vmath.Sign(dx), 0, tags.ResolvSolid)
	if check == nil {
		obj.X += dx
		return
	}

	top, bottom := obj.Y, obj.Y+obj.H
	limit := dx
	var wall *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if bottom <= solid.Y+stepTolerance || top >= solid.Y+solid.H {
			continue
		}
		if dx > 0 {
			gap := solid.X - (obj.X + obj.W)
			if gap >= -stepTolerance && gap < limit {
				limit = math.Max(gap, 0)
				wall = solid
			}
		} else {
			gap := (solid.X + solid.W) - obj.X
			if gap <= stepTolerance && gap > limit {
				limit = math.Min(gap, 0)
				wall = solid
			}
		}
	}

	obj.X += limit
	if wall != nil {
		b.Contacts.Wall = wall
		b.Contacts.WallSide = vmath.Sign(dx)
		if vmath.Sign(b.Velocity.X) == vmath.Sign(dx) {
			b.Velocity.X = 0
		}
	}
}

func (b *Body) moveY(dy float64) {
	obj := b.Object

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	} else {
		checkDistance--
	}

	check := obj.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvRamp)
	if check == nil {
		obj.Y += dy
		return
	}

	if dy < 0 {
		b.moveUp(dy, check)
		return
	}
	b.moveDown(dy, check)
}

func (b *Body) moveUp(dy float64, check *resolv.Collision) {
	obj := b.Object
	left, right := obj.X, obj.X+obj.W

	limit := dy
	var ceiling *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if right <= solid.X || left >= solid.X+solid.W {
			continue
		}
		gap := (solid.Y + solid.H) - obj.Y
		if gap <= stepTolerance && gap > limit {
			limit = math.Min(gap, 0)
			ceiling = solid
		}
	}

	obj.Y += limit
	if ceiling != nil {
		b.Contacts.Ceiling = ceiling
		if b.Velocity.Y < 0 {
			b.Velocity.Y = 0
		}
	}
}

func (b *Body) moveDown(dy float64, check *resolv.Collision) {
	obj := b.Object
	left, right := obj.X, obj.X+obj.W
	bottom := obj.Y + obj.H
	centerX := obj.X + obj.W/2

	limit := dy
	var floor *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if right <= solid.X || left >= solid.X+solid.W {
			continue
		}
		gap := solid.Y - bottom
		if gap >= -stepTolerance && gap <= limit {
			limit = gap
			floor = solid
		}
	}

	for _, ramp := range check.ObjectsByTags(tags.ResolvRamp) {
		if centerX < ramp.X || centerX > ramp.X+ramp.W {
			continue
		}
		gap := SlopeSurfaceY(ramp, centerX) - bottom
		if gap >= -obj.H/2 && gap <= limit {
			limit = gap
			floor = ramp
		}
	}

	obj.Y += limit
	if floor != nil {
		b.Contacts.Floor = floor
		if b.Velocity.Y > 0 {
			b.Velocity.Y = 0
		}
	}
}

// rampUnder returns the ramp the body is standing on or walking onto after
// moving dx. With glue set the bottom may hover slightly above the surface,
// otherwise it has to be below it.
func (b *Body) rampUnder(dx float64, glue bool) *resolv.Object {
	obj := b.Object
	check := obj.Check(dx, rampSnapDistance+math.Abs(dx), tags.ResolvRamp)
	if check == nil {
		return nil
	}

	centerX := obj.X + obj.W/2 + dx
	bottom := obj.Y + obj.H
	for _, ramp := range check.ObjectsByTags(tags.ResolvRamp) {
		if centerX < ramp.X || centerX > ramp.X+ramp.W {
			continue
		}
		surfaceY := SlopeSurfaceY(ramp, centerX)
		if bottom > surfaceY+obj.H/2 {
			continue
		}
		// Slopes are 45 degrees, so a horizontal step of dx can change the
		// surface height by up to |dx|.
		if glue && bottom >= surfaceY-rampSnapDistance-math.Abs(dx) {
			return ramp
		}
		if bottom > surfaceY {
			return ramp
		}
	}
	return nil
}

func (b *Body) snapToRamp(ramp *resolv.Object) {
	obj := b.Object
	surfaceY := SlopeSurfaceY(ramp, obj.X+obj.W/2)
	obj.Y = surfaceY - obj.H
	b.Contacts.Floor = ramp
	if b.Velocity.Y > 0 {
		b.Velocity.Y = 0
	}
}
