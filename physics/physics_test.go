package physics

import (
	"math"
	"testing"

	"github.com/automoto/tethered/tags"
	"github.com/automoto/tethered/vmath"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

var gravity = vmath.V(0, 1800)

func addSolid(space *resolv.Space, x, y, w, h float64, extra ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, append([]string{tags.ResolvSolid}, extra...)...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(obj)
	return obj
}

func addRamp(space *resolv.Space, x, y, w, h float64, slope string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvRamp, slope)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(obj)
	return obj
}

func TestBodyFallsAndLands(t *testing.T) {
	space := resolv.NewSpace(320, 320, 16, 16)
	floor := addSolid(space, 0, 200, 320, 16)
	body := NewBody(space, vmath.V(100, 100), 16, 24, 1, tags.ResolvCharacter)

	for i := 0; i < 120; i++ {
		body.Integrate(dt, gravity)
	}

	assert.InDelta(t, 200, body.Bottom(), 1e-9)
	assert.Equal(t, 0.0, body.Velocity.Y)
	assert.Same(t, floor, body.Contacts.Floor)
	assert.InDelta(t, 100, body.Position().X, 1e-9)
}

func TestBodyStopsAtWall(t *testing.T) {
	space := resolv.NewSpace(320, 320, 16, 16)
	addSolid(space, 0, 200, 320, 16)
	wall := addSolid(space, 150, 0, 16, 200)
	body := NewBody(space, vmath.V(100, 188), 16, 24, 1)

	body.Velocity = vmath.V(300, 0)
	var hit *resolv.Object
	for i := 0; i < 60; i++ {
		body.Integrate(dt, gravity)
		if body.Contacts.Wall != nil {
			hit = body.Contacts.Wall
		}
	}

	assert.InDelta(t, 150, body.Object.X+body.Object.W, 1e-9)
	assert.Equal(t, 0.0, body.Velocity.X)
	assert.Same(t, wall, hit)
}

func TestBodyHitsCeiling(t *testing.T) {
	space := resolv.NewSpace(320, 320, 16, 16)
	ceiling := addSolid(space, 0, 64, 320, 16)
	body := NewBody(space, vmath.V(100, 120), 16, 24, 1)

	body.Velocity = vmath.V(0, -900)
	var hit *resolv.Object
	for i := 0; i < 10; i++ {
		body.Integrate(dt, vmath.Zero)
		if body.Contacts.Ceiling != nil {
			hit = body.Contacts.Ceiling
		}
	}

	assert.InDelta(t, 80, body.Object.Y, 1e-9)
	assert.Equal(t, 0.0, body.Velocity.Y)
	assert.Same(t, ceiling, hit)
}

func TestBodyFollowsRamp(t *testing.T) {
	space := resolv.NewSpace(320, 320, 16, 16)
	addSolid(space, 0, 200, 320, 16)
	ramp := addRamp(space, 160, 168, 32, 32, tags.Slope45UpRight)
	body := NewBody(space, vmath.V(120, 188), 16, 24, 1)

	for i := 0; i < 120; i++ {
		body.Velocity.X = 120
		body.Integrate(dt, gravity)
		if body.Position().X > 172 {
			break
		}
	}

	center := body.Position()
	require.Greater(t, center.X, 172.0)
	require.Less(t, center.X, 190.0)
	assert.InDelta(t, SlopeSurfaceY(ramp, center.X), body.Bottom(), 1e-9)
	assert.Same(t, ramp, body.Contacts.Floor)
}

func TestSlopeNormal(t *testing.T) {
	space := resolv.NewSpace(320, 320, 16, 16)
	upRight := addRamp(space, 0, 0, 32, 32, tags.Slope45UpRight)
	upLeft := addRamp(space, 64, 0, 32, 32, tags.Slope45UpLeft)
	flat := addSolid(space, 128, 0, 32, 32)

	s := math.Sqrt2 / 2
	assert.True(t, SlopeNormal(upRight).ApproxEqual(vmath.V(-s, -s), 1e-12))
	assert.True(t, SlopeNormal(upLeft).ApproxEqual(vmath.V(s, -s), 1e-12))
	assert.Equal(t, vmath.Up, SlopeNormal(flat))

	assert.Equal(t, 32.0, SlopeSurfaceY(upRight, 0))
	assert.Equal(t, 16.0, SlopeSurfaceY(upRight, 16))
	assert.Equal(t, 0.0, SlopeSurfaceY(upLeft, 64))
	assert.Equal(t, 0.0, SlopeSurfaceY(flat, 140))
}

func TestKinematicBody(t *testing.T) {
	space := resolv.NewSpace(320, 320, 16, 16)
	body := NewBody(space, vmath.V(100, 100), 16, 24, 2)
	body.Velocity = vmath.V(50, -20)

	body.SetKind(Kinematic)
	assert.True(t, body.IsKinematic())
	assert.Equal(t, vmath.Zero, body.Velocity)
	assert.Equal(t, 0.0, body.InverseMass())

	body.AddForce(vmath.V(1000, 0))
	body.AddImpulse(vmath.V(10, -4))
	body.Integrate(dt, gravity)
	assert.Equal(t, vmath.V(100, 100), body.Position())
	assert.Equal(t, vmath.Zero, body.Velocity)
	assert.Equal(t, vmath.V(10, -4), body.PendingImpulse())

	body.RestoreKind()
	assert.Equal(t, Dynamic, body.Kind())
	assert.Equal(t, vmath.V(5, -2), body.Velocity)
	assert.Equal(t, vmath.Zero, body.PendingImpulse())
}

func TestKinematicBodyKeepsOnlyRecentImpulse(t *testing.T) {
	space := resolv.NewSpace(320, 320, 16, 16)
	body := NewBody(space, vmath.V(100, 100), 16, 24, 2)
	body.SetKind(Kinematic)

	body.AddImpulse(vmath.V(10, -4))
	body.AddImpulse(vmath.V(6, 2))
	assert.Equal(t, vmath.V(6, 2), body.PendingImpulse(), "later impulse replaces the banked one")

	body.Integrate(dt, gravity)
	assert.Equal(t, vmath.V(6, 2), body.PendingImpulse(), "survives the tick it was delivered in")

	body.Integrate(dt, gravity)
	assert.Equal(t, vmath.Zero, body.PendingImpulse(), "expires a tick later")

	body.RestoreKind()
	assert.Equal(t, vmath.Zero, body.Velocity)
}

func TestForcesAndImpulses(t *testing.T) {
	body := NewBody(resolv.NewSpace(320, 320, 16, 16), vmath.V(100, 100), 16, 24, 2)

	body.AddImpulse(vmath.V(4, 0))
	assert.Equal(t, vmath.V(2, 0), body.Velocity)

	body.AddForce(vmath.V(120, 0))
	body.AddForce(vmath.V(0, -60))
	assert.Equal(t, vmath.V(120, -60), body.Force())

	body.Integrate(dt, vmath.Zero)
	assert.True(t, body.Velocity.ApproxEqual(vmath.V(2+60*dt, -30*dt), 1e-12))
	assert.Equal(t, vmath.Zero, body.Force())

	body.AddImpulse(vmath.V(math.NaN(), 0))
	assert.True(t, body.Velocity.IsFinite())
}

func TestTeleportClearsMotion(t *testing.T) {
	body := NewBody(resolv.NewSpace(320, 320, 16, 16), vmath.V(100, 100), 16, 24, 1)
	body.Velocity = vmath.V(3, 4)
	body.AddForce(vmath.V(1, 1))

	body.Teleport(vmath.V(40, 60), 3*math.Pi)

	assert.Equal(t, vmath.V(40, 60), body.Position())
	assert.Equal(t, vmath.Zero, body.Velocity)
	assert.Equal(t, vmath.Zero, body.Force())
	assert.InDelta(t, math.Pi, body.Rotation, 1e-12)
}

func TestEnforceMaxDistance(t *testing.T) {
	newPair := func() (*Body, *Body) {
		space := resolv.NewSpace(640, 320, 16, 16)
		a := NewBody(space, vmath.V(100, 100), 16, 24, 1)
		b := NewBody(space, vmath.V(200, 100), 16, 24, 1)
		return a, b
	}

	t.Run("slack", func(t *testing.T) {
		a, b := newPair()
		assert.False(t, EnforceMaxDistance(a, b, 150))
		assert.Equal(t, vmath.V(100, 100), a.Position())
		assert.Equal(t, vmath.V(200, 100), b.Position())
	})

	t.Run("equal masses split the correction", func(t *testing.T) {
		a, b := newPair()
		a.Velocity = vmath.V(-10, 0)
		b.Velocity = vmath.V(10, 0)

		assert.True(t, EnforceMaxDistance(a, b, 50))
		assert.InDelta(t, 125, a.Position().X, 1e-9)
		assert.InDelta(t, 175, b.Position().X, 1e-9)
		assert.InDelta(t, 50, a.Position().Distance(b.Position()), 1e-9)
		assert.True(t, a.Velocity.ApproxEqual(vmath.Zero, 1e-12))
		assert.True(t, b.Velocity.ApproxEqual(vmath.Zero, 1e-12))
	})

	t.Run("kinematic anchor holds", func(t *testing.T) {
		a, b := newPair()
		a.SetKind(Kinematic)
		b.Velocity = vmath.V(10, 5)

		assert.True(t, EnforceMaxDistance(a, b, 50))
		assert.Equal(t, vmath.V(100, 100), a.Position())
		assert.InDelta(t, 150, b.Position().X, 1e-9)
		// Only the separating part of the velocity is removed.
		assert.True(t, b.Velocity.ApproxEqual(vmath.V(0, 5), 1e-12))
	})

	t.Run("approaching bodies keep velocity", func(t *testing.T) {
		a, b := newPair()
		b.Velocity = vmath.V(-10, 0)

		assert.True(t, EnforceMaxDistance(a, b, 50))
		assert.Equal(t, vmath.V(-10, 0), b.Velocity)
	})

	t.Run("blocked body hands its share over", func(t *testing.T) {
		a, b := newPair()
		wall := resolv.NewObject(108, 60, 16, 80, tags.ResolvSolid)
		wall.SetShape(resolv.NewRectangle(0, 0, 16, 80))
		a.Object.Space.Add(wall)

		assert.True(t, EnforceMaxDistance(a, b, 50))
		assert.InDelta(t, 100, a.Position().X, 1e-9)
		assert.InDelta(t, 50, a.Position().Distance(b.Position()), 1e-9)
	})

	t.Run("both kinematic", func(t *testing.T) {
		a, b := newPair()
		a.SetKind(Kinematic)
		b.SetKind(Kinematic)

		assert.True(t, EnforceMaxDistance(a, b, 50))
		assert.Equal(t, vmath.V(200, 100), b.Position())
	})
}
