package character

import (
	"math"

	"github.com/automoto/tethered/vmath"
)

// footInset keeps the foot-height edge probe just above the footprint so it
// does not graze the top of the floor.
const footInset = 1.0

// updateEdgeAssist gives an airborne character a small hop when it pushes
// into a ledge that is only a little higher than its feet. It fires once and
// re-arms when the ledge condition clears.
func (c *Character) updateEdgeAssist() {
	dir := c.input.MoveHorizontal
	if c.grounded || c.anchored || c.swinging ||
		c.Body.Velocity.Y > c.Config.EdgeFallSpeedThreshold ||
		math.Abs(dir) < 0.1 || c.world == nil {
		c.edgeAssistArmed = true
		return
	}

	side := vmath.Sign(dir)
	half := c.Body.Size().Y / 2
	reach := 2 * c.Config.EdgeDetectionDistance
	_, wallAhead := c.world.Wall(c.Body, side, half-footInset, reach)
	_, blockedAbove := c.world.Wall(c.Body, side, half-c.Config.EdgeDetectionOffset, reach)

	if !wallAhead || blockedAbove {
		c.edgeAssistArmed = true
		return
	}
	if c.edgeAssistArmed {
		c.edgeAssistArmed = false
		c.Body.AddImpulse(vmath.Up.Scale(c.Config.EdgeUpImpulse))
	}
}

// updateHorizontalMovement drives horizontal speed toward the input target
// along the body's local right axis, with weaker control in the air.
func (c *Character) updateHorizontalMovement() {
	if c.anchored || c.swinging {
		return
	}

	accel := c.Config.Acceleration
	decel := c.Config.Deceleration
	if !c.grounded {
		accel *= c.Config.InAirAccelerationMultiplier
		decel *= c.Config.InAirDecelerationMultiplier
	}

	target := c.input.MoveHorizontal * c.Config.RunMaxSpeed
	diff := target - c.Body.Velocity.X
	rate := accel
	if math.Abs(target) < 0.01 {
		rate = decel
	}

	c.Body.AddForce(c.Body.Right().Scale(diff * rate))
}

func (c *Character) updateGravityScale() {
	if c.anchored {
		return
	}

	vy := c.Body.Velocity.Y
	switch {
	case c.grounded:
		c.Body.GravityScale = c.Config.GroundingGravityScale
	case c.swinging:
		c.Body.GravityScale = c.Config.SwingingGravityScale
	case vy > 0:
		c.Body.GravityScale = c.Config.FallingGravityScale
	case vy < 0:
		c.Body.GravityScale = c.Config.FloatUpGravityScale
	}
}
