package character

import (
	"math"

	"github.com/automoto/tethered/sense"
)

// Sense advances the character clock by dt and probes the level: ground under
// the footprint, ceiling above and walls on both sides. Landing re-arms coyote
// time and the jump buffer.
func (c *Character) Sense(world *sense.World, dt float64) {
	c.time += dt
	c.world = world

	probe := sense.GroundProbe{
		CheckDistance: c.Config.GroundCheckDistance,
		SidePadding:   c.Config.GroundCheckSidePadding,
	}
	hit, groundIsHit := world.Ground(c.Body, probe)
	jumpable := groundIsHit && hit.Jumpable()
	anchorable := groundIsHit && hit.Anchorable()

	switch {
	case !c.grounded && groundIsHit:
		c.grounded = true
		c.coyoteUsable = true
		c.bufferedJumpUsable = true
		c.jumpRising = false
		c.onJumpable = jumpable
		c.onAnchorable = anchorable
		if c.Events.GroundedChanged != nil {
			c.Events.GroundedChanged(true, math.Abs(c.Body.Velocity.Y))
		}
	case c.grounded && !groundIsHit:
		c.grounded = false
		c.leftGroundAt = c.time
		c.wasOnJumpable = c.onJumpable
		c.onJumpable = false
		c.onAnchorable = false
		if c.Events.GroundedChanged != nil {
			c.Events.GroundedChanged(false, 0)
		}
	case c.grounded:
		c.onJumpable = jumpable
		c.onAnchorable = anchorable
	}
	if groundIsHit {
		c.groundHit = hit
	} else {
		c.groundHit = sense.Hit{}
	}

	_, c.ceilingHit = world.Ceiling(c.Body, c.Config.GroundCheckDistance)
	_, c.wallLeftHit = world.Wall(c.Body, -1, 0, c.Config.GroundCheckDistance)
	_, c.wallRightHit = world.Wall(c.Body, 1, 0, c.Config.GroundCheckDistance)
}
