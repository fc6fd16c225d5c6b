package character

import "github.com/automoto/tethered/vmath"

func (c *Character) hasBufferedJump() bool {
	return c.bufferedJumpUsable && c.time < c.jumpPressedAt+c.Config.JumpBuffer
}

func (c *Character) canUseCoyote() bool {
	return c.coyoteUsable && !c.grounded && c.wasOnJumpable &&
		c.time < c.leftGroundAt+c.Config.CoyoteTime
}

// CanJump is true on a jumpable surface or inside the coyote window after
// leaving one.
func (c *Character) CanJump() bool {
	return (c.grounded && c.onJumpable) || c.canUseCoyote()
}

func (c *Character) updateJump() {
	if c.anchored {
		return
	}

	// Only the rise of a jump can be cut. y grows downward, so the rise ends
	// once vertical velocity is no longer negative.
	if c.jumpRising {
		switch {
		case c.swinging || c.Body.Velocity.Y >= 0:
			c.jumpRising = false
		case !c.grounded && !c.input.JumpHeld:
			c.jumpRising = false
			c.executeJumpCut()
		}
	}

	if !c.jumpToConsume && !c.hasBufferedJump() {
		return
	}

	if c.CanJump() {
		c.executeJump()
	}
	c.jumpToConsume = false
}

func (c *Character) executeJump() {
	c.jumpRising = true
	c.jumpPressedAt = -1e9
	c.bufferedJumpUsable = false
	c.coyoteUsable = false

	b := c.Body
	b.Velocity = vmath.V(b.Velocity.X*c.Config.JumpHorizontalVelocityMultiplier, 0)
	b.AddImpulse(vmath.Up.Scale(c.Config.JumpImpulse))

	if c.Events.Jumped != nil {
		c.Events.Jumped()
	}
}

func (c *Character) executeJumpCut() {
	b := c.Body
	b.Velocity.Y = 0
	b.AddImpulse(vmath.Down.Scale(c.Config.JumpEndEarlyImpulse))
}
