package character

import "github.com/automoto/tethered/vmath"

func (c *Character) updateRotation(dt float64) {
	switch {
	case c.grounded || c.anchored:
		c.alignToGroundNormal(dt)
	case c.swinging:
		c.alignToPeer(dt)
	default:
		c.Body.Rotation = 0
	}
}

// alignToGroundNormal turns the character toward the normal of the surface
// under it, sampled slightly ahead in the direction of input. Steep or
// missing surfaces snap it upright.
func (c *Character) alignToGroundNormal(dt float64) {
	if c.world == nil || !c.grounded {
		c.Body.Rotation = 0
		return
	}

	dir := vmath.V(c.input.MoveHorizontal*0.5, 1)
	dist := c.Body.Size().Y/2 + c.Config.GroundCheckDistance
	hit, ok := c.world.Surface(c.Body, dir, dist)
	if !ok || hit.Normal.Dot(vmath.Up) <= c.Config.GroundNormalDotThreshold {
		c.Body.Rotation = 0
		return
	}

	target, ok := vmath.UpAngle(hit.Normal)
	if !ok {
		return
	}
	c.turnToward(target, dt)
}

// alignToPeer points the character's up axis at its anchored partner.
func (c *Character) alignToPeer(dt float64) {
	if c.peer == nil {
		return
	}
	target, ok := vmath.UpAngle(c.peer.Position().Sub(c.Body.Position()))
	if !ok {
		return
	}
	c.turnToward(target, dt)
}

func (c *Character) turnToward(target, dt float64) {
	t := vmath.ExpFactor(c.Config.AlignRotationRate, dt)
	c.Body.Rotation = vmath.WrapAngle(vmath.LerpAngle(c.Body.Rotation, target, t))
}
