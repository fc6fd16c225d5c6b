package character

import (
	"github.com/automoto/tethered/physics"
	"github.com/automoto/tethered/swing"
)

func (c *Character) updateAnchoring() {
	if c.input.AnchorHeld && c.grounded && !c.anchored && c.onAnchorable && !c.swinging &&
		c.groundHit.Object != nil {
		c.startAnchoring()
	}

	if c.anchored && (!c.input.AnchorHeld || !c.grounded) {
		c.stopAnchoring()
	}
}

func (c *Character) startAnchoring() {
	c.anchored = true
	c.Body.SetKind(physics.Kinematic)
}

func (c *Character) stopAnchoring() {
	c.anchored = false
	c.Body.RestoreKind()
}

func (c *Character) updateSwinging() {
	peerAnchored := c.peerAnchored()
	if !c.grounded && !c.anchored && !c.swinging && peerAnchored {
		c.swinging = true
		c.jumpRising = false
	}

	if c.swinging && (c.grounded || !peerAnchored) {
		c.stopSwinging()
	}

	if c.swinging {
		c.applySwingForce()
	}
}

func (c *Character) swingState() (s swing.State) {
	s.Velocity = c.Body.Velocity
	if c.peer != nil {
		s.Rope = c.Body.Position().Sub(c.peer.Position())
	}
	s.Down = c.Body.Up().Neg()
	s.Input = c.input.MoveHorizontal
	s.LastTangent = c.lastTangent
	return s
}

func (c *Character) applySwingForce() {
	s := c.swingState()
	c.swingInverted = swing.Inverted(s.Rope)

	res := swing.Force(c.Config.Swing, s)
	if !res.Tangent.IsZero() {
		c.lastTangent = res.Tangent
	}
	c.Body.AddForce(res.Force)
}

// stopSwinging ends the swing with a whip impulse along the rope tangent.
// The same impulse is owed to the partner and collected by the owner through
// TakePeerImpulse.
func (c *Character) stopSwinging() {
	c.swinging = false
	c.swingInverted = false

	s := c.swingState()
	impulse, tangent := swing.ReleaseImpulse(c.Config.Swing, s.Velocity, s.Rope, s.LastTangent)
	if !tangent.IsZero() {
		c.lastTangent = tangent
	}
	c.Body.AddImpulse(impulse)
	c.peerImpulse = c.peerImpulse.Add(impulse)
}
