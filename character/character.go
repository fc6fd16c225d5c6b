// Package character implements the per-character kinematic state machine:
// grounding, coyote time and jump buffering, edge assist, anchoring onto the
// ground and swinging from an anchored partner.
//
// A tick is split in two calls. Sense probes the level and updates the
// grounded and surface flags. Update consumes the frame input, runs the
// transitions in a fixed order and applies forces and impulses to the body.
// Integration and the rope joint are left to the caller.
package character

import (
	"log"

	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/physics"
	"github.com/automoto/tethered/sense"
	"github.com/automoto/tethered/vmath"
)

// Peer is the read-only view a character has of its partner.
type Peer interface {
	Position() vmath.Vec2
	IsAnchored() bool
}

// Events are optional hooks for the animation and audio collaborators.
type Events struct {
	// GroundedChanged fires on landing with the vertical impact speed, and on
	// leaving the ground with 0.
	GroundedChanged func(grounded bool, impactSpeed float64)
	Jumped          func()
	ModeChanged     func(from, to config.StateID)
}

// Character is the kinematic state of one player character. Position and
// velocity live on Body and are never copied.
type Character struct {
	ID     int
	Body   *physics.Body
	Config config.CharacterConfig
	Input  config.InputConfig
	Events Events

	peer  Peer
	world *sense.World
	input FrameInput
	time  float64

	// Sensing
	grounded        bool
	groundHit       sense.Hit
	onJumpable      bool
	onAnchorable    bool
	wasOnJumpable   bool
	leftGroundAt    float64
	ceilingHit      bool
	wallLeftHit     bool
	wallRightHit    bool
	edgeAssistArmed bool

	// Jump
	jumpToConsume      bool
	jumpPressedAt      float64
	bufferedJumpUsable bool
	coyoteUsable       bool
	jumpRising         bool

	anchored bool

	swinging      bool
	swingInverted bool
	lastTangent   vmath.Vec2
	peerImpulse   vmath.Vec2

	facing   float64
	lastMode config.StateID
}

// New wraps body in a character at rest.
func New(id int, body *physics.Body, cfg config.CharacterConfig, input config.InputConfig) *Character {
	c := &Character{
		ID:     id,
		Body:   body,
		Config: cfg,
		Input:  input,
	}
	c.clearState()
	return c
}

// SetPeer installs the partner handle. A nil peer makes swinging unavailable.
func (c *Character) SetPeer(p Peer) {
	c.peer = p
}

func (c *Character) Peer() Peer {
	return c.peer
}

func (c *Character) Position() vmath.Vec2 {
	return c.Body.Position()
}

func (c *Character) Velocity() vmath.Vec2 {
	return c.Body.Velocity
}

func (c *Character) Rotation() float64 {
	return c.Body.Rotation
}

func (c *Character) IsAnchored() bool {
	return c.anchored
}

func (c *Character) IsSwinging() bool {
	return c.swinging
}

// IsGrounded is the raw probe result. It stays live while anchored or
// swinging; Mode reports the state that owns the character.
func (c *Character) IsGrounded() bool {
	return c.grounded
}

func (c *Character) OnJumpableSurface() bool {
	return c.onJumpable
}

func (c *Character) OnAnchorableSurface() bool {
	return c.onAnchorable
}

// GroundHit is the surface under the character, valid while grounded.
func (c *Character) GroundHit() (sense.Hit, bool) {
	return c.groundHit, c.grounded
}

func (c *Character) CeilingAbove() bool {
	return c.ceilingHit
}

// WallAt reports a wall within check distance on side (-1 left, 1 right).
func (c *Character) WallAt(side float64) bool {
	if side < 0 {
		return c.wallLeftHit
	}
	return c.wallRightHit
}

// Facing is -1 or 1, following the last non-zero horizontal input.
func (c *Character) Facing() float64 {
	return c.facing
}

// SwingInverted reports a swinger above its anchor.
func (c *Character) SwingInverted() bool {
	return c.swinging && c.swingInverted
}

// Time is the simulated time this character has accumulated.
func (c *Character) Time() float64 {
	return c.time
}

// LastInput is the normalized input of the latest Update.
func (c *Character) LastInput() FrameInput {
	return c.input
}

// Mode reports the owning state. Anchored and swinging take precedence over
// the grounded flag.
func (c *Character) Mode() config.StateID {
	switch {
	case c.anchored:
		return config.StateAnchored
	case c.swinging:
		return config.StateSwinging
	case c.grounded:
		return config.StateGrounded
	default:
		return config.StateAirborne
	}
}

// Reset teleports the character, zeroes its velocity and clears every flag
// and timer. Used on spawn and respawn.
func (c *Character) Reset(pos vmath.Vec2, rot float64) {
	c.Body.SetKind(physics.Dynamic)
	c.Body.Teleport(pos, rot)
	c.Body.GravityScale = 1
	c.clearState()
}

func (c *Character) clearState() {
	c.input = FrameInput{}
	c.grounded = false
	c.groundHit = sense.Hit{}
	c.onJumpable = false
	c.onAnchorable = false
	c.wasOnJumpable = false
	c.leftGroundAt = -1e9
	c.ceilingHit = false
	c.wallLeftHit = false
	c.wallRightHit = false
	c.edgeAssistArmed = true

	c.jumpToConsume = false
	c.jumpPressedAt = -1e9
	c.bufferedJumpUsable = false
	c.coyoteUsable = false
	c.jumpRising = false

	c.anchored = false
	c.swinging = false
	c.swingInverted = false
	c.lastTangent = vmath.Zero
	c.peerImpulse = vmath.Zero

	c.facing = config.DirectionRight
	c.lastMode = config.StateAirborne
}

// ForceStopAnchoring releases an anchor from outside the state machine, for
// example when the character takes damage.
func (c *Character) ForceStopAnchoring() {
	if c.anchored {
		c.stopAnchoring()
		c.notifyMode()
	}
}

// TakePeerImpulse returns the impulse this character owes its partner from a
// swing release and clears it. The owner delivers it to the partner's body.
func (c *Character) TakePeerImpulse() vmath.Vec2 {
	j := c.peerImpulse
	c.peerImpulse = vmath.Zero
	return j
}

// Update runs one tick of the state machine against the latest Sense result.
func (c *Character) Update(in FrameInput, dt float64) {
	in = in.Normalize(c.Input)
	c.input = in
	if in.JumpPressed {
		c.jumpToConsume = true
		c.jumpPressedAt = c.time
	}
	if in.MoveHorizontal != 0 {
		c.facing = vmath.Sign(in.MoveHorizontal)
	}

	c.updateRotation(dt)
	c.updateJump()
	c.updateEdgeAssist()
	c.updateHorizontalMovement()
	c.updateGravityScale()
	c.updateAnchoring()
	c.updateSwinging()
	c.notifyMode()
}

// ReconcileSwing ends a swing whose partner stopped anchoring after this
// character already ran its Update for the tick.
func (c *Character) ReconcileSwing() {
	if c.swinging && !c.peerAnchored() {
		c.stopSwinging()
		c.notifyMode()
	}
}

// ClampVelocity applies the speed limits once the body has been integrated:
// overall speed while swinging, horizontal run speed on the ground, and fall
// speed in the air.
func (c *Character) ClampVelocity() {
	if c.Body.IsKinematic() {
		return
	}

	v := c.Body.Velocity
	if c.swinging {
		c.Body.Velocity = v.ClampLength(c.Config.Swing.MaxSpeed)
		return
	}

	maxX := c.Config.Swing.MaxSpeed
	if c.grounded {
		maxX = c.Config.RunMaxSpeed
	}
	v.X = vmath.Clamp(v.X, -maxX, maxX)
	if v.Y > c.Config.MaxFallSpeed {
		v.Y = c.Config.MaxFallSpeed
	}
	c.Body.Velocity = v
}

func (c *Character) peerAnchored() bool {
	return c.peer != nil && c.peer.IsAnchored()
}

func (c *Character) notifyMode() {
	mode := c.Mode()
	if mode == c.lastMode {
		return
	}
	from := c.lastMode
	c.lastMode = mode

	if config.Debug.LogTransitions {
		log.Printf("character %d: %s -> %s", c.ID, from, mode)
	}
	if c.Events.ModeChanged != nil {
		c.Events.ModeChanged(from, mode)
	}
}
