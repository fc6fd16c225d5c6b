package config

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned for nonsensical setup parameters. It is
// raised once at initialization and never during a tick.
var ErrInvalidConfiguration = errors.New("invalid configuration")

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfiguration, format, args...)
}

func (t TetherConfig) Validate() error {
	if t.SegmentCount < 2 {
		return invalid("tether segment count %d < 2", t.SegmentCount)
	}
	if t.MaxLength <= 0 {
		return invalid("tether max length %v must be positive", t.MaxLength)
	}
	if t.LengthMultiplier <= 0 {
		return invalid("tether length multiplier %v must be positive", t.LengthMultiplier)
	}
	if t.Damping <= 0 || t.Damping > 1 {
		return invalid("tether damping %v outside (0, 1]", t.Damping)
	}
	if t.ConstraintIterations < 1 {
		return invalid("tether constraint iterations %d < 1", t.ConstraintIterations)
	}
	return nil
}

func (c CharacterConfig) Validate() error {
	if c.Mass <= 0 {
		return invalid("character mass %v must be positive", c.Mass)
	}
	if c.CollisionWidth <= 0 || c.CollisionHeight <= 0 {
		return invalid("character collision size %vx%v must be positive", c.CollisionWidth, c.CollisionHeight)
	}
	if c.CoyoteTime < 0 || c.JumpBuffer < 0 {
		return invalid("coyote time %v and jump buffer %v must not be negative", c.CoyoteTime, c.JumpBuffer)
	}
	if c.GroundCheckDistance <= 0 {
		return invalid("ground check distance %v must be positive", c.GroundCheckDistance)
	}
	if c.Swing.MaxSpeed <= 0 {
		return invalid("max swing speed %v must be positive", c.Swing.MaxSpeed)
	}
	return nil
}

func (i InputConfig) Validate() error {
	if i.HorizontalDeadZone < 0 || i.HorizontalDeadZone >= 1 {
		return invalid("horizontal dead zone %v outside [0, 1)", i.HorizontalDeadZone)
	}
	return nil
}

func (s SimulationConfig) Validate() error {
	if s.TickRate <= 0 {
		return invalid("tick rate %d must be positive", s.TickRate)
	}
	return nil
}

// Validate checks every global tuning block.
func Validate() error {
	if err := Simulation.Validate(); err != nil {
		return err
	}
	if err := Tether.Validate(); err != nil {
		return err
	}
	if err := Character.Validate(); err != nil {
		return err
	}
	return Input.Validate()
}
