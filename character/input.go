package character

import (
	"math"

	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/vmath"
)

// FrameInput is one tick of player input for one character.
type FrameInput struct {
	JumpPressed    bool    // jump went down this tick
	JumpHeld       bool    // jump is held
	AnchorHeld     bool    // anchor is held
	MoveHorizontal float64 // -1 (left) to 1 (right)
}

// Normalize clamps the horizontal axis into [-1, 1] and, when snapping is
// enabled, rounds values inside the dead zone to 0 and everything else to a
// full -1 or 1.
func (in FrameInput) Normalize(cfg config.InputConfig) FrameInput {
	m := in.MoveHorizontal
	if math.IsNaN(m) {
		m = 0
	}
	m = vmath.Clamp(m, -1, 1)

	if cfg.SnapInput {
		if math.Abs(m) < cfg.HorizontalDeadZone {
			m = 0
		} else {
			m = vmath.Sign(m)
		}
	}

	in.MoveHorizontal = m
	return in
}
