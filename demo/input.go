package demo

import (
	"github.com/automoto/tethered/character"
	"github.com/hajimehoshi/ebiten/v2"
)

// Poller turns the keyboard and gamepads into one FrameInput per player.
// Player i reads its keyboard scheme and the i-th connected gamepad.
type Poller struct {
	gamepadIDs []ebiten.GamepadID

	current  [2][ActionCount]bool
	previous [2][ActionCount]bool
	analog   [2]float64
}

func NewPoller() *Poller {
	return &Poller{}
}

// Poll samples the devices once per tick.
func (p *Poller) Poll() {
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	for player := range p.current {
		p.previous[player] = p.current[player]
		p.current[player] = [ActionCount]bool{}
		p.analog[player] = 0

		scheme := Controls[player]
		for actionID, binding := range scheme.Bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					p.current[player][actionID] = true
				}
			}
		}

		gpID, ok := p.gamepad(player)
		if !ok {
			continue
		}
		for actionID, binding := range scheme.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					p.current[player][actionID] = true
				}
			}
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -scheme.AnalogDeadzone || horizontal > scheme.AnalogDeadzone {
			p.analog[player] = horizontal
		}
	}
}

func (p *Poller) gamepad(player int) (ebiten.GamepadID, bool) {
	n := 0
	for _, id := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if n == player {
			return id, true
		}
		n++
	}
	return 0, false
}

// Pressed reports whether the action is held this tick.
func (p *Poller) Pressed(player int, id ActionID) bool {
	return p.current[player][id]
}

// JustPressed reports whether the action went down this tick.
func (p *Poller) JustPressed(player int, id ActionID) bool {
	return p.current[player][id] && !p.previous[player][id]
}

// FrameInput builds the character input of player from the last Poll.
// Digital directions win over the stick.
func (p *Poller) FrameInput(player int) character.FrameInput {
	in := character.FrameInput{
		MoveHorizontal: p.analog[player],
		JumpPressed:    p.JustPressed(player, ActionJump),
		JumpHeld:       p.Pressed(player, ActionJump),
		AnchorHeld:     p.Pressed(player, ActionAnchor),
	}
	left, right := p.Pressed(player, ActionMoveLeft), p.Pressed(player, ActionMoveRight)
	switch {
	case left && !right:
		in.MoveHorizontal = -1
	case right && !left:
		in.MoveHorizontal = 1
	case left && right:
		in.MoveHorizontal = 0
	}
	return in
}

// Respawn reports whether either player asked for a respawn this tick.
func (p *Poller) Respawn() bool {
	return p.JustPressed(0, ActionRespawn) || p.JustPressed(1, ActionRespawn)
}
