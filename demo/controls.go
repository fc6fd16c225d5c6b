package demo

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical player action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAnchor
	ActionRespawn
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// ControlScheme holds the bindings of one player.
type ControlScheme struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Controls are the bindings of both players. Player one uses WASD + Space and
// the first gamepad, player two the arrows + Right Shift and the second.
var Controls [2]ControlScheme

func init() {
	Controls = [2]ControlScheme{
		{
			AnalogDeadzone: 0.25,
			Bindings: map[ActionID]InputBinding{
				ActionMoveLeft: {
					Keys: []ebiten.Key{ebiten.KeyA},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonLeftLeft,
					},
				},
				ActionMoveRight: {
					Keys: []ebiten.Key{ebiten.KeyD},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonLeftRight,
					},
				},
				ActionJump: {
					Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeySpace},
					// A / Cross button
					StandardGamepadButtons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonRightBottom,
					},
				},
				ActionAnchor: {
					Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyShiftLeft},
					// Right trigger
					StandardGamepadButtons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonFrontBottomRight,
					},
				},
				ActionRespawn: {
					Keys: []ebiten.Key{ebiten.KeyR},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonCenterRight,
					},
				},
			},
		},
		{
			AnalogDeadzone: 0.25,
			Bindings: map[ActionID]InputBinding{
				ActionMoveLeft: {
					Keys: []ebiten.Key{ebiten.KeyLeft},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonLeftLeft,
					},
				},
				ActionMoveRight: {
					Keys: []ebiten.Key{ebiten.KeyRight},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonLeftRight,
					},
				},
				ActionJump: {
					Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyEnter},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonRightBottom,
					},
				},
				ActionAnchor: {
					Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyShiftRight},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonFrontBottomRight,
					},
				},
				ActionRespawn: {
					Keys: []ebiten.Key{ebiten.KeyBackspace},
					StandardGamepadButtons: []ebiten.StandardGamepadButton{
						ebiten.StandardGamepadButtonCenterRight,
					},
				},
			},
		},
	}
}
