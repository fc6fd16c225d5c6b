package demo

import (
	"testing"

	"github.com/automoto/tethered/character"
	"github.com/stretchr/testify/assert"
)

func press(p *Poller, player int, ids ...ActionID) {
	p.previous[player] = p.current[player]
	p.current[player] = [ActionCount]bool{}
	for _, id := range ids {
		p.current[player][id] = true
	}
}

func TestPollerFrameInput(t *testing.T) {
	tests := []struct {
		name   string
		held   []ActionID
		analog float64
		want   character.FrameInput
	}{
		{"idle", nil, 0, character.FrameInput{}},
		{"left", []ActionID{ActionMoveLeft}, 0, character.FrameInput{MoveHorizontal: -1}},
		{"both directions cancel", []ActionID{ActionMoveLeft, ActionMoveRight}, 0.7, character.FrameInput{}},
		{"stick", nil, 0.4, character.FrameInput{MoveHorizontal: 0.4}},
		{"keys beat the stick", []ActionID{ActionMoveRight}, -0.5, character.FrameInput{MoveHorizontal: 1}},
		{"anchor", []ActionID{ActionAnchor}, 0, character.FrameInput{AnchorHeld: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPoller()
			press(p, 1, tt.held...)
			p.analog[1] = tt.analog
			assert.Equal(t, tt.want, p.FrameInput(1))
			assert.Equal(t, character.FrameInput{}, p.FrameInput(0))
		})
	}
}

func TestPollerJumpEdge(t *testing.T) {
	p := NewPoller()

	press(p, 0, ActionJump)
	in := p.FrameInput(0)
	assert.True(t, in.JumpPressed)
	assert.True(t, in.JumpHeld)

	press(p, 0, ActionJump)
	in = p.FrameInput(0)
	assert.False(t, in.JumpPressed, "holding does not press again")
	assert.True(t, in.JumpHeld)

	press(p, 0)
	press(p, 0, ActionJump)
	assert.True(t, p.FrameInput(0).JumpPressed)
}

func TestPollerRespawn(t *testing.T) {
	p := NewPoller()
	assert.False(t, p.Respawn())

	press(p, 1, ActionRespawn)
	assert.True(t, p.Respawn())

	press(p, 1, ActionRespawn)
	assert.False(t, p.Respawn(), "only the first tick of a press counts")
}

func TestControlsBindEveryAction(t *testing.T) {
	for player, scheme := range Controls {
		for id := ActionMoveLeft; id < ActionCount; id++ {
			binding, ok := scheme.Bindings[id]
			assert.True(t, ok, "player %d action %d", player, id)
			assert.NotEmpty(t, binding.Keys, "player %d action %d", player, id)
		}
	}
}
