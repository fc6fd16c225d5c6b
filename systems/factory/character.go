package factory

import (
	"github.com/automoto/tethered/archetypes"
	"github.com/automoto/tethered/character"
	"github.com/automoto/tethered/components"
	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/physics"
	"github.com/automoto/tethered/tags"
	"github.com/automoto/tethered/vmath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter spawns character index centred on center. The character's
// presentation hooks feed its State component.
func CreateCharacter(ecs *ecs.ECS, space *resolv.Space, index int, center vmath.Vec2,
	charCfg config.CharacterConfig, inputCfg config.InputConfig) *donburi.Entry {
	entry := archetypes.Character.Spawn(ecs)

	body := physics.NewBody(space, center,
		charCfg.CollisionWidth, charCfg.CollisionHeight, charCfg.Mass, tags.ResolvCharacter)
	body.Object.Data = entry

	ch := character.New(index, body, charCfg, inputCfg)
	ch.Events.GroundedChanged = func(grounded bool, impactSpeed float64) {
		if !grounded {
			return
		}
		state := components.State.Get(entry)
		state.LandingImpact = impactSpeed
		state.LandingTimer = config.LandingSquash
	}
	ch.Events.Jumped = func() {
		components.State.Get(entry).Jumps++
	}

	components.Character.SetValue(entry, components.CharacterData{
		Character: ch,
		Index:     index,
	})
	components.State.SetValue(entry, components.StateData{
		CurrentState:  config.StateAirborne,
		PreviousState: config.StateAirborne,
	})

	return entry
}
