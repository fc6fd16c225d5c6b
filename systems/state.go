package systems

import (
	"github.com/automoto/tethered/components"
	"github.com/automoto/tethered/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates records each character's reported mode and advances the
// presentation timers that the renderer reads.
func UpdateStates(e *ecs.ECS) {
	sim, ok := GetSimulation(e)
	if !ok {
		return
	}
	dt := sim.Dt()

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		c := components.Character.Get(entry)
		state := components.State.Get(entry)

		mode := c.Mode()
		if mode != state.CurrentState {
			state.PreviousState = state.CurrentState
			state.CurrentState = mode
			state.StateTimer = 0
		} else {
			state.StateTimer += dt
		}

		if state.LandingTimer > 0 {
			state.LandingTimer -= dt
			if state.LandingTimer <= 0 {
				state.LandingTimer = 0
				state.LandingImpact = 0
			}
		}
	})
}
