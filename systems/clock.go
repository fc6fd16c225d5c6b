package systems

import "github.com/yohamta/donburi/ecs"

// UpdateClock advances the fixed-step clock. It runs before every other
// simulation system.
func UpdateClock(e *ecs.ECS) {
	sim, ok := GetSimulation(e)
	if !ok {
		return
	}
	sim.Tick++
	sim.Time += sim.Dt()
}
