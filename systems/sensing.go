package systems

import "github.com/yohamta/donburi/ecs"

// UpdateSensing probes the level for both characters before any of them
// changes state, so both see the same world.
func UpdateSensing(e *ecs.ECS) {
	sim, ok := GetSimulation(e)
	if !ok {
		return
	}
	world := getWorld(e)
	if world == nil {
		return
	}

	for _, c := range Characters(e) {
		if c == nil {
			continue
		}
		c.Sense(world, sim.Dt())
	}
}
