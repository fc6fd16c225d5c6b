package systems

import "github.com/yohamta/donburi/ecs"

// UpdateTether steps the visual rope pinned to this tick's character
// positions.
func UpdateTether(e *ecs.ECS) {
	sim, ok := GetSimulation(e)
	if !ok {
		return
	}
	rope, ok := GetRope(e)
	if !ok || !rope.Initialized() {
		return
	}
	chars := Characters(e)
	if chars[0] == nil || chars[1] == nil {
		return
	}

	cfg := rope.Config
	rope.Step(sim.Dt(), chars[0].Position(), chars[1].Position(),
		cfg.Gravity, cfg.Damping, cfg.ConstraintIterations)
}
