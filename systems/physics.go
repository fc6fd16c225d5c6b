package systems

import "github.com/yohamta/donburi/ecs"

// UpdateBodies integrates both character bodies and moves them through the
// level with collisions.
func UpdateBodies(e *ecs.ECS) {
	sim, ok := GetSimulation(e)
	if !ok {
		return
	}

	for _, c := range Characters(e) {
		if c == nil {
			continue
		}
		c.Body.Integrate(sim.Dt(), sim.Config.Gravity)
	}
}

// UpdateVelocityLimits clamps the integrated velocities: swing speed, run
// speed and fall speed.
func UpdateVelocityLimits(e *ecs.ECS) {
	for _, c := range Characters(e) {
		if c != nil {
			c.ClampVelocity()
		}
	}
}
