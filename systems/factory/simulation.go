package factory

import (
	"github.com/automoto/tethered/archetypes"
	"github.com/automoto/tethered/components"
	"github.com/automoto/tethered/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSimulation(ecs *ecs.ECS, cfg config.SimulationConfig) *donburi.Entry {
	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(entry, components.SimulationData{Config: cfg})
	return entry
}
