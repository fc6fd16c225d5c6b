package systems

import (
	"github.com/automoto/tethered/components"
	"github.com/automoto/tethered/sense"
	"github.com/automoto/tethered/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Characters returns both characters in index order so every system visits
// them in the same order each tick. Missing slots are nil.
func Characters(e *ecs.ECS) [2]*components.CharacterData {
	var out [2]*components.CharacterData
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		c := components.Character.Get(entry)
		if c.Index >= 0 && c.Index < len(out) {
			out[c.Index] = c
		}
	})
	return out
}

// CharacterEntry returns the entry of character index.
func CharacterEntry(e *ecs.ECS, index int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		if components.Character.Get(entry).Index == index {
			found = entry
		}
	})
	return found, found != nil
}

// GetSimulation returns the singleton clock. Systems do nothing without it.
func GetSimulation(e *ecs.ECS) (*components.SimulationData, bool) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Simulation.Get(entry), true
}

func GetRope(e *ecs.ECS) (*components.TetherData, bool) {
	entry, ok := tags.Rope.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Tether.Get(entry), true
}

func getWorld(e *ecs.ECS) *sense.World {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).World
}
