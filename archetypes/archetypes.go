package archetypes

import (
	"github.com/automoto/tethered/components"
	"github.com/automoto/tethered/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers.
const (
	Default ecs.LayerID = iota
	HUD
)

var (
	Geometry = newArchetype(
		tags.Level,
		components.Geometry,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Input,
		components.State,
	)
	Rope = newArchetype(
		tags.Rope,
		components.Tether,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
