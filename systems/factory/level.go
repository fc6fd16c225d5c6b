package factory

import (
	"github.com/automoto/tethered/archetypes"
	"github.com/automoto/tethered/components"
	"github.com/automoto/tethered/sense"
	"github.com/automoto/tethered/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the collision space and every level solid, then the
// level entity holding the probe world over that space.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	spaceEntry := CreateSpace(ecs, level.MapWidth, level.MapHeight)
	space := components.Space.Get(spaceEntry)

	for _, rect := range level.SolidRects {
		CreateWall(ecs, rect)
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		World:        sense.NewWorld(space),
	})
	return entry
}
