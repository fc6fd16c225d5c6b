package factory

import (
	"github.com/automoto/tethered/archetypes"
	"github.com/automoto/tethered/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cellSize is the resolv broadphase cell edge in pixels.
const cellSize = 16

func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}
