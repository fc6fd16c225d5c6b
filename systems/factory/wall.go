package factory

import (
	"github.com/automoto/tethered/archetypes"
	"github.com/automoto/tethered/components"
	"github.com/automoto/tethered/shared/leveldata"
	"github.com/automoto/tethered/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid rectangle or, when rect carries a slope type, a
// ramp. Ramps use rectangular bounds for broadphase; the surface height is
// calculated in the body and the ray probes.
func CreateWall(ecs *ecs.ECS, rect leveldata.SolidRect) *donburi.Entry {
	wall := archetypes.Geometry.Spawn(ecs)

	objectTags := []string{tags.ResolvSolid}
	if rect.IsRamp() {
		objectTags = []string{tags.ResolvRamp, rect.SlopeType}
	}
	if rect.Jumpable {
		objectTags = append(objectTags, tags.ResolvJumpable)
	}
	if rect.Anchorable {
		objectTags = append(objectTags, tags.ResolvAnchorable)
	}

	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, objectTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = wall // Link for O(1) lookup

	components.Geometry.SetValue(wall, components.GeometryData{
		Object:     obj,
		SlopeType:  rect.SlopeType,
		Jumpable:   rect.Jumpable,
		Anchorable: rect.Anchorable,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
