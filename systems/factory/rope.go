package factory

import (
	"github.com/automoto/tethered/archetypes"
	"github.com/automoto/tethered/components"
	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/tether"
	"github.com/automoto/tethered/vmath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRope spawns the tether laid straight between a and b.
func CreateRope(ecs *ecs.ECS, a, b vmath.Vec2, cfg config.TetherConfig) (*donburi.Entry, error) {
	t := tether.New()
	t.SetLengthMultiplier(cfg.LengthMultiplier)
	if err := t.Initialize(a, b, cfg.SegmentCount, cfg.MaxLength); err != nil {
		return nil, err
	}

	entry := archetypes.Rope.Spawn(ecs)
	components.Tether.SetValue(entry, components.TetherData{
		Tether: t,
		Config: cfg,
	})
	return entry, nil
}
