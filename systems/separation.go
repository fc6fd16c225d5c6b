package systems

import (
	"github.com/automoto/tethered/physics"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSeparation enforces the rope's maximum length between the two
// bodies. This joint, not the visual chain, is what holds the characters
// together.
func UpdateSeparation(e *ecs.ECS) {
	rope, ok := GetRope(e)
	if !ok {
		return
	}
	chars := Characters(e)
	if chars[0] == nil || chars[1] == nil {
		return
	}
	physics.EnforceMaxDistance(chars[0].Body, chars[1].Body, rope.MaxLength())
}
