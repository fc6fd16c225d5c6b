package systems

import (
	"github.com/automoto/tethered/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControl runs both state machines in index order. A character that
// started swinging before its partner let go of the anchor in the same tick
// is reconciled afterwards, and swing-release impulses owed to a partner are
// delivered to the partner's body.
func UpdateControl(e *ecs.ECS) {
	sim, ok := GetSimulation(e)
	if !ok {
		return
	}
	chars := Characters(e)

	for _, c := range chars {
		if c == nil {
			continue
		}
		entry, ok := CharacterEntry(e, c.Index)
		if !ok {
			continue
		}
		input := components.Input.Get(entry)
		c.Update(input.Current, sim.Dt())
		input.Previous = input.Current
		input.Current.JumpPressed = false
	}

	for _, c := range chars {
		if c != nil {
			c.ReconcileSwing()
		}
	}

	for i, c := range chars {
		if c == nil {
			continue
		}
		impulse := c.TakePeerImpulse()
		peer := chars[1-i]
		if peer == nil || impulse.IsZero() {
			continue
		}
		peer.Body.AddImpulse(impulse)
	}
}
