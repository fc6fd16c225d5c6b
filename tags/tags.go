package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Rope      = donburi.NewTag().SetName("Rope")
	Level     = donburi.NewTag().SetName("Level")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvRamp      = "ramp"
	ResolvCharacter = "character"

	// Surface flags read by the ground probes
	ResolvJumpable   = "jumpable"
	ResolvAnchorable = "anchorable"

	// Slope type tags
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)
