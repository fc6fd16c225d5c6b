package components

import (
	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/tether"
	"github.com/yohamta/donburi"
)

// TetherData is the rope between the two characters. Config.MaxLength is the
// hard separation cap enforced by the separation system.
type TetherData struct {
	*tether.Tether
	Config config.TetherConfig
}

var Tether = donburi.NewComponentType[TetherData]()
