package components

import (
	"github.com/automoto/tethered/sense"
	"github.com/automoto/tethered/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	World        *sense.World // ray probes over the level space
}

var Level = donburi.NewComponentType[LevelData]()
