package components

import (
	"github.com/automoto/tethered/character"
	"github.com/yohamta/donburi"
)

// InputData holds the frame input a character consumes on the next tick.
type InputData struct {
	Current  character.FrameInput
	Previous character.FrameInput
}

var Input = donburi.NewComponentType[InputData]()
