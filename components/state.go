package components

import (
	"github.com/automoto/tethered/config"
	"github.com/yohamta/donburi"
)

// StateData tracks the reported mode of a character for presentation.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds spent in CurrentState

	// Landing is set by the grounded hook and decays to zero.
	LandingTimer  float64
	LandingImpact float64
	Jumps         int
}

var State = donburi.NewComponentType[StateData]()
