package components

import (
	"github.com/automoto/tethered/config"
	"github.com/yohamta/donburi"
)

// SimulationData is the fixed-step clock. This is a singleton component.
type SimulationData struct {
	Config config.SimulationConfig
	Tick   int
	Time   float64
}

// Dt is the fixed tick interval.
func (s *SimulationData) Dt() float64 {
	return s.Config.Dt()
}

var Simulation = donburi.NewComponentType[SimulationData]()
