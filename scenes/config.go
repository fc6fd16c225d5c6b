package scenes

import (
	"github.com/automoto/tethered/config"
)

// MatchConfig holds the tuning a match is created with.
type MatchConfig struct {
	Simulation config.SimulationConfig
	Tether     config.TetherConfig
	Character  config.CharacterConfig
	Input      config.InputConfig
}

// DefaultMatchConfig snapshots the config globals.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Simulation: config.Simulation,
		Tether:     config.Tether,
		Character:  config.Character,
		Input:      config.Input,
	}
}

func (c MatchConfig) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	if err := c.Tether.Validate(); err != nil {
		return err
	}
	if err := c.Character.Validate(); err != nil {
		return err
	}
	return c.Input.Validate()
}
