package config

import (
	"encoding/json"
	"log"

	"github.com/pkg/errors"
	"github.com/quasilyte/gdata"
)

const tuningKey = "tuning"

// Tuning is the persisted subset of the configuration surface.
type Tuning struct {
	Tether    TetherConfig    `json:"tether"`
	Character CharacterConfig `json:"character"`
	Input     InputConfig     `json:"input"`
}

// CurrentTuning snapshots the live globals.
func CurrentTuning() Tuning {
	return Tuning{
		Tether:    Tether,
		Character: Character,
		Input:     Input,
	}
}

func (t Tuning) Validate() error {
	if err := t.Tether.Validate(); err != nil {
		return err
	}
	if err := t.Character.Validate(); err != nil {
		return err
	}
	return t.Input.Validate()
}

// Apply installs the tuning into the globals. Nothing changes when the tuning
// does not validate.
func (t Tuning) Apply() error {
	if err := t.Validate(); err != nil {
		return err
	}
	Tether = t.Tether
	Character = t.Character
	Input = t.Input
	return nil
}

// Store persists tuning blobs through gdata.
type Store struct {
	m *gdata.Manager
}

// OpenStore initializes the gdata manager for tuning storage
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open tuning store")
	}
	return &Store{m: m}, nil
}

// LoadTuning returns the saved tuning, or nil when none was saved yet.
func (s *Store) LoadTuning() (*Tuning, error) {
	if s == nil || s.m == nil {
		return nil, nil
	}

	data, err := s.m.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	return DecodeTuning(data)
}

// SaveTuning writes the tuning to disk
func (s *Store) SaveTuning(t Tuning) error {
	if s == nil || s.m == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "encode tuning")
	}
	if err := s.m.SaveItem(tuningKey, data); err != nil {
		return errors.Wrap(err, "save tuning")
	}
	return nil
}

// DecodeTuning parses a saved blob on top of the defaults, so fields missing
// from older saves keep their default values.
func DecodeTuning(data []byte) (*Tuning, error) {
	t := Tuning{
		Tether:    DefaultTether(),
		Character: DefaultCharacter(),
		Input:     DefaultInput(),
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "decode tuning")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
