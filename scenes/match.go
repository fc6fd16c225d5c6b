// Package scenes owns a running match: the ECS world holding the level, both
// tethered characters and the rope, and the fixed order its systems run in.
package scenes

import (
	"log"
	"math"

	"github.com/automoto/tethered/character"
	"github.com/automoto/tethered/components"
	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/shared/leveldata"
	"github.com/automoto/tethered/systems"
	"github.com/automoto/tethered/systems/factory"
	"github.com/automoto/tethered/tether"
	"github.com/automoto/tethered/vmath"
	"github.com/pkg/errors"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Match is one two-player session. It is single-threaded: Tick and every
// other method must be called from the same goroutine.
type Match struct {
	ecs   *ecs.ECS
	level *leveldata.Level
	cfg   MatchConfig
	space *resolv.Space

	characters [2]*donburi.Entry
	rope       *donburi.Entry
	clock      *donburi.Entry
}

// peerHandle resolves the partner by index on every call, so neither
// character holds a pointer to the other.
type peerHandle struct {
	m     *Match
	index int
}

func (p peerHandle) Position() vmath.Vec2 {
	return p.m.Character(p.index).Position()
}

func (p peerHandle) IsAnchored() bool {
	return p.m.Character(p.index).IsAnchored()
}

// NewMatch builds the collision space from level, spawns both characters at
// the level's spawn points 0 and 1 and lays the rope between them.
func NewMatch(level *leveldata.Level, cfg MatchConfig) (*Match, error) {
	if level == nil {
		return nil, errors.Wrap(leveldata.ErrInvalidLevel, "nil level")
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		level: level,
		cfg:   cfg,
	}
	m.configure()

	m.clock = factory.CreateSimulation(m.ecs, cfg.Simulation)
	factory.CreateLevel(m.ecs, level)
	spaceEntry, _ := components.Space.First(m.ecs.World)
	m.space = components.Space.Get(spaceEntry)

	spawns := m.levelSpawns()
	for i := range m.characters {
		m.characters[i] = factory.CreateCharacter(m.ecs, m.space, i, spawns[i], cfg.Character, cfg.Input)
	}
	for i := range m.characters {
		m.Character(i).SetPeer(peerHandle{m: m, index: 1 - i})
	}

	rope, err := factory.CreateRope(m.ecs, spawns[0], spawns[1], cfg.Tether)
	if err != nil {
		return nil, err
	}
	m.rope = rope

	log.Printf("match created on level %q", level.Name)
	return m, nil
}

func (m *Match) configure() {
	m.ecs.AddSystem(systems.UpdateClock)
	m.ecs.AddSystem(systems.UpdateSensing)
	m.ecs.AddSystem(systems.UpdateControl)
	m.ecs.AddSystem(systems.UpdateBodies)
	m.ecs.AddSystem(systems.UpdateSeparation)
	m.ecs.AddSystem(systems.UpdateVelocityLimits)
	m.ecs.AddSystem(systems.UpdateTether)
	m.ecs.AddSystem(systems.UpdateStates)
}

func (m *Match) levelSpawns() [2]vmath.Vec2 {
	var out [2]vmath.Vec2
	for i := range out {
		s, _ := m.level.Spawn(i)
		out[i] = vmath.V(s.X, s.Y)
	}
	return out
}

// Tick advances the match by one fixed step with one input per character.
func (m *Match) Tick(inputs [2]character.FrameInput) {
	for i, entry := range m.characters {
		components.Input.Get(entry).Current = inputs[i]
	}
	m.ecs.Update()
}

// Respawn resets both characters at the given centres and lays the rope
// straight between them.
func (m *Match) Respawn(a, b vmath.Vec2) error {
	if !a.IsFinite() || !b.IsFinite() {
		return errors.Wrapf(config.ErrInvalidConfiguration, "respawn at %v, %v", a, b)
	}

	for i, pos := range [2]vmath.Vec2{a, b} {
		entry := m.characters[i]
		components.Character.Get(entry).Reset(pos, 0)
		components.Input.SetValue(entry, components.InputData{})
		state := components.State.Get(entry)
		*state = components.StateData{
			CurrentState:  config.StateAirborne,
			PreviousState: state.CurrentState,
		}
	}

	rope := m.Tether()
	if err := rope.Initialize(a, b, m.cfg.Tether.SegmentCount, rope.MaxLength()); err != nil {
		return err
	}
	log.Printf("respawn at %v and %v", a, b)
	return nil
}

// RespawnAtSpawns respawns both characters at the level's spawn points.
func (m *Match) RespawnAtSpawns() error {
	spawns := m.levelSpawns()
	return m.Respawn(spawns[0], spawns[1])
}

// Character returns character 0 or 1.
func (m *Match) Character(i int) *character.Character {
	return components.Character.Get(m.characters[i]).Character
}

// State returns the presentation state of character i.
func (m *Match) State(i int) components.StateData {
	return *components.State.Get(m.characters[i])
}

func (m *Match) Tether() *tether.Tether {
	return components.Tether.Get(m.rope).Tether
}

// ForceStopAnchoring releases character i's anchor from outside its state
// machine. The partner's swing ends on the next tick.
func (m *Match) ForceStopAnchoring(i int) {
	m.Character(i).ForceStopAnchoring()
}

// SetMaxLength changes both the hard separation cap and the rope's rest
// length.
func (m *Match) SetMaxLength(length float64) error {
	if math.IsNaN(length) {
		return errors.Wrap(config.ErrInvalidConfiguration, "tether max length is NaN")
	}
	if err := m.Tether().SetMaxLength(length); err != nil {
		return err
	}
	components.Tether.Get(m.rope).Config.MaxLength = length
	return nil
}

// Time is the simulated time in seconds.
func (m *Match) Time() float64 {
	return components.Simulation.Get(m.clock).Time
}

func (m *Match) Ticks() int {
	return components.Simulation.Get(m.clock).Tick
}

func (m *Match) Config() MatchConfig {
	return m.cfg
}

func (m *Match) Level() *leveldata.Level {
	return m.level
}

func (m *Match) Space() *resolv.Space {
	return m.space
}

// ECS exposes the world to renderers.
func (m *Match) ECS() *ecs.ECS {
	return m.ecs
}

// Close removes the characters from the space and drops the rope.
func (m *Match) Close() {
	for i := range m.characters {
		m.Character(i).Body.Remove()
	}
	m.Tether().Teardown()
}
