// Package demo is the playable ebiten front end of a match: device polling,
// the fixed tick and drawing. Everything it shows is read back from the
// match; nothing here changes the simulation except through FrameInput,
// Respawn and the level choice.
package demo

import (
	"image/color"
	"log"

	"github.com/automoto/tethered/archetypes"
	"github.com/automoto/tethered/assets"
	"github.com/automoto/tethered/character"
	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/render"
	"github.com/automoto/tethered/scenes"
	"github.com/automoto/tethered/vmath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

type Scene struct {
	levels     *assets.LevelLoader
	levelIndex int
	cfg        scenes.MatchConfig

	// Store receives the live tuning when the save key is pressed. Nil
	// disables saving.
	Store *config.Store

	match  *scenes.Match
	poller *Poller
	rope   *render.RopeSmoother
	fade   *render.Fade
	camera *render.Camera

	pixel      *ebiten.Image
	ropePoints []vmath.Vec2
	message    string
}

// NewScene starts a match on the first bundled level.
func NewScene(levels *assets.LevelLoader, cfg scenes.MatchConfig) (*Scene, error) {
	if levels == nil || len(levels.Names()) == 0 {
		return nil, errors.New("no levels to play")
	}

	s := &Scene{
		levels: levels,
		cfg:    cfg,
		poller: NewPoller(),
		fade:   NewFadeFromConfig(),
		pixel:  ebiten.NewImage(1, 1),
	}
	s.pixel.Fill(color.White)

	if err := s.loadLevel(0); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFadeFromConfig returns the respawn fade with the configured duration.
func NewFadeFromConfig() *render.Fade {
	return render.NewFade(config.Render.RespawnFadeSeconds)
}

func (s *Scene) loadLevel(index int) error {
	level := s.levels.LevelAt(index)
	match, err := scenes.NewMatch(level, s.cfg)
	if err != nil {
		return errors.Wrapf(err, "start level %q", level.Name)
	}
	if s.match != nil {
		s.match.Close()
	}

	s.match = match
	s.levelIndex = index
	s.rope = render.NewRopeSmoother(s.cfg.Simulation.TickRate, config.Render.RopeSpringFrequency, config.Render.RopeSpringDamping)
	s.camera = render.NewCamera(float64(config.C.Width), float64(config.C.Height),
		float64(level.MapWidth), float64(level.MapHeight))
	s.snapPresentation()
	s.fade.Start()

	e := match.ECS()
	e.AddRenderer(archetypes.Default, s.drawLevel)
	e.AddRenderer(archetypes.Default, s.drawRope)
	e.AddRenderer(archetypes.Default, s.drawCharacters)
	e.AddRenderer(archetypes.Default, s.drawProbes)
	e.AddRenderer(archetypes.HUD, s.drawHUD)
	e.AddRenderer(archetypes.HUD, s.drawFade)
	return nil
}

func (s *Scene) snapPresentation() {
	s.ropePoints = s.match.Tether().Positions(s.ropePoints[:0])
	s.rope.Snap(s.ropePoints)
	s.camera.Snap(s.match.Character(0).Position(), s.match.Character(1).Position())
}

// Update runs one fixed tick.
func (s *Scene) Update() error {
	s.poller.Poll()
	s.handleHotkeys()

	if s.poller.Respawn() {
		if err := s.match.RespawnAtSpawns(); err != nil {
			return err
		}
		s.snapPresentation()
		s.fade.Start()
	}

	s.match.Tick([2]character.FrameInput{
		s.poller.FrameInput(0),
		s.poller.FrameInput(1),
	})

	s.ropePoints = s.match.Tether().Positions(s.ropePoints[:0])
	s.rope.Update(s.ropePoints)
	s.camera.Follow(s.match.Character(0).Position(), s.match.Character(1).Position())
	s.fade.Update(float32(s.cfg.Simulation.Dt()))
	return nil
}

func (s *Scene) handleHotkeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		next := (s.levelIndex + 1) % len(s.levels.Names())
		if err := s.loadLevel(next); err != nil {
			log.Printf("Warning: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		config.Debug.DrawProbes = !config.Debug.DrawProbes
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		s.saveTuning()
	}
}

func (s *Scene) saveTuning() {
	if s.Store == nil {
		return
	}
	if err := s.Store.SaveTuning(config.CurrentTuning()); err != nil {
		log.Printf("Warning: %v", err)
		s.message = "tuning not saved"
		return
	}
	s.message = "tuning saved"
}

func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.match.ECS().Draw(screen)
}

// Match exposes the running match.
func (s *Scene) Match() *scenes.Match {
	return s.match
}

// Close ends the running match.
func (s *Scene) Close() {
	s.match.Close()
}
