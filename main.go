package main

import (
	"flag"
	"log"

	"github.com/automoto/tethered/assets"
	"github.com/automoto/tethered/config"
	"github.com/automoto/tethered/demo"
	"github.com/automoto/tethered/fonts"
	"github.com/automoto/tethered/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene *demo.Scene
}

func NewGame(store *config.Store) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	levels, err := assets.NewLevelLoader()
	if err != nil {
		return nil, err
	}

	scene, err := demo.NewScene(levels, scenes.DefaultMatchConfig())
	if err != nil {
		return nil, err
	}
	scene.Store = store
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.DrawProbes, "probes", false, "draw ground probes")
	flag.BoolVar(&config.Debug.LogTransitions, "log-transitions", false, "log character state changes")
	noTuning := flag.Bool("defaults", false, "ignore saved tuning")
	flag.Parse()

	// Load saved tuning before the first match snapshots the globals.
	store, err := config.OpenStore("tethered")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if !*noTuning {
		if saved, err := store.LoadTuning(); err != nil {
			log.Printf("Warning: Ignoring saved tuning: %v", err)
		} else if saved != nil {
			if err := saved.Apply(); err != nil {
				log.Printf("Warning: Ignoring saved tuning: %v", err)
			}
		}
	}
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("tethered")
	ebiten.SetTPS(config.Simulation.TickRate)

	game, err := NewGame(store)
	if err != nil {
		log.Fatal(err)
	}
	defer game.scene.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
