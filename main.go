package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"topdown/pkg/game/audio"
	"topdown/pkg/game/config"
	"topdown/pkg/game/devtools"
	"topdown/pkg/game/gameplay"
	"topdown/pkg/game/generator"
	"topdown/pkg/game/i18n"
	"topdown/pkg/game/renderer"
	ebitenrenderer "topdown/pkg/game/renderer/ebiten"
	"topdown/pkg/game/renderer/tui"
	"topdown/pkg/game/state"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	cfg.ApplyBindings()

	lang, err := i18n.Init(cfg.Locale)
	if err != nil {
		log.Printf("Translations unavailable: %v", err)
	} else {
		log.Printf("Using locale %s", lang)
	}
	renderer.InitColors()

	g, err := buildGame(cfg)
	if err != nil {
		log.Fatalf("Could not start game: %v", err)
	}

	if cfg.Dump {
		path, err := devtools.DumpWorldToFile(g)
		if err != nil {
			log.Fatalf("World dump failed: %v", err)
		}
		fmt.Println(path)
		return
	}

	sound := audio.NewPlayer(cfg.Audio, cfg.Volume)
	if err := sound.Init(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	defer sound.Close()

	r := newRenderer(cfg.Renderer, sound)
	r.Init()

	if err := r.Run(g); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}

// buildGame creates the game from the configured level files
func buildGame(cfg config.Config) (*state.Game, error) {
	levels, err := cfg.LevelLoader()
	if err != nil {
		return nil, err
	}
	cover, _ := generator.ByName(cfg.Cover, cfg.Seed)

	return gameplay.BuildGame(gameplay.Options{
		StartLevel: cfg.StartLevel,
		MaxLevel:   cfg.MaxLevel,
		Levels:     levels,
		Cover:      cover,
	})
}

// newRenderer returns the renderer selected by name
func newRenderer(name string, sound *audio.Player) renderer.Renderer {
	if name == config.RendererTUI {
		return tui.New(sound)
	}
	return ebitenrenderer.New(sound)
}
