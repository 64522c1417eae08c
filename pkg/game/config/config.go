// Package config reads game settings from TOPDOWN_* environment variables
// and command-line flags. Flags win over the environment.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"topdown/pkg/engine/input"
	"topdown/pkg/game/generator"
	"topdown/pkg/game/levelgen"
)

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Config holds the game's startup configuration
type Config struct {
	Renderer   string  `env:"TOPDOWN_RENDERER"    envDefault:"ebiten"`
	LevelDir   string  `env:"TOPDOWN_LEVEL_DIR"`
	StartLevel int     `env:"TOPDOWN_START_LEVEL" envDefault:"1"`
	MaxLevel   int     `env:"TOPDOWN_MAX_LEVEL"   envDefault:"10"`
	Locale     string  `env:"TOPDOWN_LOCALE"      envDefault:"en"`
	Audio      bool    `env:"TOPDOWN_AUDIO"       envDefault:"true"`
	Volume     float64 `env:"TOPDOWN_VOLUME"      envDefault:"0.3"`
	Dump       bool    `env:"TOPDOWN_DUMP"`
	Cover      string  `env:"TOPDOWN_COVER"       envDefault:"bsp"`
	Seed       int64   `env:"TOPDOWN_SEED"        envDefault:"1"`

	// Bindings rebinds actions by name, e.g. TOPDOWN_BINDINGS="use:f,drop:x"
	Bindings map[string]string `env:"TOPDOWN_BINDINGS"`
}

// ParseConfig reads the environment, then applies flags from args
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "renderer to use: ebiten (graphical) or tui (terminal)")
	fs.StringVar(&cfg.LevelDir, "levels", cfg.LevelDir, "directory with Level<N>.csv files (default: built-in levels)")
	fs.IntVar(&cfg.StartLevel, "level", cfg.StartLevel, "starting level (for developer testing)")
	fs.IntVar(&cfg.MaxLevel, "max-level", cfg.MaxLevel, "last level; clearing it wins the game")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message language")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "play sound cues")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "sound cue volume, 0 to 1")
	fs.StringVar(&cfg.Cover, "cover", cfg.Cover, "cover layout: bsp (pillars from level 2) or open")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for cover layouts")
	fs.Func("bind", "rebind an action, as action=key (repeatable)", func(v string) error {
		name, code, ok := strings.Cut(v, "=")
		if !ok {
			return fmt.Errorf("binding %q is not action=key", v)
		}
		if cfg.Bindings == nil {
			cfg.Bindings = make(map[string]string)
		}
		cfg.Bindings[name] = code
		return nil
	})
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "write world.txt for the starting level and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot start with
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	if c.StartLevel < 1 {
		return fmt.Errorf("start level must be at least 1, got %d", c.StartLevel)
	}
	if c.MaxLevel < 1 {
		return fmt.Errorf("max level must be at least 1, got %d", c.MaxLevel)
	}
	if _, ok := generator.ByName(c.Cover, c.Seed); !ok {
		return fmt.Errorf("unknown cover layout %q", c.Cover)
	}
	for name := range c.Bindings {
		if _, ok := input.ActionByName(name); !ok {
			return fmt.Errorf("unknown action %q in bindings", name)
		}
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %v", c.Volume)
	}
	return nil
}

// LevelLoader returns the loader for LevelDir, or for the built-in levels
// when it is empty. The first and last level files must both exist.
func (c Config) LevelLoader() (*levelgen.Loader, error) {
	l := levelgen.DefaultLoader()
	where := "built-in levels"
	if c.LevelDir != "" {
		l = levelgen.DirLoader(c.LevelDir)
		where = c.LevelDir
	}
	for _, level := range []int{min(c.StartLevel, c.MaxLevel), c.MaxLevel} {
		if !l.Exists(level) {
			return nil, fmt.Errorf("%s: no %s: %w", where, levelgen.FileName(level), levelgen.ErrLevelNotFound)
		}
	}
	return l, nil
}

// ApplyBindings installs the configured key bindings. Each named action
// loses its default keys.
func (c Config) ApplyBindings() {
	for name, code := range c.Bindings {
		if a, ok := input.ActionByName(name); ok {
			input.SetSingleBinding(a, code)
		}
	}
}
