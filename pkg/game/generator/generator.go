package generator

import (
	"topdown/pkg/engine/world"
)

// CoverGenerator is an interface for cover layout algorithms. Generate
// returns the pillars of one level: solid rects inside area that keep clear
// of every point in keepClear.
type CoverGenerator interface {
	Generate(level int, area world.Rect, keepClear []world.Vec2) []world.Rect
	Name() string
}

// Generator names accepted by ByName
const (
	NameBSP  = "bsp"
	NameOpen = "open"
)

// Available generators
var (
	Open = &OpenGenerator{}
	BSP  = &BSPGenerator{Seed: 1}
)

// DefaultGenerator is the default cover generator
var DefaultGenerator CoverGenerator = BSP

// ByName returns the generator with the given name. BSP layouts use seed.
func ByName(name string, seed int64) (CoverGenerator, bool) {
	switch name {
	case NameBSP:
		return &BSPGenerator{Seed: seed}, true
	case NameOpen:
		return Open, true
	}
	return nil, false
}

// OpenGenerator leaves the arena without cover
type OpenGenerator struct{}

// Name returns the name of this generator
func (g *OpenGenerator) Name() string {
	return "Open arena"
}

// Generate returns no pillars
func (g *OpenGenerator) Generate(level int, area world.Rect, keepClear []world.Vec2) []world.Rect {
	return nil
}
