// Package renderer defines the rendering backends' common surface: the
// Renderer interface, text markup, and a glyph raster of the world that
// text-based outputs share.
package renderer

import (
	"topdown/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleFloor
	StyleWall
	StylePlayer
	StyleEnemy
	StyleProjectile
	StyleDoorClosed
	StyleDoorOpen
	StyleLever
	StyleLeverLocked
	StyleItem
	StyleSubtle
	StyleDenied
)

// Renderer defines the interface for game rendering backends.
// Implementations own their loop: the terminal backend steps time per key
// press, the ebiten backend advances in real time.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Run plays the game until the player quits or the game ends.
	// It returns level loading errors.
	Run(g *state.Game) error

	// RenderFrame renders a complete game frame
	RenderFrame(g *state.Game)
}
