package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/audio"
	"topdown/pkg/game/gameplay"
	"topdown/pkg/game/state"
)

// Callout represents a floating message displayed at a world position
type Callout struct {
	Position  world.Vec2
	Message   string
	Color     color.Color
	CreatedAt float64 // renderer clock, seconds
	ExpiresAt float64
}

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// EbitenRenderer is the Ebiten-based graphical renderer. Ebiten calls Update
// and Draw on the same goroutine, so the renderer owns the game outright
// while it runs.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Pixels per world unit (adjustable with +/-)
	tileSize int

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when tile size changes)
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace
	cachedSansBoldFace *text.GoTextFace

	game   *state.Game
	camera *gameplay.Camera
	sound  *audio.Player

	callouts []Callout

	// clock counts simulated seconds for animations
	clock float64

	windowOpenedLogged bool

	// err is the first game error seen in Update, returned from Run
	err error
}
