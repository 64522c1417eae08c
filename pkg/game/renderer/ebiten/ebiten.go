// Package ebiten provides an Ebiten-based 2D graphical renderer. The game
// advances in real time: each Ebiten tick reads held keys into the player's
// controls and runs one frame of gameplay.Advance.
package ebiten

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "topdown/pkg/engine/input"
	"topdown/pkg/game/audio"
	"topdown/pkg/game/gameplay"
	"topdown/pkg/game/renderer"
	"topdown/pkg/game/state"
)

// New creates a new Ebiten renderer. sound may be nil.
func New(sound *audio.Player) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  1024,
		windowHeight: 768,
		tileSize:     defaultTileSize,
		sound:        sound,
	}
}

// Init initializes the Ebiten renderer: window and fonts
func (e *EbitenRenderer) Init() {
	renderer.InitColors()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Top-down arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := e.loadFonts(); err != nil {
		log.Printf("Font loading failed: %v", err)
		e.err = err
	}
}

// Run starts the Ebiten game loop and blocks until the window closes or the
// player quits
func (e *EbitenRenderer) Run(g *state.Game) error {
	if e.err != nil {
		return e.err
	}
	e.RenderFrame(g)
	if p := g.PlayerActor(); p != nil {
		e.camera = gameplay.NewCamera(p.Position)
	} else {
		e.camera = gameplay.NewCamera(g.Arena.Min.Add(g.Arena.Max).Scale(0.5))
	}

	err := ebiten.RunGame(e)
	if e.err != nil {
		return e.err
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// RenderFrame sets the game Draw renders; Ebiten itself schedules drawing
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.game = g
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	g := e.game
	dt := 1.0 / float64(ebiten.TPS())

	e.handleZoom()

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		if err := gameplay.ProcessIntent(g, intent); err != nil {
			e.err = err
			return ebiten.Termination
		}
	}
	if g.Quit {
		return ebiten.Termination
	}

	if !g.GameOver {
		g.Controls.Move = moveVector()
		g.Controls.SetAim(aimVector())

		events, err := gameplay.Advance(g, dt)
		e.handleEvents(events)
		if err != nil {
			e.err = err
			return ebiten.Termination
		}
	}

	e.updateCamera(dt)
	e.clock += dt
	e.expireCallouts()
	return nil
}

// updateCamera follows the player, or settles on the arena centre once the
// game is over
func (e *EbitenRenderer) updateCamera(dt float64) {
	g := e.game
	if g.GameOver && !e.camera.Locked() {
		e.camera.Lock(g.Arena.Min.Add(g.Arena.Max).Scale(0.5))
	}
	target := e.camera.Position
	if p := g.PlayerActor(); p != nil {
		target = p.Position
	}
	e.camera.Update(target, dt)
}

// Layout tracks the window size so the view grows with it (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	}
	return e.windowWidth, e.windowHeight
}
