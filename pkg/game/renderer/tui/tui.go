// Package tui renders the arena as coloured text and steps the game one
// short slice of time per key press.
package tui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"topdown/pkg/engine/input"
	"topdown/pkg/engine/terminal"
	"topdown/pkg/engine/world"
	"topdown/pkg/game/audio"
	"topdown/pkg/game/gameplay"
	"topdown/pkg/game/levelgen"
	"topdown/pkg/game/renderer"
	"topdown/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 9
	ViewportMinCols = 17
	// Lines needed outside the map:
	// - Level title + blank (2)
	// - Status bar (2)
	// - Controls (2)
	// - Messages pane (header + 5 messages) (6)
	// - Input prompt (2)
	ViewportTopMargin  = 14
	ViewportSideMargin = 4

	// HealthBarWidth is the number of cells in the status health bar
	HealthBarWidth = 20
)

// ErrNotInteractive is returned by Run when stdin or stdout is not a terminal
var ErrNotInteractive = errors.New("terminal renderer needs an interactive terminal")

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's constant format string check quiet.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorFloor      color.Style
	colorWall       color.Style
	colorPlayer     color.Style
	colorEnemy      color.Style
	colorProjectile color.Style
	colorDoorClosed color.Style
	colorDoorOpen   color.Style
	colorLever      color.Style
	colorSubtle     color.Style
	colorItem       color.Style
	colorDenied     color.Style
	colorAction     color.Style

	sound *audio.Player
}

// New creates a new TUI renderer. sound may be nil.
func New(sound *audio.Player) *TUIRenderer {
	return &TUIRenderer{sound: sound}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	renderer.InitColors()

	t.colorFloor = color.Style{color.FgDarkGray}
	t.colorWall = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = renderer.ColorPlayer
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorProjectile = renderer.ColorProjectile
	t.colorDoorClosed = renderer.ColorDoor
	t.colorDoorOpen = color.Style{color.FgGreen}
	t.colorLever = renderer.ColorLever
	t.colorSubtle = renderer.ColorSubtle
	t.colorItem = renderer.ColorItem
	t.colorDenied = renderer.ColorDenied
	t.colorAction = renderer.ColorAction
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput reads one key press and returns its high-level Intent
func (t *TUIRenderer) GetInput() (input.Intent, error) {
	code, err := input.ReadKey()
	if err != nil {
		return input.Intent{}, err
	}
	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   code,
	}
	return input.MapToIntent(input.NewDebouncedInput(raw)), nil
}

// Run reads keys until the player quits. Movement, aiming, waiting and using
// items each advance time by gameplay.TurnDuration.
func (t *TUIRenderer) Run(g *state.Game) error {
	if !terminal.IsInteractive() {
		return ErrNotInteractive
	}

	for !g.Quit {
		t.Clear()
		t.RenderFrame(g)

		intent, err := t.GetInput()
		if err != nil {
			return err
		}
		if g.GameOver && intent.Action != input.ActionQuit {
			continue
		}
		if err := gameplay.ProcessIntent(g, intent); err != nil {
			return err
		}
		if !advancesTime(intent.Action) || g.GameOver {
			continue
		}

		events, err := gameplay.Step(g, gameplay.TurnDuration)
		if t.sound != nil {
			t.sound.HandleEvents(events, g.Player)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// advancesTime reports whether an action lets the world move on
func advancesTime(a input.Action) bool {
	return a.IsMove() || a.IsAim() || a == input.ActionWait || a == input.ActionInteract || a == input.ActionDrop
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleProjectile:
		return t.colorProjectile.Sprint(text)
	case renderer.StyleDoorClosed:
		return t.colorDoorClosed.Sprint(text)
	case renderer.StyleDoorOpen:
		return t.colorDoorOpen.Sprint(text)
	case renderer.StyleLever:
		return t.colorLever.Sprint(text)
	case renderer.StyleLeverLocked, renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// GetViewportSize returns the map area in cells; both sides are odd so the
// player sits in the middle
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	cols, rows = terminal.FitViewport(ViewportSideMargin*2, ViewportTopMargin, ViewportMinCols, ViewportMinRows)
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	fmt.Print(t.Frame(g))
	fmt.Printf("\n> ")
}

// Frame builds the frame text without printing it
func (t *TUIRenderer) Frame(g *state.Game) string {
	var b strings.Builder

	b.WriteString(t.colorAction.Sprint(levelgen.Title(g.Level)))
	b.WriteString("\n\n")

	t.writeMap(&b, g)
	t.writeStatusBar(&b, g)
	t.writeControls(&b, g)
	t.writeMessagesPane(&b, g)
	return b.String()
}

// viewOrigin returns the north-west corner of a rows x cols view centred on
// the player, or on the arena when there is no player
func viewOrigin(g *state.Game, rows, cols int) world.Vec2 {
	center := g.Arena.Min.Add(g.Arena.Max).Scale(0.5)
	if p := g.PlayerActor(); p != nil {
		center = p.Position
	}
	return world.V(
		center.X-float64(cols)/2,
		center.Y+float64(rows)/2,
	)
}

func (t *TUIRenderer) writeMap(b *strings.Builder, g *state.Game) {
	rows, cols := t.GetViewportSize()
	// Arenas smaller than the terminal are shown whole
	rows = min(rows, int(g.Arena.Height())+2)
	cols = min(cols, int(g.Arena.Width())+2)

	r := renderer.Rasterize(g, viewOrigin(g, rows, cols), rows, cols, 1)
	indent := strings.Repeat(" ", ViewportSideMargin)
	for _, row := range r.Cells {
		b.WriteString(indent)
		for _, gl := range row {
			b.WriteString(t.StyleText(string(gl.Rune), gl.Style))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// HealthBar draws a fraction as a fixed-width bar
func HealthBar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func (t *TUIRenderer) writeStatusBar(b *strings.Builder, g *state.Game) {
	p := g.PlayerActor()
	if p == nil {
		return
	}

	bar := HealthBar(p.HealthFraction(), HealthBarWidth)
	style := t.colorItem
	if p.HealthFraction() < 0.3 {
		style = t.colorDenied
	}

	held := dynamicGet("HUD_NOTHING")
	if g.Holder != nil && g.Holder.Held() != nil {
		held = t.colorItem.Sprint(g.Holder.Held().Type)
	}

	fmt.Fprintf(b, "%s %s %.0f/%.0f   %s: %s   %s\n\n",
		dynamicGet("HUD_HEALTH"), style.Sprint(bar), p.Health(), p.MaxHealth(),
		dynamicGet("HUD_HELD"), held,
		renderer.FormatString(dynamicGet("ENEMIES_REMAINING"), g.EnemiesRemaining()))
}

func (t *TUIRenderer) writeControls(b *strings.Builder, g *state.Game) {
	if g.GameOver {
		b.WriteString(renderer.ApplyMarkup(dynamicGet("HUD_GAME_OVER")))
	} else {
		b.WriteString(renderer.ApplyMarkup(dynamicGet("HUD_CONTROLS")))
	}
	b.WriteString("\n\n")
}

func (t *TUIRenderer) writeMessagesPane(b *strings.Builder, g *state.Game) {
	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("-", 40)))
	b.WriteString("\n")
	for _, msg := range g.Messages {
		b.WriteString(renderer.ApplyMarkup(msg))
		b.WriteString("\n")
	}
}
