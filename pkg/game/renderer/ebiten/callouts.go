package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/levelgen"
)

// AddCallout adds a floating message at a world position
func (e *EbitenRenderer) AddCallout(pos world.Vec2, message string, col color.Color, seconds float64) {
	e.callouts = append(e.callouts, Callout{
		Position:  pos,
		Message:   message,
		Color:     col,
		CreatedAt: e.clock,
		ExpiresAt: e.clock + seconds,
	})
}

// ClearCallouts removes all active callouts
func (e *EbitenRenderer) ClearCallouts() {
	e.callouts = nil
}

// expireCallouts drops callouts whose time is up
func (e *EbitenRenderer) expireCallouts() {
	kept := e.callouts[:0]
	for _, c := range e.callouts {
		if c.ExpiresAt > e.clock {
			kept = append(kept, c)
		}
	}
	e.callouts = kept
}

// handleEvents turns drained game events into sound, camera shake and
// callouts
func (e *EbitenRenderer) handleEvents(events []entities.Event) {
	g := e.game
	if e.sound != nil {
		e.sound.HandleEvents(events, g.Player)
	}

	for _, ev := range events {
		switch ev.Kind {
		case entities.EventHit:
			a := g.Actor(ev.Source)
			if a == nil {
				continue
			}
			col := ColorCalloutInfo
			if a.ID == g.Player {
				col = ColorCalloutDanger
				e.camera.Shake(hitShakeAmount, hitShakeTime)
			}
			e.AddCallout(a.Position, fmt.Sprintf("-%.0f", ev.Amount), col, calloutSeconds)

		case entities.EventKeyConsumed:
			if d := g.Door(ev.Target); d != nil {
				e.AddCallout(d.Origin, d.Name, ColorCalloutItem, calloutSeconds*2)
			}

		case entities.EventLevelLoaded, entities.EventGameWon:
			e.ClearCallouts()
			if p := g.PlayerActor(); p != nil {
				e.AddCallout(p.Position, levelgen.Title(g.Level), ColorCalloutSuccess, calloutSeconds*3)
			}
		}
	}
}

// drawCallouts renders callouts rising and fading above their positions
func (e *EbitenRenderer) drawCallouts(screen *ebiten.Image) {
	face := e.getSansBoldFontFace()
	for _, c := range e.callouts {
		life := c.ExpiresAt - c.CreatedAt
		age := e.clock - c.CreatedAt
		alpha := 1.0
		if life > 0 {
			alpha = 1 - age/life
		}
		x, y := e.worldToScreen(c.Position.Add(world.V(0, 0.6+age)))
		e.drawCenteredText(screen, c.Message, x, y-face.Size, applyAlpha(c.Color, alpha), face)
	}
}
