package ebiten

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/levelgen"
	"topdown/pkg/game/renderer"
	"topdown/pkg/game/setup"
)

// drawable is an actor or projectile queued for depth-sorted drawing
type drawable struct {
	y    float64
	draw func()
}

// worldToScreen converts a world position to screen pixels around the camera
func (e *EbitenRenderer) worldToScreen(p world.Vec2) (float64, float64) {
	view := e.camera.View()
	tile := float64(e.tileSize)
	x := float64(e.windowWidth)/2 + (p.X-view.X)*tile
	y := float64(e.windowHeight)/2 - (p.Y-view.Y)*tile
	return x, y
}

// rectToScreen converts a world rectangle to screen x, y, width, height
func (e *EbitenRenderer) rectToScreen(r world.Rect) (x, y, w, h float32) {
	x0, y0 := e.worldToScreen(world.V(r.Min.X, r.Max.Y))
	tile := float64(e.tileSize)
	return float32(x0), float32(y0), float32(r.Width() * tile), float32(r.Height() * tile)
}

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.game == nil {
		return
	}

	e.drawArena(screen)
	e.drawMechanisms(screen)
	e.drawItems(screen)
	e.drawBodies(screen)
	e.drawCallouts(screen)
	e.drawHUD(screen)
}

func (e *EbitenRenderer) drawArena(screen *ebiten.Image) {
	g := e.game
	x, y, w, h := e.rectToScreen(g.Arena)
	vector.DrawFilledRect(screen, x, y, w, h, colorMapBackground, false)

	// One grid line per world unit
	for gx := g.Arena.Min.X; gx <= g.Arena.Max.X; gx++ {
		x0, y0 := e.worldToScreen(world.V(gx, g.Arena.Max.Y))
		x1, y1 := e.worldToScreen(world.V(gx, g.Arena.Min.Y))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, colorFloorGrid, false)
	}
	for gy := g.Arena.Min.Y; gy <= g.Arena.Max.Y; gy++ {
		x0, y0 := e.worldToScreen(world.V(g.Arena.Min.X, gy))
		x1, y1 := e.worldToScreen(world.V(g.Arena.Max.X, gy))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, colorFloorGrid, false)
	}

	if g.Floors != nil {
		half := g.Floors.Spacing() * 0.4
		g.Floors.ForEachCell(func(row, col int, cell *world.Cell) {
			r := world.Rect{
				Min: cell.Position.Sub(world.V(half, half)),
				Max: cell.Position.Add(world.V(half, half)),
			}
			x, y, w, h := e.rectToScreen(r)
			vector.DrawFilledRect(screen, x, y, w, h, colorSpawnCell, false)
		})
	}

	for _, wall := range g.Walls {
		x, y, w, h := e.rectToScreen(wall)
		vector.DrawFilledRect(screen, x, y, w, h, colorWall, false)
		vector.StrokeRect(screen, x, y, w, h, 1, colorWallEdge, false)
	}
}

func (e *EbitenRenderer) drawMechanisms(screen *ebiten.Image) {
	g := e.game
	for _, d := range g.Doors {
		col := colorDoorClosed
		if d.IsOpen() {
			col = colorDoorOpen
		}
		x, y, w, h := e.rectToScreen(d.Bounds())
		vector.DrawFilledRect(screen, x, y, w, h, col, true)
	}

	tile := float32(e.tileSize)
	for _, l := range g.Levers {
		col := colorLever
		if l.Locked() || l.State() == entities.LeverDisabled {
			col = colorLeverLocked
		}
		cx, cy := e.worldToScreen(l.Position)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), tile*0.15, col, true)

		// The handle leans toward the lever's position
		lean := 0.0
		switch l.State() {
		case entities.LeverLeft:
			lean = -0.3
		case entities.LeverRight:
			lean = 0.3
		}
		hx, hy := e.worldToScreen(l.Position.Add(world.V(lean, 0.4)))
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(hx), float32(hy), tile*0.08, col, true)
	}
}

func (e *EbitenRenderer) drawItems(screen *ebiten.Image) {
	tile := float32(e.tileSize)
	for _, it := range e.game.Items {
		if !it.OnFloor() {
			continue
		}
		cx, cy := e.worldToScreen(it.Position)
		x, y := float32(cx), float32(cy)
		switch {
		case it.Type == setup.ItemMedkit:
			s := tile * 0.4
			vector.DrawFilledRect(screen, x-s/2, y-s/2, s, s, color.White, true)
			vector.DrawFilledRect(screen, x-s/2, y-s/8, s, s/4, colorMedkit, true)
			vector.DrawFilledRect(screen, x-s/8, y-s/2, s/4, s, colorMedkit, true)
		case e.game.KeyForItem(it) != nil:
			vector.DrawFilledCircle(screen, x-tile*0.1, y, tile*0.12, colorKey, true)
			vector.StrokeLine(screen, x, y, x+tile*0.25, y, tile*0.06, colorKey, true)
		default:
			vector.DrawFilledCircle(screen, x, y, tile*float32(entities.ItemRadius), colorItem, true)
		}
	}
}

// drawBodies draws projectiles and actors, northern ones first so southern
// ones overlap them
func (e *EbitenRenderer) drawBodies(screen *ebiten.Image) {
	g := e.game
	var queue []drawable

	for _, p := range g.Projectiles {
		if p.Spent() {
			continue
		}
		queue = append(queue, drawable{y: p.Position.Y, draw: func() { e.drawProjectile(screen, p) }})
	}
	for _, a := range g.Actors {
		if a.IsDead() {
			continue
		}
		queue = append(queue, drawable{y: a.Position.Y, draw: func() { e.drawActor(screen, a) }})
	}

	sort.SliceStable(queue, func(i, j int) bool { return queue[i].y > queue[j].y })
	for _, d := range queue {
		d.draw()
	}
}

func (e *EbitenRenderer) drawProjectile(screen *ebiten.Image, p *entities.Projectile) {
	col := colorProjectile
	if p.Faction == entities.FactionEnemy {
		col = colorEnemyProjectile
	}
	cx, cy := e.worldToScreen(p.Position)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(e.tileSize)*entities.ProjectileRadius*1.5, col, true)
}

// actorColor picks a body color by faction and archetype
func actorColor(a *entities.Actor) color.Color {
	switch {
	case a.Faction == entities.FactionPlayer:
		return colorPlayer
	case a.Stats.Stationary:
		return colorEnemyTurret
	case a.Stats.Kamikaze:
		return colorEnemyKamikaze
	default:
		return colorEnemy
	}
}

func (e *EbitenRenderer) drawActor(screen *ebiten.Image, a *entities.Actor) {
	tile := float32(e.tileSize)
	cx, cy := e.worldToScreen(a.Position)
	x, y := float32(cx), float32(cy)
	r := tile * float32(a.Stats.Radius)

	col := e.getHitFlashColor(actorColor(a), a.HitCooldown())
	vector.DrawFilledCircle(screen, x, y, r, col, true)

	// Facing marker
	fx, fy := e.worldToScreen(a.Position.Add(a.AimDirection().Scale(a.Stats.Radius * 1.3)))
	vector.StrokeLine(screen, x, y, float32(fx), float32(fy), tile*0.08, col, true)

	if a.Faction == entities.FactionEnemy {
		face := e.getMonoFontFace()
		e.drawCenteredText(screen, string(renderer.ActorRune(a)), cx, cy-face.Size/2, colorMapBackground, face)
		if a.HealthFraction() < 1 {
			w := r * 2
			vector.DrawFilledRect(screen, x-r, y-r-tile*0.2, w, tile*0.08, colorHealthBack, false)
			vector.DrawFilledRect(screen, x-r, y-r-tile*0.2, w*float32(a.HealthFraction()), tile*0.08, colorHealthLow, false)
		}
	}
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	g := e.game
	face := e.getSansFontFace()
	line := face.Size * 1.4

	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), float32(line*2+hudPadding), colorPanelBackground, false)

	e.drawColoredTextWithFace(screen, levelgen.Title(g.Level), hudPadding, hudPadding/2, colorAction, e.getSansBoldFontFace())

	if p := g.PlayerActor(); p != nil {
		y := float32(hudPadding/2 + line)
		frac := float32(p.HealthFraction())
		vector.DrawFilledRect(screen, hudPadding, y+2, healthBarWidth, float32(face.Size)-4, colorHealthBack, false)
		vector.DrawFilledRect(screen, hudPadding, y+2, healthBarWidth*frac, float32(face.Size)-4, e.getPulsingHealthColor(p.HealthFraction()), false)

		held := dynamicGet("HUD_NOTHING")
		if g.Holder != nil && g.Holder.Held() != nil {
			held = g.Holder.Held().Type
		}
		status := fmt.Sprintf("%.0f/%.0f   %s: %s", p.Health(), p.MaxHealth(), dynamicGet("HUD_HELD"), held)
		e.drawColoredText(screen, status, hudPadding*2+healthBarWidth, float64(y), colorText)
	}

	enemies := renderer.StripMarkup(fmt.Sprintf(dynamicGet("ENEMIES_REMAINING"), g.EnemiesRemaining()))
	e.drawColoredText(screen, enemies, float64(e.windowWidth)-e.getTextWidth(enemies)-hudPadding, hudPadding/2, colorEnemy)

	// Message log, newest last, older lines fainter
	msgs := g.Messages
	if len(msgs) > messageLines {
		msgs = msgs[len(msgs)-messageLines:]
	}
	top := float64(e.windowHeight) - hudPadding - line*float64(len(msgs)+1)
	for i, msg := range msgs {
		alpha := 0.4 + 0.6*float64(i+1)/float64(len(msgs))
		e.drawColoredTextSegments(screen, parseMarkup(msg), hudPadding, top+line*float64(i), alpha)
	}

	footer := parseMarkup(dynamicGet("HUD_CONTROLS"))
	if g.GameOver {
		footer = parseMarkup(dynamicGet("HUD_GAME_OVER"))
		for i := range footer {
			if footer[i].color == colorText {
				footer[i].color = colorDenied
			}
		}
	}
	e.drawColoredTextSegments(screen, footer, hudPadding, float64(e.windowHeight)-hudPadding-line, 0.8)
}
