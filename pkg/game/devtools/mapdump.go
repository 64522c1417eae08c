// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"topdown/pkg/engine/input"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/levelgen"
	"topdown/pkg/game/renderer"
	"topdown/pkg/game/state"
)

const worldDumpFilename = "world.txt"

// DumpWorldToFile writes a full debug dump to world.txt and returns its
// absolute path.
func DumpWorldToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(worldDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create dump: %w", err)
	}
	defer f.Close()

	if err := DumpWorld(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}

// DumpWorld writes metadata, a legend, the arena map and detailed
// actor/door/lever/item lists. The format is sectioned "key: value" text so
// both people and scripts can read it.
func DumpWorld(w io.Writer, g *state.Game) error {
	dw := &dumpWriter{w: w}

	// --- Metadata ---
	dw.println("=== WORLD DUMP DEBUG (arena, combat, mechanisms) ===")
	dw.println("")
	dw.println("--- Metadata ---")
	dw.printf("level: %d\n", g.Level)
	dw.printf("max_level: %d\n", g.MaxLevel)
	dw.printf("level_title: %s\n", levelgen.Title(g.Level))
	dw.printf("elapsed: %.2f\n", g.Elapsed)
	dw.printf("game_over: %v\n", g.GameOver)
	dw.printf("won: %v\n", g.Won)
	dw.printf("arena: %.1f,%.1f .. %.1f,%.1f\n", g.Arena.Min.X, g.Arena.Min.Y, g.Arena.Max.X, g.Arena.Max.Y)
	dw.printf("coordinate_system: x,y (world units, y up); map row 0 = north\n")
	dw.printf("enemies_remaining: %d\n", g.EnemiesRemaining())
	dw.printf("cover_pillars: %d\n", len(g.CoverWalls()))
	dw.printf("contacts: %d\n", g.Contacts.Size())
	dw.println("")

	// --- Legend ---
	dw.println("--- Legend (map symbols) ---")
	dw.println(". = floor  # = wall  | = = closed door  / = open door  < ^ > = lever position  x = locked lever  K = key  + = medkit  * = projectile  @ = player  s k f t = enemy archetype")
	dw.println("")

	// --- Map ---
	dw.println("--- Map ---")
	if g.Arena.Width() > 0 && g.Arena.Height() > 0 {
		r := renderer.ArenaRaster(g)
		for row := 0; row < r.Rows(); row++ {
			dw.println(r.Line(row))
		}
	}
	dw.println("")

	dw.println("--- Entities ---")

	dw.println("Actors:")
	for _, a := range g.Actors {
		dw.printf("  id: %d name: %q faction: %s pos: %.2f,%.2f health: %.1f/%.1f dead: %v hit_cooldown: %.2f shot_frames: %d\n",
			a.ID, a.Stats.Name, a.Faction, a.Position.X, a.Position.Y, a.Health(), a.MaxHealth(), a.IsDead(), a.HitCooldown(), a.ShotFrames())
	}
	dw.println("")

	dw.println("Projectiles:")
	for _, p := range g.Projectiles {
		dw.printf("  id: %d owner: %d faction: %s pos: %.2f,%.2f damage: %.1f lifetime: %.2f spent: %v\n",
			p.ID, p.Owner, p.Faction, p.Position.X, p.Position.Y, p.Damage, p.Lifetime, p.Spent())
	}
	dw.println("")

	dw.println("Doors:")
	for _, d := range g.Doors {
		dw.printf("  id: %d name: %q pos: %.2f,%.2f open: %v displacement: %.2f/%.2f activations: %d+%d/%d required_state: %s reversed: %v open_at_rest: %v\n",
			d.ID, d.Name, d.Position().X, d.Position().Y, d.IsOpen(), d.Displacement(), d.Config.MaxMove,
			d.LeverActivations(), d.KeyActivations(), d.Config.RequiredActivations, d.Config.RequiredState, d.Config.Reversed, d.OpenAtRest())
	}
	dw.println("")

	dw.println("Levers:")
	for _, l := range g.Levers {
		dw.printf("  id: %d name: %q pos: %.2f,%.2f state: %s value: %d one_shot: %v locked: %v debouncing: %v\n",
			l.ID, l.Name, l.Position.X, l.Position.Y, l.State(), l.Config.Value, l.Config.OneShot, l.Locked(), l.Debouncing())
	}
	dw.println("")

	dw.println("Items:")
	for _, it := range g.Items {
		dw.printf("  id: %d type: %q pos: %.2f,%.2f on_floor: %v destroyed: %v carried: %v%s\n",
			it.ID, it.Type, it.Position.X, it.Position.Y, it.OnFloor(), it.Destroyed(), it.Bearer() != nil, keySuffix(g, it))
	}
	dw.println("")

	dw.println("--- Key bindings ---")
	byAction := input.GetBindingsByAction()
	for a := input.ActionMoveNorth; a <= input.ActionScreenshot; a++ {
		dw.printf("  %s: %s\n", input.ActionName(a), strings.Join(byAction[a], ", "))
	}
	dw.println("")

	dw.println("Messages:")
	for _, msg := range g.Messages {
		dw.printf("  %s\n", renderer.StripMarkup(msg))
	}

	return dw.err
}

func keySuffix(g *state.Game, it *entities.CarryItem) string {
	k := g.KeyForItem(it)
	if k == nil {
		return ""
	}
	return fmt.Sprintf(" key_index: %d key_value: %d", k.Index, k.Value)
}

// dumpWriter remembers the first write error so the dump body stays flat
type dumpWriter struct {
	w   io.Writer
	err error
}

func (dw *dumpWriter) printf(format string, a ...any) {
	if dw.err == nil {
		_, dw.err = fmt.Fprintf(dw.w, format, a...)
	}
}

func (dw *dumpWriter) println(s string) {
	if dw.err == nil {
		_, dw.err = fmt.Fprintln(dw.w, s)
	}
}
