package devtools

import (
	"bytes"
	"strings"
	"testing"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/state"
)

func newDumpGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame()
	g.Arena = world.Rect{Min: world.V(-4, -4), Max: world.V(4, 4)}
	g.PlayerSpawn = world.V(0.5, 0.5)
	g.PlayerStats = entities.ActorStats{Name: "player", MaxHealth: 100}
	g.SpawnPlayer()
	g.SpawnEnemy(entities.ActorStats{Name: "t1", MaxHealth: 50, Stationary: true}, world.V(2.5, 2.5))
	g.AddLever("left", world.V(-2.5, -2.5), entities.LeverConfig{Start: entities.LeverLeft})
	g.AddMessage("hello")
	return g
}

func TestDumpWorld_Sections(t *testing.T) {
	g := newDumpGame(t)

	var buf bytes.Buffer
	if err := DumpWorld(&buf, g); err != nil {
		t.Fatalf("DumpWorld() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"--- Metadata ---", "--- Legend", "--- Map ---", "Actors:", "Doors:", "Levers:", "Items:", "level: 1", "enemies_remaining: 1", "cover_pillars: 0", "--- Key bindings ---", "  Use: e, enter", "  hello"} {
		if !strings.Contains(out, want) {
			t.Errorf("DumpWorld() output missing %q", want)
		}
	}
}

func TestDumpWorld_MapShowsEntities(t *testing.T) {
	g := newDumpGame(t)

	var buf bytes.Buffer
	if err := DumpWorld(&buf, g); err != nil {
		t.Fatalf("DumpWorld() error = %v", err)
	}

	_, mapPart, _ := strings.Cut(buf.String(), "--- Map ---\n")
	mapPart, _, _ = strings.Cut(mapPart, "\n\n")
	lines := strings.Split(mapPart, "\n")
	if len(lines) != 8 {
		t.Fatalf("map has %d rows, want 8", len(lines))
	}
	// (0.5,0.5) lies in row 3, col 4 of an 8x8 raster anchored at (-4,4)
	if got := lines[3][4]; got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if got := lines[1][6]; got != 't' {
		t.Errorf("turret cell = %q, want 't'", got)
	}
	if got := lines[6][1]; got != '<' {
		t.Errorf("lever cell = %q, want '<'", got)
	}
}

func TestWriteScreenshotHTML_EscapesMessages(t *testing.T) {
	g := newDumpGame(t)
	g.AddMessage("<b>boom</b>")

	var buf bytes.Buffer
	if err := WriteScreenshotHTML(&buf, g); err != nil {
		t.Fatalf("WriteScreenshotHTML() error = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<b>boom</b>") {
		t.Error("WriteScreenshotHTML() did not escape message markup")
	}
	if !strings.Contains(out, `<span class="player">@</span>`) {
		t.Error("WriteScreenshotHTML() missing player glyph")
	}
}
