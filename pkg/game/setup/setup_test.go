package setup

import (
	"testing"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/levelgen"
	"topdown/pkg/game/state"
)

func TestSetupLevel_Arena(t *testing.T) {
	g := state.NewGame()
	SetupLevel(g)

	if g.Arena.Width() != 2*ArenaHalfWidth || g.Arena.Height() != 2*ArenaHalfHeight {
		t.Errorf("Arena = %v, want %vx%v", g.Arena, 2*ArenaHalfWidth, 2*ArenaHalfHeight)
	}
	if !g.Arena.Contains(g.PlayerSpawn) {
		t.Errorf("PlayerSpawn %v outside arena", g.PlayerSpawn)
	}
	cells := 0
	g.Floors.ForEachCell(func(row, col int, cell *world.Cell) {
		cells++
		if !g.Arena.Contains(cell.Position) {
			t.Errorf("floor (%d,%d) at %v outside arena", row, col, cell.Position)
		}
	})
	if want := levelgen.FloorRows * levelgen.FloorCols; cells != want {
		t.Errorf("Floors has %d cells, want %d", cells, want)
	}
	if top := g.Floors.GetCell(0, 0).Position.Y; top <= g.Floors.GetCell(1, 0).Position.Y {
		t.Errorf("row 0 at y=%v is not north of row 1", top)
	}
	if g.PlayerStats.MaxHealth <= 0 || !g.PlayerStats.UseWeapon {
		t.Errorf("PlayerStats = %+v, want an armed player", g.PlayerStats)
	}
}

func TestSetupLevel_Gates(t *testing.T) {
	g := state.NewGame()
	cfg := SetupLevel(g)

	if len(g.Doors) != 2 {
		t.Fatalf("len(Doors) = %d, want 2", len(g.Doors))
	}
	if cfg.LeverGate.IsOpen() || cfg.KeyGate.IsOpen() {
		t.Error("a gate starts open")
	}

	if got := len(cfg.LeverGate.Levers()); got != 2 {
		t.Errorf("lever gate has %d levers, want 2", got)
	}
	if cfg.LeverGate.Config.RequiredState != entities.LeverRight {
		t.Errorf("lever gate RequiredState = %v, want %v", cfg.LeverGate.Config.RequiredState, entities.LeverRight)
	}
	if cfg.LeverGate.Activated() {
		t.Error("lever gate activated before any lever is pulled")
	}
	for _, l := range cfg.Levers {
		l.Activate()
	}
	if !cfg.LeverGate.Activated() {
		t.Error("lever gate not activated with both levers right")
	}

	if !cfg.KeyGate.CanKeyUnlock(cfg.Key.Index) {
		t.Errorf("key gate rejects key %d", cfg.Key.Index)
	}
	if cfg.LeverGate.CanKeyUnlock(cfg.Key.Index) {
		t.Error("lever gate accepts keys")
	}
	if len(cfg.Medkits) != 2 {
		t.Errorf("len(Medkits) = %d, want 2", len(cfg.Medkits))
	}
}

func TestSetupLevel_WallsAreFixed(t *testing.T) {
	g := state.NewGame()
	SetupLevel(g)

	if len(g.Walls) == 0 {
		t.Fatal("no walls placed")
	}
	if got := len(g.CoverWalls()); got != 0 {
		t.Errorf("len(CoverWalls()) = %d, want 0", got)
	}
	walls := len(g.Walls)
	g.SetCover([]world.Rect{{Min: world.V(0, 0), Max: world.V(1, 1)}})
	g.SetCover(nil)
	if len(g.Walls) != walls {
		t.Errorf("len(Walls) = %d after cover swap, want %d", len(g.Walls), walls)
	}

	if !g.Arena.Contains(g.CoverArea.Min) || !g.Arena.Contains(g.CoverArea.Max) {
		t.Errorf("CoverArea %v not inside arena %v", g.CoverArea, g.Arena)
	}
	for _, w := range g.Walls {
		if g.CoverArea.Contains(w.Min.Add(w.Max).Scale(0.5)) {
			t.Errorf("wall %v lies in the cover area", w)
		}
	}
}

func TestRectBetween_NormalizesCorners(t *testing.T) {
	r := rectBetween(world.V(3, -1), world.V(-2, 4))
	want := world.Rect{Min: world.V(-2, -1), Max: world.V(3, 4)}
	if r != want {
		t.Errorf("rectBetween() = %v, want %v", r, want)
	}
}
