// Package generator tests BSP cover layout: determinism, bounds, clearance
// and the per-level pillar count.
package generator

import (
	"testing"

	"topdown/pkg/engine/world"
)

func testArea() world.Rect {
	return world.Rect{Min: world.V(-6, -3.5), Max: world.V(6, 6.5)}
}

func TestBSPGenerate_FirstLevelIsOpen(t *testing.T) {
	if got := BSP.Generate(1, testArea(), nil); len(got) != 0 {
		t.Errorf("Generate(1) = %d pillars, want 0", len(got))
	}
}

func TestBSPGenerate_Deterministic(t *testing.T) {
	g := &BSPGenerator{Seed: 7}
	a := g.Generate(5, testArea(), nil)
	b := g.Generate(5, testArea(), nil)
	if len(a) != len(b) {
		t.Fatalf("pillar counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("pillar %d = %v, want %v", i, b[i], a[i])
		}
	}
}

func TestBSPGenerate_PillarsInsideAreaAndDistinct(t *testing.T) {
	area := testArea()
	for level := 1; level <= 10; level++ {
		pillars := BSP.Generate(level, area, nil)
		if len(pillars) > PillarCount(level) {
			t.Errorf("level %d: %d pillars, want at most %d", level, len(pillars), PillarCount(level))
		}
		seen := make(map[world.Rect]bool)
		for _, p := range pillars {
			if !area.Contains(p.Min) || !area.Contains(p.Max) {
				t.Errorf("level %d: pillar %v outside %v", level, p, area)
			}
			if seen[p] {
				t.Errorf("level %d: pillar %v placed twice", level, p)
			}
			seen[p] = true
		}
	}
}

func TestBSPGenerate_KeepsClear(t *testing.T) {
	// Block every lattice point but one
	var keep []world.Vec2
	for x := -4.0; x <= 4; x += 2 {
		for y := -2.0; y <= 6; y += 2 {
			if x == 2 && y == 2 {
				continue
			}
			keep = append(keep, world.V(x, y))
		}
	}

	for level := 2; level <= 10; level++ {
		pillars := BSP.Generate(level, testArea(), keep)
		for _, p := range pillars {
			c := p.Min.Add(p.Max).Scale(0.5)
			if c != world.V(2, 2) {
				t.Errorf("level %d: pillar at %v, want only (2,2)", level, c)
			}
		}
	}
}

func TestBSPGenerate_LaterLevelsGetCover(t *testing.T) {
	if got := BSP.Generate(7, testArea(), nil); len(got) == 0 {
		t.Error("Generate(7) placed no pillars")
	}
}

func TestPillarCount(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 0}, {1, 0}, {2, 1}, {4, 3}, {7, 6}, {20, 6},
	}
	for _, tt := range tests {
		if got := PillarCount(tt.level); got != tt.want {
			t.Errorf("PillarCount(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestByName(t *testing.T) {
	if g, ok := ByName(NameOpen, 1); !ok || g != Open {
		t.Errorf("ByName(%q) = %v, %v", NameOpen, g, ok)
	}
	g, ok := ByName(NameBSP, 42)
	if !ok {
		t.Fatalf("ByName(%q) not found", NameBSP)
	}
	if b, _ := g.(*BSPGenerator); b == nil || b.Seed != 42 {
		t.Errorf("ByName(%q) = %#v, want seed 42", NameBSP, g)
	}
	if _, ok := ByName("maze", 1); ok {
		t.Error("ByName(maze) found a generator")
	}
	if got := Open.Generate(9, testArea(), nil); got != nil {
		t.Errorf("Open.Generate() = %v, want nil", got)
	}
}
