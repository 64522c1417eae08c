package world

import "testing"

func TestNewGrid_CellPositions(t *testing.T) {
	g := NewGrid(6, 6, V(-5, 5), 2)

	c := g.GetCell(0, 0)
	if c == nil || c.Position != V(-5, 5) {
		t.Errorf("GetCell(0,0).Position = %v, want (-5,5)", c)
	}

	c = g.GetCell(2, 3)
	if c == nil || c.Row != 2 || c.Col != 3 {
		t.Fatalf("GetCell(2,3) = %v, want cell (2,3)", c)
	}
	if c.Position != V(1, 1) {
		t.Errorf("GetCell(2,3).Position = %v, want (1,1)", c.Position)
	}
	if g.Spacing() != 2 {
		t.Errorf("Spacing() = %v, want 2", g.Spacing())
	}
}

func TestGrid_GetCellOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2, Zero, 1)
	if g.GetCell(-1, 0) != nil || g.GetCell(0, 2) != nil {
		t.Error("GetCell out of bounds returned a cell, want nil")
	}
}

func TestGrid_ForEachCellVisitsRowMajor(t *testing.T) {
	g := NewGrid(2, 3, Zero, 1)

	var visited []Vec2
	g.ForEachCell(func(row, col int, cell *Cell) {
		if cell.Row != row || cell.Col != col {
			t.Errorf("cell (%d,%d) visited as (%d,%d)", cell.Row, cell.Col, row, col)
		}
		visited = append(visited, cell.Position)
	})
	if len(visited) != 6 {
		t.Fatalf("visited %d cells, want 6", len(visited))
	}
	// Rows grow southwards in world space
	if visited[3].Y >= visited[0].Y {
		t.Errorf("row 1 at y=%v, want below row 0 at y=%v", visited[3].Y, visited[0].Y)
	}
}
