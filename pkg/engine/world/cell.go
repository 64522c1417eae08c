// Package world provides generic 2D world primitives: vectors, directions and
// a grid of spawn cells laid over continuous world space.
// These are engine-level constructs usable by any top-down game.
package world

// Cell represents a single floor tile of a Grid.
type Cell struct {
	// Grid position
	Row int
	Col int

	// Position is the world-space centre of the cell
	Position Vec2
}

// NewCell creates a new cell at the given grid and world position
func NewCell(row, col int, pos Vec2) *Cell {
	return &Cell{
		Row:      row,
		Col:      col,
		Position: pos,
	}
}
