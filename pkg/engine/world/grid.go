package world

// Grid is a rows x cols layout of floor cells placed in world space.
// Row 0 is the northern-most row.
type Grid struct {
	roomMap map[int]map[int]*Cell
	rows    int
	cols    int

	origin  Vec2
	spacing float64
}

// NewGrid creates a new grid with the given dimensions. The centre of cell
// (0,0) sits at origin, and neighbouring cells are spacing world units apart.
func NewGrid(rows, cols int, origin Vec2, spacing float64) *Grid {
	g := &Grid{}
	g.Build(rows, cols, origin, spacing)
	return g
}

// Spacing returns the distance between neighbouring cell centres
func (g *Grid) Spacing() float64 {
	return g.spacing
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}

	if g.roomMap == nil {
		return nil
	}

	rowMap, found := g.roomMap[row]
	if !found {
		return nil
	}

	return rowMap[col]
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int, origin Vec2, spacing float64) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.origin = origin
	g.spacing = spacing

	g.roomMap = make(map[int]map[int]*Cell, rows)

	for currentRow := 0; currentRow < rows; currentRow++ {
		g.roomMap[currentRow] = make(map[int]*Cell)

		for currentCol := 0; currentCol < cols; currentCol++ {
			pos := Vec2{
				X: origin.X + float64(currentCol)*spacing,
				Y: origin.Y - float64(currentRow)*spacing,
			}
			g.roomMap[currentRow][currentCol] = NewCell(currentRow, currentCol, pos)
		}
	}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.GetCell(row, col)
			if cell != nil {
				fn(row, col, cell)
			}
		}
	}
}
