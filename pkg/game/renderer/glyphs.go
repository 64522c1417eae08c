package renderer

import (
	"math"
	"unicode/utf8"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
	"topdown/pkg/game/setup"
	"topdown/pkg/game/state"
)

// Glyph is one character cell of a text view of the world
type Glyph struct {
	Rune  rune
	Style TextStyle
}

// Raster is a character grid covering a rectangle of the world.
// Row 0 is the northern edge; each cell spans Scale world units.
type Raster struct {
	Origin world.Vec2 // north-west corner
	Scale  float64
	Cells  [][]Glyph
}

// Rows returns the raster height in cells
func (r *Raster) Rows() int { return len(r.Cells) }

// Cols returns the raster width in cells
func (r *Raster) Cols() int {
	if len(r.Cells) == 0 {
		return 0
	}
	return len(r.Cells[0])
}

// CellAt returns the cell containing a world position
func (r *Raster) CellAt(p world.Vec2) (row, col int, ok bool) {
	col = int(math.Floor((p.X - r.Origin.X) / r.Scale))
	row = int(math.Floor((r.Origin.Y - p.Y) / r.Scale))
	if row < 0 || row >= r.Rows() || col < 0 || col >= r.Cols() {
		return 0, 0, false
	}
	return row, col, true
}

// CellCenter returns the world position at the centre of a cell
func (r *Raster) CellCenter(row, col int) world.Vec2 {
	return world.V(
		r.Origin.X+(float64(col)+0.5)*r.Scale,
		r.Origin.Y-(float64(row)+0.5)*r.Scale,
	)
}

// Line returns one raster row as plain runes
func (r *Raster) Line(row int) string {
	runes := make([]rune, r.Cols())
	for c, gl := range r.Cells[row] {
		runes[c] = gl.Rune
	}
	return string(runes)
}

func (r *Raster) set(p world.Vec2, gl Glyph) {
	if row, col, ok := r.CellAt(p); ok {
		r.Cells[row][col] = gl
	}
}

// fill paints every cell whose centre lies in rect, or the cell under the
// rect's centre when the rect is thinner than a cell
func (r *Raster) fill(rect world.Rect, gl Glyph) {
	painted := false
	for row := range r.Cells {
		for col := range r.Cells[row] {
			if rect.Contains(r.CellCenter(row, col)) {
				r.Cells[row][col] = gl
				painted = true
			}
		}
	}
	if !painted {
		r.set(rect.Min.Add(rect.Max).Scale(0.5), gl)
	}
}

// ArenaRaster rasterizes the whole arena at one cell per world unit
func ArenaRaster(g *state.Game) *Raster {
	rows := int(math.Ceil(g.Arena.Height()))
	cols := int(math.Ceil(g.Arena.Width()))
	return Rasterize(g, world.V(g.Arena.Min.X, g.Arena.Max.Y), rows, cols, 1)
}

// Rasterize draws the world into a rows x cols raster whose north-west corner
// is origin. Later layers overwrite earlier ones: floor, walls, doors,
// levers, items, projectiles, enemies, player.
func Rasterize(g *state.Game, origin world.Vec2, rows, cols int, scale float64) *Raster {
	r := &Raster{Origin: origin, Scale: scale, Cells: make([][]Glyph, rows)}
	for row := range r.Cells {
		r.Cells[row] = make([]Glyph, cols)
		for col := range r.Cells[row] {
			if g.Arena.Contains(r.CellCenter(row, col)) {
				r.Cells[row][col] = Glyph{'.', StyleFloor}
			} else {
				r.Cells[row][col] = Glyph{' ', StyleNormal}
			}
		}
	}

	for _, w := range g.Walls {
		r.fill(w, Glyph{'#', StyleWall})
	}
	for _, d := range g.Doors {
		if d.IsOpen() {
			r.set(d.Origin, Glyph{'/', StyleDoorOpen})
		} else {
			r.fill(d.Bounds(), Glyph{DoorRune(d), StyleDoorClosed})
		}
	}
	for _, l := range g.Levers {
		style := StyleLever
		if l.Locked() || l.State() == entities.LeverDisabled {
			style = StyleLeverLocked
		}
		r.set(l.Position, Glyph{LeverRune(l), style})
	}
	for _, it := range g.Items {
		if it.OnFloor() {
			r.set(it.Position, Glyph{ItemRune(it), StyleItem})
		}
	}
	for _, p := range g.Projectiles {
		if !p.Spent() {
			r.set(p.Position, Glyph{'*', StyleProjectile})
		}
	}
	for _, a := range g.Actors {
		if a.IsDead() {
			continue
		}
		if a.Faction == entities.FactionPlayer {
			r.set(a.Position, Glyph{'@', StylePlayer})
		} else {
			r.set(a.Position, Glyph{ActorRune(a), StyleEnemy})
		}
	}
	return r
}

// DoorRune draws a closed door along its long side
func DoorRune(d *entities.Door) rune {
	if d.Config.Height > d.Config.Width {
		return '|'
	}
	return '='
}

// LeverRune shows which way a lever points
func LeverRune(l *entities.Lever) rune {
	switch l.State() {
	case entities.LeverLeft:
		return '<'
	case entities.LeverCenter:
		return '^'
	case entities.LeverRight:
		return '>'
	default:
		return 'x'
	}
}

// ItemRune returns the glyph of an item type: keys are 'K', medkits '+'
// and anything else its first letter
func ItemRune(it *entities.CarryItem) rune {
	switch it.Type {
	case entities.ItemKey:
		return 'K'
	case setup.ItemMedkit:
		return '+'
	case "":
		return '?'
	}
	ch, _ := utf8.DecodeRuneInString(it.Type)
	return ch
}

// ActorRune returns an enemy's archetype letter
func ActorRune(a *entities.Actor) rune {
	if a.Stats.Name == "" {
		return 'e'
	}
	ch, _ := utf8.DecodeRuneInString(a.Stats.Name)
	return ch
}
