package levelgen

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"topdown/pkg/engine/world"
	"topdown/pkg/game/entities"
)

//go:embed levels/*.csv
var embedded embed.FS

// ErrLevelNotFound is returned when a level file does not exist
var ErrLevelNotFound = errors.New("level not found")

// FloorRows and FloorCols are the size of the enemy spawn grid
const (
	FloorRows = 6
	FloorCols = 6
)

// Layout is a parsed level file: one row per floor row, one cell per floor
type Layout struct {
	Level int
	Rows  [][]string
}

// Spawn is one enemy to place
type Spawn struct {
	Row      int
	Col      int
	Mnemonic string
	Position world.Vec2
	Stats    entities.ActorStats
}

// Loader reads Level<N>.csv files from a file system
type Loader struct {
	FS fs.FS
}

// DefaultLoader reads the levels built into the binary
func DefaultLoader() *Loader {
	sub, err := fs.Sub(embedded, "levels")
	if err != nil {
		// embedded directory is fixed at build time
		panic(err)
	}
	return &Loader{FS: sub}
}

// DirLoader reads level files from a directory on disk
func DirLoader(dir string) *Loader {
	return &Loader{FS: os.DirFS(dir)}
}

// FileName returns the file name of a level
func FileName(level int) string {
	return fmt.Sprintf("Level%d.csv", level)
}

// Load reads and parses a level. A missing file yields ErrLevelNotFound.
func (l *Loader) Load(level int) (*Layout, error) {
	name := FileName(level)
	f, err := l.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", name, ErrLevelNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &Layout{Level: level, Rows: rows}, nil
}

// Exists reports whether a level file is present
func (l *Loader) Exists(level int) bool {
	_, err := fs.Stat(l.FS, FileName(level))
	return err == nil
}

// Parse reads comma-separated rows. Rows may have different lengths, blank
// lines are skipped and stray quotes stay part of their cell.
func Parse(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// Spawns maps the layout onto the floor grid. Empty cells, unknown mnemonics
// and cells outside the grid produce no spawn.
func (lay *Layout) Spawns(floors *world.Grid) []Spawn {
	var out []Spawn
	for r, row := range lay.Rows {
		for c, mnemonic := range row {
			stats, ok := Archetype(mnemonic)
			if !ok {
				continue
			}
			cell := floors.GetCell(r, c)
			if cell == nil {
				continue
			}
			out = append(out, Spawn{
				Row:      r,
				Col:      c,
				Mnemonic: stats.Name,
				Position: cell.Position,
				Stats:    stats,
			})
		}
	}
	return out
}
