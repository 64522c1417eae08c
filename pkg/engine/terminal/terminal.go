// Package terminal wraps golang.org/x/term queries about the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsInteractive reports whether stdin and stdout are both attached to a terminal.
// The terminal renderer needs raw key input, so it refuses to start otherwise.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// FitViewport returns the largest cols x rows map area that fits the terminal
// once the reserved margins are removed, never smaller than the minimums.
func FitViewport(reservedCols, reservedRows, minCols, minRows int) (cols, rows int) {
	width, height := GetSize()
	cols = width - reservedCols
	rows = height - reservedRows
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	return cols, rows
}
