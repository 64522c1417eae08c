package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow direction string if successful, "escape" for a lone
// escape byte, empty string otherwise.
func tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 == '[' || b2 == 'O' {
		b3, err := readByte()
		if err != nil {
			return ""
		}

		switch b3 {
		case 'A':
			return "arrow_up"
		case 'B':
			return "arrow_down"
		case 'C':
			return "arrow_right"
		case 'D':
			return "arrow_left"
		}
		return ""
	}

	return "escape"
}

// codeForByte maps a single raw byte to its binding code
func codeForByte(b byte) string {
	switch {
	case b == 3:
		return "ctrl_c"
	case b == '\n' || b == '\r':
		return "enter"
	case b == ' ':
		return "space"
	case b >= 'A' && b <= 'Z':
		return string(b + ('a' - 'A'))
	case b >= 33 && b < 127:
		return string(b)
	default:
		return ""
	}
}

// ReadKey puts the terminal into raw mode, reads one key press and returns its
// binding code ("w", "arrow_up", "space", "enter", ...). Ctrl+C is reported as
// "q" so callers can shut down cleanly and restore the terminal.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b1, err := readByte()
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	if b1 == 0x1b {
		return tryReadArrowKey(b1), nil
	}

	code := codeForByte(b1)
	if code == "ctrl_c" {
		return "q", nil
	}
	return code, nil
}
