package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

var (
	ColorCell        color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorItem        color.Style
	ColorSubtle      color.Style
	ColorPlayer      color.Style
	ColorEnemy       color.Style
	ColorDoor        color.Style
	ColorLever       color.Style
	ColorProjectile  color.Style

	// dynamicGet is used for runtime translation key lookups.
	// A function variable keeps go vet's constant format string check quiet.
	dynamicGet = gotext.Get

	regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([a-z A-Z0-9_,:.\-/]+)}`)
)

// InitColors initializes the color styles
func InitColors() {
	ColorCell = color.Style{color.FgGray}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorEnemy = color.Style{color.FgRed}
	ColorDoor = color.Style{color.FgYellow, color.OpBold}
	ColorLever = color.Style{color.FgCyan}
	ColorProjectile = color.Style{color.FgLightYellow}
}

// FormatString formats a string and expands its markup into terminal colors:
// GT{KEY} translates, ITEM{x}, ACTION{x}, ENEMY{x} and DOOR{x} color.
func FormatString(msg string, a ...any) string {
	return ApplyMarkup(fmt.Sprintf(msg, a...))
}

// ApplyMarkup expands markup in an already formatted string
func ApplyMarkup(msg string) string {
	return expandMarkup(msg, func(function, operand string) string {
		switch function {
		case "GT":
			return dynamicGet(operand)
		case "ITEM":
			return ColorItem.Sprint(operand)
		case "ENEMY":
			return ColorEnemy.Sprint(operand)
		case "DOOR":
			return ColorDoor.Sprint(operand)
		case "ACTION":
			return ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		default:
			return operand
		}
	})
}

// StripMarkup removes markup, keeping the operands (GT{} is still translated).
// Graphical renderers use it for plain text.
func StripMarkup(msg string) string {
	return expandMarkup(msg, func(function, operand string) string {
		if function == "GT" {
			return dynamicGet(operand)
		}
		return operand
	})
}

func expandMarkup(s string, fn func(function, operand string) string) string {
	for _, match := range regexpStringFunctions.FindAllStringSubmatch(s, -1) {
		s = strings.Replace(s, match[0], fn(match[1], match[2]), -1)
	}
	return s
}
