package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's constant format string check quiet.
var dynamicGet = gotext.Get

// markupRegex matches FUNCTION{content}
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// parseMarkup splits a message with markup (ITEM{}, ENEMY{}, DOOR{},
// ACTION{}, GT{}) into colored segments
func parseMarkup(msg string) []textSegment {
	var segments []textSegment

	lastIndex := 0
	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		// Add text before the markup
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		var segColor color.Color
		switch function {
		case "ITEM":
			segColor = colorItem
		case "ENEMY":
			segColor = colorEnemy
		case "DOOR":
			segColor = colorDoorClosed
		case "ACTION":
			segColor = colorAction
		case "GT":
			content = dynamicGet(content)
			segColor = colorText
		default:
			segColor = colorSubtle
		}

		segments = append(segments, textSegment{text: content, color: segColor})
		lastIndex = match[1]
	}

	// Add remaining text after last markup
	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}

	// If no markup found, return the whole message as a single segment
	if len(segments) == 0 {
		segments = append(segments, textSegment{text: msg, color: colorText})
	}

	return segments
}

// applyAlpha fades a color toward transparent black
func applyAlpha(c color.Color, alpha float64) color.Color {
	alpha = max(0, min(1, alpha))

	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(float64(r>>8) * alpha),
		uint8(float64(g>>8) * alpha),
		uint8(float64(b>>8) * alpha),
		uint8(float64(a>>8) * alpha),
	}
}

// drawColoredText draws text with a specific color using the UI font
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color) {
	e.drawColoredTextWithFace(screen, str, x, y, col, e.getSansFontFace())
}

// drawColoredTextWithFace draws text with a specific color and font face.
// y is the top of the line.
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// drawColoredTextSegments draws segments one after another on a line
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y float64, alpha float64) {
	face := e.getSansFontFace()
	currentX := x
	for _, seg := range segments {
		if seg.text == "" {
			continue
		}
		e.drawColoredTextWithFace(screen, seg.text, currentX, y, applyAlpha(seg.color, alpha), face)
		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// drawCenteredText draws text centred on x
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	w, _ := text.Measure(str, face, 0)
	e.drawColoredTextWithFace(screen, str, x-w/2, y, col, face)
}

// getTextWidth returns the width of a string in pixels at UI font size
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(str, e.getSansFontFace(), 0)
	return w
}
