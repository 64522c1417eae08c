package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	return nil
}

// getUIFontSize returns the font size for UI text, scaled to the tile size
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * float64(e.tileSize) / defaultTileSize
	if size < 10 {
		size = 10
	}
	return size
}

// getMonoFontFace returns a cached monospace face for glyphs drawn on actors
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	e.refreshFaces()
	return e.cachedMonoFace
}

// getSansFontFace returns a cached sans-serif face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	e.refreshFaces()
	return e.cachedSansFace
}

// getSansBoldFontFace returns a cached bold face for titles and callouts
func (e *EbitenRenderer) getSansBoldFontFace() *text.GoTextFace {
	e.refreshFaces()
	return e.cachedSansBoldFace
}

func (e *EbitenRenderer) refreshFaces() {
	size := e.getUIFontSize()
	if e.cachedSansFace != nil && e.cachedUIFontSize == size {
		return
	}
	e.cachedUIFontSize = size
	e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: size}
	e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: size}
	e.cachedSansBoldFace = &text.GoTextFace{Source: e.sansBoldFontSource, Size: size}
}

// invalidateFontCache clears cached font faces (call when tile size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedMonoFace = nil
	e.cachedSansFace = nil
	e.cachedSansBoldFace = nil
}
