package ebiten

import (
	"image/color"
	"math"
)

// pulse returns a value oscillating between lo and hi with the given period
// in seconds
func pulse(clock, period, lo, hi float64) float64 {
	phase := math.Mod(clock, period) / period
	v := (math.Sin(phase*2*math.Pi) + 1) / 2
	return lo + (hi-lo)*v
}

// scaleColor multiplies the RGB channels of c by brightness
func scaleColor(c color.Color, brightness float64) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(math.Min(255, float64(r>>8)*brightness)),
		uint8(math.Min(255, float64(g>>8)*brightness)),
		uint8(math.Min(255, float64(b>>8)*brightness)),
		uint8(a >> 8),
	}
}

// getPulsingHealthColor returns the health bar color; it pulses red when
// health is low
func (e *EbitenRenderer) getPulsingHealthColor(fraction float64) color.Color {
	if fraction >= 0.3 {
		return colorHealthFront
	}
	return scaleColor(colorHealthLow, pulse(e.clock, 0.6, 0.5, 1))
}

// getHitFlashColor whitens an actor's color during its grace window
func (e *EbitenRenderer) getHitFlashColor(base color.Color, hitCooldown float64) color.Color {
	if hitCooldown <= 0 {
		return base
	}
	if math.Mod(e.clock, 0.1) < 0.05 {
		return color.White
	}
	return base
}
