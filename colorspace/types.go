// Package colorspace converts between hex strings, RGB triples and HSL triples.
//
// All functions are pure. Rounding follows the half-away-from-zero rule so that
// a color rendered on the wheel, listed in a palette and exported to JSON always
// carries the same hex code.
package colorspace

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidHex = errors.New("invalid hex color")
	ErrInvalidRGB = errors.New("invalid rgb color")
	ErrOutOfRange = errors.New("value out of range")
)

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// String renders the channels as "r, g, b".
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// CSS renders the color as rgb(r, g, b).
func (c RGB) CSS() string {
	return "rgb(" + c.String() + ")"
}

func (c RGB) Hex() Hex {
	return RGBToHex(c.R, c.G, c.B)
}

// HSL is a color in hue (degrees), saturation and lightness (both fractions).
type HSL struct {
	H, S, L float64
}

// NewHSL validates s and l and normalizes h into [0,360).
func NewHSL(h, s, l float64) (HSL, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return HSL{}, fmt.Errorf("hue %v: %w", h, ErrOutOfRange)
	}

	if s < 0 || s > 1 {
		return HSL{}, fmt.Errorf("saturation %v: %w", s, ErrOutOfRange)
	}

	if l < 0 || l > 1 {
		return HSL{}, fmt.Errorf("lightness %v: %w", l, ErrOutOfRange)
	}

	return HSL{H: NormalizeHue(h), S: s, L: l}, nil
}

// String renders the color as "h, s%, l%" with every part rounded.
func (c HSL) String() string {
	return fmt.Sprintf("%d, %d%%, %d%%", round(c.H), round(c.S*100), round(c.L*100))
}

// CSS renders the color as hsl(h, s%, l%).
func (c HSL) CSS() string {
	return "hsl(" + c.String() + ")"
}

// RGB renders the color through HSLToRGB.
func (c HSL) RGB() RGB {
	return HSLToRGB(c.H/360, c.S, c.L)
}

// Hex is a lowercase #rrggbb color code.
type Hex string

func (h Hex) String() string {
	return string(h)
}

// NormalizeHue wraps any angle in degrees into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	// -1e-14 + 360 rounds up to exactly 360
	if h >= 360 {
		h = 0
	}

	return h
}

func round(v float64) int {
	return int(math.Round(v))
}
