package harmony

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/namer"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const (
	Saturation = 0.7
	Lightness  = 0.5
)

var ErrNoBaseColor = errors.New("select a color from the wheel first")

// Generate renders one color per rule offset at fixed saturation and lightness.
// Positions follow the order of the offsets.
func Generate(baseHue float64, rule Rule) ([]colorspace.PaletteColor, error) {
	if math.IsNaN(baseHue) || math.IsInf(baseHue, 0) {
		return nil, fmt.Errorf("base hue %v: %w", baseHue, colorspace.ErrOutOfRange)
	}

	if len(rule.Offsets) == 0 {
		return nil, fmt.Errorf("%s: %w", rule.Name, ErrEmptyRule)
	}

	return lo.Map(rule.Offsets, func(offset float64, i int) colorspace.PaletteColor {
		hsl := colorspace.HSL{
			H: colorspace.NormalizeHue(baseHue + offset),
			S: Saturation,
			L: Lightness,
		}

		return colorspace.PaletteColor{
			Info:     colorspace.FromHSL(hsl, namer.NameRGB),
			Position: i,
		}
	}), nil
}

// ForSelection generates a palette for the selected base hue, if any.
func ForSelection(baseHue mo.Option[float64], rule Rule) ([]colorspace.PaletteColor, error) {
	hue, ok := baseHue.Get()
	if !ok {
		return nil, ErrNoBaseColor
	}

	return Generate(hue, rule)
}

// Hexes returns the hex codes of a palette in order.
func Hexes(palette []colorspace.PaletteColor) []string {
	return lo.Map(palette, func(c colorspace.PaletteColor, _ int) string {
		return c.Hex.String()
	})
}

// Joined is the palette as one copyable line: "#a, #b, #c".
func Joined(palette []colorspace.PaletteColor) string {
	return strings.Join(Hexes(palette), ", ")
}
