// Package namer gives colors approximate human readable names.
//
// The classification is a coarse heuristic: exact matches for a handful of
// primaries, a gray ramp for near-neutral colors, then a dominant channel
// with a darkness prefix. The thresholds are tuned to the wheel and must stay
// as they are, otherwise previously exported palettes would rename.
package namer

import (
	"strings"

	"github.com/huewheel/huewheel/colorspace"
)

const Fallback = "Custom Color"

var exact = map[string]string{
	"#000000": "Black",
	"#FFFFFF": "White",
	"#FF0000": "Red",
	"#00FF00": "Green",
	"#0000FF": "Blue",
	"#FFFF00": "Yellow",
	"#FF00FF": "Magenta",
	"#00FFFF": "Cyan",
	"#808080": "Gray",
}

// Name classifies a hex code. Undecodable input is named Fallback.
func Name(hex string) string {
	rgb, err := colorspace.HexToRGB(hex)
	if err != nil {
		return Fallback
	}

	return NameRGB(rgb)
}

// NameRGB classifies a color. It satisfies colorspace.NameFunc.
func NameRGB(c colorspace.RGB) string {
	if name, ok := exact[strings.ToUpper(c.Hex().String())]; ok {
		return name
	}

	r, g, b := int(c.R), int(c.G), int(c.B)
	hi := max(r, g, b)
	lo := min(r, g, b)

	if hi-lo < 15 {
		return gray(hi)
	}

	base := dominant(r, g, b)
	if base == "" {
		return Fallback
	}

	lightness := float64(hi+lo) / 2
	switch {
	case lightness < 80:
		return "Dark " + base
	case lightness > 180:
		return "Light " + base
	default:
		return base
	}
}

func gray(hi int) string {
	switch {
	case hi < 50:
		return "Very Dark Gray"
	case hi < 100:
		return "Dark Gray"
	case hi < 150:
		return "Medium Gray"
	case hi < 200:
		return "Light Gray"
	default:
		return "Very Light Gray"
	}
}

// dominant returns "" when two channels tie for the maximum. Such colors are
// named Fallback without a darkness prefix, which only qualifies a base name.
func dominant(r, g, b int) string {
	switch {
	case r > g && r > b:
		if g > b {
			return "Orange"
		}
		return "Red"
	case g > r && g > b:
		if r > b {
			return "Yellow"
		}
		return "Green"
	case b > r && b > g:
		if r > g {
			return "Purple"
		}
		return "Blue"
	default:
		return ""
	}
}
