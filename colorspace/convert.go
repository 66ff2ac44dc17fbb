package colorspace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLToRGB converts a color whose hue is given as a fraction of the full turn.
//
// h is expected in [0,1), s and l in [0,1].
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := channel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: channel(hueToRGB(p, q, h+1.0/3)),
		G: channel(hueToRGB(p, q, h)),
		B: channel(hueToRGB(p, q, h-1.0/3)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func channel(v float64) uint8 {
	v = math.Round(v * 255)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// RGBToHex formats the channels as a lowercase #rrggbb code.
func RGBToHex(r, g, b uint8) Hex {
	return Hex(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseHex accepts "#rrggbb", "rrggbb" and the short "#rgb" form in either case.
func ParseHex(s string) (Hex, error) {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}

	s = strings.ToLower(strings.TrimPrefix(s, "#"))
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	return Hex("#" + s), nil
}

// HexToRGB decodes any form accepted by ParseHex.
func HexToRGB(hex string) (RGB, error) {
	normalized, err := ParseHex(hex)
	if err != nil {
		return RGB{}, err
	}

	c, err := colorful.Hex(normalized.String())
	if err != nil {
		return RGB{}, fmt.Errorf("%q: %w", hex, ErrInvalidHex)
	}

	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBToHSL is the standard inverse of HSLToRGB, hue in degrees.
func RGBToHSL(c RGB) HSL {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{H: NormalizeHue(h * 60), S: s, L: l}
}

var rgbPattern = regexp.MustCompile(`^(?i:rgb)?\(?\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)?$`)

// ParseRGB accepts "r, g, b" and "rgb(r, g, b)".
func ParseRGB(s string) (RGB, error) {
	m := rgbPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return RGB{}, fmt.Errorf("%q: %w", s, ErrInvalidRGB)
	}

	var channels [3]uint8
	for i, part := range m[1:] {
		v, err := strconv.Atoi(part)
		if err != nil || v > 255 {
			return RGB{}, fmt.Errorf("%q: channel %s: %w", s, part, ErrOutOfRange)
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Parse accepts either a hex code or an RGB triple.
func Parse(s string) (RGB, error) {
	if rgb, err := HexToRGB(s); err == nil {
		return rgb, nil
	}

	rgb, err := ParseRGB(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%q is neither a hex code nor an rgb triple: %w", s, ErrInvalidHex)
	}

	return rgb, nil
}
