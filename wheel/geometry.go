// Package wheel maps positions on a circular hue wheel to colors.
//
// The wheel has an outer radius R and an inner disk of radius r0. Inside the
// disk colors are grays fading from white at the center to black at its rim.
// Between r0 and R the angle selects the hue and the distance the saturation,
// with lightness fixed at one half. Anything beyond R is not part of the wheel.
package wheel

import (
	"errors"
	"fmt"
	"math"

	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/namer"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const (
	DefaultRadius       = 180
	DefaultInnerPercent = 25

	ChromaticLightness = 0.5
)

var ErrInvalidGeometry = errors.New("invalid wheel geometry")

type Geometry struct {
	Radius      float64
	InnerRadius float64
}

// New derives the inner radius as a percentage of the outer one.
func New(radius, innerPercent float64) (Geometry, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Geometry{}, fmt.Errorf("radius %v: %w", radius, ErrInvalidGeometry)
	}

	if innerPercent < 0 || innerPercent >= 100 {
		return Geometry{}, fmt.Errorf("inner percent %v must be in [0,100): %w", innerPercent, ErrInvalidGeometry)
	}

	return Geometry{
		Radius:      radius,
		InnerRadius: radius * innerPercent / 100,
	}, nil
}

// FromConfig builds the geometry from wheel.radius and wheel.inner_percent.
func FromConfig() (Geometry, error) {
	return New(viper.GetFloat64(key.WheelRadius), viper.GetFloat64(key.WheelInnerPercent))
}

// Sample is the color found at a point of the wheel.
type Sample struct {
	HSL colorspace.HSL

	// Chromatic is false for points inside the inner disk.
	// Only chromatic samples move the base hue.
	Chromatic bool
}

// Info describes the sample in every notation.
func (s Sample) Info() colorspace.Info {
	if s.Chromatic {
		return colorspace.FromHSL(s.HSL, namer.NameRGB)
	}

	gray := uint8(math.Round(s.HSL.L * 255))
	rgb := colorspace.RGB{R: gray, G: gray, B: gray}
	hsl := colorspace.HSL{H: 0, S: 0, L: float64(gray) / 255}

	return colorspace.NewInfo(rgb, hsl, namer.NameRGB(rgb))
}

// Contains reports whether the offset from the center lies on the wheel.
func (g Geometry) Contains(dx, dy float64) bool {
	return math.Hypot(dx, dy) <= g.Radius
}

// PointToColor returns the color at offset (dx, dy) from the center,
// y growing downwards. Points outside the wheel yield None.
func (g Geometry) PointToColor(dx, dy float64) mo.Option[Sample] {
	dist := math.Hypot(dx, dy)
	if dist > g.Radius {
		return mo.None[Sample]()
	}

	if dist <= g.InnerRadius {
		lightness := 1.0
		if g.InnerRadius > 0 {
			lightness = 1 - dist/g.InnerRadius
		}

		return mo.Some(Sample{HSL: colorspace.HSL{H: 0, S: 0, L: lightness}})
	}

	hue := colorspace.NormalizeHue(math.Atan2(dy, dx) * 180 / math.Pi)
	saturation := (dist - g.InnerRadius) / (g.Radius - g.InnerRadius)
	saturation = math.Max(0, math.Min(1, saturation))

	return mo.Some(Sample{
		HSL:       colorspace.HSL{H: hue, S: saturation, L: ChromaticLightness},
		Chromatic: true,
	})
}
