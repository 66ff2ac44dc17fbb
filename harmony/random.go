package harmony

import (
	"math/rand/v2"

	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/namer"
)

const (
	RandomSize = 5
	RandomStep = 360 / RandomSize
)

// Source yields uniform numbers in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// DefaultSource is seeded from the runtime's entropy.
func DefaultSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// SeededSource always yields the same sequence for the same seed.
func SeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Random builds five evenly spaced hues with random saturation in [0.6,1)
// and lightness in [0.4,0.8). The first draw picks the base hue.
func Random(src Source) (palette []colorspace.PaletteColor, baseHue float64) {
	baseHue = colorspace.NormalizeHue(src.Float64() * 360)

	palette = make([]colorspace.PaletteColor, 0, RandomSize)
	for i := range RandomSize {
		hsl := colorspace.HSL{
			H: colorspace.NormalizeHue(baseHue + float64(i*RandomStep)),
			S: 0.6 + src.Float64()*0.4,
			L: 0.4 + src.Float64()*0.4,
		}

		palette = append(palette, colorspace.PaletteColor{
			Info:     colorspace.FromHSL(hsl, namer.NameRGB),
			Position: i,
		})
	}

	return palette, baseHue
}
