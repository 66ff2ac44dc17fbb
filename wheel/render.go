package wheel

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/huewheel/huewheel/filesystem"
)

// Size is the side of the square image needed to draw the wheel.
func (g Geometry) Size() int {
	return 2*g.center() + 1
}

func (g Geometry) center() int {
	return int(math.Ceil(g.Radius))
}

// Render draws the wheel with the same function used for hit-testing, so the
// pixel at (x, y) always has the color PointToColor returns for its offset.
// Pixels outside the wheel are transparent.
func Render(g Geometry) *image.RGBA {
	size, c := g.Size(), g.center()
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sample, ok := g.PointToColor(float64(x-c), float64(y-c)).Get()
			if !ok {
				continue
			}

			rgb := sample.Info().RGB
			img.SetRGBA(x, y, color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff})
		}
	}

	return img
}

// OffsetAt converts image coordinates of a rendered wheel to an offset from the center.
func (g Geometry) OffsetAt(x, y int) (dx, dy float64) {
	c := g.center()
	return float64(x - c), float64(y - c)
}

// WritePNG renders the wheel and encodes it to path.
func WritePNG(g Geometry, path string) error {
	f, err := filesystem.API().Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, Render(g)); err != nil {
		return fmt.Errorf("encode wheel: %w", err)
	}

	return nil
}
