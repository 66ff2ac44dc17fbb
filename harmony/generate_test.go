package harmony

import (
	"errors"
	"math"
	"testing"

	"github.com/huewheel/huewheel/colorspace"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func hues(palette []colorspace.PaletteColor) []float64 {
	return lo.Map(palette, func(c colorspace.PaletteColor, _ int) float64 { return c.HSL.H })
}

func TestGenerate(t *testing.T) {
	Convey("Given base hue 0", t, func() {
		Convey("Complementary is red and cyan", func() {
			palette, err := Generate(0, Complementary)
			So(err, ShouldBeNil)
			So(Hexes(palette), ShouldResemble, []string{"#d92626", "#26d9d9"})
			So(Joined(palette), ShouldEqual, "#d92626, #26d9d9")
			So(palette[1].HSL.CSS(), ShouldEqual, "hsl(180, 70%, 50%)")
			So(palette[1].RGB.CSS(), ShouldEqual, "rgb(38, 217, 217)")
		})

		Convey("Analogous wraps below zero", func() {
			palette, err := Generate(0, Analogous)
			So(err, ShouldBeNil)
			So(hues(palette), ShouldResemble, []float64{330, 0, 30, 60})
		})
	})

	Convey("Given base hue 350", t, func() {
		palette, err := Generate(350, Triadic)
		So(err, ShouldBeNil)
		So(hues(palette), ShouldResemble, []float64{350, 110, 230})
	})

	Convey("Given any rule", t, func() {
		for _, r := range Builtins() {
			palette, err := Generate(123.4, r)
			So(err, ShouldBeNil)
			So(len(palette), ShouldEqual, len(r.Offsets))

			for i, c := range palette {
				So(c.Position, ShouldEqual, i)
				So(c.HSL.S, ShouldEqual, Saturation)
				So(c.HSL.L, ShouldEqual, Lightness)
				So(c.HSL.H, ShouldBeGreaterThanOrEqualTo, 0)
				So(c.HSL.H, ShouldBeLessThan, 360)
				So(c.Name, ShouldNotBeEmpty)
			}
		}
	})

	Convey("Given a rule without offsets", t, func() {
		_, err := Generate(0, Rule{Name: "nothing"})
		So(errors.Is(err, ErrEmptyRule), ShouldBeTrue)
	})

	Convey("Given an invalid base hue", t, func() {
		_, err := Generate(math.NaN(), Triadic)
		So(errors.Is(err, colorspace.ErrOutOfRange), ShouldBeTrue)
	})
}

func TestForSelection(t *testing.T) {
	Convey("Given nothing selected", t, func() {
		_, err := ForSelection(mo.None[float64](), Triadic)
		So(err, ShouldEqual, ErrNoBaseColor)
	})

	Convey("Given a selected hue", t, func() {
		palette, err := ForSelection(mo.Some(90.0), Tetradic)
		So(err, ShouldBeNil)
		So(hues(palette), ShouldResemble, []float64{90, 180, 270, 0})
	})
}
