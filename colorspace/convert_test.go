package colorspace

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHSLToRGB(t *testing.T) {
	Convey("Given primary hues at full saturation", t, func() {
		So(HSLToRGB(0, 1, 0.5), ShouldResemble, RGB{255, 0, 0})
		So(HSLToRGB(120.0/360, 1, 0.5), ShouldResemble, RGB{0, 255, 0})
		So(HSLToRGB(240.0/360, 1, 0.5), ShouldResemble, RGB{0, 0, 255})
	})

	Convey("Given a harmony swatch", t, func() {
		Convey("Hue 0 at S 0.7 L 0.5 is #d92626", func() {
			So(HSLToRGB(0, 0.7, 0.5).Hex(), ShouldEqual, Hex("#d92626"))
		})

		Convey("Hue 180 at S 0.7 L 0.5 is #26d9d9", func() {
			So(HSLToRGB(0.5, 0.7, 0.5).Hex(), ShouldEqual, Hex("#26d9d9"))
		})
	})

	Convey("Given zero saturation", t, func() {
		Convey("The result is a gray of round(l*255)", func() {
			So(HSLToRGB(0.3, 0, 0.5), ShouldResemble, RGB{128, 128, 128})
			So(HSLToRGB(0.9, 0, 0), ShouldResemble, RGB{0, 0, 0})
			So(HSLToRGB(0, 0, 1), ShouldResemble, RGB{255, 255, 255})
		})
	})

	Convey("Given boundary inputs", t, func() {
		Convey("Lightness extremes are black and white for any hue", func() {
			for _, h := range []float64{0, 0.25, 0.5, 0.999} {
				So(HSLToRGB(h, 1, 0), ShouldResemble, RGB{0, 0, 0})
				So(HSLToRGB(h, 1, 1), ShouldResemble, RGB{255, 255, 255})
			}
		})
	})

	Convey("Given full saturation at half lightness", t, func() {
		Convey("No hue produces a gray", func() {
			var grays int
			for step := 0; step < 36000; step++ {
				c := HSLToRGB(float64(step)/100/360, 1, 0.5)
				if c.R == c.G && c.G == c.B {
					grays++
				}
			}

			So(grays, ShouldEqual, 0)
		})
	})

	Convey("Given the go-colorful reference implementation", t, func() {
		Convey("Both agree within one step on a grid of colors", func() {
			for h := 0.0; h < 360; h += 7.5 {
				for _, s := range []float64{0.1, 0.5, 0.7, 1} {
					for _, l := range []float64{0.2, 0.5, 0.8} {
						got := HSLToRGB(h/360, s, l)
						r, g, b := colorful.Hsl(h, s, l).RGB255()

						So(float64(got.R), ShouldAlmostEqual, float64(r), 1)
						So(float64(got.G), ShouldAlmostEqual, float64(g), 1)
						So(float64(got.B), ShouldAlmostEqual, float64(b), 1)
					}
				}
			}
		})
	})
}

func TestRGBToHex(t *testing.T) {
	Convey("Given channel values", t, func() {
		pattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)

		Convey("Small values are zero padded", func() {
			So(RGBToHex(0, 10, 255), ShouldEqual, Hex("#000aff"))
		})

		Convey("The output is always lowercase six digits", func() {
			for _, v := range []uint8{0, 1, 15, 16, 127, 200, 255} {
				So(pattern.MatchString(RGBToHex(v, 255-v, v/2).String()), ShouldBeTrue)
			}
		})

		Convey("It round-trips through HexToRGB", func() {
			for r := 0; r < 256; r += 17 {
				for g := 0; g < 256; g += 51 {
					in := RGB{uint8(r), uint8(g), uint8(255 - r)}
					out, err := HexToRGB(in.Hex().String())
					So(err, ShouldBeNil)
					So(out, ShouldResemble, in)
				}
			}
		})
	})
}

func TestParseHex(t *testing.T) {
	Convey("Given hex input", t, func() {
		Convey("Uppercase without a hash is normalized", func() {
			h, err := ParseHex("FF8800")
			So(err, ShouldBeNil)
			So(h, ShouldEqual, Hex("#ff8800"))
		})

		Convey("The short form is expanded", func() {
			h, err := ParseHex("#fA0")
			So(err, ShouldBeNil)
			So(h, ShouldEqual, Hex("#ffaa00"))
		})

		Convey("Garbage is rejected", func() {
			for _, s := range []string{"", "#", "#12345", "#gggggg", "#1234567", "red"} {
				_, err := ParseHex(s)
				So(errors.Is(err, ErrInvalidHex), ShouldBeTrue)
			}
		})
	})
}

func TestHexToRGB(t *testing.T) {
	Convey("Given the short form", t, func() {
		rgb, err := HexToRGB("#fff")
		So(err, ShouldBeNil)
		So(rgb, ShouldResemble, RGB{255, 255, 255})
	})

	Convey("Given an invalid code", t, func() {
		_, err := HexToRGB("#zzzzzz")
		So(errors.Is(err, ErrInvalidHex), ShouldBeTrue)
	})
}

func TestRGBToHSL(t *testing.T) {
	Convey("Given well-known colors", t, func() {
		So(RGBToHSL(RGB{255, 0, 0}), ShouldResemble, HSL{0, 1, 0.5})
		So(RGBToHSL(RGB{0, 0, 255}).H, ShouldAlmostEqual, 240)
		So(RGBToHSL(RGB{255, 0, 255}).H, ShouldAlmostEqual, 300)
		So(RGBToHSL(RGB{0, 0, 0}), ShouldResemble, HSL{0, 0, 0})
	})

	Convey("Given a palette color", t, func() {
		Convey("Converting back lands on the same hex", func() {
			for h := 0.0; h < 360; h += 15 {
				rgb := HSLToRGB(h/360, 0.7, 0.5)
				So(RGBToHSL(rgb).RGB(), ShouldResemble, rgb)
			}
		})
	})
}

func TestParseRGB(t *testing.T) {
	Convey("Given rgb notations", t, func() {
		for _, s := range []string{"12, 34, 56", "rgb(12, 34, 56)", "RGB(12,34,56)"} {
			Convey(fmt.Sprintf("%q parses", s), func() {
				rgb, err := ParseRGB(s)
				So(err, ShouldBeNil)
				So(rgb, ShouldResemble, RGB{12, 34, 56})
			})
		}

		Convey("Channels above 255 are out of range", func() {
			_, err := ParseRGB("256, 0, 0")
			So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
		})

		Convey("Missing channels are invalid", func() {
			_, err := ParseRGB("1, 2")
			So(errors.Is(err, ErrInvalidRGB), ShouldBeTrue)
		})
	})

	Convey("Parse accepts both notations", t, func() {
		a, err := Parse("#0c2238")
		So(err, ShouldBeNil)
		b, err := Parse("12, 34, 56")
		So(err, ShouldBeNil)
		So(a, ShouldResemble, b)

		_, err = Parse("teal")
		So(err, ShouldNotBeNil)
	})
}
