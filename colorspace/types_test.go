package colorspace

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatting(t *testing.T) {
	Convey("Given an RGB", t, func() {
		c := RGB{217, 38, 38}
		So(c.String(), ShouldEqual, "217, 38, 38")
		So(c.CSS(), ShouldEqual, "rgb(217, 38, 38)")
	})

	Convey("Given an HSL", t, func() {
		c := HSL{H: 179.6, S: 0.7, L: 0.5}
		So(c.String(), ShouldEqual, "180, 70%, 50%")
		So(c.CSS(), ShouldEqual, "hsl(180, 70%, 50%)")
	})
}

func TestNewHSL(t *testing.T) {
	Convey("Given hue outside a single turn", t, func() {
		c, err := NewHSL(-30, 0.5, 0.5)
		So(err, ShouldBeNil)
		So(c.H, ShouldEqual, 330)

		c, err = NewHSL(720, 0.5, 0.5)
		So(err, ShouldBeNil)
		So(c.H, ShouldEqual, 0)
	})

	Convey("Given saturation or lightness out of range", t, func() {
		_, err := NewHSL(0, 1.2, 0.5)
		So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)

		_, err = NewHSL(0, 0.5, -0.1)
		So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)

		_, err = NewHSL(math.NaN(), 0.5, 0.5)
		So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
	})
}

func TestNormalizeHue(t *testing.T) {
	Convey("NormalizeHue stays in [0,360)", t, func() {
		So(NormalizeHue(360), ShouldEqual, 0)
		So(NormalizeHue(-1e-14), ShouldBeBetweenOrEqual, 0, 360)
		So(NormalizeHue(-1e-14), ShouldBeLessThan, 360)
		So(NormalizeHue(390), ShouldEqual, 30)
	})
}

func TestInfo(t *testing.T) {
	name := func(RGB) string { return "Test" }

	Convey("FromHSL keeps all notations in sync", t, func() {
		info := FromHSL(HSL{H: 120, S: 0.7, L: 0.5}, name)
		So(info.Hex, ShouldEqual, info.RGB.Hex())
		So(info.HSL.CSS(), ShouldEqual, "hsl(120, 70%, 50%)")
		So(info.Name, ShouldEqual, "Test")
	})

	Convey("Describe accepts hex and rgb", t, func() {
		info, err := Describe("#FF0000", name)
		So(err, ShouldBeNil)
		So(info.Hex, ShouldEqual, Hex("#ff0000"))
		So(info.HSL, ShouldResemble, HSL{0, 1, 0.5})

		_, err = Describe("nope", name)
		So(err, ShouldNotBeNil)
	})
}
