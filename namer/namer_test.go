package namer

import (
	"testing"

	"github.com/huewheel/huewheel/colorspace"
	. "github.com/smartystreets/goconvey/convey"
)

func TestName(t *testing.T) {
	Convey("Given exact primaries", t, func() {
		So(Name("#000000"), ShouldEqual, "Black")
		So(Name("#ffffff"), ShouldEqual, "White")
		So(Name("#FF00ff"), ShouldEqual, "Magenta")
		So(Name("#808080"), ShouldEqual, "Gray")
	})

	Convey("Given near-neutral colors", t, func() {
		So(Name("#101010"), ShouldEqual, "Very Dark Gray")
		So(Name("#505a50"), ShouldEqual, "Dark Gray")
		So(Name("#7f7f80"), ShouldEqual, "Medium Gray")
		So(Name("#c0c0c0"), ShouldEqual, "Light Gray")
		So(Name("#f0f0f0"), ShouldEqual, "Very Light Gray")

		Convey("A channel spread of 15 is no longer gray", func() {
			So(Name("#0e0000"), ShouldEqual, "Very Dark Gray")
			So(Name("#0f0000"), ShouldEqual, "Dark Red")
		})
	})

	Convey("Given chromatic colors", t, func() {
		Convey("The dominant channel decides the base name", func() {
			So(Name("#d92626"), ShouldEqual, "Red")
			So(Name("#d98026"), ShouldEqual, "Orange")
			So(Name("#26d9d9"), ShouldEqual, "Custom Color")
			So(Name("#404000"), ShouldEqual, "Custom Color")
			So(Name("#2680d9"), ShouldEqual, "Blue")
			So(Name("#8026d9"), ShouldEqual, "Purple")
			So(Name("#80d926"), ShouldEqual, "Yellow")
			So(Name("#26d980"), ShouldEqual, "Green")
		})

		Convey("Lightness adds a prefix", func() {
			So(Name("#660000"), ShouldEqual, "Dark Red")
			So(Name("#ffc8c8"), ShouldEqual, "Light Red")
		})

		Convey("Lightness bounds are strict", func() {
			// (140+20)/2 == 80 is not dark
			So(Name("#8c1414"), ShouldEqual, "Red")
			// (200+160)/2 == 180 is not light
			So(Name("#c8a0a0"), ShouldEqual, "Red")
		})
	})

	Convey("Given invalid input", t, func() {
		So(Name("not a color"), ShouldEqual, Fallback)
	})

	Convey("NameRGB works as a colorspace.NameFunc", t, func() {
		var fn colorspace.NameFunc = NameRGB
		So(fn(colorspace.RGB{R: 255}), ShouldEqual, "Red")
	})
}
