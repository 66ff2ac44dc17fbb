package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestChrome(t *testing.T) {
	Convey("Headers use the bright ANSI variants", t, func() {
		So(string(HiBlue), ShouldEqual, "12")
		So(string(HiPurple), ShouldEqual, "13")
	})
}

func TestContrasting(t *testing.T) {
	Convey("Given a background lightness", t, func() {
		Convey("Light backgrounds get dark text", func() {
			So(Contrasting(0.9), ShouldEqual, Ink)
		})

		Convey("Dark backgrounds get light text", func() {
			So(Contrasting(0.1), ShouldEqual, Paper)
			So(Contrasting(0.55), ShouldEqual, Paper)
		})
	})
}
