package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStyle(t *testing.T) {
	Convey("Given rendering helpers", t, func() {
		Convey("Fg keeps the text", func() {
			So(Fg(AccentColor)("wheel"), ShouldContainSubstring, "wheel")
		})

		Convey("Swatch has the requested width", func() {
			So(lipgloss.Width(Swatch("#ff0000", 4)), ShouldEqual, 4)
		})

		Convey("Swatch never collapses to nothing", func() {
			So(lipgloss.Width(Swatch("#ff0000", 0)), ShouldEqual, 1)
		})

		Convey("Chip keeps the label", func() {
			So(Chip("#ffffff", 1, "#ffffff"), ShouldContainSubstring, "#ffffff")
		})
	})
}
