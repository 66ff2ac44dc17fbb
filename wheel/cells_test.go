package wheel

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGrid(t *testing.T) {
	g := testGeometry()

	Convey("Given a terminal grid", t, func() {
		grid := NewGrid(g, 10)
		So(grid.Cols, ShouldEqual, 20)

		Convey("Cells have the grid shape", func() {
			cells := grid.Cells()
			So(len(cells), ShouldEqual, 10)
			So(len(cells[0]), ShouldEqual, 20)
		})

		Convey("Corner cells are off the wheel and central ones are gray", func() {
			So(grid.Sample(0, 0).IsAbsent(), ShouldBeTrue)
			So(grid.Sample(10, 5).MustGet().Chromatic, ShouldBeFalse)
		})

		Convey("The cell to the right of center shows reds", func() {
			s := grid.Sample(18, 5).MustGet()
			So(s.Chromatic, ShouldBeTrue)
			So(s.HSL.H, ShouldBeLessThan, 30)
		})

		Convey("A cell shows the color picked at its offset", func() {
			var sel Selection
			dx, dy := grid.Offset(15, 2)
			info, ok := sel.Pick(g, dx, dy)
			So(ok, ShouldBeTrue)
			So(info, ShouldResemble, grid.Sample(15, 2).MustGet().Info())
		})
	})

	Convey("Given a degenerate grid", t, func() {
		So(NewGrid(g, 0).Rows, ShouldEqual, 1)
	})
}
