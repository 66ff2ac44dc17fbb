package wheel

import "github.com/samber/mo"

// Grid is a terminal rendition of the wheel. Terminal cells are about twice as
// tall as they are wide, so a grid of n rows has 2n columns.
type Grid struct {
	Geometry Geometry
	Rows     int
	Cols     int
}

func NewGrid(g Geometry, rows int) Grid {
	rows = max(rows, 1)
	return Grid{Geometry: g, Rows: rows, Cols: rows * 2}
}

// Offset returns the wheel offset sampled by the center of a cell.
func (gr Grid) Offset(col, row int) (dx, dy float64) {
	diameter := 2 * gr.Geometry.Radius
	dx = (float64(col)+0.5)*diameter/float64(gr.Cols) - gr.Geometry.Radius
	dy = (float64(row)+0.5)*diameter/float64(gr.Rows) - gr.Geometry.Radius
	return
}

// Sample returns the color shown by a cell.
func (gr Grid) Sample(col, row int) mo.Option[Sample] {
	return gr.Geometry.PointToColor(gr.Offset(col, row))
}

// Cells samples every cell, row by row.
func (gr Grid) Cells() [][]mo.Option[Sample] {
	cells := make([][]mo.Option[Sample], gr.Rows)
	for row := range cells {
		cells[row] = make([]mo.Option[Sample], gr.Cols)
		for col := range cells[row] {
			cells[row][col] = gr.Sample(col, row)
		}
	}

	return cells
}
