package gallery

import (
	"math"

	"github.com/colonyops/accessihome/internal/core/report"
)

// Rect is a cell rectangle inside the image frame. X and Y are the column and
// row of the top-left cell.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Layout projects a percentage box onto a frame of cols x rows cells.
// The result is clamped to the frame and is never smaller than one cell.
func Layout(box report.Box, cols, rows int) Rect {
	if cols <= 0 || rows <= 0 {
		return Rect{}
	}

	x := clamp(project(box.Left, cols), 0, cols-1)
	y := clamp(project(box.Top, rows), 0, rows-1)
	w := clamp(project(box.Width, cols), 1, cols-x)
	h := clamp(project(box.Height, rows), 1, rows-y)

	return Rect{X: x, Y: y, Width: w, Height: h}
}

// HitTest returns the index of the annotation drawn on top at cell (x, y),
// or -1 when the cell is not covered. Later annotations are drawn over
// earlier ones.
func HitTest(annotations []report.Annotation, x, y, cols, rows int) int {
	for i := len(annotations) - 1; i >= 0; i-- {
		if Layout(annotations[i].Box, cols, rows).Contains(x, y) {
			return i
		}
	}
	return -1
}

func project(p report.Percent, cells int) int {
	return int(math.Round(p.Fraction() * float64(cells)))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
