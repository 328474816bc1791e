package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/accessihome/internal/core/report"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name       string
		box        report.Box
		cols, rows int
		want       Rect
	}{
		{
			name: "stairs on 40x20",
			box:  report.Box{Top: 70, Left: 40, Width: 20, Height: 15},
			cols: 40, rows: 20,
			want: Rect{X: 16, Y: 14, Width: 8, Height: 3},
		},
		{
			name: "clamped to frame",
			box:  report.Box{Top: 50, Left: 50, Width: 80, Height: 80},
			cols: 10, rows: 10,
			want: Rect{X: 5, Y: 5, Width: 5, Height: 5},
		},
		{
			name: "at least one cell",
			box:  report.Box{Top: 0, Left: 0, Width: 1, Height: 1},
			cols: 10, rows: 10,
			want: Rect{X: 0, Y: 0, Width: 1, Height: 1},
		},
		{
			name: "origin past the edge",
			box:  report.Box{Top: 100, Left: 100, Width: 10, Height: 10},
			cols: 10, rows: 10,
			want: Rect{X: 9, Y: 9, Width: 1, Height: 1},
		},
		{
			name: "empty frame",
			box:  report.Box{Top: 10, Left: 10, Width: 10, Height: 10},
			cols: 0, rows: 0,
			want: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Layout(tt.box, tt.cols, tt.rows))
		})
	}
}

func TestHitTest(t *testing.T) {
	anns := []report.Annotation{
		{Label: "Narrow Doorway", Box: report.Box{Top: 15, Left: 20, Width: 15, Height: 70}},
		{Label: "Tub/Shower", Box: report.Box{Top: 50, Left: 50, Width: 45, Height: 40}},
		{Label: "Overlap", Box: report.Box{Top: 60, Left: 60, Width: 10, Height: 10}},
	}

	assert.Equal(t, 0, HitTest(anns, 10, 5, 40, 20))
	assert.Equal(t, 1, HitTest(anns, 30, 11, 40, 20))
	assert.Equal(t, 2, HitTest(anns, 25, 12, 40, 20), "later annotations win")
	assert.Equal(t, -1, HitTest(anns, 0, 0, 40, 20))
	assert.Equal(t, -1, HitTest(nil, 5, 5, 40, 20))
}
