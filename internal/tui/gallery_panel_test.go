package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/accessihome/internal/core/gallery"
	"github.com/colonyops/accessihome/internal/core/report"
	"github.com/colonyops/accessihome/pkg/tuitest"
)

func box(top, left, width, height report.Percent) report.Box {
	return report.Box{Top: top, Left: left, Width: width, Height: height}
}

func TestRenderCanvas_Dimensions(t *testing.T) {
	img := report.Image{Annotations: []report.Annotation{
		{Label: "Stairs", Box: box(70, 40, 20, 15), Color: report.ColorRed},
	}}

	lines := strings.Split(tuitest.StripANSI(renderCanvas(img, -1, 40, 12)), "\n")

	require.Len(t, lines, 12)
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), 40)
	}
}

func TestRenderCanvas_LightBorderWhenNotHovered(t *testing.T) {
	img := report.Image{Annotations: []report.Annotation{
		{Label: "Stairs", Box: box(10, 10, 50, 50), Color: report.ColorRed},
	}}

	out := tuitest.StripANSI(renderCanvas(img, -1, 40, 20))

	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "┘")
	assert.NotContains(t, out, "┏")
	assert.NotContains(t, out, "Stairs", "labels appear only while hovered")
}

func TestRenderCanvas_HoveredDrawsHeavyBorderAndLabel(t *testing.T) {
	img := report.Image{Annotations: []report.Annotation{
		{Label: "Narrow Doorway", Box: box(15, 20, 15, 70), Color: report.ColorOrange},
		{Label: "Tub/Shower", Box: box(50, 50, 45, 40), Color: report.ColorRed},
	}}

	out := tuitest.StripANSI(renderCanvas(img, 1, 40, 20))

	assert.Contains(t, out, "┏")
	assert.Contains(t, out, "┛")
	assert.Contains(t, out, "Tub/Shower")
	assert.NotContains(t, out, "Narrow Doorway")
	assert.Contains(t, out, "┌", "other annotations keep the light border")
}

func TestRenderCanvas_BoxAtProjectedCell(t *testing.T) {
	ann := report.Annotation{Label: "Countertop", Box: box(60, 10, 80, 10), Color: report.ColorGreen}
	img := report.Image{Annotations: []report.Annotation{ann}}

	lines := strings.Split(tuitest.StripANSI(renderCanvas(img, -1, 40, 20)), "\n")
	rect := gallery.Layout(ann.Box, 40, 20)

	row := []rune(lines[rect.Y])
	assert.Equal(t, '┌', row[rect.X])
	assert.Equal(t, '┐', row[rect.X+rect.Width-1])
}

func TestRenderCanvas_Empty(t *testing.T) {
	assert.Empty(t, renderCanvas(report.Image{}, -1, 0, 10))
}

func TestGalleryView_SingleImageHidesThumbs(t *testing.T) {
	g, err := gallery.New(report.Mock().Images[:1])
	require.NoError(t, err)

	out := tuitest.StripANSI(galleryView{state: g, width: 50, height: 30}.View())

	assert.Contains(t, out, "1 / 1")
	assert.NotContains(t, out, "‹ h")
	assert.Contains(t, out, "■ 1 Stairs")
}

func TestGalleryView_MultipleImagesShowThumbs(t *testing.T) {
	g, err := gallery.New(report.Mock().Images)
	require.NoError(t, err)
	g.Next()

	out := tuitest.StripANSI(galleryView{state: g, width: 50, height: 30}.View())

	assert.Contains(t, out, "2 / 3")
	assert.Contains(t, out, "‹ h")
	assert.Contains(t, out, "l ›")
	assert.Contains(t, out, "Standard Countertop")
}

func TestGalleryView_CanvasLeavesRoomForLegend(t *testing.T) {
	g, err := gallery.New(report.Mock().Images)
	require.NoError(t, err)
	require.NoError(t, g.GoTo(2))

	v := galleryView{state: g, width: 50, height: 12}
	_, rows := v.canvasSize()

	// caption, thumbs, photo label and two legend lines
	assert.Equal(t, 12-5, rows)
	assert.LessOrEqual(t, len(strings.Split(v.View(), "\n")), 12)
}

func TestPhotoLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://via.placeholder.com/800x600/cccccc/000000?text=Kitchen", "via.placeholder.com/000000"},
		{"https://photos.example.com/a/b/front.jpg", "photos.example.com/front.jpg"},
		{"not a url", "not a url"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, photoLabel(tt.in))
	}
}
