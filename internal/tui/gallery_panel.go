package tui

import (
	"fmt"
	"image/color"
	"net/url"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/accessihome/internal/core/gallery"
	"github.com/colonyops/accessihome/internal/core/report"
	"github.com/colonyops/accessihome/internal/core/styles"
)

const maxThumbs = 9

var (
	lightBorder = boxRunes{'┌', '┐', '└', '┘', '─', '│'}
	heavyBorder = boxRunes{'┏', '┓', '┗', '┛', '━', '┃'}
)

type boxRunes struct {
	tl, tr, bl, br, h, v rune
}

// cell is one character of the canvas.
type cell struct {
	r     rune
	fg    color.Color
	bold  bool
	muted bool
}

// canvas is a character grid onto which annotation boxes are projected.
type canvas struct {
	cols, rows int
	cells      [][]cell
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for y := range c.cells {
		c.cells[y] = make([]cell, cols)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: '·', muted: true}
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, fg color.Color, bold bool) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells[y][x] = cell{r: r, fg: fg, bold: bold}
}

// drawBox outlines rect. Single-cell-wide or -tall rects degrade to a line
// of block characters.
func (c *canvas) drawBox(rect gallery.Rect, b boxRunes, fg color.Color, bold bool) {
	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.Width-1, rect.Y+rect.Height-1

	if rect.Width < 2 || rect.Height < 2 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				c.set(x, y, '■', fg, bold)
			}
		}
		return
	}

	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, b.h, fg, bold)
		c.set(x, y1, b.h, fg, bold)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, b.v, fg, bold)
		c.set(x1, y, b.v, fg, bold)
	}
	c.set(x0, y0, b.tl, fg, bold)
	c.set(x1, y0, b.tr, fg, bold)
	c.set(x0, y1, b.bl, fg, bold)
	c.set(x1, y1, b.br, fg, bold)
}

// drawLabel writes text on the top edge of rect, inside the corners.
func (c *canvas) drawLabel(rect gallery.Rect, text string, fg color.Color) {
	room := rect.Width - 2
	if room < 1 {
		room = min(c.cols-rect.X, len([]rune(text)))
		for i, r := range []rune(text)[:room] {
			c.set(rect.X+i, max(rect.Y-1, 0), r, fg, true)
		}
		return
	}

	runes := []rune(ansi.Truncate(text, room, "…"))
	for i, r := range runes {
		c.set(rect.X+1+i, rect.Y, r, fg, true)
	}
}

// String renders the grid, grouping runs of identically styled cells.
func (c *canvas) String() string {
	lines := make([]string, c.rows)
	for y, row := range c.cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}
			b.WriteString(cellStyle(row[start]).Render(runesOf(row[start:x])))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bold == b.bold && a.muted == b.muted
}

func cellStyle(c cell) lipgloss.Style {
	if c.muted || c.fg == nil {
		return lipgloss.NewStyle().Foreground(styles.ColorSurface)
	}
	return lipgloss.NewStyle().Foreground(c.fg).Bold(c.bold)
}

func runesOf(cells []cell) string {
	rs := make([]rune, len(cells))
	for i, c := range cells {
		rs[i] = c.r
	}
	return string(rs)
}

// canvasRows picks a canvas height for cols that approximates a 4:3 photo
// with cells twice as tall as they are wide.
func canvasRows(cols, maxRows int) int {
	return min(max(cols*3/8, 3), max(maxRows, 3))
}

// renderCanvas projects the annotations of img onto a cols x rows canvas.
// The hovered annotation is drawn last with a heavy border and its label.
func renderCanvas(img report.Image, hovered int, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	c := newCanvas(cols, rows)
	for i, ann := range img.Annotations {
		if i == hovered {
			continue
		}
		c.drawBox(gallery.Layout(ann.Box, cols, rows), lightBorder, styles.AnnotationColor(string(ann.Color)), false)
	}

	if hovered >= 0 && hovered < len(img.Annotations) {
		ann := img.Annotations[hovered]
		rect := gallery.Layout(ann.Box, cols, rows)
		fg := styles.AnnotationColor(string(ann.Color))
		c.drawBox(rect, heavyBorder, fg, true)
		c.drawLabel(rect, ann.Label, fg)
	}

	return c.String()
}

// galleryView holds everything needed to render the gallery panel.
type galleryView struct {
	state  *gallery.State
	width  int // inner width
	height int // inner height
}

// canvasSize returns the canvas dimensions for the current image, leaving
// room for the caption, thumbnails and legend.
func (g galleryView) canvasSize() (cols, rows int) {
	img := g.state.CurrentImage()
	reserved := 2 + max(len(img.Annotations), 1) // caption, photo label, legend
	if g.state.Len() > 1 {
		reserved++
	}
	return g.width, canvasRows(g.width, g.height-reserved)
}

func (g galleryView) View() string {
	img := g.state.CurrentImage()
	hovered, ok := g.state.Hovered()
	if !ok {
		hovered = -1
	}

	counter := styles.CounterStyle.Render(fmt.Sprintf("%d / %d", g.state.Current()+1, g.state.Len()))
	title := styles.PanelTitleStyle.Render("Visual Analysis")
	gap := max(g.width-lipgloss.Width(title)-lipgloss.Width(counter), 1)
	caption := title + strings.Repeat(" ", gap) + counter

	cols, rows := g.canvasSize()
	lines := []string{caption, renderCanvas(img, hovered, cols, rows)}

	if g.state.Len() > 1 {
		lines = append(lines, g.renderThumbs())
	}

	lines = append(lines, styles.TextMutedStyle.Render(ansi.Truncate(photoLabel(img.URL), g.width, "…")))
	lines = append(lines, g.renderLegend(img, hovered)...)

	return strings.Join(lines, "\n")
}

func (g galleryView) renderThumbs() string {
	prev := styles.NavHintStyle.Render(styles.IconPrev + " h")
	next := styles.NavHintStyle.Render("l " + styles.IconNext)

	thumbs := make([]string, 0, min(g.state.Len(), maxThumbs))
	for i := range min(g.state.Len(), maxThumbs) {
		label := fmt.Sprint(i + 1)
		if i == g.state.Current() {
			thumbs = append(thumbs, styles.ThumbSelectedStyle.Render(label))
		} else {
			thumbs = append(thumbs, styles.ThumbStyle.Render(label))
		}
	}

	row := strings.Join(thumbs, "")
	gap := max((g.width-lipgloss.Width(row)-lipgloss.Width(prev)-lipgloss.Width(next))/2, 1)
	return prev + strings.Repeat(" ", gap) + row + strings.Repeat(" ", gap) + next
}

func (g galleryView) renderLegend(img report.Image, hovered int) []string {
	if len(img.Annotations) == 0 {
		return []string{styles.TextMutedStyle.Render("No annotations on this photo")}
	}

	out := make([]string, 0, len(img.Annotations))
	for i, ann := range img.Annotations {
		swatch := lipgloss.NewStyle().Foreground(styles.AnnotationColor(string(ann.Color))).Render("■")
		label := ansi.Truncate(ann.Label, max(g.width-4, 1), "…")
		if i == hovered {
			label = styles.ItemSelectedStyle.Bold(true).Render(label)
		} else {
			label = styles.ItemStyle.Render(label)
		}
		out = append(out, fmt.Sprintf("%s %d %s", swatch, i+1, label))
	}
	return out
}

// photoLabel shortens an image URL to host and last path segment.
func photoLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	path := strings.Trim(u.Path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return u.Host + "/" + path
}
