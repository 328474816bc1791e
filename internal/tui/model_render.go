package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/accessihome/internal/core/styles"
)

const (
	headerHeight = 3 // title, tagline, spacer
	inputHeight  = 3 // bordered single line
	helpHeight   = 1
	buttonLabel  = "Analyze"
)

// screenLayout holds the computed geometry of the screen. Rendering and
// mouse hit-testing share it so that both agree on where the canvas is.
type screenLayout struct {
	width, height int

	inputW int

	bodyY, bodyH int
	reportW      int
	galleryX     int
	galleryW     int

	canvasX, canvasY int
}

func (m Model) dimensions() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

func (m Model) layout() screenLayout {
	w, h := m.dimensions()

	l := screenLayout{width: w, height: h}
	// box border and padding, the button and its gap
	l.inputW = max(w-4-lipgloss.Width(styles.InputButtonStyle.Render(buttonLabel))-1, 1)

	l.bodyY = headerHeight + inputHeight
	l.bodyH = max(h-l.bodyY-helpHeight, 3)

	l.galleryW = max(w*m.galleryWidth/100, 10)
	l.reportW = max(w-l.galleryW, 10)
	l.galleryX = l.reportW

	// gallery border and padding, then the caption line
	l.canvasX = l.galleryX + 2
	l.canvasY = l.bodyY + 2
	return l
}

// galleryView returns the gallery renderer sized to the gallery panel.
func (m Model) galleryView(l screenLayout) galleryView {
	return galleryView{
		state:  m.gallery,
		width:  max(l.galleryW-4, 1),
		height: max(l.bodyH-2, 1),
	}
}

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	if m.mouse {
		v.MouseMode = tea.MouseModeAllMotion
	}
	return v
}

// render composes the screen with the modal and toast overlays applied.
func (m Model) render() string {
	l := m.layout()
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(l),
		m.renderInput(l),
		m.renderBody(l),
		m.renderHelp(l),
	)

	if m.modal.Visible() {
		content = m.modal.Overlay(content, l.width, l.height)
	}

	// Apply toast overlay on top of everything
	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, l.width, l.height)
	}
	return content
}

func (m Model) renderHeader(l screenLayout) string {
	title := styles.HeaderTitleStyle.Render(styles.IconHome + " AccessiHome")
	tagline := styles.HeaderTaglineStyle.Render("Accessibility insights for every listing")
	return lipgloss.JoinVertical(lipgloss.Left,
		" "+title,
		" "+ansi.Truncate(tagline, max(l.width-1, 1), "…"),
		"",
	)
}

func (m Model) renderInput(l screenLayout) string {
	box := styles.InputBoxStyle
	if m.focus == focusInput {
		box = styles.InputBoxFocusedStyle
	}

	field := fitBlock(m.input.View(), l.inputW, 1)
	button := styles.InputButtonStyle.Render(buttonLabel)
	return box.Render(field + " " + button)
}

func (m Model) renderBody(l screenLayout) string {
	switch {
	case m.tracker.Loading():
		return m.renderLoading(l)
	case m.hasResult():
		return m.renderResult(l)
	default:
		return m.renderEmpty(l)
	}
}

func (m Model) renderLoading(l screenLayout) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spinner.View()+" "+styles.LoadingTextStyle.Render("Analyzing property accessibility..."),
		"",
		styles.LoadingSubtextStyle.Render("This may take a moment while we process the images"),
	)
	return lipgloss.Place(l.width, l.bodyH, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderEmpty(l screenLayout) string {
	content := styles.TextMutedStyle.Render("Paste a Zillow or Redfin URL and press enter")
	return lipgloss.Place(l.width, l.bodyH, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderResult(l screenLayout) string {
	innerH := max(l.bodyH-2, 1)

	reportInnerW := max(l.reportW-4, 1)
	reportContent, focusLine := m.report.View(reportInnerW, m.focus == focusReport)
	reportContent = scrollWindow(reportContent, focusLine, innerH)
	reportPanel := panelStyle(m.focus == focusReport).Render(fitBlock(reportContent, reportInnerW, innerH))

	if m.gallery == nil {
		return reportPanel
	}

	g := m.galleryView(l)
	galleryPanel := panelStyle(m.focus == focusGallery).Render(fitBlock(g.View(), g.width, innerH))

	return lipgloss.JoinHorizontal(lipgloss.Top, reportPanel, galleryPanel)
}

func (m Model) renderHelp(l screenLayout) string {
	keys := m.keys.forZone(m.focus, m.hasResult())
	return " " + ansi.Truncate(m.help.View(keys), max(l.width-1, 1), "…")
}

func panelStyle(focused bool) lipgloss.Style {
	if focused {
		return styles.PanelFocusedStyle
	}
	return styles.PanelStyle
}

// fitBlock truncates content to width columns and height lines and pads it
// to exactly width x height.
func fitBlock(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, strings.Join(lines, "\n"))
}

// scrollWindow returns the height lines of content that keep focusLine
// visible, scrolling as little as possible from the top.
func scrollWindow(content string, focusLine, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= height || height <= 0 {
		return content
	}

	// keep a little context below the cursor, such as the item description
	const lookahead = 3
	start := max(focusLine+lookahead+1-height, 0)
	start = min(start, len(lines)-height)
	return strings.Join(lines[start:start+height], "\n")
}
