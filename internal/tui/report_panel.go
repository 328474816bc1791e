package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/accessihome/internal/core/report"
	"github.com/colonyops/accessihome/internal/core/styles"
)

const gaugeWidth = 20

// reportRow is one selectable line of the detail accordion. item is -1 for
// a section header.
type reportRow struct {
	section report.Section
	item    int
}

func (r reportRow) isHeader() bool { return r.item < 0 }

// reportPanel renders the score, findings and detail accordion of an
// analysis and tracks the accordion cursor.
type reportPanel struct {
	analysis  *report.Analysis
	accordion report.Accordion
	cursor    int
}

func newReportPanel(a *report.Analysis) reportPanel {
	return reportPanel{analysis: a}
}

// rows returns the selectable rows: every section header plus the items of
// the open section.
func (p reportPanel) rows() []reportRow {
	if p.analysis == nil {
		return nil
	}

	var rows []reportRow
	for _, s := range p.analysis.Sections() {
		rows = append(rows, reportRow{section: s, item: -1})
		if p.accordion.IsOpen(s) {
			for i := range p.analysis.Details[s] {
				rows = append(rows, reportRow{section: s, item: i})
			}
		}
	}
	return rows
}

// Move shifts the cursor by delta, clamped to the rows.
func (p *reportPanel) Move(delta int) {
	n := len(p.rows())
	if n == 0 {
		p.cursor = 0
		return
	}
	p.cursor = min(max(p.cursor+delta, 0), n-1)
}

// Toggle opens or closes the section under the cursor. The cursor stays on
// that section's header.
func (p *reportPanel) Toggle() {
	rows := p.rows()
	if p.cursor >= len(rows) {
		return
	}

	section := rows[p.cursor].section
	p.accordion.Toggle(section)

	for i, r := range p.rows() {
		if r.isHeader() && r.section == section {
			p.cursor = i
			return
		}
	}
}

// Selected returns the detail item under the cursor.
func (p reportPanel) Selected() (report.DetailItem, bool) {
	rows := p.rows()
	if p.cursor >= len(rows) || rows[p.cursor].isHeader() {
		return report.DetailItem{}, false
	}
	r := rows[p.cursor]
	return p.analysis.Details[r.section][r.item], true
}

// View renders the panel content at the given inner width. The returned
// focusLine is the line index of the cursor row, used to scroll.
func (p reportPanel) View(width int, focused bool) (content string, focusLine int) {
	if p.analysis == nil {
		return "", 0
	}

	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }

	add(styles.PanelTitleStyle.Render("Accessibility Score"))
	add(renderGauge(p.analysis.OverallScore))
	add("")
	add(wrap(styles.SummaryStyle, p.analysis.Summary, width)...)
	add("")

	add(styles.TextSuccessStyle.Bold(true).Render("Positive Features"))
	add(flagLines(p.analysis.Flags.Green, styles.IconGreenFlag, styles.TextSuccessStyle, width)...)
	add("")
	add(styles.TextErrorStyle.Bold(true).Render("Potential Barriers"))
	add(flagLines(p.analysis.Flags.Red, styles.IconRedFlag, styles.TextErrorStyle, width)...)
	add("")

	add(styles.PanelTitleStyle.Render("Detailed Analysis"))
	focusLine = len(lines)

	for i, r := range p.rows() {
		selected := focused && i == p.cursor
		if i == p.cursor {
			focusLine = len(lines)
		}

		if r.isHeader() {
			icon := styles.IconCollapsed
			if p.accordion.IsOpen(r.section) {
				icon = styles.IconExpanded
			}
			label := ansi.Truncate(icon+" "+r.section.Title(), width, "…")
			if selected {
				add(styles.SectionHeaderSelectedStyle.Render(label))
			} else {
				add(styles.SectionHeaderStyle.Render(label))
			}
			continue
		}

		item := p.analysis.Details[r.section][r.item]
		icon := statusStyle(item.Status).Render(item.Status.Icon())
		name := ansi.Truncate(item.Name, max(width-5, 1), "…")
		if selected {
			name = styles.ItemSelectedStyle.Render(name)
		} else {
			name = styles.ItemStyle.Render(name)
		}
		add("  " + icon + " " + name)
	}

	if item, ok := p.Selected(); ok && focused {
		add("")
		add(styles.DescriptionStyle.Width(max(width-1, 1)).Render(item.Description))
	}

	return strings.Join(lines, "\n"), focusLine
}

func renderGauge(score int) string {
	clamped := min(max(score, 0), 100)
	filled := (clamped*gaugeWidth + 50) / 100

	color := lipgloss.NewStyle().Foreground(styles.ScoreColor(clamped))
	bar := color.Render(strings.Repeat("█", filled)) +
		styles.TextMutedStyle.Render(strings.Repeat("░", gaugeWidth-filled))

	band := report.ScoreBand(score).String()
	return fmt.Sprintf("%s / 100  %s  %s",
		color.Bold(true).Render(fmt.Sprint(score)),
		bar,
		color.Render(strings.ToUpper(band[:1])+band[1:]))
}

func flagLines(flags []string, icon string, style lipgloss.Style, width int) []string {
	if len(flags) == 0 {
		return []string{styles.TextMutedStyle.Render("  none")}
	}
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		out = append(out, style.Render(icon)+" "+ansi.Truncate(f, max(width-2, 1), "…"))
	}
	return out
}

// wrap word-wraps text to width and renders each line with style.
func wrap(style lipgloss.Style, text string, width int) []string {
	wrapped := ansi.Wordwrap(text, max(width, 1), "")
	lines := strings.Split(wrapped, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return lines
}

func statusStyle(s report.Status) lipgloss.Style {
	switch s {
	case report.StatusPass:
		return styles.TextSuccessStyle
	case report.StatusFail:
		return styles.TextErrorStyle
	case report.StatusWarn:
		return styles.TextWarningStyle
	default:
		return styles.TextMutedStyle
	}
}
