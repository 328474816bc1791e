package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders the analysis as a markdown document with every detail
// section expanded. listing names the analyzed URL and may be empty.
func Markdown(a *Analysis, listing string) string {
	var b strings.Builder

	b.WriteString("# Accessibility Report\n\n")
	if listing != "" {
		fmt.Fprintf(&b, "Listing: <%s>\n\n", listing)
	}

	fmt.Fprintf(&b, "**Accessibility Score:** %d / 100 (%s)\n\n", a.OverallScore, ScoreBand(a.OverallScore))

	if a.Summary != "" {
		b.WriteString("## Summary\n\n")
		b.WriteString(a.Summary)
		b.WriteString("\n\n")
	}

	b.WriteString("## Key Findings\n\n")
	writeList(&b, "Positive Features", a.Flags.Green)
	writeList(&b, "Accessibility Barriers", a.Flags.Red)

	sections := a.Sections()
	if len(sections) > 0 {
		b.WriteString("## Detailed Analysis\n\n")
		for _, s := range sections {
			fmt.Fprintf(&b, "### %s\n\n", s.Title())
			b.WriteString("| | Check | Notes |\n|---|---|---|\n")
			for _, item := range a.Details[s] {
				fmt.Fprintf(&b, "| %s | %s | %s |\n", item.Status.Icon(), escapeCell(item.Name), escapeCell(item.Description))
			}
			b.WriteString("\n")
		}
	}

	if len(a.Images) > 0 {
		b.WriteString("## Visual Analysis\n\n")
		for i, img := range a.Images {
			fmt.Fprintf(&b, "%d. <%s>\n", i+1, img.URL)
			for _, ann := range img.Annotations {
				fmt.Fprintf(&b, "   - %s (%s) at top %s, left %s, %s x %s\n",
					ann.Label, ann.Color, ann.Box.Top, ann.Box.Left, ann.Box.Width, ann.Box.Height)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML renders the markdown report to an HTML fragment.
func HTML(a *Analysis, listing string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(a, listing)), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "**%s**\n\n", title)
	if len(items) == 0 {
		b.WriteString("_None_\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
