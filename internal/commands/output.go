package commands

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/colonyops/accessihome/internal/core/report"
	"github.com/colonyops/accessihome/internal/core/styles"
	"github.com/colonyops/accessihome/pkg/iojson"
)

type outputFormat string

const (
	formatPretty   outputFormat = "pretty"
	formatMarkdown outputFormat = "markdown"
	formatJSON     outputFormat = "json"
	formatHTML     outputFormat = "html"
)

var outputFormats = []outputFormat{formatPretty, formatMarkdown, formatJSON, formatHTML}

const (
	defaultWrapWidth = 100
	maxWrapWidth     = 120
)

// reportDocument is what report-printing commands emit.
type reportDocument struct {
	URL       string           `json:"url,omitempty"`
	Listing   string           `json:"listing,omitempty"`
	RequestID string           `json:"requestId,omitempty"`
	Analysis  *report.Analysis `json:"analysis"`
}

// parseFormat resolves a --format value. An empty value picks pretty for a
// terminal and markdown otherwise.
func parseFormat(s string, w io.Writer) (outputFormat, error) {
	if s == "" {
		if isTerminal(w) {
			return formatPretty, nil
		}
		return formatMarkdown, nil
	}

	f := outputFormat(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(outputFormats, f) {
		return "", fmt.Errorf("unknown format %q (want pretty, markdown, json or html)", s)
	}
	return f, nil
}

func writeReport(w io.Writer, format outputFormat, doc reportDocument) error {
	switch format {
	case formatJSON:
		return iojson.WriteWith(w, os.Stderr, doc)
	case formatHTML:
		html, err := report.HTML(doc.Analysis, doc.URL)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	case formatPretty:
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(wrapWidth(w)),
		)
		if err != nil {
			return fmt.Errorf("create markdown renderer: %w", err)
		}
		out, err := r.Render(report.Markdown(doc.Analysis, doc.URL))
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		_, err := io.WriteString(w, report.Markdown(doc.Analysis, doc.URL))
		return err
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func wrapWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWrapWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWrapWidth
	}
	return min(width, maxWrapWidth)
}
