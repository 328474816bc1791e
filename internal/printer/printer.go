// Package printer writes human-facing CLI output: status lines, sections and
// key/value rows. Commands fetch it from the context with Ctx.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type ctxKey struct{}

// Printer formats CLI output to a writer.
type Printer struct {
	w io.Writer

	success *color.Color
	info    *color.Color
	warn    *color.Color
	err     *color.Color
	header  *color.Color
	muted   *color.Color
}

// New returns a printer writing to w. Colors follow fatih/color's global
// NoColor switch, which is off when w is not a terminal or NO_COLOR is set.
func New(w io.Writer) *Printer {
	return &Printer{
		w:       w,
		success: color.New(color.FgGreen),
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed),
		header:  color.New(color.FgBlue, color.Bold),
		muted:   color.New(color.FgHiBlack),
	}
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or a stdout printer.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout)
}

// Printf writes unstyled formatted output followed by a newline.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.success, "✓", format, args...)
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.info, "•", format, args...)
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.warn, "!", format, args...)
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.err, "✗", format, args...)
}

// Section writes a bold heading preceded by a blank line.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w)
	_, _ = p.header.Fprintln(p.w, title)
}

// KV writes an indented key/value row with the key padded to width.
func (p *Printer) KV(key string, width int, value string) {
	pad := max(width-len(key), 0)
	_, _ = fmt.Fprintf(p.w, "  %s%s  %s\n", p.muted.Sprint(key), strings.Repeat(" ", pad), value)
}

func (p *Printer) line(c *color.Color, icon, format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", c.Sprint(icon), fmt.Sprintf(format, args...))
}
