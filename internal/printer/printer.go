// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/zukan/internal/core/styles"
)

type ctxKey struct{}

// Printer writes human readable command output. Colors are downsampled to
// what the destination supports, so redirected output stays plain.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) Printf(format string, args ...any) {
	_, _ = lipgloss.Fprintln(p.w, fmt.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.TextSuccessStyle, "✔", format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextPrimaryStyle, "•", format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.TextWarningStyle, "!", format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.TextErrorStyle, "✘", format, args...)
}

// Section prints a bold heading.
func (p *Printer) Section(title string) {
	_, _ = lipgloss.Fprintln(p.w, styles.TextForegroundBoldStyle.Render(title))
}

func (p *Printer) line(style lipgloss.Style, mark, format string, args ...any) {
	_, _ = lipgloss.Fprintln(p.w, style.Render(mark)+" "+fmt.Sprintf(format, args...))
}
