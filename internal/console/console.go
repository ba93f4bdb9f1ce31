// Package console renders labeled values and gate verdicts for terminal
// output. Colors live in an explicitly constructed Palette that is passed to
// a Printer; there is no process-wide style registry to mutate.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jimdowning-cyclops/vergate/internal/version"
)

// Palette holds the styles a Printer renders with.
type Palette struct {
	Label   lipgloss.Style
	Value   lipgloss.Style
	In      lipgloss.Style
	Out     lipgloss.Style
	Unknown lipgloss.Style
}

// DefaultPalette returns the standard terminal palette.
func DefaultPalette() Palette {
	return Palette{
		Label:   lipgloss.NewStyle().Faint(true),
		Value:   lipgloss.NewStyle().Bold(true),
		In:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Out:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Unknown: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// PlainPalette returns a palette with no styling, for non-TTY output.
func PlainPalette() Palette {
	plain := lipgloss.NewStyle()
	return Palette{
		Label:   plain,
		Value:   plain,
		In:      plain,
		Out:     plain,
		Unknown: plain,
	}
}

// Printer writes formatted output to a single destination.
type Printer struct {
	w       io.Writer
	palette Palette
}

// NewPrinter returns a Printer writing to w with the given palette.
func NewPrinter(w io.Writer, p Palette) *Printer {
	return &Printer{w: w, palette: p}
}

// KeyValue writes one "label: value" line.
func (p *Printer) KeyValue(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.palette.Label.Render(label+":"), p.palette.Value.Render(value))
}

// Verdict writes one "label: verdict" line with the verdict colored by its
// tri-state result.
func (p *Printer) Verdict(label string, r version.RangeResult) {
	fmt.Fprintf(p.w, "%s %s\n", p.palette.Label.Render(label+":"), p.RenderResult(r))
}

// RenderResult returns the styled text for a tri-state verdict.
func (p *Printer) RenderResult(r version.RangeResult) string {
	switch r {
	case version.RangeIn:
		return p.palette.In.Render(r.String())
	case version.RangeOut:
		return p.palette.Out.Render(r.String())
	default:
		return p.palette.Unknown.Render(r.String())
	}
}
