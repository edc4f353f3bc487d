package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Diagnostics writes one line per failed input to an error stream.
// Styling only applies when the stream is a terminal.
type Diagnostics struct {
	w      io.Writer
	styled bool
	style  lipgloss.Style
}

func NewDiagnostics(w io.Writer) *Diagnostics {
	r := lipgloss.NewRenderer(w)
	return &Diagnostics{
		w:      w,
		styled: r.ColorProfile() != termenv.Ascii,
		style: r.NewStyle().
			TabWidth(lipgloss.NoTabConversion).
			Foreground(lipgloss.Color("208")), // Orange
	}
}

// Report writes "<name>: <reason>". Without a color profile the line is
// written untouched, since rendering pads multi-line names.
func (d *Diagnostics) Report(name string, err error) {
	line := Diagnostic(name, err)
	if d.styled {
		line = d.style.Render(line)
	}
	fmt.Fprintln(d.w, line)
}

// Diagnostic is the unstyled text of a failure line.
func Diagnostic(name string, err error) string {
	return fmt.Sprintf("%s: %v", name, err)
}
