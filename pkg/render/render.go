// Package render provides styled console output for user-facing messages.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer returns a [lipgloss.Renderer] for w. Writers that are not
// terminals get a renderer without colors.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !IsTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}

	return r
}

// ErrorBlock writes lines to w as a padded white-on-red block.
func ErrorBlock(w io.Writer, lines ...string) error {
	style := NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("1")).
		Padding(0, 2)

	_, err := io.WriteString(w, style.Render(strings.Join(lines, "\n"))+"\n")

	return err //nolint:wrapcheck
}
