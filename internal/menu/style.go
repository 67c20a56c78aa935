package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var headerColor = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}

// newHeaderStyle renders menu titles in bold. The renderer inspects out, so
// pipes and files get plain text.
func newHeaderStyle(out io.Writer, styled bool) func(string) string {
	if !styled {
		return func(s string) string { return s }
	}

	style := lipgloss.NewRenderer(out).
		NewStyle().
		Bold(true).
		Foreground(headerColor)

	return func(s string) string {
		return style.Render(s)
	}
}
