package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/interval/internal/ui"
)

const (
	padding  = 2
	maxWidth = 80
)

// style holds the lipgloss styles of the player. Every style carries the
// colour of the current step as its background so that nested renders do
// not punch holes in it.
type style struct {
	base      lipgloss.Style
	title     lipgloss.Style
	label     lipgloss.Style
	countdown lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
}

func newStyle(bg string, darkTheme, noColor bool) style {
	text := lipgloss.NewStyle()

	if !noColor {
		fg := "#FFFFFF"
		if !darkTheme {
			fg = "#000000"
		}

		if bg != "" {
			fg = ui.ContrastColor(bg)
			text = text.Background(lipgloss.Color(bg))
		}

		text = text.Foreground(lipgloss.Color(fg))
	}

	return style{
		base:      text.Padding(1, padding),
		title:     text.Bold(true),
		label:     text.Bold(true).Underline(true),
		countdown: text.Bold(true),
		secondary: text.Italic(true),
		hint:      text.Faint(true),
	}
}
