package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	next       key.Binding
	prev       key.Binding
	help       key.Binding
	quit       key.Binding
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.prev, k.next, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.togglePlay, k.prev, k.next},
		{k.help, k.quit},
	}
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pause/resume"),
	),
	next: key.NewBinding(
		key.WithKeys("right", "l", "n"),
		key.WithHelp("→/n", "next step"),
	),
	prev: key.NewBinding(
		key.WithKeys("left", "h", "b"),
		key.WithHelp("←/b", "restart/previous step"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}
