package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the toggle screen.
type keyMap struct {
	Toggle  key.Binding
	NotifyA key.Binding
	NotifyB key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys("t", " "),
		key.WithHelp("t/Space", "toggle"),
	),
	NotifyA: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "secondary 1"),
	),
	NotifyB: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "secondary 2"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NotifyA, k.NotifyB, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.NotifyA, k.NotifyB},
		{k.Help, k.Quit},
	}
}
