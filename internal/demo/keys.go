package demo

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines key bindings for the demo.
type KeyMap struct {
	Toggle key.Binding
	RTL    key.Binding
	Custom key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// Keys are the demo's default bindings.
var Keys = KeyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "l"),
		key.WithHelp("space", "toggle loading"),
	),
	RTL: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rtl"),
	),
	Custom: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "custom layout"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.RTL, k.Custom, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.RTL, k.Custom},
		{k.Help, k.Quit},
	}
}
