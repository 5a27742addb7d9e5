package main

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the demo chrome keys. Action trigger keys live in the
// registry and never appear here.
type keyMap struct {
	Rebind      key.Binding
	AddCombo    key.Binding
	RemoveCombo key.Binding
	Boost       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Rebind: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rebind jump"),
		),
		AddCombo: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add combo callback"),
		),
		RemoveCombo: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove combo callback"),
		),
		Boost: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "bind/unbind boost"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rebind, k.Boost, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rebind, k.AddCombo, k.RemoveCombo},
		{k.Boost, k.Help, k.Quit},
	}
}
