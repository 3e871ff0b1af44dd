package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ensigniasec/deck/internal/input"
)

// keyMap defines program key bindings on top of the navigation bindings.
type keyMap struct {
	Nav input.KeyMap

	Quit    key.Binding
	Help    key.Binding
	Theme   key.Binding
	Export  key.Binding
	Back    key.Binding
	Forward key.Binding
	Address key.Binding
	Picker  key.Binding
	Escape  key.Binding
	Confirm key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Nav: input.DefaultKeyMap(),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Export: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "export guide"),
		),
		Back: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "history back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "history forward"),
		),
		Address: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to #slide-N"),
		),
		Picker: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "slide list"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Nav.Next, k.Nav.Prev, k.Picker, k.Theme, k.Export, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Nav.Next, k.Nav.Prev, k.Nav.First, k.Nav.Last},
		{k.Back, k.Forward, k.Address, k.Picker},
		{k.Theme, k.Nav.Fullscreen, k.Export},
		{k.Help, k.Escape, k.Quit},
	}
}
