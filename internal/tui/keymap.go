package tui

import (
	"charm.land/bubbles/v2/key"
)

// KeyMap defines all key bindings for the launcher.
// Groups:
//   - Navigation: Up, Down (step), First, Last (jump)
//   - Editing:    Backspace (printable keys append to the query)
//   - Action:     Enter (launch), Quit
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	First key.Binding
	Last  key.Binding

	Backspace key.Binding

	Enter key.Binding
	Quit  key.Binding
}

// ShortHelp returns bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Quit}
}

// Keys is the default key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next"),
	),
	First: key.NewBinding(
		key.WithKeys("left", "home", "pgup"),
		key.WithHelp("←/home", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("right", "end", "pgdown"),
		key.WithHelp("→/end", "last"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("⌫", "delete"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "launch"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}
