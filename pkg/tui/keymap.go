package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings the navigation model reacts to. Everything
// else is left to the embedding application.
type KeyMap struct {
	Back    key.Binding // pop the path (swipe-back equivalent)
	Dismiss key.Binding // close the topmost modal or overlay
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings: Esc closes, Backspace goes
// back, arrows and Enter drive dialogs.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("backspace", "left"),
			key.WithHelp("backspace", "back"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
