package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/astrobots/internal/puzzle"
)

// KeyMap defines the key bindings for the play screen.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	PrevActor   key.Binding
	NextActor   key.Binding
	Undo        key.Binding
	Restart     key.Binding
	Walkthrough key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevActor, k.NextActor, k.Undo, k.Walkthrough, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PrevActor, k.NextActor, k.Undo, k.Restart},
		{k.Walkthrough, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("arrows", "slide"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("", ""),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("", ""),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("", ""),
		),
		PrevActor: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "prev"),
		),
		NextActor: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "next"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Walkthrough: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "walkthrough"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DirectionFor maps a pressed key to a slide direction.
func DirectionFor(k KeyMap, msgKey string) (puzzle.Direction, bool) {
	switch {
	case matchesKeys(k.Up, msgKey):
		return puzzle.Up, true
	case matchesKeys(k.Down, msgKey):
		return puzzle.Down, true
	case matchesKeys(k.Left, msgKey):
		return puzzle.Left, true
	case matchesKeys(k.Right, msgKey):
		return puzzle.Right, true
	}
	return 0, false
}

// matchesKeys checks a raw key string against a binding's keys.
func matchesKeys(b key.Binding, msgKey string) bool {
	for _, bk := range b.Keys() {
		if bk == msgKey {
			return true
		}
	}
	return false
}
