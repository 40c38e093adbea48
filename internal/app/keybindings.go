package app

import (
	"github.com/avitaltamir/rostui/internal/focus"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for the application.
type KeyMap struct {
	// Global keys
	Quit      key.Binding
	FocusNext key.Binding

	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Enter key.Binding
}

// DefaultKeyMap returns the default key bindings. Letter keys are never
// bound since printable input always goes to the command line.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch panel"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev pane"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next pane"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/run"),
		),
	}
}

// ShortHelp returns the short help text for the key map.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Up, k.Down, k.Enter, k.Quit}
}

// FullHelp returns the full help text for the key map.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.FocusNext, k.Quit},
	}
}

// classify maps a key to its routing class.
func classify(msg tea.KeyMsg) focus.KeyClass {
	switch msg.Type {
	case tea.KeyTab:
		return focus.KeyTab
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt {
			return focus.KeyOther
		}
		return focus.KeyPrintable
	case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight,
		tea.KeyPgUp, tea.KeyPgDown, tea.KeyHome, tea.KeyEnd:
		return focus.KeyNavigation
	case tea.KeyEnter:
		return focus.KeySubmit
	case tea.KeyBackspace, tea.KeyDelete:
		return focus.KeyEdit
	default:
		return focus.KeyOther
	}
}
