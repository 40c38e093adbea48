// Package commandinput is the single-line command prompt backed by the
// history navigator.
package commandinput

import (
	"github.com/avitaltamir/rostui/internal/components"
	"github.com/avitaltamir/rostui/internal/history"
	"github.com/avitaltamir/rostui/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Placeholder is shown while the buffer is empty.
const Placeholder = "Enter a command... (Ctrl+C to exit)"

// SubmitMsg is sent when a non-blank line is submitted.
type SubmitMsg struct {
	Line string
}

// Model is the command input component.
type Model struct {
	components.Base

	history *history.Navigator
	prompt  string
}

// New creates an empty command input.
func New() Model {
	return Model{
		history: history.New(),
		prompt:  "> ",
	}
}

// Value returns the text shown in the input.
func (m Model) Value() string {
	return m.history.Value()
}

// History returns the submitted lines, oldest first.
func (m Model) History() []string {
	return m.history.Entries()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update applies one key. The caller routes keys here only when the
// input is the key's consumer, so Update does not check focus.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEnter:
		line, ok := m.history.Submit()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SubmitMsg{Line: line}
		}
	case tea.KeyUp:
		m.history.Up()
	case tea.KeyDown:
		m.history.Down()
	case tea.KeyBackspace, tea.KeyDelete:
		m.history.Backspace()
	case tea.KeySpace:
		m.history.Insert(" ")
	case tea.KeyRunes:
		if !keyMsg.Alt {
			m.history.Insert(string(keyMsg.Runes))
		}
	}
	return m, nil
}

// View renders the prompt line.
func (m Model) View() string {
	w, _ := m.Size()
	if w == 0 {
		return ""
	}

	prompt := theme.PromptStyle.Render(m.prompt)
	room := max(w-ansi.StringWidth(m.prompt)-1, 0)

	value := m.Value()
	if value == "" {
		cursor := ""
		if m.Focused() {
			cursor = theme.CursorStyle.Render(" ")
		}
		return prompt + cursor + theme.PlaceholderStyle.Render(ansi.Truncate(Placeholder, room, "…"))
	}

	// keep the end of long input visible
	if width := ansi.StringWidth(value); width > room {
		value = ansi.TruncateLeft(value, width-room+1, "…")
	}
	view := prompt + theme.InputTextStyle.Render(value)
	if m.Focused() {
		view += theme.CursorStyle.Render(" ")
	}
	return view
}

// Focus gives focus to this component.
func (m Model) Focus() Model {
	m.Base.Focus()
	return m
}

// Blur removes focus from this component.
func (m Model) Blur() Model {
	m.Base.Blur()
	return m
}

// SetSize updates the component's dimensions.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	return m
}
