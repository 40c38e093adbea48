// Package selectlist is a selectable, scrollable list of any item type.
package selectlist

import (
	"github.com/avitaltamir/rostui/internal/components"
	"github.com/avitaltamir/rostui/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// ConfirmMsg is sent when the hovered item is confirmed with Enter.
type ConfirmMsg[T any] struct {
	List string
	Item T
}

// KeyMap defines the key bindings for a list.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Enter    key.Binding
}

// DefaultKeyMap returns the default key bindings. Letter keys are left out
// since printable input always goes to the command line.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

// Model is a list of items rendered through a formatter.
type Model[T any] struct {
	components.Base

	name   string
	items  []T
	format func(T) string
	id     func(T) string

	cursor  int
	offset  int
	active  string
	loading bool
	empty   string

	keys KeyMap
}

// New creates a list. format renders one item, id identifies it across reloads.
func New[T any](name string, format func(T) string, id func(T) string) Model[T] {
	return Model[T]{
		name:    name,
		format:  format,
		id:      id,
		loading: true,
		empty:   "(none)",
		keys:    DefaultKeyMap(),
	}
}

// Name returns the list name used in ConfirmMsg.
func (m Model[T]) Name() string {
	return m.name
}

// SetItems replaces the items. The hover stays on the same item when it
// is still present.
func (m Model[T]) SetItems(items []T) Model[T] {
	var hovered string
	if it, ok := m.Hovered(); ok {
		hovered = m.id(it)
	}

	m.items = items
	m.loading = false
	m.cursor = 0
	for i, it := range items {
		if hovered != "" && m.id(it) == hovered {
			m.cursor = i
			break
		}
	}
	m.ensureVisible()
	return m
}

// SetEmptyText sets the text shown when the list has no items.
func (m Model[T]) SetEmptyText(text string) Model[T] {
	m.empty = text
	return m
}

// SetActive marks the item with the given id as the current selection.
func (m Model[T]) SetActive(id string) Model[T] {
	m.active = id
	return m
}

// Items returns the list items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Loading reports whether the list is waiting for items.
func (m Model[T]) Loading() bool {
	return m.loading
}

// Cursor returns the hovered index.
func (m Model[T]) Cursor() int {
	return m.cursor
}

// Hovered returns the item under the cursor.
func (m Model[T]) Hovered() (T, bool) {
	var zero T
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return zero, false
	}
	return m.items[m.cursor], true
}

// Init implements tea.Model.
func (m Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys while focused.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.Focused() {
		return m, nil
	}

	_, h := m.Size()
	page := max(h-1, 1)

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(-page)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(page)
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(-len(m.items))
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(len(m.items))
	case key.Matches(keyMsg, m.keys.Enter):
		item, ok := m.Hovered()
		if !ok {
			return m, nil
		}
		name := m.name
		return m, func() tea.Msg {
			return ConfirmMsg[T]{List: name, Item: item}
		}
	}
	return m, nil
}

func (m *Model[T]) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

func (m *Model[T]) ensureVisible() {
	_, h := m.Size()
	if h <= 0 {
		return
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if maxOffset := max(len(m.items)-h, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

// View renders the visible window of items, one per line.
func (m Model[T]) View() string {
	if m.Hidden() {
		return ""
	}
	w, h := m.Size()

	if m.loading {
		return theme.ListEmpty.Render("Loading...")
	}
	if len(m.items) == 0 {
		return theme.ListEmpty.Render(m.empty)
	}

	lines := make([]string, 0, h)
	for i := m.offset; i < len(m.items) && len(lines) < h; i++ {
		lines = append(lines, m.renderItem(i, w))
	}
	return m.Clip(lines)
}

func (m Model[T]) renderItem(i, width int) string {
	item := m.items[i]
	marker := "  "
	if m.id(item) == m.active {
		marker = theme.StatusRunning + " "
	}
	text := ansi.Truncate(m.format(item), max(width-2, 0), "…")

	if i == m.cursor && m.Focused() {
		return theme.ListItemHover.Render(theme.HoverMarker + " " + text)
	}
	return theme.ListItem.Render(marker + text)
}

// Focus gives focus to this component.
func (m Model[T]) Focus() Model[T] {
	m.Base.Focus()
	return m
}

// Blur removes focus from this component.
func (m Model[T]) Blur() Model[T] {
	m.Base.Blur()
	return m
}

// SetSize updates the component's dimensions.
func (m Model[T]) SetSize(width, height int) Model[T] {
	m.Base.SetSize(width, height)
	m.ensureVisible()
	return m
}
