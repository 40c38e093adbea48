// Package content is the main pane. It shows the tutorial, the output of
// the last command, or the view of the current selection.
package content

import (
	"github.com/avitaltamir/rostui/internal/command"
	"github.com/avitaltamir/rostui/internal/components"
	"github.com/avitaltamir/rostui/internal/messages"
	"github.com/avitaltamir/rostui/internal/resolve"
	"github.com/avitaltamir/rostui/internal/session"
	"github.com/avitaltamir/rostui/internal/source"
	"github.com/avitaltamir/rostui/internal/theme"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Catalog is the session's view of the directories and observed messages.
type Catalog interface {
	// Entries returns a directory and whether it has been loaded
	Entries(kind source.Kind) ([]source.Entry, bool)
	Messages() *messages.Store
}

// Model is the content pane component.
type Model struct {
	components.Base

	session *session.State
	catalog Catalog
	spinner spinner.Model
}

// New creates a content pane reading from the session and catalog.
func New(s *session.State, c Catalog) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(theme.SpinnerStyle),
	)
	return Model{
		session: s,
		catalog: c,
		spinner: sp,
	}
}

// Init starts the loading spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Title returns the pane title for what is currently shown.
func (m Model) Title() string {
	switch m.session.Display() {
	case session.DisplaySelection:
		sel, _ := m.session.Selection()
		name := m.name(sel.Kind, sel.ID)
		switch sel.Kind {
		case source.KindTopic:
			return "Topic: #" + name
		case source.KindNode:
			return "Node info: /" + name
		case source.KindPackage:
			return "Package: " + name
		default:
			return "Service: /" + name
		}
	case session.DisplayOutput:
		return "Command"
	default:
		return "Welcome"
	}
}

// Loading reports whether the pane is waiting for data.
func (m Model) Loading() bool {
	switch m.session.Display() {
	case session.DisplayOutput:
		out, _ := m.session.Output()
		if !out.Settled {
			return true
		}
		if out.Result.Kind == command.KindList {
			_, loaded := m.catalog.Entries(out.Result.Domain.Kind())
			return !loaded
		}
	case session.DisplaySelection:
		sel, _ := m.session.Selection()
		if sel.Kind == source.KindTopic {
			return !m.catalog.Messages().Loaded(sel.ID)
		}
	}
	return false
}

// View renders the pane body, at most the component height in lines.
func (m Model) View() string {
	if m.Hidden() {
		return ""
	}
	w, h := m.Size()

	var lines []string
	switch m.session.Display() {
	case session.DisplaySelection:
		sel, _ := m.session.Selection()
		switch sel.Kind {
		case source.KindTopic:
			lines = m.topicView(sel.ID, w, h)
		case source.KindNode:
			lines = m.nodeView(sel.ID, h)
		case source.KindPackage:
			lines = m.packageView(sel.ID, h)
		default:
			lines = m.serviceView(sel.ID, w, h)
		}
	case session.DisplayOutput:
		out, _ := m.session.Output()
		lines = m.outputView(out, h)
	default:
		lines = tutorial()
	}

	return m.Clip(lines)
}

// name returns the display name of an entity, or its id when unknown.
func (m Model) name(kind source.Kind, id string) string {
	if kind == source.KindService {
		kind = source.KindNode
	}
	entries, _ := m.catalog.Entries(kind)
	if e, ok := resolve.ByID(id, entries); ok {
		return e.DisplayName
	}
	return id
}

// lookup resolves mention names the unit does not carry.
func (m Model) lookup(kind source.Kind, id string) (string, bool) {
	entries, _ := m.catalog.Entries(kind)
	if e, ok := resolve.ByID(id, entries); ok {
		return e.DisplayName, true
	}
	return "", false
}

func (m Model) loadingLine(text string) string {
	return m.spinner.View() + " " + theme.TextMutedStyle.Render(text)
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
