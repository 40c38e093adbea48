// Package app is the root bubbletea model. It routes keys through the
// focus coordinator, runs commands and fetches as tea.Cmds and composes
// the panes.
package app

import (
	"context"

	"github.com/avitaltamir/rostui/internal/command"
	"github.com/avitaltamir/rostui/internal/components/commandinput"
	"github.com/avitaltamir/rostui/internal/components/content"
	"github.com/avitaltamir/rostui/internal/components/selectlist"
	"github.com/avitaltamir/rostui/internal/focus"
	"github.com/avitaltamir/rostui/internal/layout"
	"github.com/avitaltamir/rostui/internal/session"
	"github.com/avitaltamir/rostui/internal/source"
	"github.com/avitaltamir/rostui/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Version is the application version, set at build time via ldflags
var Version = "dev"

// DefaultFetchLimit is the number of recent units fetched per topic.
const DefaultFetchLimit = 100

// Options configures a Model.
type Options struct {
	Provider source.Provider
	Logger   *zap.Logger
	// FetchLimit is the page size of topic history fetches
	FetchLimit int
	// Context bounds every fetch and command. Defaults to context.Background.
	Context context.Context
}

type entryList = selectlist.Model[source.Entry]

// Model is the root application model.
type Model struct {
	// Child components
	topics   entryList
	carousel [3]entryList // indexed by focus.Slot
	input    commandinput.Model
	content  content.Model
	help     help.Model

	// Shared state
	focus   *focus.Coordinator
	session *session.State
	catalog *catalog
	feed    *feed

	provider   source.Provider
	log        *zap.Logger
	ctx        context.Context
	fetchLimit int

	// Layout
	layout layout.Layout
	keys   KeyMap

	// Window dimensions
	width  int
	height int
	ready  bool
}

// New creates the application model and subscribes to live units. Close
// releases the subscription.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	limit := opts.FetchLimit
	if limit <= 0 {
		limit = DefaultFetchLimit
	}

	s := session.New()
	c := newCatalog()

	var carousel [3]entryList
	for _, slot := range focus.Slots {
		carousel[slot] = newEntryList(slot.Kind())
	}
	carousel[focus.SlotServices] = carousel[focus.SlotServices].SetEmptyText("No services called yet")

	h := help.New()
	h.Styles.ShortKey = theme.HelpKeyStyle
	h.Styles.ShortDesc = theme.HelpDescStyle
	h.Styles.ShortSeparator = theme.HelpSepStyle
	h.Styles.Ellipsis = theme.HelpSepStyle

	m := Model{
		topics:     newEntryList(source.KindTopic),
		carousel:   carousel,
		input:      commandinput.New(),
		content:    content.New(s, c),
		help:       h,
		focus:      focus.New(),
		session:    s,
		catalog:    c,
		feed:       subscribe(opts.Provider),
		provider:   opts.Provider,
		log:        log.Named("app"),
		ctx:        ctx,
		fetchLimit: limit,
		keys:       DefaultKeyMap(),
	}
	return m.syncFocus()
}

func newEntryList(kind source.Kind) entryList {
	return selectlist.New(kind.String(),
		func(e source.Entry) string { return content.ItemName(kind, e) },
		func(e source.Entry) string { return e.ID },
	)
}

// Close unsubscribes from live units.
func (m Model) Close() {
	m.feed.close()
}

// Init starts the directory fetches and the live feed.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.content.Init(),
		m.fetchDirectory(source.KindTopic),
		m.fetchDirectory(source.KindNode),
		m.fetchDirectory(source.KindPackage),
		m.feed.wait(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = layout.Calculate(msg.Width, msg.Height)
		m.ready = true
		m = m.updateSizes()

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case commandinput.SubmitMsg:
		cmd = m.SubmitCommand(msg.Line)

	case CommandSettledMsg:
		if m.session.Settle(msg.Ticket, msg.Result) {
			m = m.markActive()
		}

	case selectlist.ConfirmMsg[source.Entry]:
		m = m.confirm(msg)

	case DirectoryLoadedMsg:
		m, cmd = m.directoryLoaded(msg.Kind, msg.Entries)

	case FetchFailedMsg:
		m.log.Warn("fetch failed", zap.Stringer("kind", msg.Kind), zap.Error(msg.Err))
		if msg.Kind == source.KindTopic {
			m = m.unitsFailed()
		} else {
			m, cmd = m.directoryLoaded(msg.Kind, nil)
		}

	case UnitsLoadedMsg:
		m = m.unitsLoaded(msg.Topics)

	case LiveUnitMsg:
		if m.catalog.store.Add(msg.Unit) {
			m = m.refreshServices()
		}
		cmd = m.feed.wait()

	case spinner.TickMsg:
		m.content, cmd = m.content.Update(msg)
	}

	m.session.SetTitle(m.content.Title())
	return m, cmd
}

// handleKey routes one key to the single consumer chosen by the focus
// coordinator.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	consumer := m.focus.Route(classify(msg))
	m = m.syncFocus()

	var cmd tea.Cmd
	switch consumer {
	case focus.ToCommandInput:
		m.input, cmd = m.input.Update(msg)
	case focus.ToTopicList:
		m.topics, cmd = m.topics.Update(msg)
	case focus.ToCarousel:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.focus.Prev()
			m = m.syncFocus()
		case key.Matches(msg, m.keys.Right):
			m.focus.Next()
			m = m.syncFocus()
		default:
			slot := m.focus.CarouselSlot()
			m.carousel[slot], cmd = m.carousel[slot].Update(msg)
		}
	}
	return m, cmd
}

// SubmitCommand starts a command line. The command runs off the update
// loop and settles through a CommandSettledMsg.
func (m Model) SubmitCommand(line string) tea.Cmd {
	ticket := m.session.Submit(line)
	in := command.New(m.catalog.env(m.provider), m.log)
	ctx := m.ctx

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		return CommandSettledMsg{Ticket: ticket, Result: in.Execute(ctx, line)}
	}
}

// confirm selects an item confirmed in a list pane.
func (m Model) confirm(msg selectlist.ConfirmMsg[source.Entry]) Model {
	kind := source.KindTopic
	for _, slot := range focus.Slots {
		if m.carousel[slot].Name() == msg.List {
			kind = slot.Kind()
		}
	}

	m.session.Select(command.Selection{ID: msg.Item.ID, Kind: kind})
	if kind != source.KindTopic {
		m.focus.FocusCarouselItem(kind)
		m = m.syncFocus()
	}
	return m.markActive()
}

// markActive flags the selected entity in the list that shows its kind.
func (m Model) markActive() Model {
	sel, ok := m.session.Selection()

	active := func(kind source.Kind) string {
		if ok && sel.Kind == kind {
			return sel.ID
		}
		return ""
	}
	m.topics = m.topics.SetActive(active(source.KindTopic))
	for _, slot := range focus.Slots {
		m.carousel[slot] = m.carousel[slot].SetActive(active(slot.Kind()))
	}
	return m
}

func (m Model) directoryLoaded(kind source.Kind, entries []source.Entry) (Model, tea.Cmd) {
	if entries == nil {
		entries = []source.Entry{}
	}
	m.catalog.dirs[kind] = entries

	switch kind {
	case source.KindTopic:
		m.topics = m.topics.SetItems(entries)
		return m, m.fetchUnits(entries)
	case source.KindNode:
		m.carousel[focus.SlotNodes] = m.carousel[focus.SlotNodes].SetItems(entries)
		m = m.refreshServices()
	case source.KindPackage:
		m.carousel[focus.SlotPackages] = m.carousel[focus.SlotPackages].SetItems(entries)
	}
	return m, nil
}

func (m Model) unitsLoaded(topics []TopicUnits) Model {
	for _, t := range topics {
		if t.Err != nil {
			m.log.Warn("topic history fetch failed", zap.String("channel_id", t.ChannelID), zap.Error(t.Err))
		}
		m.catalog.store.Load(t.ChannelID, t.Units, t.Capped)
	}
	m.catalog.unitsLoaded = true
	return m.refreshServices()
}

// unitsFailed shows every topic without history as empty.
func (m Model) unitsFailed() Model {
	if _, ok := m.catalog.dirs[source.KindTopic]; !ok {
		m.catalog.dirs[source.KindTopic] = []source.Entry{}
		m.topics = m.topics.SetItems(nil)
	}
	for _, t := range m.catalog.dirs[source.KindTopic] {
		if !m.catalog.store.Loaded(t.ID) {
			m.catalog.store.Load(t.ID, nil, false)
		}
	}
	m.catalog.unitsLoaded = true
	return m.refreshServices()
}

func (m Model) refreshServices() Model {
	if services, ok := m.catalog.Entries(source.KindService); ok {
		m.carousel[focus.SlotServices] = m.carousel[focus.SlotServices].SetItems(services)
	}
	return m
}

// syncFocus gives component focus to the coordinator's active target.
func (m Model) syncFocus() Model {
	m.input = m.input.Blur()
	m.topics = m.topics.Blur()
	for _, slot := range focus.Slots {
		m.carousel[slot] = m.carousel[slot].Blur()
	}

	switch m.focus.Current() {
	case focus.CommandInput:
		m.input = m.input.Focus()
	case focus.TopicList:
		m.topics = m.topics.Focus()
	case focus.Carousel:
		slot := m.focus.CarouselSlot()
		m.carousel[slot] = m.carousel[slot].Focus()
	}
	return m
}

// updateSizes sizes every pane to the inside of its border.
func (m Model) updateSizes() Model {
	l := m.layout
	sidebar := layout.InnerWidth(l.SidebarWidth, 1)

	m.topics = m.topics.SetSize(sidebar, layout.InnerHeight(l.TopicsHeight, 1))
	for _, slot := range focus.Slots {
		// one line goes to the slot header
		m.carousel[slot] = m.carousel[slot].SetSize(sidebar, max(layout.InnerHeight(l.CarouselHeight, 1)-1, 0))
	}
	m.content = m.content.SetSize(layout.InnerWidth(l.ContentWidth, 1), layout.InnerHeight(l.BodyHeight, 1))
	m.input = m.input.SetSize(layout.InnerWidth(l.TotalWidth, 1), layout.InnerHeight(l.InputHeight, 1))
	m.help.Width = l.TotalWidth
	return m
}

// Focus returns the active input target.
func (m Model) Focus() focus.Target {
	return m.focus.Current()
}

// Session returns the session state.
func (m Model) Session() *session.State {
	return m.session
}
