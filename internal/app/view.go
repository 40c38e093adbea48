package app

import (
	"fmt"

	"github.com/avitaltamir/rostui/internal/components/content"
	"github.com/avitaltamir/rostui/internal/focus"
	"github.com/avitaltamir/rostui/internal/layout"
	"github.com/avitaltamir/rostui/internal/source"
	"github.com/avitaltamir/rostui/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the application.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	sidebar := lipgloss.JoinVertical(lipgloss.Left, m.renderTopics(), m.renderCarousel())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.renderContent())

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderInput(), m.renderHelpBar())
}

func (m Model) renderTopics() string {
	focused := m.focus.Is(focus.TopicList)

	opts := theme.PanelTitleOptions{
		Title: listTitle(content.ListTitle(source.KindTopic), m.topics.Len(), m.topics.Loading()),
	}
	if focused {
		opts.BottomHints = "↑↓:nav  enter:open"
	}

	return theme.RenderPanelWithTitle(m.topics.View(), opts, m.layout.SidebarWidth, m.layout.TopicsHeight, focused)
}

// renderCarousel draws the visible slot with its header as the first line.
func (m Model) renderCarousel() string {
	focused := m.focus.Is(focus.Carousel)
	slot := m.focus.CarouselSlot()
	list := m.carousel[slot]

	header := theme.TextMutedStyle.Render(listTitle(slot.String(), list.Len(), list.Loading()))
	var opts theme.PanelTitleOptions
	if focused {
		header = theme.TextH2.Render("<   " + listTitle(slot.String(), list.Len(), list.Loading()) + "   >")
		opts.BottomHints = "←→:switch"
	}
	header = lipgloss.PlaceHorizontal(layout.InnerWidth(m.layout.SidebarWidth, 1), lipgloss.Center, header)

	return theme.RenderPanelWithTitle(header+"\n"+list.View(), opts, m.layout.SidebarWidth, m.layout.CarouselHeight, focused)
}

func (m Model) renderContent() string {
	opts := theme.PanelTitleOptions{
		Title:         m.session.Title(),
		StatusRunning: true,
		ShowStatus:    m.content.Loading(),
	}
	return theme.RenderPanelWithTitle(m.content.View(), opts, m.layout.ContentWidth, m.layout.BodyHeight, false)
}

func (m Model) renderInput() string {
	focused := m.focus.Is(focus.CommandInput)
	return theme.RenderPanelWithTitle(m.input.View(), theme.PanelTitleOptions{}, m.layout.TotalWidth, m.layout.InputHeight, focused)
}

func (m Model) renderHelpBar() string {
	bar := " " + m.help.View(m.keys)
	right := theme.HelpDescStyle.Render(theme.CurrentTheme().Name + " │ " + Version + " ")

	gap := m.layout.TotalWidth - ansi.StringWidth(bar) - ansi.StringWidth(right)
	if gap < 1 {
		return ansi.Truncate(bar, m.layout.TotalWidth, "")
	}
	return bar + lipgloss.NewStyle().Width(gap).Render("") + right
}

func listTitle(name string, n int, loading bool) string {
	if loading {
		return name
	}
	return fmt.Sprintf("%s (%d)", name, n)
}
