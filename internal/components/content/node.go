package content

import (
	"fmt"
	"sort"

	"github.com/avitaltamir/rostui/internal/layout"
	"github.com/avitaltamir/rostui/internal/source"
	"github.com/avitaltamir/rostui/internal/theme"
)

// nodeChrome is the number of node view lines that are not section items:
// title, blank, four headers and the blanks between sections.
const nodeChrome = 9

func (m Model) nodeView(id string, height int) []string {
	info := m.catalog.Messages().NodeInfo(id)

	sections := layout.Fair([]layout.Category[string]{
		{Name: "Subscribers", Items: m.sortedNames(source.KindTopic, info.Subscribers)},
		{Name: "Publishers", Items: m.sortedNames(source.KindTopic, info.Publishers)},
		{Name: "Service Servers", Items: m.sortedNames(source.KindTopic, info.ServiceServers)},
		{Name: "Service Clients", Items: m.sortedNames(source.KindNode, info.ServiceClients)},
	}, max(4, height-nodeChrome))

	lines := []string{theme.TextH1.Render("Node info: /" + m.name(source.KindNode, id)), ""}
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, theme.TextH2.Render(s.Name+":"))
		lines = append(lines, sectionLines(s)...)
	}
	return lines
}

func sectionLines(s layout.Section[string]) []string {
	if len(s.Visible) == 0 && !s.Truncated() {
		return []string{theme.ListEmpty.Render("  (none)")}
	}
	lines := make([]string, 0, len(s.Visible)+1)
	for _, name := range s.Visible {
		lines = append(lines, theme.ListItem.Render("  /"+name))
	}
	if s.Truncated() {
		lines = append(lines, theme.TextMutedStyle.Render(fmt.Sprintf("  ... %d more", s.Remaining)))
	}
	return lines
}

func (m Model) sortedNames(kind source.Kind, ids []string) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = m.name(kind, id)
	}
	sort.Strings(names)
	return names
}
