package content

import (
	"fmt"

	"github.com/avitaltamir/rostui/internal/layout"
	"github.com/avitaltamir/rostui/internal/source"
	"github.com/avitaltamir/rostui/internal/theme"
)

func (m Model) packageView(id string, height int) []string {
	lines := []string{theme.TextH1.Render("Nodes in package " + m.name(source.KindPackage, id)), ""}

	nodes, loaded := m.catalog.Entries(source.KindNode)
	if !loaded {
		return append(lines, m.loadingLine("Loading nodes..."))
	}

	var members []string
	for _, n := range nodes {
		if n.InGroup(id) {
			members = append(members, n.DisplayName)
		}
	}
	if len(members) == 0 {
		return append(lines, theme.TextMutedStyle.Render("This package is empty :("))
	}

	s := layout.Fair([]layout.Category[string]{{Items: members}}, height-len(lines))[0]
	for i, name := range s.Visible {
		glyph := theme.TreeBranch
		if i == len(s.Visible)-1 && !s.Truncated() {
			glyph = theme.TreeLast
		}
		lines = append(lines, theme.TextDimStyle.Render(glyph)+" "+theme.ListItem.Render(name))
	}
	if s.Truncated() {
		lines = append(lines, theme.TextDimStyle.Render(theme.TreeLast)+" "+
			theme.TextMutedStyle.Render(fmt.Sprintf("... %d more", s.Remaining)))
	}
	return lines
}
