package content

import (
	"github.com/avitaltamir/rostui/internal/source"
	"github.com/avitaltamir/rostui/internal/theme"
)

func (m Model) topicView(id string, width, height int) []string {
	store := m.catalog.Messages()
	if !store.Loaded(id) {
		return []string{m.loadingLine("Loading messages...")}
	}

	units := store.Units(id)
	if len(units) == 0 {
		return []string{theme.TextMutedStyle.Render("No messages in this topic yet.")}
	}

	entries := m.entries(units, func(u source.Unit) string { return u.AuthorName })
	return renderUnits(entries, width, height, store.Capped(id))
}
