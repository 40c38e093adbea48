package content

import (
	"github.com/avitaltamir/rostui/internal/source"
	"github.com/avitaltamir/rostui/internal/theme"
)

func (m Model) serviceView(id string, width, height int) []string {
	name := m.name(source.KindService, id)
	lines := []string{theme.TextH1.Render("Service Calls for service " + name), ""}

	calls := m.catalog.Messages().ServiceCalls(id)
	if len(calls) == 0 {
		return append(lines, theme.TextMutedStyle.Render("No recent calls to/from this service."))
	}

	entries := m.entries(calls, func(u source.Unit) string {
		return u.AuthorName + " -> " + receiver(u, id, name)
	})
	return append(lines, renderUnits(entries, width, height-len(lines), false)...)
}

// receiver names the other side of a call: the service itself when it was
// mentioned, otherwise the first user the service mentioned.
func receiver(u source.Unit, serviceID, serviceName string) string {
	if u.AuthorID != serviceID {
		return serviceName
	}
	if len(u.Mentions) > 0 {
		return u.Mentions[0].Name
	}
	return "?"
}
