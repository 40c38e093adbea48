package content

import (
	"fmt"

	"github.com/avitaltamir/rostui/internal/command"
	"github.com/avitaltamir/rostui/internal/layout"
	"github.com/avitaltamir/rostui/internal/session"
	"github.com/avitaltamir/rostui/internal/source"
	"github.com/avitaltamir/rostui/internal/theme"
)

func (m Model) outputView(out session.Output, height int) []string {
	lines := []string{theme.TextDimStyle.Render("> " + out.Ticket.Line), ""}
	if !out.Settled {
		return append(lines, m.loadingLine("Running..."))
	}

	res := out.Result
	switch res.Kind {
	case command.KindHelp:
		return append(lines, helpLines(res)...)
	case command.KindError:
		return append(lines, failureLines(res.Failure)...)
	case command.KindList:
		return append(lines, m.listLines(res.Domain.Kind(), height-len(lines))...)
	default:
		return append(lines, theme.TextSecondaryStyle.Render("Command executed successfully."))
	}
}

func helpLines(res command.Result) []string {
	lines := []string{theme.TextH1.Render("Available commands:"), ""}
	for _, s := range res.Help {
		lines = append(lines, theme.TextH2.Render(s.Title+":"))
		for _, l := range s.Lines {
			lines = append(lines, "  "+l)
		}
		lines = append(lines, "")
	}
	if res.HelpNote != "" {
		lines = append(lines, theme.TextMutedStyle.Render(res.HelpNote))
	}
	return lines
}

func failureLines(f command.Failure) []string {
	head := theme.TextErrorStyle.Render(f.Message)
	if f.Subject != "" {
		head = theme.TextErrorStyle.Render(f.Message+": ") + theme.TextSubjectStyle.Render(f.Subject)
	}
	lines := []string{head}
	if len(f.Usage) > 0 {
		lines = append(lines, "", theme.TextH2.Render("Usage:"))
		for _, u := range f.Usage {
			lines = append(lines, "  "+u)
		}
	}
	if f.Hint != "" {
		lines = append(lines, "", theme.TextMutedStyle.Render(f.Hint))
	}
	return lines
}

// listLines renders a directory the way the side panes list it.
func (m Model) listLines(kind source.Kind, height int) []string {
	entries, loaded := m.catalog.Entries(kind)
	if !loaded {
		return []string{m.loadingLine(fmt.Sprintf("Loading %ss...", kind))}
	}

	header := theme.TextH2.Render(fmt.Sprintf("%s (%d)", ListTitle(kind), len(entries)))
	if len(entries) == 0 {
		return []string{header, theme.ListEmpty.Render("(none)")}
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = ItemName(kind, e)
	}
	s := layout.Fair([]layout.Category[string]{{Items: names}}, height-1)[0]

	lines := []string{header}
	for _, name := range s.Visible {
		lines = append(lines, theme.ListItem.Render(name))
	}
	if s.Truncated() {
		lines = append(lines, theme.TextMutedStyle.Render(fmt.Sprintf("... %d more", s.Remaining)))
	}
	return lines
}

// ListTitle returns the heading of a list of kind.
func ListTitle(kind source.Kind) string {
	switch kind {
	case source.KindTopic:
		return "Topics"
	case source.KindPackage:
		return "Packages"
	case source.KindService:
		return "Services"
	default:
		return "Nodes"
	}
}

// ItemName formats an entry for a list: packages by bare name, everything
// else as a ROS graph path.
func ItemName(kind source.Kind, e source.Entry) string {
	if kind == source.KindPackage {
		return e.DisplayName
	}
	return "/" + e.DisplayName
}
