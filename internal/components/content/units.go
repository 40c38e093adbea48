package content

import (
	"strings"

	"github.com/avitaltamir/rostui/internal/layout"
	"github.com/avitaltamir/rostui/internal/markup"
	"github.com/avitaltamir/rostui/internal/source"
	"github.com/avitaltamir/rostui/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

const (
	dayFormat = "Monday, January 2, 2006"
	// dayRule is the longest dash run on each side of a day divider
	dayRule = 19
)

func byDay(u layout.Unit) string {
	return u.Timestamp.Format("2006-01-02")
}

// entry is a unit ready for layout, with the lines rendered below its body.
type entry struct {
	unit   layout.Unit
	extras []string
}

func (m Model) entries(units []source.Unit, owner func(source.Unit) string) []entry {
	out := make([]entry, len(units))
	for i, u := range units {
		body := markup.Body(u, m.lookup)
		extras := markup.Extras(u)
		out[i] = entry{
			unit: layout.Unit{
				Timestamp:   u.Timestamp,
				Owner:       owner(u),
				Body:        body,
				Newlines:    strings.Count(ansi.Strip(body), "\n"),
				Embeds:      len(u.Embeds),
				Attachments: len(u.Attachments),
			},
			extras: extras,
		}
	}
	return out
}

// renderUnits lays out the newest entries that fit in height lines, with
// the older-messages indicator on top and a divider before each day.
func renderUnits(entries []entry, width, height int, capped bool) []string {
	units := make([]layout.Unit, len(entries))
	for i, e := range entries {
		units[i] = e.unit
	}
	t := layout.Truncate(units, height, width, layout.Options{Group: byDay, Capped: capped})

	var lines []string
	if ind := t.Indicator(); ind != "" {
		lines = append(lines, theme.TextMutedStyle.Render(ind))
	}

	for n, i := range t.Visible {
		u := units[i]
		if n == 0 || byDay(u) != byDay(units[i-1]) {
			if n > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, dayDivider(u.Timestamp.Format(dayFormat), width))
		}
		lines = append(lines, renderUnit(u, width)...)
		lines = append(lines, entries[i].extras...)
	}

	return fitTail(lines, height, t.Hidden > 0)
}

func dayDivider(date string, width int) string {
	side := min(dayRule, (width-ansi.StringWidth(date)-2)/2)
	if side < 1 {
		return theme.DayDivider.Render(ansi.Truncate(date, max(width, 1), ""))
	}
	rule := strings.Repeat("—", side)
	return theme.DayDivider.Render(rule + " " + date + " " + rule)
}

func renderUnit(u layout.Unit, width int) []string {
	prefix := theme.Timestamp.Render("["+u.Timestamp.Format(layout.TimeFormat)+"]") + " " +
		theme.Author.Render("<"+u.Owner+">") + " "

	var lines []string
	for n, line := range strings.Split(u.Body, "\n") {
		if n == 0 {
			line = prefix + line
		}
		lines = append(lines, strings.Split(ansi.Hardwrap(line, max(width, 1), true), "\n")...)
	}
	return lines
}

// fitTail drops the oldest lines when wrapped continuation lines overrun
// the viewport. A leading indicator line stays in place.
func fitTail(lines []string, height int, indicator bool) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) <= height {
		return lines
	}
	if indicator && height > 1 {
		return append([]string{lines[0]}, lines[len(lines)-height+1:]...)
	}
	return lines[len(lines)-height:]
}
