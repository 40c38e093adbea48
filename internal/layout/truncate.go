package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// TimeFormat is the timestamp layout of a rendered unit prefix.
const TimeFormat = "15:04:05"

// Unit is one timestamped, line-measurable piece of content.
type Unit struct {
	Timestamp   time.Time
	Owner       string
	Body        string
	Newlines    int
	Embeds      int
	Attachments int
}

// Prefix returns the text rendered before the body on the first line.
func (u Unit) Prefix() string {
	return "[" + u.Timestamp.Format(TimeFormat) + "] <" + u.Owner + "> "
}

// Options tunes Truncate.
type Options struct {
	// Group returns the group key of a unit. Consecutive units with
	// different keys are separated by a divider. Nil disables dividers.
	Group func(Unit) string
	// Capped marks that the source returned exactly its fetch limit.
	Capped bool
}

// Truncation is the part of a sequence that fits a viewport.
type Truncation struct {
	// Visible holds ascending indices into the input sequence
	Visible        []int
	Hidden         int
	HitSourceLimit bool
}

// Indicator returns the line shown above the visible units, or "" when
// nothing is hidden.
func (t Truncation) Indicator() string {
	if t.Hidden == 0 {
		return ""
	}
	n := fmt.Sprintf("%d", t.Hidden)
	if t.HitSourceLimit {
		n += "+"
	}
	noun := "messages"
	if t.Hidden == 1 && !t.HitSourceLimit {
		noun = "message"
	}
	return "↑ " + n + " older " + noun
}

// Cost returns the number of lines u occupies at width columns.
func Cost(u Unit, width int) int {
	width = max(width, 1)
	budget := min(max(width-ansi.StringWidth(u.Prefix()), 1), width)
	visible := ansi.StringWidth(strings.ReplaceAll(u.Body, "\n", ""))

	wrapped := 0
	if over := visible - budget; over > 0 {
		wrapped = (over + width - 1) / width
	}
	return 1 + wrapped + u.Newlines + u.Embeds + u.Attachments
}

// Truncate picks the newest units of an oldest-first sequence that fit in
// height lines at width columns. One line is always reserved for the
// truncation indicator. The result depends only on its inputs.
func Truncate(units []Unit, height, width int, opts Options) Truncation {
	t := Truncation{HitSourceLimit: opts.Capped}
	budget := height - 1

	used, groups := 0, 0
	first := len(units)
	for i := len(units) - 1; i >= 0; i-- {
		cost := Cost(units[i], width)
		if opts.Group != nil && (i == len(units)-1 || opts.Group(units[i]) != opts.Group(units[i+1])) {
			// first divider overall takes one line, later ones a blank line too
			if groups == 0 {
				cost++
			} else {
				cost += 2
			}
			if used+cost > budget {
				break
			}
			groups++
		} else if used+cost > budget {
			break
		}
		used += cost
		first = i
	}

	t.Hidden = first
	t.Visible = make([]int, 0, len(units)-first)
	for i := first; i < len(units); i++ {
		t.Visible = append(t.Visible, i)
	}
	return t
}
