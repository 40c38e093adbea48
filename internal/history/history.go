// Package history keeps submitted command lines and a browsing cursor that is
// independent from the live input buffer.
package history

import "strings"

// Navigator is an append-only history with a cursor.
// A cursor of -1 means the live buffer is shown.
type Navigator struct {
	entries []string
	cursor  int
	live    string
}

// New creates an empty navigator showing the live buffer.
func New() *Navigator {
	return &Navigator{cursor: -1}
}

// Entries returns a copy of the submitted lines, oldest first.
func (n *Navigator) Entries() []string {
	return append([]string(nil), n.entries...)
}

// Cursor returns the browsed index, or false when the live buffer is shown.
func (n *Navigator) Cursor() (int, bool) {
	if n.cursor < 0 {
		return 0, false
	}
	return n.cursor, true
}

// Value returns what the input line displays.
func (n *Navigator) Value() string {
	if n.cursor < 0 {
		return n.live
	}
	return n.entries[n.cursor]
}

// Up moves to an older entry. From the live buffer it jumps to the newest entry.
func (n *Navigator) Up() {
	switch {
	case len(n.entries) == 0:
		n.cursor = -1
	case n.cursor < 0:
		n.cursor = len(n.entries) - 1
	case n.cursor > 0:
		n.cursor--
	}
}

// Down moves to a newer entry, returning to the live buffer past the newest one.
func (n *Navigator) Down() {
	if n.cursor < 0 {
		return
	}
	if n.cursor+1 < len(n.entries) {
		n.cursor++
		return
	}
	n.cursor = -1
}

// Insert appends text to the displayed line.
func (n *Navigator) Insert(text string) {
	n.fork()
	n.live += text
}

// Backspace removes the last rune of the displayed line.
func (n *Navigator) Backspace() {
	n.fork()
	if n.live == "" {
		return
	}
	r := []rune(n.live)
	n.live = string(r[:len(r)-1])
}

// Submit returns the displayed line and resets to an empty live buffer.
// Non-blank lines are appended verbatim; ok is false for blank lines.
func (n *Navigator) Submit() (line string, ok bool) {
	line = n.Value()
	n.cursor = -1
	n.live = ""
	if strings.TrimSpace(line) == "" {
		return "", false
	}
	n.entries = append(n.entries, line)
	return line, true
}

// fork seeds the live buffer from the browsed entry before an edit.
func (n *Navigator) fork() {
	if n.cursor < 0 {
		return
	}
	n.live = n.entries[n.cursor]
	n.cursor = -1
}
