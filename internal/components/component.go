// Package components holds the state shared by every pane.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Base is embedded by every pane. It tracks whether the focus coordinator
// routes keys to the pane and the size of the pane's inside.
type Base struct {
	focused bool
	width   int
	height  int
}

// Focus marks the pane as the key consumer.
func (b *Base) Focus() {
	b.focused = true
}

// Blur marks the pane as not receiving keys.
func (b *Base) Blur() {
	b.focused = false
}

// Focused reports whether the pane receives keys.
func (b Base) Focused() bool {
	return b.focused
}

// SetSize updates the inner dimensions. Negative values are clamped to zero.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

// Size returns the inner dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Hidden reports whether the pane has no room to draw anything.
func (b Base) Hidden() bool {
	return b.width == 0 || b.height == 0
}

// Clip joins the first height lines, each cut to the pane width.
func (b Base) Clip(lines []string) string {
	if b.Hidden() {
		return ""
	}
	if len(lines) > b.height {
		lines = lines[:b.height]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = ansi.Truncate(l, b.width, "")
	}
	return strings.Join(out, "\n")
}
