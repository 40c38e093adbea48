package commandinput

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m Model, text string) Model {
	for _, r := range text {
		if r == ' ' {
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func submit(t *testing.T, m Model) (Model, string) {
	t.Helper()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		return m, ""
	}
	msg, ok := cmd().(SubmitMsg)
	require.True(t, ok)
	return m, msg.Line
}

func TestTypingAndSubmit(t *testing.T) {
	m := New().SetSize(60, 1).Focus()
	m = typeText(m, "ros2 node list")
	assert.Equal(t, "ros2 node list", m.Value())

	m, line := submit(t, m)

	assert.Equal(t, "ros2 node list", line)
	assert.Empty(t, m.Value())
	assert.Equal(t, []string{"ros2 node list"}, m.History())
}

func TestBlankSubmitIsIgnored(t *testing.T) {
	m := typeText(New(), "   ")

	m, line := submit(t, m)

	assert.Empty(t, line)
	assert.Empty(t, m.History())
	assert.Empty(t, m.Value())
}

func TestHistoryBrowsing(t *testing.T) {
	m := New()
	m, _ = submit(t, typeText(m, "help"))
	m, _ = submit(t, typeText(m, "ros2 pkg list"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "ros2 pkg list", m.Value())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "help", m.Value())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.Value())
}

func TestEditingForksHistory(t *testing.T) {
	m, _ := submit(t, typeText(New(), "help"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "hel", m.Value())
	assert.Equal(t, []string{"help"}, m.History(), "entries are immutable")
}

func TestAltRunesIgnored(t *testing.T) {
	m, _ := New().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	assert.Empty(t, m.Value())
}

func TestView(t *testing.T) {
	m := New().SetSize(60, 1).Focus()
	assert.Contains(t, ansi.Strip(m.View()), Placeholder)
	assert.True(t, strings.HasPrefix(ansi.Strip(m.View()), "> "))

	m = typeText(m, "ros2")
	assert.Equal(t, "> ros2 ", ansi.Strip(m.View()))

	assert.Empty(t, New().View())
}

func TestViewKeepsTailOfLongInput(t *testing.T) {
	m := typeText(New().SetSize(12, 1), "abcdefghijklmnopqrstuvwxyz")

	view := ansi.Strip(m.View())

	assert.LessOrEqual(t, ansi.StringWidth(view), 12)
	assert.True(t, strings.HasSuffix(view, "xyz"))
}
