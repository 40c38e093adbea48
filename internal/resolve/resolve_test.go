package resolve

import (
	"testing"

	"github.com/avitaltamir/rostui/internal/source"
	"github.com/stretchr/testify/assert"
)

func TestEntry(t *testing.T) {
	people := []source.Entry{
		{ID: "1", DisplayName: "Alice"},
		{ID: "2", DisplayName: "Alicia"},
		{ID: "3", DisplayName: "Bob", Aliases: []string{"bobby_tables"}},
		{ID: "alice", DisplayName: "Zed"},
	}

	tests := []struct {
		name   string
		token  string
		wantID string
		wantOK bool
	}{
		{"exact id", "2", "2", true},
		{"id wins over name match", "alice", "alice", true},
		{"first substring match wins", "ali", "1", true},
		{"case-insensitive", "ALICIA", "2", true},
		{"alias match", "tables", "3", true},
		{"no match", "carol", "", false},
		{"empty token", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Entry(tt.token, people)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestEntryDeterministic(t *testing.T) {
	people := []source.Entry{
		{ID: "1", DisplayName: "Alice"},
		{ID: "2", DisplayName: "Alicia"},
	}

	for i := 0; i < 50; i++ {
		got, ok := Entry("ali", people)
		assert.True(t, ok)
		assert.Equal(t, "1", got.ID)
	}
}

func TestEntryEmptyCandidates(t *testing.T) {
	_, ok := Entry("anything", nil)
	assert.False(t, ok)
}

func TestFunc(t *testing.T) {
	type channel struct {
		id, name string
	}
	channels := []channel{{"10", "random"}, {"11", "general"}}

	got, ok := Func("GEN", channels,
		func(c channel) string { return c.id },
		func(c channel) []string { return []string{c.name} })

	assert.True(t, ok)
	assert.Equal(t, "11", got.id)
}

func TestByID(t *testing.T) {
	entries := []source.Entry{{ID: "1", DisplayName: "Alice"}}

	got, ok := ByID("1", entries)
	assert.True(t, ok)
	assert.Equal(t, "Alice", got.DisplayName)

	_, ok = ByID("Alice", entries)
	assert.False(t, ok)
}
