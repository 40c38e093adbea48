package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindTopic, "topic"},
		{KindNode, "node"},
		{KindPackage, "package"},
		{KindService, "service"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestEntry(t *testing.T) {
	e := Entry{ID: "1", DisplayName: "Alice", Aliases: []string{"alice_w"}, Groups: []string{"r1"}}

	assert.Equal(t, []string{"Alice", "alice_w"}, e.Names())
	assert.True(t, e.InGroup("r1"))
	assert.False(t, e.InGroup("r2"))
}

func TestUnitMentionsUser(t *testing.T) {
	u := Unit{Mentions: []Ref{{ID: "2", Name: "Bob"}}}

	assert.True(t, u.MentionsUser("2"))
	assert.False(t, u.MentionsUser("3"))
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("FetchRecentUnits returns newest units oldest first", func(t *testing.T) {
		m := NewMemory()
		m.AddUnits(
			Unit{ID: "c", ChannelID: "t1", Timestamp: base.Add(2 * time.Minute)},
			Unit{ID: "a", ChannelID: "t1", Timestamp: base},
			Unit{ID: "b", ChannelID: "t1", Timestamp: base.Add(time.Minute)},
		)

		units, err := m.FetchRecentUnits(ctx, "t1", 2)
		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, "b", units[0].ID)
		assert.Equal(t, "c", units[1].ID)
	})

	t.Run("SendText records known channels only", func(t *testing.T) {
		m := NewMemory().SetDirectory(KindTopic, Entry{ID: "t1", DisplayName: "general"})

		require.NoError(t, m.SendText(ctx, "t1", "hi"))
		assert.ErrorIs(t, m.SendText(ctx, "nope", "hi"), ErrUnknownChannel)
		assert.Equal(t, []Sent{{ChannelID: "t1", Text: "hi"}}, m.Sent())
	})

	t.Run("failures are reported", func(t *testing.T) {
		m := NewMemory()
		m.FailFetch = errors.New("offline")

		_, err := m.FetchDirectory(ctx, KindNode)
		assert.Error(t, err)
	})

	t.Run("Publish reaches subscribers until unsubscribed", func(t *testing.T) {
		m := NewMemory()
		var got []string
		unsubscribe := m.SubscribeNewUnits(func(u Unit) { got = append(got, u.ID) })

		m.Publish(Unit{ID: "x", ChannelID: "t1"})
		unsubscribe()
		m.Publish(Unit{ID: "y", ChannelID: "t1"})

		assert.Equal(t, []string{"x"}, got)
	})
}
