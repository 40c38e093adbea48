package discord

import (
	"context"
	"testing"
	"time"

	"github.com/avitaltamir/rostui/internal/source"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicEntries(t *testing.T) {
	channels := []*discordgo.Channel{
		{ID: "3", Name: "dev", Type: discordgo.ChannelTypeGuildText, Position: 2},
		{ID: "1", Name: "voice", Type: discordgo.ChannelTypeGuildVoice, Position: 0},
		{ID: "2", Name: "general", Type: discordgo.ChannelTypeGuildText, Position: 1},
		{ID: "4", Name: "Text Channels", Type: discordgo.ChannelTypeGuildCategory, Position: 0},
	}

	assert.Equal(t, []source.Entry{
		{ID: "2", DisplayName: "general"},
		{ID: "3", DisplayName: "dev"},
	}, topicEntries(channels))
}

func TestNodeEntry(t *testing.T) {
	tests := []struct {
		name   string
		member *discordgo.Member
		want   source.Entry
	}{
		{
			name: "nickname first",
			member: &discordgo.Member{
				Nick:  "Captain",
				Roles: []string{"r1", "r2"},
				User:  &discordgo.User{ID: "1", Username: "alice", GlobalName: "Ali"},
			},
			want: source.Entry{
				ID:          "1",
				DisplayName: "Captain",
				Aliases:     []string{"Ali", "alice"},
				Groups:      []string{"r1", "r2"},
			},
		},
		{
			name:   "global name without nickname",
			member: &discordgo.Member{User: &discordgo.User{ID: "2", Username: "bob", GlobalName: "Bobby"}},
			want:   source.Entry{ID: "2", DisplayName: "Bobby", Aliases: []string{"bob"}},
		},
		{
			name:   "username only",
			member: &discordgo.Member{User: &discordgo.User{ID: "3", Username: "carol"}},
			want:   source.Entry{ID: "3", DisplayName: "carol"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nodeEntry(tt.member))
		})
	}
}

func TestPackageEntries(t *testing.T) {
	roles := []*discordgo.Role{
		{ID: "g", Name: "@everyone", Position: 0},
		{ID: "r1", Name: "members", Position: 1},
		{ID: "r2", Name: "mods", Position: 5},
	}

	assert.Equal(t, []source.Entry{
		{ID: "r2", DisplayName: "mods"},
		{ID: "r1", DisplayName: "members"},
	}, packageEntries(roles, "g"))
}

func TestUnitFrom(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	m := &discordgo.Message{
		ID:           "m1",
		ChannelID:    "c1",
		Content:      "<@2> see <@&r1> in <#c2>",
		Timestamp:    ts,
		Author:       &discordgo.User{ID: "1", Username: "alice"},
		Mentions:     []*discordgo.User{{ID: "2", Username: "bob"}},
		MentionRoles: []string{"r1"},
		Embeds:       []*discordgo.MessageEmbed{{Title: "Docs", URL: "https://example.com"}},
		Attachments:  []*discordgo.MessageAttachment{{ID: "a1", Filename: "log.txt"}},
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.Button{Label: "Approve"},
				&discordgo.SelectMenu{Placeholder: "Pick one"},
			}},
		},
	}

	u := unitFrom(m)

	assert.Equal(t, "m1", u.ID)
	assert.Equal(t, "c1", u.ChannelID)
	assert.Equal(t, "1", u.AuthorID)
	assert.Equal(t, "alice", u.AuthorName)
	assert.Equal(t, ts, u.Timestamp)
	assert.Equal(t, []source.Ref{{ID: "2", Name: "bob"}}, u.Mentions)
	assert.Equal(t, []source.Ref{{ID: "r1"}}, u.RoleMentions)
	assert.Equal(t, []source.Embed{{Title: "Docs", URL: "https://example.com"}}, u.Embeds)
	assert.Equal(t, []source.Attachment{{ID: "a1", Name: "log.txt"}}, u.Attachments)
	assert.Equal(t, []string{"Approve", "Pick one"}, u.Controls)
	assert.True(t, u.MentionsUser("2"))
}

func TestUnitFromPrefersGuildNames(t *testing.T) {
	u := unitFrom(&discordgo.Message{
		ID:       "m3",
		Author:   &discordgo.User{ID: "1", Username: "alice", GlobalName: "Ali"},
		Member:   &discordgo.Member{Nick: "Captain"},
		Mentions: []*discordgo.User{{ID: "2", Username: "bob", GlobalName: "Bobby"}},
	})

	assert.Equal(t, "Captain", u.AuthorName)
	assert.Equal(t, []source.Ref{{ID: "2", Name: "Bobby"}}, u.Mentions)

	u = unitFrom(&discordgo.Message{ID: "m4", Author: &discordgo.User{ID: "1", Username: "alice", GlobalName: "Ali"}})
	assert.Equal(t, "Ali", u.AuthorName)
}

func TestUnitFromWithoutAuthor(t *testing.T) {
	u := unitFrom(&discordgo.Message{ID: "m2"})

	assert.Empty(t, u.AuthorID)
	assert.Empty(t, u.Controls)
}

func TestFetchDirectoryUnknownKind(t *testing.T) {
	p, err := New("token", "g", nil)
	require.NoError(t, err)

	_, err = p.FetchDirectory(context.Background(), source.KindService)
	assert.ErrorContains(t, err, "no directory for service")
}
