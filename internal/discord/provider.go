// Package discord implements source.Provider over a Discord guild: text
// channels are topics, members are nodes and roles are packages.
package discord

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/avitaltamir/rostui/internal/source"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// memberPage is the largest page the members endpoint serves.
const memberPage = 1000

// Provider reads one guild through the REST API and the gateway.
type Provider struct {
	session *discordgo.Session
	guildID string
	log     *zap.Logger
}

var _ source.Provider = (*Provider)(nil)

// New creates a provider for a bot token. Open connects the gateway.
func New(token, guildID string, log *zap.Logger) (*Provider, error) {
	if log == nil {
		log = zap.NewNop()
	}

	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	return &Provider{session: s, guildID: guildID, log: log.Named("discord")}, nil
}

// Open connects the gateway so live units are delivered.
func (p *Provider) Open() error {
	if err := p.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	p.log.Info("gateway connected", zap.String("guild_id", p.guildID))
	return nil
}

// Close disconnects the gateway.
func (p *Provider) Close() error {
	return p.session.Close()
}

// FetchDirectory returns the text channels, members or roles of the guild.
func (p *Provider) FetchDirectory(ctx context.Context, kind source.Kind) ([]source.Entry, error) {
	switch kind {
	case source.KindTopic:
		channels, err := p.session.GuildChannels(p.guildID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("fetch channels: %w", err)
		}
		return topicEntries(channels), nil

	case source.KindNode:
		members, err := p.members(ctx)
		if err != nil {
			return nil, err
		}
		entries := make([]source.Entry, 0, len(members))
		for _, m := range members {
			if m.User != nil {
				entries = append(entries, nodeEntry(m))
			}
		}
		return entries, nil

	case source.KindPackage:
		roles, err := p.session.GuildRoles(p.guildID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("fetch roles: %w", err)
		}
		return packageEntries(roles, p.guildID), nil

	default:
		return nil, fmt.Errorf("no directory for %s", kind)
	}
}

func (p *Provider) members(ctx context.Context) ([]*discordgo.Member, error) {
	var all []*discordgo.Member
	after := ""
	for {
		page, err := p.session.GuildMembers(p.guildID, after, memberPage, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("fetch members: %w", err)
		}
		all = append(all, page...)
		if len(page) < memberPage || page[len(page)-1].User == nil {
			return all, nil
		}
		after = page[len(page)-1].User.ID
	}
}

// FetchRecentUnits returns up to limit of the newest messages, oldest first.
func (p *Provider) FetchRecentUnits(ctx context.Context, channelID string, limit int) ([]source.Unit, error) {
	msgs, err := p.session.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch messages of %s: %w", channelID, err)
	}

	units := make([]source.Unit, 0, len(msgs))
	for _, m := range slices.Backward(msgs) {
		units = append(units, unitFrom(m))
	}
	p.log.Debug("fetched recent units", zap.String("channel_id", channelID), zap.Int("count", len(units)))
	return units, nil
}

// SendText posts a message to a channel.
func (p *Provider) SendText(ctx context.Context, channelID, text string) error {
	if _, err := p.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send to %s: %w", channelID, err)
	}
	return nil
}

// SubscribeNewUnits delivers messages created in the guild to handler.
func (p *Provider) SubscribeNewUnits(handler func(source.Unit)) func() {
	return p.session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Message == nil || m.GuildID != p.guildID {
			return
		}
		handler(unitFrom(m.Message))
	})
}

func topicEntries(channels []*discordgo.Channel) []source.Entry {
	text := make([]*discordgo.Channel, 0, len(channels))
	for _, c := range channels {
		if c.Type == discordgo.ChannelTypeGuildText {
			text = append(text, c)
		}
	}
	sort.SliceStable(text, func(i, j int) bool { return text[i].Position < text[j].Position })

	entries := make([]source.Entry, len(text))
	for i, c := range text {
		entries[i] = source.Entry{ID: c.ID, DisplayName: c.Name}
	}
	return entries
}

// nodeEntry names a member the way the guild shows it. The other names,
// the username included, stay resolvable as aliases.
func nodeEntry(m *discordgo.Member) source.Entry {
	display := displayName(m.Nick, m.User)
	var aliases []string
	for _, name := range []string{m.Nick, m.User.GlobalName, m.User.Username} {
		if name != "" && name != display && !slices.Contains(aliases, name) {
			aliases = append(aliases, name)
		}
	}
	return source.Entry{
		ID:          m.User.ID,
		DisplayName: display,
		Aliases:     aliases,
		Groups:      m.Roles,
	}
}

// displayName is the guild nickname, then the global name, then the
// username.
func displayName(nick string, u *discordgo.User) string {
	switch {
	case nick != "":
		return nick
	case u.GlobalName != "":
		return u.GlobalName
	default:
		return u.Username
	}
}

// packageEntries lists roles highest first, leaving out @everyone, which
// shares its id with the guild.
func packageEntries(roles []*discordgo.Role, guildID string) []source.Entry {
	kept := make([]*discordgo.Role, 0, len(roles))
	for _, r := range roles {
		if r.ID != guildID {
			kept = append(kept, r)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Position > kept[j].Position })

	entries := make([]source.Entry, len(kept))
	for i, r := range kept {
		entries[i] = source.Entry{ID: r.ID, DisplayName: r.Name}
	}
	return entries
}

func unitFrom(m *discordgo.Message) source.Unit {
	u := source.Unit{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Controls:  controls(m.Components),
	}
	if m.Author != nil {
		var nick string
		if m.Member != nil {
			nick = m.Member.Nick
		}
		u.AuthorID = m.Author.ID
		u.AuthorName = displayName(nick, m.Author)
	}
	for _, user := range m.Mentions {
		u.Mentions = append(u.Mentions, source.Ref{ID: user.ID, Name: displayName("", user)})
	}
	for _, id := range m.MentionRoles {
		u.RoleMentions = append(u.RoleMentions, source.Ref{ID: id})
	}
	for _, c := range m.MentionChannels {
		u.ChannelMentions = append(u.ChannelMentions, source.Ref{ID: c.ID, Name: c.Name})
	}
	for _, e := range m.Embeds {
		u.Embeds = append(u.Embeds, source.Embed{Title: e.Title, Description: e.Description, URL: e.URL})
	}
	for _, a := range m.Attachments {
		u.Attachments = append(u.Attachments, source.Attachment{ID: a.ID, Name: a.Filename})
	}
	return u
}

// controls collects the labels of buttons and select menus.
func controls(components []discordgo.MessageComponent) []string {
	var labels []string
	for _, c := range components {
		switch c := c.(type) {
		case *discordgo.ActionsRow:
			labels = append(labels, controls(c.Components)...)
		case *discordgo.Button:
			if c.Label != "" {
				labels = append(labels, c.Label)
			}
		case *discordgo.SelectMenu:
			if c.Placeholder != "" {
				labels = append(labels, c.Placeholder)
			}
		}
	}
	return labels
}
