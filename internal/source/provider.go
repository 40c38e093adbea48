package source

import (
	"context"
	"time"
)

// Provider defines the remote message store the session browses.
// Transport, authentication and retry policy belong to implementations.
type Provider interface {
	// FetchDirectory returns the entries of one directory in the store's natural order
	FetchDirectory(ctx context.Context, kind Kind) ([]Entry, error)

	// FetchRecentUnits returns up to limit of the newest units of a topic, oldest first
	FetchRecentUnits(ctx context.Context, channelID string, limit int) ([]Unit, error)

	// SendText posts text to a topic
	SendText(ctx context.Context, channelID, text string) error

	// SubscribeNewUnits registers a handler for live units and returns its unsubscribe func
	SubscribeNewUnits(handler func(Unit)) (unsubscribe func())
}

// Kind identifies a category of addressable entities.
type Kind int

const (
	KindTopic Kind = iota
	KindNode
	KindPackage
	KindService
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindTopic:
		return "topic"
	case KindNode:
		return "node"
	case KindPackage:
		return "package"
	case KindService:
		return "service"
	default:
		return "unknown"
	}
}

// Entry is a directory candidate: a node, topic or package.
type Entry struct {
	ID          string
	DisplayName string
	Aliases     []string
	// Groups holds the ids of the packages a node belongs to
	Groups []string
}

// Names returns every name field the resolver may match against.
func (e Entry) Names() []string {
	names := make([]string, 0, 1+len(e.Aliases))
	names = append(names, e.DisplayName)
	return append(names, e.Aliases...)
}

// InGroup reports whether the entry belongs to the package with the given id.
func (e Entry) InGroup(id string) bool {
	for _, g := range e.Groups {
		if g == id {
			return true
		}
	}
	return false
}

// Ref is a reference from a unit to another entity.
type Ref struct {
	ID   string
	Name string
}

// Embed is rich content attached to a unit.
type Embed struct {
	Title       string
	Description string
	URL         string
}

// Attachment is a file attached to a unit.
type Attachment struct {
	ID   string
	Name string
}

// Unit is one message observed in a topic.
type Unit struct {
	ID         string
	ChannelID  string
	AuthorID   string
	AuthorName string
	Content    string
	Timestamp  time.Time

	Mentions        []Ref
	RoleMentions    []Ref
	ChannelMentions []Ref

	Embeds      []Embed
	Attachments []Attachment
	// Controls holds the labels of interactive components (buttons, menus)
	Controls []string
}

// MentionsUser reports whether the unit references the user with the given id.
func (u Unit) MentionsUser(id string) bool {
	for _, m := range u.Mentions {
		if m.ID == id {
			return true
		}
	}
	return false
}
