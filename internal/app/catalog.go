package app

import (
	"context"
	"maps"

	"github.com/avitaltamir/rostui/internal/messages"
	"github.com/avitaltamir/rostui/internal/resolve"
	"github.com/avitaltamir/rostui/internal/source"
)

// catalog holds the directories and observed units of the session. It is
// owned by the update loop.
type catalog struct {
	dirs        map[source.Kind][]source.Entry
	store       *messages.Store
	unitsLoaded bool
}

func newCatalog() *catalog {
	return &catalog{
		dirs:  make(map[source.Kind][]source.Entry),
		store: messages.New(),
	}
}

// Entries returns a directory and whether it has been loaded. Services are
// the referenced identities that are known nodes, available once the recent
// history of every topic was fetched.
func (c *catalog) Entries(kind source.Kind) ([]source.Entry, bool) {
	if kind == source.KindService {
		if !c.unitsLoaded {
			return nil, false
		}
		return c.services(), true
	}
	e, ok := c.dirs[kind]
	return e, ok
}

func (c *catalog) Messages() *messages.Store {
	return c.store
}

func (c *catalog) services() []source.Entry {
	nodes := c.dirs[source.KindNode]
	services := make([]source.Entry, 0)
	for _, id := range c.store.ReferencedIDs() {
		if e, ok := resolve.ByID(id, nodes); ok {
			services = append(services, e)
		}
	}
	return services
}

// env snapshots what a command may read. Directory slices are replaced,
// never mutated, so the snapshot is safe to read from a command goroutine.
func (c *catalog) env(p source.Provider) commandEnv {
	return commandEnv{
		provider:   p,
		dirs:       maps.Clone(c.dirs),
		referenced: c.store.ReferencedIDs(),
	}
}

// commandEnv serves loaded directories from the snapshot and fetches the
// rest from the provider.
type commandEnv struct {
	provider   source.Provider
	dirs       map[source.Kind][]source.Entry
	referenced []string
}

func (e commandEnv) Directory(ctx context.Context, kind source.Kind) ([]source.Entry, error) {
	if d, ok := e.dirs[kind]; ok {
		return d, nil
	}
	return e.provider.FetchDirectory(ctx, kind)
}

func (e commandEnv) Send(ctx context.Context, channelID, text string) error {
	return e.provider.SendText(ctx, channelID, text)
}

func (e commandEnv) ReferencedIDs() []string {
	return e.referenced
}
