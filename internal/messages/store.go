// Package messages keeps the units observed during the session, per topic,
// and derives the service and node views from them.
package messages

import (
	"sort"

	"github.com/avitaltamir/rostui/internal/source"
)

// Store holds observed units per topic, oldest first.
type Store struct {
	order  []string
	topics map[string][]source.Unit
	seen   map[string]struct{}
	loaded map[string]bool
	capped map[string]bool
}

// New creates an empty store.
func New() *Store {
	return &Store{
		topics: make(map[string][]source.Unit),
		seen:   make(map[string]struct{}),
		loaded: make(map[string]bool),
		capped: make(map[string]bool),
	}
}

// Load merges the fetched history of a topic with the units already stored
// for it, such as live units that arrived while the fetch was in flight.
// capped records whether the fetch returned exactly its page limit, so
// older units may exist.
func (s *Store) Load(channelID string, units []source.Unit, capped bool) {
	merged := s.track(channelID)
	for _, u := range units {
		if _, dup := s.seen[u.ID]; dup {
			continue
		}
		s.seen[u.ID] = struct{}{}
		merged = append(merged, u)
	}
	sortUnits(merged)

	s.topics[channelID] = merged
	s.loaded[channelID] = true
	s.capped[channelID] = capped
}

// Add appends a live unit. It reports false for a unit already stored.
func (s *Store) Add(u source.Unit) bool {
	if _, dup := s.seen[u.ID]; dup {
		return false
	}
	s.seen[u.ID] = struct{}{}

	units := append(s.track(u.ChannelID), u)
	if n := len(units); n > 1 && u.Timestamp.Before(units[n-2].Timestamp) {
		sortUnits(units)
	}
	s.topics[u.ChannelID] = units
	return true
}

// track registers a topic on first sight and returns its units.
func (s *Store) track(channelID string) []source.Unit {
	units, ok := s.topics[channelID]
	if !ok {
		s.order = append(s.order, channelID)
	}
	return units
}

// Units returns the units of a topic, oldest first.
func (s *Store) Units(channelID string) []source.Unit {
	return s.topics[channelID]
}

// Loaded reports whether the history of a topic has been fetched. Live
// units alone do not count.
func (s *Store) Loaded(channelID string) bool {
	return s.loaded[channelID]
}

// Capped reports whether the last fetch of a topic hit its limit.
func (s *Store) Capped(channelID string) bool {
	return s.capped[channelID]
}

// ReferencedIDs returns the distinct mentioned user ids in first-seen order.
func (s *Store) ReferencedIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	s.each(func(u source.Unit) {
		for _, m := range u.Mentions {
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			ids = append(ids, m.ID)
		}
	})
	return ids
}

// NodeInfo summarizes how one node takes part in the observed topics.
type NodeInfo struct {
	// Subscribers are topics where someone else published.
	Subscribers []string
	// Publishers are topics the node published to.
	Publishers []string
	// ServiceServers are topics where another node mentioned this one.
	ServiceServers []string
	// ServiceClients are the user ids the node mentioned.
	ServiceClients []string
}

// NodeInfo derives the node summary for nodeID. Topic lists hold topic ids
// in store order.
func (s *Store) NodeInfo(nodeID string) NodeInfo {
	var info NodeInfo
	clients := make(map[string]struct{})

	for _, ch := range s.order {
		var published, received, mentioned bool
		for _, u := range s.topics[ch] {
			own := u.AuthorID == nodeID
			if own {
				published = true
				for _, m := range u.Mentions {
					if _, ok := clients[m.ID]; !ok {
						clients[m.ID] = struct{}{}
						info.ServiceClients = append(info.ServiceClients, m.ID)
					}
				}
			} else {
				received = true
				if u.MentionsUser(nodeID) {
					mentioned = true
				}
			}
		}
		if received {
			info.Subscribers = append(info.Subscribers, ch)
		}
		if published {
			info.Publishers = append(info.Publishers, ch)
		}
		if mentioned {
			info.ServiceServers = append(info.ServiceServers, ch)
		}
	}
	return info
}

// ServiceCalls returns every unit that mentions or was authored by the
// service, oldest first.
func (s *Store) ServiceCalls(serviceID string) []source.Unit {
	var calls []source.Unit
	s.each(func(u source.Unit) {
		if u.AuthorID == serviceID || u.MentionsUser(serviceID) {
			calls = append(calls, u)
		}
	})
	sortUnits(calls)
	return calls
}

func (s *Store) each(fn func(source.Unit)) {
	for _, ch := range s.order {
		for _, u := range s.topics[ch] {
			fn(u)
		}
	}
}

func sortUnits(units []source.Unit) {
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].Timestamp.Before(units[j].Timestamp)
	})
}
