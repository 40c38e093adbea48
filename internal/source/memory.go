package source

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrUnknownChannel is returned when a topic id does not exist.
var ErrUnknownChannel = errors.New("unknown channel")

// Sent records one SendText call on a Memory provider.
type Sent struct {
	ChannelID string
	Text      string
}

// Memory implements Provider over in-process data.
type Memory struct {
	mu          sync.Mutex
	directories map[Kind][]Entry
	units       map[string][]Unit
	sent        []Sent
	handlers    map[int]func(Unit)
	nextHandler int

	// FailFetch makes every fetch return this error when set
	FailFetch error
	// FailSend makes every send return this error when set
	FailSend error
}

// NewMemory creates an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{
		directories: make(map[Kind][]Entry),
		units:       make(map[string][]Unit),
		handlers:    make(map[int]func(Unit)),
	}
}

// SetDirectory replaces the entries of a directory.
func (m *Memory) SetDirectory(kind Kind, entries ...Entry) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.directories[kind] = append([]Entry(nil), entries...)
	return m
}

// AddUnits appends units to their topics.
func (m *Memory) AddUnits(units ...Unit) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range units {
		m.units[u.ChannelID] = append(m.units[u.ChannelID], u)
	}
	return m
}

// FetchDirectory returns a copy of the directory.
func (m *Memory) FetchDirectory(_ context.Context, kind Kind) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailFetch != nil {
		return nil, m.FailFetch
	}
	return append([]Entry(nil), m.directories[kind]...), nil
}

// FetchRecentUnits returns the newest limit units of a topic, oldest first.
func (m *Memory) FetchRecentUnits(_ context.Context, channelID string, limit int) ([]Unit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailFetch != nil {
		return nil, m.FailFetch
	}
	units := append([]Unit(nil), m.units[channelID]...)
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].Timestamp.Before(units[j].Timestamp)
	})
	if limit > 0 && len(units) > limit {
		units = units[len(units)-limit:]
	}
	return units, nil
}

// SendText records the message; it does not echo it back as a unit.
func (m *Memory) SendText(_ context.Context, channelID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSend != nil {
		return m.FailSend
	}
	known := false
	for _, e := range m.directories[KindTopic] {
		if e.ID == channelID {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownChannel
	}
	m.sent = append(m.sent, Sent{ChannelID: channelID, Text: text})
	return nil
}

// Sent returns every message sent so far.
func (m *Memory) Sent() []Sent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Sent(nil), m.sent...)
}

// SubscribeNewUnits registers a live handler.
func (m *Memory) SubscribeNewUnits(handler func(Unit)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextHandler
	m.nextHandler++
	m.handlers[id] = handler
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.handlers, id)
	}
}

// Publish stores a unit and delivers it to every subscriber.
func (m *Memory) Publish(u Unit) {
	m.mu.Lock()
	m.units[u.ChannelID] = append(m.units[u.ChannelID], u)
	handlers := make([]func(Unit), 0, len(m.handlers))
	for _, h := range m.handlers {
		handlers = append(handlers, h)
	}
	m.mu.Unlock()

	for _, h := range handlers {
		h(u)
	}
}
