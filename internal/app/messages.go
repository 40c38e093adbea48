package app

import (
	"github.com/avitaltamir/rostui/internal/command"
	"github.com/avitaltamir/rostui/internal/session"
	"github.com/avitaltamir/rostui/internal/source"
)

// DirectoryLoadedMsg carries a fetched directory.
type DirectoryLoadedMsg struct {
	Kind    source.Kind
	Entries []source.Entry
}

// FetchFailedMsg reports a directory or topic fetch that failed. The
// affected pane falls back to an empty display.
type FetchFailedMsg struct {
	Kind source.Kind
	Err  error
}

// TopicUnits is the recent history of one topic.
type TopicUnits struct {
	ChannelID string
	Units     []source.Unit
	// Capped is set when the fetch returned exactly its limit
	Capped bool
	Err    error
}

// UnitsLoadedMsg carries the recent history of every topic.
type UnitsLoadedMsg struct {
	Topics []TopicUnits
}

// LiveUnitMsg carries a unit received from the subscription.
type LiveUnitMsg struct {
	Unit source.Unit
}

// CommandSettledMsg carries the result of a submitted command.
type CommandSettledMsg struct {
	Ticket session.Ticket
	Result command.Result
}
