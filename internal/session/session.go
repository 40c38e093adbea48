// Package session holds the state shared by every pane: the current
// selection, the main pane title and the latest settled command result.
package session

import "github.com/avitaltamir/rostui/internal/command"

// Display is what the main pane shows.
type Display int

const (
	DisplayTutorial Display = iota
	DisplayOutput
	DisplaySelection
)

// Ticket identifies one submitted command line.
type Ticket struct {
	Seq  uint64
	Line string

	epoch uint64
}

// Output is a submitted command and, once settled, its result.
type Output struct {
	Ticket  Ticket
	Result  command.Result
	Settled bool
}

// State is the single-owner session state. It is not safe for concurrent
// use; the program's update loop owns it.
type State struct {
	selection *command.Selection
	title     string
	output    *Output

	seq   uint64
	epoch uint64
}

// New returns an empty session showing the tutorial.
func New() *State {
	return &State{}
}

// Selection returns the current selection, if any.
func (s *State) Selection() (command.Selection, bool) {
	if s.selection == nil {
		return command.Selection{}, false
	}
	return *s.selection, true
}

// Select records a selection confirmed in a pane. It outranks any command
// submitted before it, even one that settles later.
func (s *State) Select(sel command.Selection) {
	s.epoch++
	s.selection = &sel
}

// ClearSelection drops the selection without touching command output.
func (s *State) ClearSelection() {
	s.selection = nil
	s.title = ""
}

// Submit starts a command. The selection is cleared so the output of the
// new command is shown while it runs.
func (s *State) Submit(line string) Ticket {
	s.seq++
	t := Ticket{Seq: s.seq, Line: line, epoch: s.epoch}
	s.ClearSelection()
	s.output = &Output{Ticket: t}
	return t
}

// Settle records the result of a command. The most recently settled result
// is kept. A Selection result becomes the session selection only if the user
// has not selected anything in a pane since the command was submitted.
// Settle reports whether the selection changed.
func (s *State) Settle(t Ticket, res command.Result) bool {
	s.output = &Output{Ticket: t, Result: res, Settled: true}

	if res.Kind != command.KindSelection || t.epoch != s.epoch {
		return false
	}
	if cur, ok := s.Selection(); ok && cur == res.Selection {
		return false
	}
	sel := res.Selection
	s.selection = &sel
	s.title = ""
	return true
}

// Output returns the latest command output, if any command was submitted.
func (s *State) Output() (Output, bool) {
	if s.output == nil {
		return Output{}, false
	}
	return *s.output, true
}

// Title returns the main pane title.
func (s *State) Title() string {
	return s.title
}

// SetTitle sets the main pane title.
func (s *State) SetTitle(title string) {
	s.title = title
}

// Display reports which view the main pane renders. A selection always wins
// over command output, and command output over the tutorial.
func (s *State) Display() Display {
	switch {
	case s.selection != nil:
		return DisplaySelection
	case s.output != nil:
		return DisplayOutput
	default:
		return DisplayTutorial
	}
}
