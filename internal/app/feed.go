package app

import (
	"sync"

	"github.com/avitaltamir/rostui/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

// feedBuffer is how many live units may queue before the provider's
// callback blocks.
const feedBuffer = 64

// feed bridges the provider's live callback into the update loop.
type feed struct {
	units       chan source.Unit
	done        chan struct{}
	unsubscribe func()
	once        sync.Once
}

func subscribe(p source.Provider) *feed {
	f := &feed{
		units: make(chan source.Unit, feedBuffer),
		done:  make(chan struct{}),
	}
	f.unsubscribe = p.SubscribeNewUnits(func(u source.Unit) {
		select {
		case f.units <- u:
		case <-f.done:
		}
	})
	return f
}

// wait blocks for the next live unit. It is re-armed after every LiveUnitMsg.
func (f *feed) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case u := <-f.units:
			return LiveUnitMsg{Unit: u}
		case <-f.done:
			return nil
		}
	}
}

func (f *feed) close() {
	f.once.Do(func() {
		f.unsubscribe()
		close(f.done)
	})
}
