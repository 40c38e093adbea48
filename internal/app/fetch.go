package app

import (
	"context"
	"time"

	"github.com/avitaltamir/rostui/internal/source"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const (
	// fetchTimeout bounds one directory fetch or one history batch
	fetchTimeout = 30 * time.Second
	// fetchConcurrency bounds parallel topic history fetches
	fetchConcurrency = 4
	// commandTimeout bounds the lookups and sends of one command
	commandTimeout = 15 * time.Second
)

// fetchDirectory loads one directory from the provider.
func (m Model) fetchDirectory(kind source.Kind) tea.Cmd {
	ctx, p := m.ctx, m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		entries, err := p.FetchDirectory(ctx, kind)
		if err != nil {
			return FetchFailedMsg{Kind: kind, Err: err}
		}
		return DirectoryLoadedMsg{Kind: kind, Entries: entries}
	}
}

// fetchUnits loads the recent history of every topic. A failing topic is
// reported in its own TopicUnits and does not stop the others.
func (m Model) fetchUnits(topics []source.Entry) tea.Cmd {
	ctx, p, limit := m.ctx, m.provider, m.fetchLimit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		results := make([]TopicUnits, len(topics))
		var g errgroup.Group
		g.SetLimit(fetchConcurrency)
		for i, t := range topics {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				units, err := p.FetchRecentUnits(ctx, t.ID, limit)
				results[i] = TopicUnits{
					ChannelID: t.ID,
					Units:     units,
					Capped:    limit > 0 && len(units) == limit,
					Err:       err,
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return FetchFailedMsg{Kind: source.KindTopic, Err: err}
		}
		return UnitsLoadedMsg{Topics: results}
	}
}
