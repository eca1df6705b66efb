package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ideaboard/internal/domain"
	"ideaboard/internal/services/gateway"
)

// gatewayTimeout bounds every persistence call
const gatewayTimeout = 10 * time.Second

// probeInterval is how often server reachability is re-checked
const probeInterval = 30 * time.Second

type categoriesLoadedMsg struct {
	categories []domain.Category
	err        error
}

type ideasLoadedMsg struct {
	snapshot gateway.IdeaSnapshot
	err      error
}

type legendsLoadedMsg struct {
	types []domain.LegendType
	err   error
}

// saveDoneMsg reports the outcome of one fire-and-forget persistence call
type saveDoneMsg struct {
	err error
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type probeTickMsg struct{}

func probeTick() tea.Cmd {
	return tea.Tick(probeInterval, func(time.Time) tea.Msg {
		return probeTickMsg{}
	})
}

// persist wraps a gateway call as a fire-and-forget command. Commands run
// detached from the TEA loop, so a timeout is the only cancellation that
// applies.
func (m Model) persist(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		return saveDoneMsg{err: fn(ctx)}
	}
}

func (m Model) loadCategoriesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		cats, err := m.gateway.ListCategories(ctx)
		return categoriesLoadedMsg{categories: cats, err: err}
	}
}

func (m Model) loadIdeasCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		snap, err := m.gateway.ListIdeas(ctx)
		return ideasLoadedMsg{snapshot: snap, err: err}
	}
}

func (m Model) loadLegendsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		types, err := m.gateway.ListLegendTypes(ctx)
		return legendsLoadedMsg{types: types, err: err}
	}
}
