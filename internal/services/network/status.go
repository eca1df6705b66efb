// Package network monitors reachability of the board server. Saves are
// fire-and-forget, so the probe is the user's only early warning that edits
// have stopped landing.
package network

import (
	"context"
	"net/http"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Probe checks whether the board server answers at all
type Probe struct {
	mu        sync.RWMutex
	online    bool
	lastCheck time.Time

	serverURL string
	client    *http.Client
}

// StatusMsg reports the result of one reachability check
type StatusMsg struct {
	Online bool
}

// NewProbe creates a probe for the given server. A nil client gets a short
// dedicated timeout so a hung server cannot stall the probe cycle.
func NewProbe(serverURL string, client *http.Client) *Probe {
	if client == nil {
		client = &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		}
	}
	return &Probe{
		online:    true, // assume reachable until proven otherwise
		serverURL: serverURL,
		client:    client,
	}
}

// Check performs one reachability check. Any HTTP response counts as online,
// error statuses included: the server answered, only transport failures mean
// unreachable.
func (p *Probe) Check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.serverURL, nil)
	if err != nil {
		p.record(false)
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.record(false)
		return false
	}
	resp.Body.Close()

	p.record(true)
	return true
}

// Online returns the cached reachability state
func (p *Probe) Online() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.online
}

// LastCheck returns when the probe last ran
func (p *Probe) LastCheck() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastCheck
}

func (p *Probe) record(online bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.online = online
	p.lastCheck = time.Now()
}

// CheckCmd returns a command that runs one check and reports the result
func (p *Probe) CheckCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return StatusMsg{Online: p.Check(ctx)}
	}
}
