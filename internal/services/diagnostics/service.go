// Package diagnostics records failed persistence calls. Saves are optimistic
// and never rolled back, so a failure is only observable here: the app logs
// it and appends it to this ring, and an overlay renders the report on
// demand.
package diagnostics

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"ideaboard/internal/domain"
)

// DefaultCapacity bounds the ring; older failures fall off the front
const DefaultCapacity = 100

// Entry is one recorded persistence failure
type Entry struct {
	Time   time.Time
	Op     string
	ID     string
	Status int
	Err    error
}

// Log is a bounded, newest-last record of persistence failures. Gateway
// calls complete on their own goroutines, so access is mutex-guarded.
type Log struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	logger   *slog.Logger
}

// NewLog creates a failure log. capacity <= 0 selects DefaultCapacity; a nil
// logger falls back to the default.
func NewLog(capacity int, logger *slog.Logger) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{
		capacity: capacity,
		logger:   logger,
	}
}

// Record appends a failure. Gateway errors contribute their operation and
// entity id; anything else is recorded as-is.
func (l *Log) Record(err error) {
	if err == nil {
		return
	}

	entry := Entry{Time: time.Now(), Err: err}
	var gerr *domain.GatewayError
	if errors.As(err, &gerr) {
		entry.Op = gerr.Op
		entry.ID = gerr.ID
		entry.Status = gerr.Status
	}

	l.logger.Error("persistence call failed", "op", entry.Op, "id", entry.ID, "err", err)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Recent returns the recorded failures, newest first
func (l *Log) Recent() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len returns the number of recorded failures
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear drops all recorded failures
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Format returns a human-readable failure report for the diagnostics
// overlay.
func (l *Log) Format() string {
	entries := l.Recent()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("SAVE FAILURES: %d recorded\n\n", len(entries)))
	if len(entries) == 0 {
		b.WriteString("  (none — all saves reached the server)\n")
		return b.String()
	}

	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %s  %s", e.Time.Format("15:04:05"), e.Op))
		if e.ID != "" {
			b.WriteString(fmt.Sprintf(" [%s]", e.ID))
		}
		if e.Status != 0 {
			b.WriteString(fmt.Sprintf(" → status %d", e.Status))
		} else if e.Err != nil {
			b.WriteString(fmt.Sprintf(" → %v", e.Err))
		}
		b.WriteString("\n")
	}
	b.WriteString("\nLocal state is kept as-is; reload to resync with the server.\n")
	return b.String()
}
