package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaboard/internal/domain"
)

func TestView_BeforeFirstResize(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	m.width = 0
	m.height = 0

	assert.Equal(t, "Loading...", m.View())
}

func TestView_LoadingScreen(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	m.loading = true

	assert.Contains(t, m.View(), "Loading board...")
}

func TestView_BoardWithStatusBar(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)

	out := m.View()
	assert.Contains(t, out, "IDEA BOARD · demo")
	assert.Contains(t, out, "Backlog")
	assert.Contains(t, out, "First thought")
	assert.Contains(t, out, "Urgent")
	assert.Contains(t, out, "n: idea")
}

func TestView_FilterAndFailureIndicators(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)

	out := m.View()
	assert.NotContains(t, out, "FILTER")
	assert.NotContains(t, out, "saves failed")

	m.filter.Global.Toggle("lt-1")
	m.failures.Record(&domain.GatewayError{Op: "safe_order", Status: 500})

	out = m.View()
	assert.Contains(t, out, "FILTER")
	assert.Contains(t, out, "1 saves failed")
}

func TestView_FilterHidesCards(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)
	m.filter.Global.Toggle("lt-1")

	out := m.View()
	assert.Contains(t, out, "First thought")
	assert.NotContains(t, out, "Second thought")
}

func TestView_OverlayReplacesBoard(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)

	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})

	out := m.View()
	assert.Contains(t, out, "Help")
	assert.NotContains(t, out, "IDEA BOARD · demo")
}

func TestView_DraggingHints(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)

	m, _ = updateModel(t, m, press(5, 3))
	require.NotNil(t, m.drag)

	assert.Contains(t, m.View(), "release: drop")
}

func TestView_ToastAppended(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)
	m.toast(ToastError, "Save failed: safe_order", 0)

	assert.Contains(t, m.View(), "Save failed: safe_order")
}
