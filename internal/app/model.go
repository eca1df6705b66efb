// Package app contains the main application model and TEA implementation.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ideaboard/internal/config"
	"ideaboard/internal/core/geometry"
	"ideaboard/internal/domain"
	"ideaboard/internal/drag"
	"ideaboard/internal/services/diagnostics"
	"ideaboard/internal/services/gateway"
	"ideaboard/internal/services/network"
	"ideaboard/internal/store"
	"ideaboard/internal/types"
	"ideaboard/internal/ui/overlay"
	"ideaboard/internal/ui/styles"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// initialLoads is how many fetches the startup sequence waits for
const initialLoads = 3

// Model is the main application state
type Model struct {
	// Entity stores
	categories *store.Categories
	ideas      *store.Ideas
	legends    *store.Legends
	filter     *domain.Filter

	// Persistence
	gateway  *gateway.Client
	failures *diagnostics.Log
	probe    *network.Probe
	online   bool

	// Gesture state: at most one session, plus what the pointer last saw
	drag       *drag.Session
	dragSource *string
	pointer    geometry.Point

	// UI state
	overlays      *overlay.Stack
	overlayStyles *overlay.Styles
	archiveOpen   bool
	toasts        []Toast
	// collapsed holds per-idea display state, local only, never persisted.
	collapsed map[string]bool

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config

	// Loading state
	loading bool
	pending int
	spinner spinner.Model

	logger *slog.Logger
}

// New creates a new application model. The gateway client is injected so
// tests can point it at a stub server.
func New(cfg *config.Config, gw *gateway.Client, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	return Model{
		categories:    store.NewCategories(),
		ideas:         store.NewIdeas(),
		legends:       store.NewLegends(),
		filter:        domain.NewFilter(),
		gateway:       gw,
		failures:      diagnostics.NewLog(0, logger),
		probe:         network.NewProbe(cfg.Server.URL, nil),
		online:        true,
		overlays:      overlay.NewStack(),
		overlayStyles: overlay.New(),
		collapsed:     make(map[string]bool),
		styles:        styles.New(),
		config:        cfg,
		loading:       true,
		pending:       initialLoads,
		spinner:       s,
		logger:        logger,
	}
}

// Mode returns the current interaction mode
func (m Model) Mode() types.Mode {
	switch {
	case !m.overlays.IsEmpty():
		return types.ModeOverlay
	case m.drag != nil:
		return types.ModeDragging
	default:
		return types.ModeBoard
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadCategoriesCmd(),
		m.loadIdeasCmd(),
		m.loadLegendsCmd(),
		tickEvery(time.Second),
		probeTick(),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.clampToSurface()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(time.Second)

	case probeTickMsg:
		return m, tea.Batch(m.probe.CheckCmd(), probeTick())

	case network.StatusMsg:
		return m.handleStatus(msg)

	case tea.KeyMsg:
		if !m.overlays.IsEmpty() {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case overlay.CloseOverlayMsg:
		m.overlays.Pop()
		return m, nil

	case overlay.InputSubmittedMsg:
		return m.handleSubmission(msg)

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.FilterChangedMsg:
		// Visibility is recomputed on render; nothing to do here.
		return m, nil

	case overlay.DiagnosticsClearedMsg:
		m.toast(ToastInfo, "Failure log cleared", 2*time.Second)
		return m, nil

	case categoriesLoadedMsg:
		return m.handleCategoriesLoaded(msg)

	case ideasLoadedMsg:
		return m.handleIdeasLoaded(msg)

	case legendsLoadedMsg:
		return m.handleLegendsLoaded(msg)

	case saveDoneMsg:
		return m.handleSaveDone(msg)
	}

	return m, nil
}

// handleKey processes keyboard input while no overlay is open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "ctrl+l":
		return m, tea.ClearScreen

	case "esc":
		if m.drag != nil {
			m.drag.Cancel()
			m.drag = nil
			m.dragSource = nil
		}
		return m, nil

	case "n":
		return m, m.overlays.Push(overlay.NewInputOverlay("new-idea", "New Idea", []overlay.Field{
			{Label: "Title", Placeholder: "What's the idea?", Required: true},
			{Label: "Headline", Placeholder: "Short label (optional)"},
		}))

	case "c":
		return m, m.overlays.Push(overlay.NewInputOverlay("new-category", "New Category", []overlay.Field{
			{Label: "Name", Required: true},
		}))

	case "t":
		return m, m.overlays.Push(overlay.NewInputOverlay("new-legend", "New Legend Type", []overlay.Field{
			{Label: "Name", Required: true},
			{Label: "Color", Placeholder: "#8aadf4", Required: true},
		}))

	case "f":
		return m, m.overlays.Push(overlay.NewFilterOverlay(m.filter, nil, "", m.legends.All()))

	case "F":
		m.filter = domain.NewFilter()
		m.toast(ToastInfo, "Filters cleared", 2*time.Second)
		return m, nil

	case "a":
		m.archiveOpen = !m.archiveOpen
		return m, nil

	case "[", "]":
		cmd := m.resizeSidebar(msg.String() == "]")
		return m, cmd

	case "d":
		return m, m.overlays.Push(overlay.NewDiagnosticsPanel(m.failures))

	case "?":
		return m, m.overlays.Push(overlay.NewHelpOverlay())
	}

	return m, nil
}

// handleOverlayKey routes keys to the open overlay
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	return m, m.overlays.Update(msg)
}

// handleSubmission applies a completed input form
func (m Model) handleSubmission(msg overlay.InputSubmittedMsg) (tea.Model, tea.Cmd) {
	action, id, _ := strings.Cut(msg.Key, ":")

	switch action {
	case "new-idea":
		idea, err := m.ideas.Create(msg.Values[0], msg.Values[1])
		if err != nil {
			m.toast(ToastError, "Title cannot be empty", 3*time.Second)
			return m, nil
		}
		m.toast(ToastSuccess, "Idea created", 2*time.Second)
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.CreateIdea(ctx, idea.ID, idea.Title, idea.Headline)
		})

	case "new-category":
		cat, err := m.categories.Create(msg.Values[0])
		if err != nil {
			m.toast(ToastError, "Name cannot be empty", 3*time.Second)
			return m, nil
		}
		m.ideas.EnsureCategory(cat.ID)
		m.toast(ToastSuccess, "Category created", 2*time.Second)
		return m, tea.Batch(
			m.persist(func(ctx context.Context) error { return m.gateway.CreateCategory(ctx, cat.ID, cat.Name) }),
			m.persist(func(ctx context.Context) error { return m.gateway.SetCategoryPosition(ctx, cat.ID, cat.X, cat.Y) }),
			m.persist(func(ctx context.Context) error { return m.gateway.SetCategoryArea(ctx, cat.ID, cat.Width, cat.Height) }),
		)

	case "new-legend":
		lt, err := m.legends.Create(msg.Values[0], msg.Values[1])
		if err != nil {
			if errors.Is(err, domain.ErrBadColor) {
				m.toast(ToastError, "Color must be a hex value like #8aadf4", 3*time.Second)
			} else {
				m.toast(ToastError, "Name cannot be empty", 3*time.Second)
			}
			return m, nil
		}
		m.toast(ToastSuccess, "Legend type created", 2*time.Second)
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.CreateLegendType(ctx, lt.ID, lt.Name, lt.Color)
		})

	case "edit-category":
		cat, err := m.categories.Rename(id, msg.Values[0])
		if err != nil {
			m.toast(ToastError, "Rename failed: "+err.Error(), 3*time.Second)
			return m, nil
		}
		return m, m.persist(func(ctx context.Context) error { return m.gateway.RenameCategory(ctx, cat.ID, cat.Name) })

	case "edit-idea":
		if err := m.ideas.UpdateTitle(id, msg.Values[0]); err != nil {
			m.toast(ToastError, "Title cannot be empty", 3*time.Second)
			return m, nil
		}
		_ = m.ideas.UpdateHeadline(id, msg.Values[1])
		title, headline := msg.Values[0], msg.Values[1]
		return m, tea.Batch(
			m.persist(func(ctx context.Context) error { return m.gateway.UpdateIdeaTitle(ctx, id, title) }),
			m.persist(func(ctx context.Context) error { return m.gateway.UpdateIdeaHeadline(ctx, id, headline) }),
		)

	case "edit-legend":
		lt, err := m.legends.Update(id, msg.Values[0], msg.Values[1])
		if errors.Is(err, domain.ErrBadColor) {
			m.toast(ToastError, "Color must be a hex value like #8aadf4", 3*time.Second)
			return m, nil
		}
		if err != nil {
			m.toast(ToastError, "Name cannot be empty", 3*time.Second)
			return m, nil
		}
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.UpdateLegendType(ctx, id, &lt.Name, &lt.Color)
		})
	}

	return m, nil
}

// handleSelection applies a confirm dialog result
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	res, ok := msg.Value.(overlay.ConfirmResult)
	if !ok || !res.Confirmed {
		return m, nil
	}
	action, id, _ := strings.Cut(res.Key, ":")

	switch action {
	case "delete-category":
		// The category's ideas survive: they move to the unassigned list.
		moved := m.ideas.DropCategory(id)
		if err := m.categories.Delete(id); err != nil {
			return m, nil
		}
		m.filter.DropCategory(id)
		m.toast(ToastSuccess, fmt.Sprintf("Category deleted, %d ideas unassigned", len(moved)), 3*time.Second)
		return m, m.persist(func(ctx context.Context) error { return m.gateway.DeleteCategory(ctx, id) })

	case "delete-idea":
		if err := m.ideas.Delete(id); err != nil {
			return m, nil
		}
		delete(m.collapsed, id)
		m.toast(ToastSuccess, "Idea deleted", 2*time.Second)
		return m, m.persist(func(ctx context.Context) error { return m.gateway.DeleteIdea(ctx, id) })

	case "delete-legend":
		if err := m.legends.Delete(id); err != nil {
			return m, nil
		}
		cleared := m.ideas.ClearLegendType(id)
		m.filter.DropTag(id)
		m.toast(ToastSuccess, fmt.Sprintf("Legend type deleted, %d ideas untagged", len(cleared)), 3*time.Second)
		// The server clears idea references itself; one delete call suffices.
		return m, m.persist(func(ctx context.Context) error { return m.gateway.DeleteLegendType(ctx, id) })
	}

	return m, nil
}

func (m Model) handleCategoriesLoaded(msg categoriesLoadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		return m.loadFailed(msg.err)
	}
	m.categories.Load(msg.categories)
	for _, cat := range msg.categories {
		m.ideas.EnsureCategory(cat.ID)
	}
	return m.loadArrived()
}

func (m Model) handleIdeasLoaded(msg ideasLoadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		return m.loadFailed(msg.err)
	}
	m.ideas.Load(msg.snapshot.Items, msg.snapshot.Unassigned, msg.snapshot.CategoryOrders)
	return m.loadArrived()
}

func (m Model) handleLegendsLoaded(msg legendsLoadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		return m.loadFailed(msg.err)
	}
	m.legends.Load(msg.types)
	return m.loadArrived()
}

func (m Model) loadArrived() (Model, tea.Cmd) {
	m.pending--
	if m.pending <= 0 && m.loading {
		m.loading = false
		m.toast(ToastSuccess, "Board loaded", 2*time.Second)
	}
	return m, nil
}

func (m Model) loadFailed(err error) (Model, tea.Cmd) {
	m.pending--
	m.loading = m.pending > 0
	m.failures.Record(err)
	m.toast(ToastError, "Load failed: "+err.Error(), 6*time.Second)
	return m, nil
}

// handleStatus reacts to reachability transitions. Edits keep applying
// locally either way; the indicator is the only consequence.
func (m Model) handleStatus(msg network.StatusMsg) (Model, tea.Cmd) {
	if msg.Online == m.online {
		return m, nil
	}
	m.online = msg.Online
	if msg.Online {
		m.toast(ToastSuccess, "Server reachable again", 3*time.Second)
	} else {
		m.toast(ToastWarning, "Server unreachable, changes are not being saved", 6*time.Second)
	}
	return m, nil
}

// handleSaveDone records failed fire-and-forget saves. Local state is never
// rolled back; the failure only surfaces here.
func (m Model) handleSaveDone(msg saveDoneMsg) (Model, tea.Cmd) {
	if msg.err == nil {
		return m, nil
	}
	m.failures.Record(msg.err)

	op := "save"
	var gerr *domain.GatewayError
	if errors.As(msg.err, &gerr) && gerr.Op != "" {
		op = gerr.Op
	}
	m.toast(ToastError, "Save failed: "+op, 5*time.Second)
	return m, nil
}

// resizeSidebar nudges the sidebar width one step and re-clamps the surface.
// The new width lives in the in-memory config only.
func (m *Model) resizeSidebar(grow bool) tea.Cmd {
	w := m.config.UI.SidebarWidth
	if grow {
		w += 2
	} else {
		w -= 2
	}
	if w < config.MinSidebarWidth {
		w = config.MinSidebarWidth
	}
	if w > config.MaxSidebarWidth {
		w = config.MaxSidebarWidth
	}
	if w == m.config.UI.SidebarWidth {
		return nil
	}
	m.config.UI.SidebarWidth = w
	return m.clampToSurface()
}

// clampToSurface pulls every category back inside the resized surface and
// persists the positions that moved.
func (m Model) clampToSurface() tea.Cmd {
	changed := m.categories.ClampAll(m.layout().BoardBounds())
	if len(changed) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(changed))
	for _, cat := range changed {
		cat := cat
		cmds = append(cmds, m.persist(func(ctx context.Context) error {
			return m.gateway.SetCategoryPosition(ctx, cat.ID, cat.X, cat.Y)
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) toast(level ToastLevel, message string, ttl time.Duration) {
	m.toasts = append(m.toasts, types.NewToast(level, message, ttl))
}

func (m *Model) expireToasts() {
	now := time.Now()
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}
