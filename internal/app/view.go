package app

import (
	"github.com/charmbracelet/lipgloss"

	"ideaboard/internal/drag"
	"ideaboard/internal/ui/board"
	"ideaboard/internal/ui/statusbar"
	"ideaboard/internal/ui/toast"
)

// layout returns the screen layout for the current terminal size
func (m Model) layout() board.Layout {
	return board.Layout{
		Width:        m.width,
		Height:       m.height,
		SidebarWidth: m.config.UI.SidebarWidth,
	}
}

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.loading {
		return m.renderLoading()
	}

	view := board.Render(m.buildBoardView())

	if !m.overlays.IsEmpty() {
		view = m.renderOverlay()
	}

	sb := statusbar.New(m.Mode(), m.width, m.styles).
		WithFilter(m.filter.IsActive()).
		WithFailures(m.failures.Len()).
		WithOffline(!m.online)
	view = lipgloss.JoinVertical(lipgloss.Left, view, sb.Render())

	if len(m.toasts) > 0 {
		renderer := toast.New(m.styles)
		if toastView := renderer.Render(m.toasts, m.width); toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Right, view, toastView)
		}
	}

	return view
}

func (m Model) renderLoading() string {
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.spinner.View()+" Loading board...",
	)
}

// renderOverlay draws the top overlay boxed and centered over the board area
func (m Model) renderOverlay() string {
	current := m.overlays.Current()

	content := current.View()
	if title := current.Title(); title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.overlayStyles.Title.Render(title), content)
	}
	w, h := current.Size()
	box := m.overlayStyles.Overlay.Width(w).Height(h).Render(content)

	return lipgloss.Place(
		m.width, m.height-board.StatusBarHeight,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// buildBoardView assembles the render model for one frame
func (m Model) buildBoardView() board.View {
	l := m.layout()

	v := board.View{
		Layout:  l,
		Styles:  m.styles,
		Sidebar: m.buildSidebarView(),
		Ghost:   m.buildGhost(),
	}

	for _, cat := range m.categories.Active() {
		v.Panels = append(v.Panels, m.buildPanelView(cat.ID))
	}
	return v
}

func (m Model) buildSidebarView() board.SidebarView {
	sv := board.SidebarView{
		Project:          m.config.Server.Project,
		InsertSlot:       -1,
		UntaggedSelected: m.filter.Global.Untagged,
		FilterActive:     m.filter.IsActive(),
		Archived:         m.categories.Archived(),
		ArchiveOpen:      m.archiveOpen,
	}

	for _, id := range m.visibleUnassigned() {
		sv.Ideas = append(sv.Ideas, m.buildCard(id))
	}
	if slot, ok := m.dropSlotFor(nil); ok {
		sv.InsertSlot = slot
	}

	for _, lt := range m.legends.All() {
		sv.Legends = append(sv.Legends, board.LegendView{
			Type:     lt,
			Selected: m.filter.Global.IDs[lt.ID],
			Dragging: m.drag != nil && m.drag.Kind() == drag.AssignLegend && m.drag.Subject() == lt.ID,
		})
	}
	return sv
}

func (m Model) buildPanelView(id string) board.PanelView {
	cat, _ := m.categories.Get(id)

	pv := board.PanelView{
		Category:   cat,
		Minimized:  m.categories.IsMinimized(id),
		Filtered:   m.filter.CategoryActive(id),
		InsertSlot: -1,
		Total:      len(m.ideas.Order(&id)),
	}
	if m.drag != nil && m.drag.Subject() == id {
		kind := m.drag.Kind()
		pv.Dragging = kind == drag.MoveCategory || kind == drag.ResizeCategory
	}

	for _, ideaID := range m.visibleInCategory(id) {
		pv.Cards = append(pv.Cards, m.buildCard(ideaID))
	}
	catID := id
	if slot, ok := m.dropSlotFor(&catID); ok {
		pv.InsertSlot = slot
	}
	return pv
}

func (m Model) buildCard(id string) board.CardView {
	idea, _ := m.ideas.Get(id)
	cv := board.CardView{Idea: idea, Collapsed: m.collapsed[id]}
	if idea.LegendTypeID != nil {
		if lt, ok := m.legends.Get(*idea.LegendTypeID); ok {
			cv.Color = lt.Color
		}
	}
	if m.drag != nil && m.drag.Kind() == drag.MoveIdea && m.drag.Subject() == id {
		cv.Dragging = true
	}
	return cv
}

// dropSlotFor returns the provisional insert slot to show in the given list,
// valid only while an idea drag hovers its own source list.
func (m Model) dropSlotFor(categoryID *string) (int, bool) {
	if m.drag == nil || m.drag.Kind() != drag.MoveIdea {
		return 0, false
	}
	if !sameList(m.dragSource, categoryID) {
		return 0, false
	}
	return m.drag.InsertIndex()
}

// buildGhost returns the floating preview for ordering gestures
func (m Model) buildGhost() *board.GhostView {
	if m.drag == nil {
		return nil
	}

	switch m.drag.Kind() {
	case drag.MoveIdea:
		idea, ok := m.ideas.Get(m.drag.Subject())
		if !ok {
			return nil
		}
		g := board.GhostView{Text: idea.CollapsedLabel(), Pos: m.pointer}
		if idea.LegendTypeID != nil {
			if lt, ok := m.legends.Get(*idea.LegendTypeID); ok {
				g.Color = lt.Color
			}
		}
		return &g

	case drag.AssignLegend:
		lt, ok := m.legends.Get(m.drag.Subject())
		if !ok {
			return nil
		}
		return &board.GhostView{Text: lt.Name, Color: lt.Color, Pos: m.pointer}
	}
	return nil
}

func sameList(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
