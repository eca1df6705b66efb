package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ideaboard/internal/core/geometry"
	"ideaboard/internal/drag"
	"ideaboard/internal/ui/board"
	"ideaboard/internal/ui/overlay"
)

// handleMouse dispatches pointer events. Overlays are keyboard-driven; while
// one is open the board ignores the mouse entirely.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.overlays.IsEmpty() || m.loading {
		return m, nil
	}

	p := geometry.Point{X: msg.X, Y: msg.Y}
	m.pointer = p

	switch msg.Action {
	case tea.MouseActionPress:
		return m.handlePress(msg, p)

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.drag.Move(m.dragPoint(p), m.buildFrame())
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag != nil {
			return m.finishDrag(p)
		}
	}
	return m, nil
}

func (m Model) handlePress(msg tea.MouseMsg, p geometry.Point) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
		return m, nil
	}
	if m.layout().SidebarRect().Contains(p) {
		return m.handleSidebarPress(msg, p)
	}
	return m.handleSurfacePress(msg, p)
}

// handleSidebarPress resolves presses on the unassigned list, the legend
// section, and the archive drawer.
func (m Model) handleSidebarPress(msg tea.MouseMsg, p geometry.Point) (tea.Model, tea.Cmd) {
	l := m.layout()
	ideas := m.visibleUnassigned()
	legends := m.legends.All()
	archived := m.categories.Archived()

	// The idea list caps to keep the sections below it on screen; hit
	// geometry must agree with where the sidebar drew them.
	visible := m.sidebarCap(len(ideas))
	for i, row := range l.IdeaRows(visible) {
		if !row.Contains(p) {
			continue
		}
		return m.pressIdea(msg, ideas[i])
	}

	for i, row := range l.LegendRows(visible, len(legends)) {
		if !row.Contains(p) {
			continue
		}
		return m.pressLegend(msg, legends[i].ID)
	}

	if p.Y == l.ArchiveTop(visible, len(legends)) && len(archived) > 0 {
		m.archiveOpen = !m.archiveOpen
		return m, nil
	}
	for i, row := range l.ArchiveRows(visible, len(legends), len(archived), m.archiveOpen) {
		if !row.Contains(p) {
			continue
		}
		id := archived[i].ID
		if msg.Ctrl {
			return m, m.overlays.Push(overlay.NewConfirmDialog(
				"delete-category:"+id,
				"Delete Category",
				"Delete "+archived[i].Name+"? Its ideas move back to the sidebar.",
			))
		}
		if _, err := m.categories.ToggleArchive(id); err != nil {
			return m, nil
		}
		m.toast(ToastSuccess, "Category restored", 2*time.Second)
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.ToggleArchiveCategory(ctx, id)
		})
	}

	return m, nil
}

// handleSurfacePress resolves presses on the spatial surface: panels win by
// stack order, and the landing region decides the action.
func (m Model) handleSurfacePress(msg tea.MouseMsg, p geometry.Point) (tea.Model, tea.Cmd) {
	l := m.layout()

	id, ok := geometry.HitTest(p, m.screenLayers())
	if !ok {
		return m, nil
	}
	cat, _ := m.categories.Get(id)
	screenRect := l.PanelLayer(cat).Rect
	cards := m.visibleInCategory(id)

	region, cardIdx := board.RegionAt(screenRect, p, len(cards))
	switch region {
	case board.RegionHeader:
		if msg.Button == tea.MouseButtonRight {
			return m, m.overlays.Push(overlay.NewInputOverlay("edit-category:"+id, "Rename Category", []overlay.Field{
				{Label: "Name", Value: cat.Name, Required: true},
			}))
		}
		if msg.Shift {
			catID := id
			return m, m.overlays.Push(overlay.NewFilterOverlay(m.filter, &catID, cat.Name, m.legends.All()))
		}
		if msg.Alt {
			m.toggleCollapseAll(id)
			return m, nil
		}
		cmd := m.raise(id)
		m.drag = drag.StartMoveCategory(m.categories, id, board.PanelRect(cat), l.ToSurface(p))
		m.dragSource = nil
		return m, cmd

	case board.RegionMinimize:
		toggled, err := m.categories.ToggleMinimize(id)
		if err != nil {
			return m, nil
		}
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.SetCategoryArea(ctx, id, toggled.Width, toggled.Height)
		})

	case board.RegionArchive:
		if _, err := m.categories.ToggleArchive(id); err != nil {
			return m, nil
		}
		m.toast(ToastInfo, "Category archived", 2*time.Second)
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.ToggleArchiveCategory(ctx, id)
		})

	case board.RegionDelete:
		return m, m.overlays.Push(overlay.NewConfirmDialog(
			"delete-category:"+id,
			"Delete Category",
			"Delete "+cat.Name+"? Its ideas move back to the sidebar.",
		))

	case board.RegionResize:
		m.drag = drag.StartResizeCategory(
			m.categories, id, board.PanelRect(cat), l.ToSurface(p),
			geometry.MinCategorySize(cat.Name),
		)
		m.dragSource = nil
		return m, nil

	case board.RegionCard:
		return m.pressIdea(msg, cards[cardIdx])

	case board.RegionBody:
		return m, m.raise(id)
	}

	return m, nil
}

// pressIdea starts an idea drag, or routes to edit/delete for modified
// presses. Shared between sidebar rows and panel cards.
func (m Model) pressIdea(msg tea.MouseMsg, ideaID string) (tea.Model, tea.Cmd) {
	idea, ok := m.ideas.Get(ideaID)
	if !ok {
		return m, nil
	}

	if msg.Ctrl {
		return m, m.overlays.Push(overlay.NewConfirmDialog(
			"delete-idea:"+ideaID, "Delete Idea", "Delete \""+idea.Title+"\"?",
		))
	}
	if msg.Alt {
		m.collapsed[ideaID] = !m.collapsed[ideaID]
		return m, nil
	}
	if msg.Button == tea.MouseButtonRight {
		return m, m.overlays.Push(overlay.NewInputOverlay("edit-idea:"+ideaID, "Edit Idea", []overlay.Field{
			{Label: "Title", Value: idea.Title, Required: true},
			{Label: "Headline", Value: idea.Headline},
		}))
	}

	source, index, ok := m.ideas.Owner(ideaID)
	if !ok {
		return m, nil
	}
	m.drag = drag.StartMoveIdea(ideaID, source, index)
	m.dragSource = source
	return m, nil
}

func (m Model) pressLegend(msg tea.MouseMsg, legendID string) (tea.Model, tea.Cmd) {
	lt, ok := m.legends.Get(legendID)
	if !ok {
		return m, nil
	}

	if msg.Ctrl {
		return m, m.overlays.Push(overlay.NewConfirmDialog(
			"delete-legend:"+legendID,
			"Delete Legend Type",
			"Delete "+lt.Name+"? Tagged ideas become untagged.",
		))
	}
	if msg.Button == tea.MouseButtonRight {
		return m, m.overlays.Push(overlay.NewInputOverlay("edit-legend:"+legendID, "Edit Legend Type", []overlay.Field{
			{Label: "Name", Value: lt.Name, Required: true},
			{Label: "Color", Value: lt.Color, Required: true},
		}))
	}

	m.drag = drag.StartAssignLegend(legendID)
	m.dragSource = nil
	return m, nil
}

// finishDrag releases the active gesture and persists its commit
func (m Model) finishDrag(p geometry.Point) (tea.Model, tea.Cmd) {
	commit := m.drag.Release(m.dragPoint(p), m.buildFrame())
	m.drag = nil
	m.dragSource = nil

	switch c := commit.(type) {
	case drag.CategoryMoved:
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.SetCategoryPosition(ctx, c.ID, c.Position.X, c.Position.Y)
		})

	case drag.CategoryResized:
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.SetCategoryArea(ctx, c.ID, c.Size.Width, c.Size.Height)
		})

	case drag.IdeaReordered:
		if !m.ideas.MoveWithin(c.CategoryID, c.From, c.To) {
			return m, nil
		}
		order := m.ideas.Order(c.CategoryID)
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.SaveOrder(ctx, order, c.CategoryID)
		})

	case drag.IdeaAssigned:
		if err := m.ideas.Assign(c.ID, c.CategoryID); err != nil {
			return m, nil
		}
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.AssignIdeaToCategory(ctx, c.ID, c.CategoryID)
		})

	case drag.LegendAssigned:
		legendID := c.LegendTypeID
		if err := m.ideas.SetLegendType(c.IdeaID, &legendID); err != nil {
			return m, nil
		}
		return m, m.persist(func(ctx context.Context) error {
			return m.gateway.AssignIdeaLegendType(ctx, c.IdeaID, &legendID)
		})
	}

	return m, nil
}

// toggleCollapseAll flips every member of a category to the same collapse
// state: collapse all while any member is expanded, otherwise expand all.
func (m Model) toggleCollapseAll(categoryID string) {
	members := m.ideas.Order(&categoryID)
	anyExpanded := false
	for _, id := range members {
		if !m.collapsed[id] {
			anyExpanded = true
			break
		}
	}
	for _, id := range members {
		m.collapsed[id] = anyExpanded
	}
}

// raise brings a category to the front locally and persists the new order
func (m Model) raise(id string) tea.Cmd {
	if _, err := m.categories.BringToFront(id); err != nil {
		return nil
	}
	return m.persist(func(ctx context.Context) error {
		return m.gateway.BringCategoryToFront(ctx, id)
	})
}

// dragPoint converts the pointer into the coordinate space the active
// gesture works in: surface cells for spatial gestures, screen cells for
// ordering gestures.
func (m Model) dragPoint(p geometry.Point) geometry.Point {
	switch m.drag.Kind() {
	case drag.MoveCategory, drag.ResizeCategory:
		return m.layout().ToSurface(p)
	}
	return p
}

// buildFrame assembles the hit-testing context for the active gesture
func (m Model) buildFrame() drag.Frame {
	l := m.layout()

	switch m.drag.Kind() {
	case drag.MoveCategory, drag.ResizeCategory:
		return drag.Frame{Bounds: l.BoardBounds()}

	case drag.MoveIdea:
		return drag.Frame{
			Bounds:  l.BoardBounds(),
			Sidebar: l.SidebarRect(),
			Layers:  m.screenLayers(),
			Rows:    m.reorderRows(),
		}

	case drag.AssignLegend:
		return drag.Frame{Ideas: m.cardRects()}
	}
	return drag.Frame{}
}

// screenLayers returns the active panels as screen-coordinate hit layers
func (m Model) screenLayers() []geometry.Layer {
	l := m.layout()
	active := m.categories.Active()
	layers := make([]geometry.Layer, 0, len(active))
	for _, cat := range active {
		layers = append(layers, l.PanelLayer(cat))
	}
	return layers
}

// sidebarCap limits a sidebar idea row count to what the renderer shows
func (m Model) sidebarCap(n int) int {
	return m.layout().IdeaCap(n, m.legends.Len(), len(m.categories.Archived()), m.archiveOpen)
}

// reorderRows returns the dragged idea's sibling rows for insert-slot
// resolution, nil when reordering is unavailable. A narrowing filter
// disables reordering: visible indexes would no longer match list indexes.
func (m Model) reorderRows() []geometry.Rect {
	l := m.layout()

	if m.dragSource == nil {
		if !m.filter.Global.Empty() {
			return nil
		}
		n := len(m.ideas.Order(nil)) - 1
		if n < 0 {
			n = 0
		}
		return l.IdeaRows(m.sidebarCap(n))
	}

	id := *m.dragSource
	if !m.filter.Global.Empty() || m.filter.CategoryActive(id) {
		return nil
	}
	cat, ok := m.categories.Get(id)
	if !ok || m.categories.IsMinimized(id) {
		return nil
	}
	n := len(m.ideas.Order(m.dragSource)) - 1
	if n < 0 {
		n = 0
	}
	return board.ContentRows(l.PanelLayer(cat).Rect, n)
}

// cardRects returns every visible card in paint order for legend drops
func (m Model) cardRects() []drag.IdeaRect {
	l := m.layout()
	var rects []drag.IdeaRect

	ideas := m.visibleUnassigned()
	for i, row := range l.IdeaRows(m.sidebarCap(len(ideas))) {
		rects = append(rects, drag.IdeaRect{ID: ideas[i], Rect: row})
	}

	for _, cat := range m.categories.Active() {
		if m.categories.IsMinimized(cat.ID) {
			continue
		}
		cards := m.visibleInCategory(cat.ID)
		rows := board.ContentRows(l.PanelLayer(cat).Rect, len(cards))
		for i, row := range rows {
			rects = append(rects, drag.IdeaRect{ID: cards[i], Rect: row})
		}
	}
	return rects
}

// visibleUnassigned returns the sidebar's idea ids after filtering
func (m Model) visibleUnassigned() []string {
	return m.filter.Visible(m.ideas.Order(nil), m.ideas.All(), nil)
}

// visibleInCategory returns a category's idea ids after filtering
func (m Model) visibleInCategory(id string) []string {
	return m.filter.Visible(m.ideas.Order(&id), m.ideas.All(), &id)
}
