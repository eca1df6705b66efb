package board

import (
	"ideaboard/internal/core/geometry"
	"ideaboard/internal/domain"
	"ideaboard/internal/ui/styles"
)

// CardView is one idea row ready to render
type CardView struct {
	Idea     domain.Idea
	Color    string // legend hex, empty when untagged
	Dragging bool
	// Collapsed swaps the full title for the idea's short label. Local
	// display state only, never persisted.
	Collapsed bool
}

// PanelView is one category panel ready to render
type PanelView struct {
	Category  domain.Category
	Minimized bool
	Dragging  bool
	Filtered  bool
	Cards     []CardView
	// InsertSlot is the provisional drop slot during a same-list drag, -1
	// when none.
	InsertSlot int
	// Total is the category's full idea count, shown when the filter or the
	// panel size hides some cards.
	Total int
}

// LegendView is one legend entry in the sidebar
type LegendView struct {
	Type     domain.LegendType
	Selected bool
	Dragging bool
}

// SidebarView is the sidebar's full content
type SidebarView struct {
	Project          string
	Ideas            []CardView
	InsertSlot       int
	Legends          []LegendView
	UntaggedSelected bool
	FilterActive     bool
	Archived         []domain.Category
	ArchiveOpen      bool
}

// GhostView is the floating preview following the pointer during an idea or
// legend drag. Pos is in screen coordinates.
type GhostView struct {
	Text  string
	Color string
	Pos   geometry.Point
}

// View is everything the board renderer needs for one frame
type View struct {
	Layout  Layout
	Styles  *styles.Styles
	Sidebar SidebarView
	// Panels in ascending stack order; later panels paint over earlier ones.
	Panels []PanelView
	Ghost  *GhostView
}
