package board

import (
	"ideaboard/internal/core/geometry"
	"ideaboard/internal/domain"
)

// StatusBarHeight is the rows reserved under the board for the status bar
const StatusBarHeight = 1

// SidebarIdeasTop is the screen row of the first unassigned idea card:
// title, hint, and the section header sit above it.
const SidebarIdeasTop = 3

// Layout maps between screen coordinates and the board surface. The sidebar
// occupies the left edge; everything right of it is the spatial surface that
// category positions are relative to.
type Layout struct {
	Width        int
	Height       int
	SidebarWidth int
}

// SidebarRect returns the sidebar region in screen coordinates
func (l Layout) SidebarRect() geometry.Rect {
	return geometry.Rect{X: 0, Y: 0, Width: l.SidebarWidth, Height: l.Height - StatusBarHeight}
}

// BoardBounds returns the size of the spatial surface
func (l Layout) BoardBounds() geometry.Size {
	w := l.Width - l.SidebarWidth
	h := l.Height - StatusBarHeight
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return geometry.Size{Width: w, Height: h}
}

// ToSurface converts a screen point to surface coordinates
func (l Layout) ToSurface(p geometry.Point) geometry.Point {
	return geometry.Point{X: p.X - l.SidebarWidth, Y: p.Y}
}

// FromSurface converts a surface point to screen coordinates
func (l Layout) FromSurface(p geometry.Point) geometry.Point {
	return geometry.Point{X: p.X + l.SidebarWidth, Y: p.Y}
}

// PanelLayer returns a category's hit-test layer in screen coordinates
func (l Layout) PanelLayer(cat domain.Category) geometry.Layer {
	return geometry.Layer{
		ID:    cat.ID,
		Rect:  geometry.Rect{X: cat.X + l.SidebarWidth, Y: cat.Y, Width: cat.Width, Height: cat.Height},
		Stack: cat.StackOrder,
	}
}

// IdeaRows returns the screen rects of the sidebar's idea cards, capped to
// the rows available above the legend section.
func (l Layout) IdeaRows(count int) []geometry.Rect {
	max := l.Height - StatusBarHeight - SidebarIdeasTop
	if count > max {
		count = max
	}
	rows := make([]geometry.Rect, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, geometry.Rect{
			X:      1,
			Y:      SidebarIdeasTop + i,
			Width:  l.SidebarWidth - 3,
			Height: 1,
		})
	}
	return rows
}

// IdeaCap returns how many unassigned idea rows may show, reserving the
// rows the legend section and the archive drawer need so an overflowing
// list cannot push them off screen.
func (l Layout) IdeaCap(ideaCount, legendCount, archivedCount int, archiveOpen bool) int {
	reserve := 4 + legendCount // two section headers and the gaps above them
	if archiveOpen {
		reserve += archivedCount
	}
	max := l.Height - StatusBarHeight - SidebarIdeasTop - reserve
	if max < 0 {
		max = 0
	}
	if ideaCount > max {
		return max
	}
	return ideaCount
}

// LegendTop returns the screen row of the LEGEND section header
func (l Layout) LegendTop(ideaCount int) int {
	return SidebarIdeasTop + ideaCount + 1
}

// LegendRows returns the screen rects of the legend entries
func (l Layout) LegendRows(ideaCount, legendCount int) []geometry.Rect {
	top := l.LegendTop(ideaCount) + 1
	rows := make([]geometry.Rect, 0, legendCount)
	for i := 0; i < legendCount; i++ {
		rows = append(rows, geometry.Rect{
			X:      1,
			Y:      top + i,
			Width:  l.SidebarWidth - 3,
			Height: 1,
		})
	}
	return rows
}

// ArchiveTop returns the screen row of the ARCHIVED section header
func (l Layout) ArchiveTop(ideaCount, legendCount int) int {
	return l.LegendTop(ideaCount) + 1 + legendCount + 1
}

// ArchiveRows returns the screen rects of the archived category entries,
// empty while the drawer is closed.
func (l Layout) ArchiveRows(ideaCount, legendCount, archivedCount int, open bool) []geometry.Rect {
	if !open {
		return nil
	}
	top := l.ArchiveTop(ideaCount, legendCount) + 1
	rows := make([]geometry.Rect, 0, archivedCount)
	for i := 0; i < archivedCount; i++ {
		rows = append(rows, geometry.Rect{
			X:      1,
			Y:      top + i,
			Width:  l.SidebarWidth - 3,
			Height: 1,
		})
	}
	return rows
}

// PanelRect returns a category's footprint on the surface
func PanelRect(cat domain.Category) geometry.Rect {
	return geometry.Rect{X: cat.X, Y: cat.Y, Width: cat.Width, Height: cat.Height}
}

// MaxCards returns how many card rows fit inside a panel
func MaxCards(rect geometry.Rect) int {
	n := rect.Height - 2
	if n < 0 {
		n = 0
	}
	return n
}

// ContentRows returns the card row rects inside a panel, capped to the rows
// that fit.
func ContentRows(rect geometry.Rect, count int) []geometry.Rect {
	if max := MaxCards(rect); count > max {
		count = max
	}
	rows := make([]geometry.Rect, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, geometry.Rect{
			X:      rect.X + 1,
			Y:      rect.Y + 1 + i,
			Width:  rect.Width - 2,
			Height: 1,
		})
	}
	return rows
}

// Region classifies where inside a panel a pointer landed
type Region int

const (
	RegionNone Region = iota
	RegionHeader
	RegionMinimize
	RegionArchive
	RegionDelete
	RegionResize
	RegionCard
	RegionBody
)

// Header control cells, measured back from the panel's right edge on the
// top border row.
const (
	deleteOffset   = 2
	archiveOffset  = 4
	minimizeOffset = 6
)

// RegionAt classifies a pointer inside a panel rect. For RegionCard the
// second return is the card index; it is -1 otherwise. Points outside the
// rect yield RegionNone.
func RegionAt(rect geometry.Rect, p geometry.Point, cardCount int) (Region, int) {
	if !rect.Contains(p) {
		return RegionNone, -1
	}

	right := rect.X + rect.Width - 1
	bottom := rect.Y + rect.Height - 1

	if p.Y == rect.Y {
		switch p.X {
		case right - deleteOffset:
			return RegionDelete, -1
		case right - archiveOffset:
			return RegionArchive, -1
		case right - minimizeOffset:
			return RegionMinimize, -1
		}
		return RegionHeader, -1
	}

	if p.X == right && p.Y == bottom {
		return RegionResize, -1
	}

	if p.Y > rect.Y && p.Y < bottom && p.X > rect.X && p.X < right {
		idx := p.Y - rect.Y - 1
		if idx < cardCount && idx < MaxCards(rect) {
			return RegionCard, idx
		}
	}
	return RegionBody, -1
}
