package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaboard/internal/core/geometry"
	"ideaboard/internal/domain"
)

func testLayout() Layout {
	return Layout{Width: 120, Height: 40, SidebarWidth: 28}
}

func TestLayout_Regions(t *testing.T) {
	l := testLayout()

	assert.Equal(t, geometry.Rect{X: 0, Y: 0, Width: 28, Height: 39}, l.SidebarRect())
	assert.Equal(t, geometry.Size{Width: 92, Height: 39}, l.BoardBounds())

	p := geometry.Point{X: 40, Y: 12}
	assert.Equal(t, geometry.Point{X: 12, Y: 12}, l.ToSurface(p))
	assert.Equal(t, p, l.FromSurface(l.ToSurface(p)))
}

func TestLayout_BoardBoundsNeverNegative(t *testing.T) {
	l := Layout{Width: 10, Height: 0, SidebarWidth: 28}
	bounds := l.BoardBounds()
	assert.Zero(t, bounds.Width)
	assert.Zero(t, bounds.Height)
}

func TestLayout_PanelLayerShiftsPastSidebar(t *testing.T) {
	l := testLayout()
	cat := domain.Category{ID: "cat-1", X: 4, Y: 2, Width: 30, Height: 10, StackOrder: 7}

	layer := l.PanelLayer(cat)

	assert.Equal(t, "cat-1", layer.ID)
	assert.Equal(t, geometry.Rect{X: 32, Y: 2, Width: 30, Height: 10}, layer.Rect)
	assert.Equal(t, 7, layer.Stack)
}

func TestLayout_SidebarRows(t *testing.T) {
	l := testLayout()

	rows := l.IdeaRows(3)
	require.Len(t, rows, 3)
	assert.Equal(t, SidebarIdeasTop, rows[0].Y)
	assert.Equal(t, SidebarIdeasTop+2, rows[2].Y)

	// Legend section sits one gap below the last idea.
	assert.Equal(t, SidebarIdeasTop+4, l.LegendTop(3))
	legends := l.LegendRows(3, 2)
	require.Len(t, legends, 2)
	assert.Equal(t, SidebarIdeasTop+5, legends[0].Y)

	assert.Equal(t, SidebarIdeasTop+8, l.ArchiveTop(3, 2))
	assert.Empty(t, l.ArchiveRows(3, 2, 4, false))
	assert.Len(t, l.ArchiveRows(3, 2, 4, true), 4)
}

func TestLayout_IdeaRowsCappedToHeight(t *testing.T) {
	l := Layout{Width: 80, Height: 10, SidebarWidth: 24}
	rows := l.IdeaRows(50)
	assert.Len(t, rows, 10-StatusBarHeight-SidebarIdeasTop)
}

func TestLayout_IdeaCapReservesSectionRows(t *testing.T) {
	l := Layout{Width: 100, Height: 30, SidebarWidth: 24}

	// Short lists are untouched.
	assert.Equal(t, 3, l.IdeaCap(3, 2, 0, false))

	// An overflowing list must leave the legend entries and both section
	// headers on screen: the archive header lands on the last drawable row.
	cap := l.IdeaCap(40, 1, 0, false)
	assert.Equal(t, 21, cap)
	assert.Equal(t, l.Height-StatusBarHeight-1, l.ArchiveTop(cap, 1))

	// An open drawer reserves its rows too.
	assert.Equal(t, 19, l.IdeaCap(40, 1, 2, true))

	// A terminal too short for the sections shows no idea rows at all.
	assert.Zero(t, Layout{Width: 80, Height: 6, SidebarWidth: 24}.IdeaCap(5, 1, 0, false))
}

func TestContentRows(t *testing.T) {
	rect := geometry.Rect{X: 10, Y: 5, Width: 20, Height: 6}

	assert.Equal(t, 4, MaxCards(rect))

	rows := ContentRows(rect, 10)
	require.Len(t, rows, 4)
	assert.Equal(t, geometry.Rect{X: 11, Y: 6, Width: 18, Height: 1}, rows[0])
	assert.Equal(t, 9, rows[3].Y)
}

func TestRegionAt(t *testing.T) {
	rect := geometry.Rect{X: 10, Y: 5, Width: 20, Height: 8}
	right := rect.X + rect.Width - 1
	bottom := rect.Y + rect.Height - 1

	tests := []struct {
		name    string
		p       geometry.Point
		want    Region
		wantIdx int
	}{
		{"outside", geometry.Point{X: 0, Y: 0}, RegionNone, -1},
		{"header row", geometry.Point{X: 12, Y: 5}, RegionHeader, -1},
		{"minimize control", geometry.Point{X: right - minimizeOffset, Y: 5}, RegionMinimize, -1},
		{"archive control", geometry.Point{X: right - archiveOffset, Y: 5}, RegionArchive, -1},
		{"delete control", geometry.Point{X: right - deleteOffset, Y: 5}, RegionDelete, -1},
		{"resize corner", geometry.Point{X: right, Y: bottom}, RegionResize, -1},
		{"first card", geometry.Point{X: 12, Y: 6}, RegionCard, 0},
		{"second card", geometry.Point{X: 12, Y: 7}, RegionCard, 1},
		{"row below the cards", geometry.Point{X: 12, Y: 8}, RegionBody, -1},
		{"left border", geometry.Point{X: 10, Y: 7}, RegionBody, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region, idx := RegionAt(rect, tt.p, 2)
			assert.Equal(t, tt.want, region)
			assert.Equal(t, tt.wantIdx, idx)
		})
	}
}
