package app

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaboard/internal/domain"
	"ideaboard/internal/types"
)

// Fixture geometry, with a 24-cell sidebar in a 100x30 terminal:
//
//	sidebar idea rows:   (1,3) idea-1, (1,4) idea-2
//	sidebar legend row:  (1,7) lt-1
//	cat-1 screen rect:   x 34..59, y 5..12 (surface x 10, y 5, 26x8)
func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func rightPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease}
}

func TestMouse_MoveCategoryDrag(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)

	// Header press grabs the panel and raises it.
	m, cmd := updateModel(t, m, press(40, 5))
	m = apply(t, m, cmd)
	require.NotNil(t, m.drag)
	assert.Equal(t, types.ModeDragging, m.Mode())
	assert.Contains(t, ts.calls(), "/api/projects/demo/bring_to_front_category/")

	// The grab point stays fixed under the pointer: +5 x, +3 y.
	m, _ = updateModel(t, m, motion(45, 8))
	cat, _ := m.categories.Get("cat-1")
	assert.Equal(t, 15, cat.X)
	assert.Equal(t, 8, cat.Y)

	m, cmd = updateModel(t, m, release(45, 8))
	m = apply(t, m, cmd)
	assert.Nil(t, m.drag)
	assert.Contains(t, ts.calls(), "/api/projects/demo/set_position_category/")
}

func TestMouse_EscCancelRestoresOrigin(t *testing.T) {
	m := newTestModel(t, newTestServer(t).URL)
	loadFixture(&m)

	m, _ = updateModel(t, m, press(40, 5))
	m, _ = updateModel(t, m, motion(50, 9))
	cat, _ := m.categories.Get("cat-1")
	require.NotEqual(t, 10, cat.X)

	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, m.drag)
	cat, _ = m.categories.Get("cat-1")
	assert.Equal(t, 10, cat.X)
	assert.Equal(t, 5, cat.Y)
}

func TestMouse_ResizeDrag(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)

	// Bottom-right corner is the resize handle.
	m, _ = updateModel(t, m, press(59, 12))
	require.NotNil(t, m.drag)

	m, cmd := updateModel(t, m, release(63, 14))
	m = apply(t, m, cmd)

	cat, _ := m.categories.Get("cat-1")
	assert.Equal(t, 30, cat.Width)
	assert.Equal(t, 10, cat.Height)
	assert.Contains(t, ts.calls(), "/api/projects/demo/set_area_category/")
}

func TestMouse_ResizeRespectsMinimum(t *testing.T) {
	m := newTestModel(t, newTestServer(t).URL)
	loadFixture(&m)

	m, _ = updateModel(t, m, press(59, 12))
	m, cmd := updateModel(t, m, release(35, 6))
	m = apply(t, m, cmd)

	// "Backlog" needs 13 columns; height floors at 4.
	cat, _ := m.categories.Get("cat-1")
	assert.Equal(t, 13, cat.Width)
	assert.Equal(t, 4, cat.Height)
}

func TestMouse_DragIdeaIntoCategory(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)

	m, _ = updateModel(t, m, press(5, 3)) // idea-1's sidebar row
	require.NotNil(t, m.drag)

	m, cmd := updateModel(t, m, release(40, 8)) // cat-1's body
	m = apply(t, m, cmd)

	catID := "cat-1"
	assert.Equal(t, []string{"idea-3", "idea-1"}, m.ideas.Order(&catID))
	assert.Equal(t, []string{"idea-2"}, m.ideas.Order(nil))
	assert.Contains(t, ts.calls(), "/api/projects/demo/assign_idea_to_category/")
}

func TestMouse_ReorderWithinSidebar(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)

	m, _ = updateModel(t, m, press(5, 3))          // grab idea-1
	m, cmd := updateModel(t, m, release(5, 10))    // drop below idea-2
	m = apply(t, m, cmd)

	assert.Equal(t, []string{"idea-2", "idea-1"}, m.ideas.Order(nil))
	assert.Contains(t, ts.calls(), "/api/projects/demo/safe_order/")
}

func TestMouse_DropOverNothingUnassigns(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)

	m, _ = updateModel(t, m, press(40, 6)) // idea-3's card inside cat-1
	require.NotNil(t, m.drag)

	m, cmd := updateModel(t, m, release(80, 25)) // bare surface
	m = apply(t, m, cmd)

	catID := "cat-1"
	assert.Empty(t, m.ideas.Order(&catID))
	assert.Equal(t, []string{"idea-1", "idea-2", "idea-3"}, m.ideas.Order(nil))
	assert.Contains(t, ts.calls(), "/api/projects/demo/assign_idea_to_category/")
}

func TestMouse_LegendDragTagsIdea(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)

	m, _ = updateModel(t, m, press(5, 7)) // lt-1's legend row
	require.NotNil(t, m.drag)

	m, cmd := updateModel(t, m, release(5, 4)) // idea-2's row
	m = apply(t, m, cmd)

	idea, _ := m.ideas.Get("idea-2")
	require.NotNil(t, idea.LegendTypeID)
	assert.Equal(t, "lt-1", *idea.LegendTypeID)
	assert.Contains(t, ts.calls(), "/api/projects/demo/assign_idea_legend_type/")
}

func TestMouse_LegendDropOverNothingDiscards(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)

	m, _ = updateModel(t, m, press(5, 7))
	m, cmd := updateModel(t, m, release(80, 25))
	m = apply(t, m, cmd)

	idea, _ := m.ideas.Get("idea-2")
	assert.Nil(t, idea.LegendTypeID)
	assert.Empty(t, ts.calls())
}

func TestMouse_MinimizeControl(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)

	m, cmd := updateModel(t, m, press(53, 5))
	m = apply(t, m, cmd)

	assert.True(t, m.categories.IsMinimized("cat-1"))
	assert.Contains(t, ts.calls(), "/api/projects/demo/set_area_category/")

	// Minimized, "Backlog" shrinks to 13 wide: the control moves to x 40.
	m, cmd = updateModel(t, m, press(40, 5))
	m = apply(t, m, cmd)
	assert.False(t, m.categories.IsMinimized("cat-1"))
}

func TestMouse_ArchiveControl(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)

	m, cmd := updateModel(t, m, press(55, 5))
	m = apply(t, m, cmd)

	assert.Empty(t, m.categories.Active())
	require.Len(t, m.categories.Archived(), 1)
	assert.Contains(t, ts.calls(), "/api/projects/demo/toggle_archive_category/")
}

func TestMouse_DeleteControlAsksFirst(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)

	m, _ = updateModel(t, m, press(57, 5))

	assert.False(t, m.overlays.IsEmpty())
	assert.Equal(t, 1, m.categories.Len(), "nothing deleted until confirmed")
	assert.Empty(t, ts.calls())
}

func TestMouse_RightClickOpensEditors(t *testing.T) {
	m := newTestModel(t, newTestServer(t).URL)
	loadFixture(&m)

	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{"idea row", rightPress(5, 3)},
		{"legend row", rightPress(5, 7)},
		{"category header", rightPress(40, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh := newTestModel(t, "http://example.invalid")
			loadFixture(&fresh)
			fresh, _ = updateModel(t, fresh, tt.msg)
			assert.False(t, fresh.overlays.IsEmpty())
			assert.Nil(t, fresh.drag)
		})
	}
}

func TestMouse_SidebarOverflowKeepsLegendClickable(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	ideas := make([]domain.Idea, 0, 30)
	order := make([]string, 0, 30)
	for i := 1; i <= 30; i++ {
		id := fmt.Sprintf("idea-%d", i)
		ideas = append(ideas, domain.Idea{ID: id, Title: "Thought " + id})
		order = append(order, id)
	}
	m.ideas.Load(ideas, order, nil)
	m.legends.Load([]domain.LegendType{
		{ID: "lt-1", Name: "Urgent", Color: "#ed8796"},
	})

	// 30 ideas overflow the 30-row terminal: the list caps at 21 rows so
	// the legend section stays on screen, with lt-1 drawn at row 26. A
	// click there must reach the legend, not a hidden idea row.
	m, _ = updateModel(t, m, rightPress(5, 26))

	require.False(t, m.overlays.IsEmpty())
	assert.Equal(t, "Edit Legend Type", m.overlays.Current().Title())
}

func TestMouse_CtrlClickAsksToDelete(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)

	msg := press(5, 3)
	msg.Ctrl = true
	m, _ = updateModel(t, m, msg)

	assert.False(t, m.overlays.IsEmpty())
	assert.Equal(t, 3, m.ideas.Len())
}

func TestMouse_ShiftHeaderOpensCategoryFilter(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)

	msg := press(40, 5)
	msg.Shift = true
	m, _ = updateModel(t, m, msg)

	assert.False(t, m.overlays.IsEmpty())
	assert.Nil(t, m.drag, "shift-click must not start a drag")
}

func TestMouse_ArchiveDrawerRestore(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)
	m.categories.Load([]domain.Category{
		{ID: "cat-1", Name: "Backlog", X: 10, Y: 5, Width: 26, Height: 8, StackOrder: 1},
		{ID: "cat-2", Name: "Shelved", Width: 20, Height: 6, Archived: true},
	})

	// Header row toggles the drawer open; with 2 ideas and 1 legend it sits
	// at row 9.
	m, _ = updateModel(t, m, press(5, 9))
	require.True(t, m.archiveOpen)

	// First drawer row restores the category.
	m, cmd := updateModel(t, m, press(5, 10))
	m = apply(t, m, cmd)

	assert.Empty(t, m.categories.Archived())
	assert.Len(t, m.categories.Active(), 2)
	assert.Contains(t, ts.calls(), "/api/projects/demo/toggle_archive_category/")
}

func TestMouse_ArchiveDrawerCtrlClickDeletes(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)
	m.categories.Load([]domain.Category{
		{ID: "cat-2", Name: "Shelved", Width: 20, Height: 6, Archived: true},
	})
	m.archiveOpen = true

	msg := press(5, 10)
	msg.Ctrl = true
	m, _ = updateModel(t, m, msg)

	assert.False(t, m.overlays.IsEmpty())
	assert.Equal(t, 1, m.categories.Len(), "deletion waits for the confirm")
}

func TestMouse_AltClickCollapsesIdea(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)

	msg := press(5, 3) // idea-1
	msg.Alt = true
	m, _ = updateModel(t, m, msg)

	assert.True(t, m.collapsed["idea-1"])
	assert.Nil(t, m.drag, "alt-click must not start a drag")

	m, _ = updateModel(t, m, msg)
	assert.False(t, m.collapsed["idea-1"])
}

func TestMouse_AltClickHeaderCollapsesAllMembers(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)

	msg := press(40, 5) // cat-1's header, holds idea-3
	msg.Alt = true
	m, _ = updateModel(t, m, msg)
	assert.True(t, m.collapsed["idea-3"])
	assert.False(t, m.collapsed["idea-1"], "sidebar ideas untouched")

	m, _ = updateModel(t, m, msg)
	assert.False(t, m.collapsed["idea-3"])
}

func TestMouse_IgnoredWhileOverlayOpen(t *testing.T) {
	m := newTestModel(t, "http://example.invalid")
	loadFixture(&m)
	m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.False(t, m.overlays.IsEmpty())

	m, _ = updateModel(t, m, press(40, 5))
	assert.Nil(t, m.drag)
}

func TestMouse_FilteredListDisablesReorder(t *testing.T) {
	ts := newTestServer(t)
	m := newTestModel(t, ts.URL)
	loadFixture(&m)
	m.filter.Global.Toggle("lt-1") // only idea-1 visible in the sidebar

	m, _ = updateModel(t, m, press(5, 3))       // idea-1, now the sole row
	m, cmd := updateModel(t, m, release(5, 10)) // drop lower in the sidebar
	m = apply(t, m, cmd)

	// Same-list reorder is unavailable under a narrowing filter; the drop
	// is discarded and the order untouched.
	assert.Equal(t, []string{"idea-1", "idea-2"}, m.ideas.Order(nil))
	assert.Empty(t, ts.calls())
}
