package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ideaboard/internal/ui/styles"
)

// renderSidebar renders the sidebar as fixed-position lines so its rows line
// up exactly with the rects the Layout hands to hit-testing.
func renderSidebar(l Layout, s *styles.Styles, v SidebarView) []string {
	height := l.Height - StatusBarHeight
	width := l.SidebarWidth
	lines := make([]string, height)

	put := func(row int, text string) {
		if row >= 0 && row < height {
			lines[row] = text
		}
	}

	put(0, s.SidebarTitle.Render("IDEA BOARD · "+v.Project))
	if v.FilterActive {
		put(1, s.SidebarHint.Render("filter on · f to edit"))
	} else {
		put(1, s.SidebarHint.Render("n new · f filter · ? help"))
	}

	put(2, s.SidebarSection.Render(fmt.Sprintf("IDEAS (%d)", len(v.Ideas))))
	visible := l.IdeaCap(len(v.Ideas), len(v.Legends), len(v.Archived), v.ArchiveOpen)
	rows := l.IdeaRows(visible)
	for i := 0; i < visible; i++ {
		if v.InsertSlot == i {
			put(rows[i].Y, " "+s.DropSlot.Render(strings.Repeat(string(glyphDropSlot), width-3)))
			continue
		}
		put(rows[i].Y, " "+renderSidebarCard(s, v.Ideas[i], width-3))
	}
	switch {
	case v.InsertSlot == visible:
		put(SidebarIdeasTop+visible, " "+s.DropSlot.Render(strings.Repeat(string(glyphDropSlot), width-3)))
	case len(v.Ideas) > visible:
		put(SidebarIdeasTop+visible, " "+s.SidebarHint.Render(fmt.Sprintf("… %d more", len(v.Ideas)-visible)))
	}

	legendHeader := fmt.Sprintf("LEGEND (%d)", len(v.Legends))
	put(l.LegendTop(visible), s.SidebarSection.Render(legendHeader))
	for i, rect := range l.LegendRows(visible, len(v.Legends)) {
		put(rect.Y, " "+renderLegendRow(s, v.Legends[i], width-3))
	}
	if v.UntaggedSelected {
		put(l.LegendTop(visible), s.SidebarSection.Render(legendHeader)+" "+s.StatusHint.Render("∅"))
	}

	archiveHeader := fmt.Sprintf("ARCHIVED (%d)", len(v.Archived))
	marker := "▸"
	if v.ArchiveOpen {
		marker = "▾"
	}
	put(l.ArchiveTop(visible, len(v.Legends)), s.SidebarSection.Render(marker+" "+archiveHeader))
	for i, rect := range l.ArchiveRows(visible, len(v.Legends), len(v.Archived), v.ArchiveOpen) {
		put(rect.Y, " "+s.SidebarHint.Render(truncate(v.Archived[i].Name, width-3)))
	}

	// Pad every line to the sidebar width and close it with the divider.
	for i := range lines {
		lines[i] = padLine(lines[i], width-1) + s.Surface.Render(string(runeVertical))
	}
	return lines
}

func renderSidebarCard(s *styles.Styles, card CardView, width int) string {
	dot := styles.Dot(card.Color)
	marker := "○"
	if card.Color != "" {
		marker = "●"
	}

	style := s.CardTitle
	if card.Dragging {
		style = s.CardDragging
	}
	label := card.Idea.Title
	if card.Collapsed {
		label = card.Idea.CollapsedLabel()
	}
	return dot.Render(marker) + " " + style.Render(truncate(label, width-2))
}

func renderLegendRow(s *styles.Styles, legend LegendView, width int) string {
	chip := styles.Chip(legend.Type.Color)
	name := truncate(legend.Type.Name, width-4)

	line := chip.Render(name)
	if legend.Selected {
		line += s.StatusHint.Render(" ✓")
	}
	if legend.Dragging {
		line = s.CardDragging.Render("» ") + line
	}
	return line
}

func padLine(line string, width int) string {
	gap := width - lipgloss.Width(line)
	if gap > 0 {
		line += strings.Repeat(" ", gap)
	}
	return line
}
