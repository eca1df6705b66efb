package board

import (
	"fmt"

	"ideaboard/internal/core/geometry"
	"ideaboard/internal/ui/styles"
)

// Header control glyphs, drawn into the top border right of the title
const (
	glyphMinimize = '▁'
	glyphRestore  = '▔'
	glyphArchive  = '▼'
	glyphDelete   = '✕'
	glyphResize   = '◢'
	glyphDropSlot = '╌'
)

// renderPanel paints one category panel onto the canvas. The caller paints
// panels in ascending stack order so overlap resolves visually the same way
// hit-testing does.
func renderPanel(c *Canvas, s *styles.Styles, v PanelView) {
	rect := PanelRect(v.Category)

	border := &s.PanelBorder
	switch {
	case v.Dragging:
		border = &s.PanelBorderDragging
	case v.Filtered:
		border = &s.PanelBorderFiltered
	}
	c.DrawBox(rect, border)

	renderPanelHeader(c, s, v, rect)
	renderPanelCards(c, s, v, rect)

	c.Set(rect.X+rect.Width-1, rect.Y+rect.Height-1, glyphResize, &s.ResizeHandle)
}

func renderPanelHeader(c *Canvas, s *styles.Styles, v PanelView, rect geometry.Rect) {
	// Title in the top border, truncated so it never collides with the
	// control glyphs.
	title := v.Category.Name
	maxTitle := rect.Width - minimizeOffset - 3
	if maxTitle < 0 {
		maxTitle = 0
	}
	if len([]rune(title)) > maxTitle {
		title = truncate(title, maxTitle)
	}
	c.DrawText(rect.X+2, rect.Y, title, &s.PanelHeader)

	right := rect.X + rect.Width - 1
	minGlyph := glyphMinimize
	if v.Minimized {
		minGlyph = glyphRestore
	}
	c.Set(right-minimizeOffset, rect.Y, minGlyph, &s.PanelControl)
	c.Set(right-archiveOffset, rect.Y, glyphArchive, &s.PanelControl)
	c.Set(right-deleteOffset, rect.Y, glyphDelete, &s.PanelControl)
}

func renderPanelCards(c *Canvas, s *styles.Styles, v PanelView, rect geometry.Rect) {
	if v.Minimized {
		label := fmt.Sprintf("(%d ideas)", v.Total)
		c.DrawText(rect.X+1, rect.Y+1, truncate(label, rect.Width-2), &s.PanelCount)
		return
	}

	// Splice the drop indicator in as a pseudo-row so cards below the slot
	// shift down, previewing the post-drop layout.
	type row struct {
		card      CardView
		indicator bool
	}
	rows := make([]row, 0, len(v.Cards)+1)
	for i, card := range v.Cards {
		if v.InsertSlot == i {
			rows = append(rows, row{indicator: true})
		}
		rows = append(rows, row{card: card})
	}
	if v.InsertSlot == len(v.Cards) {
		rows = append(rows, row{indicator: true})
	}

	rects := ContentRows(rect, len(rows))
	for i, r := range rects {
		if rows[i].indicator {
			for x := r.X; x < r.X+r.Width; x++ {
				c.Set(x, r.Y, glyphDropSlot, &s.DropSlot)
			}
			continue
		}
		renderCard(c, s, rows[i].card, r)
	}

	if hidden := len(rows) - len(rects); hidden > 0 {
		more := fmt.Sprintf("+%d more", hidden)
		c.DrawText(rect.X+1, rect.Y+rect.Height-2, truncate(more, rect.Width-2), &s.PanelCount)
	}
}

func renderCard(c *Canvas, s *styles.Styles, card CardView, r geometry.Rect) {
	dot := styles.Dot(card.Color)
	marker := '○'
	if card.Color != "" {
		marker = '●'
	}
	c.Set(r.X, r.Y, marker, &dot)

	style := &s.CardTitle
	if card.Dragging {
		style = &s.CardDragging
	}
	label := card.Idea.Title
	if card.Collapsed {
		label = card.Idea.CollapsedLabel()
	}
	c.DrawText(r.X+2, r.Y, truncate(label, r.Width-2), style)
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
