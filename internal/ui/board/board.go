package board

import (
	"strings"

	"ideaboard/internal/ui/styles"
)

// Render composites the whole board view: sidebar on the left, the spatial
// surface with its panels on the right, and the drag ghost on top.
func Render(v View) string {
	bounds := v.Layout.BoardBounds()
	canvas := NewCanvas(bounds.Width, bounds.Height)

	for _, panel := range v.Panels {
		renderPanel(canvas, v.Styles, panel)
	}
	if v.Ghost != nil {
		renderGhost(canvas, v.Layout, v.Styles, *v.Ghost)
	}

	sidebar := renderSidebar(v.Layout, v.Styles, v.Sidebar)

	var b strings.Builder
	for y := 0; y < bounds.Height; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		if y < len(sidebar) {
			b.WriteString(sidebar[y])
		}
		b.WriteString(canvas.Row(y))
	}
	return b.String()
}

// renderGhost paints the floating drag preview at the pointer. The ghost may
// hang over the sidebar edge; the canvas clips it.
func renderGhost(c *Canvas, l Layout, s *styles.Styles, g GhostView) {
	pos := l.ToSurface(g.Pos)
	dot := styles.Dot(g.Color)

	marker := '○'
	if g.Color != "" {
		marker = '●'
	}
	c.Set(pos.X+1, pos.Y+1, marker, &dot)
	c.DrawText(pos.X+3, pos.Y+1, truncate(g.Text, 24), &s.CardDragging)
}
