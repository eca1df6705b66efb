// Package board renders the spatial surface: freely positioned, overlapping
// category panels composited back-to-front over a cell canvas, plus the
// sidebar holding the unassigned list, the legend, and the archive drawer.
package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ideaboard/internal/core/geometry"
)

// Box drawing runes for panel borders
const (
	runeTopLeft     = '╭'
	runeTopRight    = '╮'
	runeBottomLeft  = '╰'
	runeBottomRight = '╯'
	runeHorizontal  = '─'
	runeVertical    = '│'
)

type cell struct {
	r     rune
	style *lipgloss.Style
}

// Canvas is a styled cell grid. Panels paint onto it in stack order, so a
// later draw simply overwrites whatever was below it.
type Canvas struct {
	width  int
	height int
	cells  []cell
}

// NewCanvas creates a blank canvas of the given size
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

// Size returns the canvas dimensions
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Set paints one cell; out-of-bounds coordinates are clipped
func (c *Canvas) Set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, style: style}
}

// DrawText paints a string starting at (x, y), clipped at the right edge
func (c *Canvas) DrawText(x, y int, text string, style *lipgloss.Style) {
	for i, r := range []rune(text) {
		c.Set(x+i, y, r, style)
	}
}

// FillRect paints every cell of the rectangle with the given rune
func (c *Canvas) FillRect(rect geometry.Rect, r rune, style *lipgloss.Style) {
	for y := rect.Y; y < rect.Y+rect.Height; y++ {
		for x := rect.X; x < rect.X+rect.Width; x++ {
			c.Set(x, y, r, style)
		}
	}
}

// DrawBox paints a rounded border on the rectangle's perimeter and blanks
// its interior, erasing anything a lower panel left there.
func (c *Canvas) DrawBox(rect geometry.Rect, style *lipgloss.Style) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	c.FillRect(geometry.Rect{X: rect.X + 1, Y: rect.Y + 1, Width: rect.Width - 2, Height: rect.Height - 2}, ' ', nil)

	right := rect.X + rect.Width - 1
	bottom := rect.Y + rect.Height - 1
	for x := rect.X + 1; x < right; x++ {
		c.Set(x, rect.Y, runeHorizontal, style)
		c.Set(x, bottom, runeHorizontal, style)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		c.Set(rect.X, y, runeVertical, style)
		c.Set(right, y, runeVertical, style)
	}
	c.Set(rect.X, rect.Y, runeTopLeft, style)
	c.Set(right, rect.Y, runeTopRight, style)
	c.Set(rect.X, bottom, runeBottomLeft, style)
	c.Set(right, bottom, runeBottomRight, style)
}

// Row renders one canvas row, batching adjacent cells that share a style
// into a single Render call.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}

	var b strings.Builder
	var run []rune
	var runStyle *lipgloss.Style

	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyle == nil {
			b.WriteString(string(run))
		} else {
			b.WriteString(runStyle.Render(string(run)))
		}
		run = run[:0]
	}

	for x := 0; x < c.width; x++ {
		cl := c.cells[y*c.width+x]
		if cl.style != runStyle {
			flush()
			runStyle = cl.style
		}
		run = append(run, cl.r)
	}
	flush()
	return b.String()
}

// String renders the whole canvas
func (c *Canvas) String() string {
	rows := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}
