// Package geometry provides the pure spatial math for the board: clamping of
// category rectangles to the surface, hit-testing of overlapping panels by
// stack order, and insert-slot resolution for same-list reordering.
package geometry

// Point is a position in surface cells
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in surface cells
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside the rectangle. Bounds are
// half-open: the left and top edges are inside, the right and bottom are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Layer is a hit-testable rectangle with a stacking order
type Layer struct {
	ID    string
	Rect  Rect
	Stack int
}

// Minimum category footprint. Width additionally grows with the name so the
// header label never overflows.
const (
	MinCategoryWidth  = 12
	MinCategoryHeight = 4
)

// MinCategorySize returns the smallest size a category with the given name
// may take.
func MinCategorySize(name string) Size {
	w := len([]rune(name)) + 6
	if w < MinCategoryWidth {
		w = MinCategoryWidth
	}
	return Size{Width: w, Height: MinCategoryHeight}
}

// ClampPosition constrains a rectangle's top-left corner so the rectangle
// lies fully within bounds. If the rectangle is larger than the bounds the
// corresponding coordinate clamps to zero, never negative.
func ClampPosition(rect Rect, bounds Size) Point {
	return Point{
		X: clamp(rect.X, 0, bounds.Width-rect.Width),
		Y: clamp(rect.Y, 0, bounds.Height-rect.Height),
	}
}

// ClampSize constrains a proposed size to [min, max] per dimension. When the
// available space is below the minimum, the minimum wins.
func ClampSize(proposed, min, max Size) Size {
	w := proposed.Width
	if w > max.Width {
		w = max.Width
	}
	if w < min.Width {
		w = min.Width
	}
	h := proposed.Height
	if h > max.Height {
		h = max.Height
	}
	if h < min.Height {
		h = min.Height
	}
	return Size{Width: w, Height: h}
}

// HitTest returns the id of the topmost layer containing the point. Among
// layers with equal stack order the earliest in the slice wins. Returns
// false if no layer contains the point.
func HitTest(p Point, layers []Layer) (string, bool) {
	found := false
	var id string
	best := 0
	for _, l := range layers {
		if !l.Rect.Contains(p) {
			continue
		}
		if !found || l.Stack > best {
			found = true
			id = l.ID
			best = l.Stack
		}
	}
	return id, found
}

// InsertIndex resolves the slot a dragged row would occupy if dropped at the
// given pointer Y, by comparing against successive row midpoints. Rows must
// be in list order. A pointer above the first midpoint yields 0; below the
// last, len(rows).
func InsertIndex(pointerY int, rows []Rect) int {
	for i, r := range rows {
		mid := r.Y + r.Height/2
		if pointerY < mid {
			return i
		}
	}
	return len(rows)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
