// Package store holds the normalized in-memory entity tables for the board:
// categories, ideas with their ordering lists, and legend types. All
// mutation goes through store operations so the containment and ordering
// invariants stay centrally enforced; callers never poke entity fields
// directly.
package store

import (
	"fmt"
	"sort"
	"strings"

	"ideaboard/internal/core/geometry"
	"ideaboard/internal/domain"
)

// Default footprint for a newly created category, in surface cells
const (
	DefaultCategoryWidth  = 28
	DefaultCategoryHeight = 10
)

// Categories is the entity table for board categories. It tracks spatial
// state (position, size, stacking), the archived flag, and the pre-minimize
// size backup needed for exact restore.
type Categories struct {
	items   map[string]domain.Category
	restore map[string]geometry.Size
	nextID  int
}

// NewCategories creates an empty category table
func NewCategories() *Categories {
	return &Categories{
		items:   make(map[string]domain.Category),
		restore: make(map[string]geometry.Size),
	}
}

// Load replaces the table with categories fetched from the gateway. Widths
// below the name-derived minimum are widened so labels never overflow.
func (c *Categories) Load(categories []domain.Category) {
	c.items = make(map[string]domain.Category, len(categories))
	c.restore = make(map[string]geometry.Size)
	for _, cat := range categories {
		min := geometry.MinCategorySize(cat.Name)
		if cat.Width < min.Width {
			cat.Width = min.Width
		}
		if cat.Height < min.Height {
			cat.Height = min.Height
		}
		c.items[cat.ID] = cat
	}
}

// Get returns a category by id
func (c *Categories) Get(id string) (domain.Category, bool) {
	cat, ok := c.items[id]
	return cat, ok
}

// Len returns the number of categories, archived included
func (c *Categories) Len() int {
	return len(c.items)
}

// Active returns the non-archived categories in ascending stack order, so
// callers can paint back-to-front.
func (c *Categories) Active() []domain.Category {
	var out []domain.Category
	for _, cat := range c.items {
		if !cat.Archived {
			out = append(out, cat)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StackOrder != out[j].StackOrder {
			return out[i].StackOrder < out[j].StackOrder
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Archived returns the archived categories sorted by name
func (c *Categories) Archived() []domain.Category {
	var out []domain.Category
	for _, cat := range c.items {
		if cat.Archived {
			out = append(out, cat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Layers returns the active categories as hit-testable layers
func (c *Categories) Layers() []geometry.Layer {
	active := c.Active()
	layers := make([]geometry.Layer, 0, len(active))
	for _, cat := range active {
		layers = append(layers, geometry.Layer{
			ID:    cat.ID,
			Rect:  geometry.Rect{X: cat.X, Y: cat.Y, Width: cat.Width, Height: cat.Height},
			Stack: cat.StackOrder,
		})
	}
	return layers
}

// Create adds a category with a default size, a staggered default position,
// and a stack order above everything else. The name must be non-blank.
func (c *Categories) Create(name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, domain.ErrEmptyName
	}

	n := len(c.items)
	cat := domain.Category{
		ID:         c.newID(),
		Name:       name,
		X:          2 + 2*(n%6),
		Y:          1 + n%6,
		Width:      DefaultCategoryWidth,
		Height:     DefaultCategoryHeight,
		StackOrder: c.MaxStack() + 1,
	}
	min := geometry.MinCategorySize(name)
	if cat.Width < min.Width {
		cat.Width = min.Width
	}
	c.items[cat.ID] = cat
	return cat, nil
}

// Rename changes a category's name, widening it to the new minimum if the
// longer label no longer fits.
func (c *Categories) Rename(id, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, domain.ErrEmptyName
	}
	cat, ok := c.items[id]
	if !ok {
		return domain.Category{}, domain.ErrNotFound
	}
	cat.Name = name
	if min := geometry.MinCategorySize(name); cat.Width < min.Width {
		cat.Width = min.Width
	}
	c.items[id] = cat
	return cat, nil
}

// SetPosition moves a category. The caller provides already-clamped
// coordinates; the store does not know the surface bounds.
func (c *Categories) SetPosition(id string, pos geometry.Point) error {
	cat, ok := c.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	cat.X = pos.X
	cat.Y = pos.Y
	c.items[id] = cat
	return nil
}

// SetSize resizes a category. Resizing by hand discards any minimize backup,
// since the user has chosen a new explicit size.
func (c *Categories) SetSize(id string, size geometry.Size) error {
	cat, ok := c.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	cat.Width = size.Width
	cat.Height = size.Height
	c.items[id] = cat
	delete(c.restore, id)
	return nil
}

// BringToFront raises a category above all others. Every call increments the
// stack counter; repeated calls on the same category keep it observably on
// top.
func (c *Categories) BringToFront(id string) (int, error) {
	cat, ok := c.items[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	cat.StackOrder = c.MaxStack() + 1
	c.items[id] = cat
	return cat.StackOrder, nil
}

// ToggleArchive flips the archived flag, leaving position and size intact.
// Returns the new archived state.
func (c *Categories) ToggleArchive(id string) (bool, error) {
	cat, ok := c.items[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	cat.Archived = !cat.Archived
	c.items[id] = cat
	return cat.Archived, nil
}

// IsMinimized reports whether the category currently has a restore backup
func (c *Categories) IsMinimized(id string) bool {
	_, ok := c.restore[id]
	return ok
}

// ToggleMinimize shrinks the category to its minimum footprint, remembering
// the prior size; toggling again restores exactly that size.
func (c *Categories) ToggleMinimize(id string) (domain.Category, error) {
	cat, ok := c.items[id]
	if !ok {
		return domain.Category{}, domain.ErrNotFound
	}

	if prev, minimized := c.restore[id]; minimized {
		cat.Width = prev.Width
		cat.Height = prev.Height
		delete(c.restore, id)
	} else {
		c.restore[id] = geometry.Size{Width: cat.Width, Height: cat.Height}
		min := geometry.MinCategorySize(cat.Name)
		cat.Width = min.Width
		cat.Height = min.Height
	}
	c.items[id] = cat
	return cat, nil
}

// Delete removes the category entity. Reassigning its member ideas to the
// unassigned list is the idea store's half of the cascade.
func (c *Categories) Delete(id string) error {
	if _, ok := c.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(c.items, id)
	delete(c.restore, id)
	return nil
}

// ClampAll constrains every active category to the given surface bounds,
// returning only the categories whose position actually changed. Used when
// the surface shrinks, e.g. after a sidebar resize.
func (c *Categories) ClampAll(bounds geometry.Size) []domain.Category {
	var changed []domain.Category
	for _, cat := range c.Active() {
		rect := geometry.Rect{X: cat.X, Y: cat.Y, Width: cat.Width, Height: cat.Height}
		pos := geometry.ClampPosition(rect, bounds)
		if pos.X != cat.X || pos.Y != cat.Y {
			cat.X = pos.X
			cat.Y = pos.Y
			c.items[cat.ID] = cat
			changed = append(changed, cat)
		}
	}
	return changed
}

// MaxStack returns the highest stack order in use, zero when empty
func (c *Categories) MaxStack() int {
	max := 0
	for _, cat := range c.items {
		if cat.StackOrder > max {
			max = cat.StackOrder
		}
	}
	return max
}

func (c *Categories) newID() string {
	for {
		c.nextID++
		id := fmt.Sprintf("cat-%d", c.nextID)
		if _, exists := c.items[id]; !exists {
			return id
		}
	}
}
