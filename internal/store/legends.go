package store

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"ideaboard/internal/domain"
)

// Legends is the entity table for legend types (tags). Idea references to a
// deleted type are cleared by the idea store; the app wires the cascade.
type Legends struct {
	items  map[string]domain.LegendType
	nextID int
}

// NewLegends creates an empty legend table
func NewLegends() *Legends {
	return &Legends{
		items: make(map[string]domain.LegendType),
	}
}

// Load replaces the table with legend types from the gateway
func (l *Legends) Load(types []domain.LegendType) {
	l.items = make(map[string]domain.LegendType, len(types))
	for _, lt := range types {
		l.items[lt.ID] = lt
	}
}

// Get returns a legend type by id
func (l *Legends) Get(id string) (domain.LegendType, bool) {
	lt, ok := l.items[id]
	return lt, ok
}

// All returns every legend type sorted by id for stable display order
func (l *Legends) All() []domain.LegendType {
	out := make([]domain.LegendType, 0, len(l.items))
	for _, lt := range l.items {
		out = append(out, lt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of legend types
func (l *Legends) Len() int {
	return len(l.items)
}

// Create validates and adds a legend type. The color must be a parseable
// hex color such as "#6366f1".
func (l *Legends) Create(name, color string) (domain.LegendType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.LegendType{}, domain.ErrEmptyName
	}
	if _, err := colorful.Hex(color); err != nil {
		return domain.LegendType{}, domain.ErrBadColor
	}
	lt := domain.LegendType{
		ID:    l.newID(),
		Name:  name,
		Color: color,
	}
	l.items[lt.ID] = lt
	return lt, nil
}

// Update changes a legend type's name and color together. Both values are
// checked up front so a bad color cannot leave a half-applied edit behind.
func (l *Legends) Update(id, name, color string) (domain.LegendType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.LegendType{}, domain.ErrEmptyName
	}
	if _, err := colorful.Hex(color); err != nil {
		return domain.LegendType{}, domain.ErrBadColor
	}
	lt, ok := l.items[id]
	if !ok {
		return domain.LegendType{}, domain.ErrNotFound
	}
	lt.Name = name
	lt.Color = color
	l.items[id] = lt
	return lt, nil
}

// Delete removes a legend type. The caller must also clear idea references
// via Ideas.ClearLegendType.
func (l *Legends) Delete(id string) error {
	if _, ok := l.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(l.items, id)
	return nil
}

func (l *Legends) newID() string {
	for {
		l.nextID++
		id := fmt.Sprintf("lt-%d", l.nextID)
		if _, exists := l.items[id]; !exists {
			return id
		}
	}
}
