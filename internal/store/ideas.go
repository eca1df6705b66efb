package store

import (
	"fmt"
	"strings"

	"ideaboard/internal/core/ordering"
	"ideaboard/internal/domain"
)

// Ideas is the entity table for ideas plus the ordering lists that define
// containment: each idea belongs to exactly one list, the unassigned list or
// one category's list.
type Ideas struct {
	items  map[string]domain.Idea
	lists  *ordering.Lists
	nextID int
}

// NewIdeas creates an empty idea table
func NewIdeas() *Ideas {
	return &Ideas{
		items: make(map[string]domain.Idea),
		lists: ordering.NewLists(),
	}
}

// Load replaces the table with a gateway snapshot. The partition is repaired
// defensively: ids in lists without an entity are dropped, duplicates keep
// their first occurrence, and entities missing from every list are appended
// to unassigned.
func (s *Ideas) Load(items []domain.Idea, unassigned []string, byCategory map[string][]string) {
	s.items = make(map[string]domain.Idea, len(items))
	for _, idea := range items {
		s.items[idea.ID] = idea
	}

	s.lists = ordering.NewLists()
	for _, id := range unassigned {
		if _, ok := s.items[id]; ok {
			s.lists.Append(nil, id)
		}
	}
	for cat, ids := range byCategory {
		s.lists.EnsureCategory(cat)
		for _, id := range ids {
			if _, ok := s.items[id]; ok {
				c := cat
				s.lists.Append(&c, id)
			}
		}
	}
	for _, idea := range items {
		if !s.lists.Contains(idea.ID) {
			s.lists.Append(nil, idea.ID)
		}
	}
}

// Get returns an idea by id
func (s *Ideas) Get(id string) (domain.Idea, bool) {
	idea, ok := s.items[id]
	return idea, ok
}

// All returns the entity table keyed by id. The map is a copy; entries are
// values.
func (s *Ideas) All() map[string]domain.Idea {
	out := make(map[string]domain.Idea, len(s.items))
	for id, idea := range s.items {
		out[id] = idea
	}
	return out
}

// Len returns the number of live ideas
func (s *Ideas) Len() int {
	return len(s.items)
}

// Order returns the selected ordering list (nil selects unassigned)
func (s *Ideas) Order(categoryID *string) []string {
	return s.lists.List(categoryID)
}

// Owner locates the list holding an idea. Ideas lost from every list are
// self-healed into the unassigned list rather than treated as an error.
func (s *Ideas) Owner(id string) (*string, int, bool) {
	if _, ok := s.items[id]; !ok {
		return nil, 0, false
	}
	cat, idx, ok := s.lists.Find(id)
	if !ok {
		s.lists.Append(nil, id)
		cat, idx, _ = s.lists.Find(id)
	}
	return cat, idx, true
}

// Create validates and adds an idea to the end of the unassigned list
func (s *Ideas) Create(title, headline string) (domain.Idea, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Idea{}, domain.ErrEmptyTitle
	}
	idea := domain.Idea{
		ID:       s.newID(),
		Title:    title,
		Headline: strings.TrimSpace(headline),
	}
	s.items[idea.ID] = idea
	s.lists.Append(nil, idea.ID)
	return idea, nil
}

// UpdateTitle changes an idea's title; blank titles are rejected
func (s *Ideas) UpdateTitle(id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.ErrEmptyTitle
	}
	idea, ok := s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	idea.Title = title
	s.items[id] = idea
	return nil
}

// UpdateHeadline changes an idea's headline; empty clears it
func (s *Ideas) UpdateHeadline(id, headline string) error {
	idea, ok := s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	idea.Headline = strings.TrimSpace(headline)
	s.items[id] = idea
	return nil
}

// SetLegendType assigns or clears (nil) an idea's legend type
func (s *Ideas) SetLegendType(id string, legendTypeID *string) error {
	idea, ok := s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	idea.LegendTypeID = legendTypeID
	s.items[id] = idea
	return nil
}

// ClearLegendType nulls the reference on every idea holding the given legend
// type, returning the affected idea ids. Part of the tag deletion cascade.
func (s *Ideas) ClearLegendType(legendTypeID string) []string {
	var affected []string
	for id, idea := range s.items {
		if idea.LegendTypeID != nil && *idea.LegendTypeID == legendTypeID {
			idea.LegendTypeID = nil
			s.items[id] = idea
			affected = append(affected, id)
		}
	}
	return affected
}

// Delete removes an idea from the table and from its list
func (s *Ideas) Delete(id string) error {
	if _, ok := s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.items, id)
	s.lists.Remove(id)
	return nil
}

// Assign moves an idea to the end of the destination list (nil =
// unassigned).
func (s *Ideas) Assign(id string, categoryID *string) error {
	if _, ok := s.items[id]; !ok {
		return domain.ErrNotFound
	}
	s.lists.Transfer(id, categoryID)
	return nil
}

// MoveWithin reorders an idea inside one list; see ordering.Lists.MoveWithin
func (s *Ideas) MoveWithin(categoryID *string, from, to int) bool {
	return s.lists.MoveWithin(categoryID, from, to)
}

// EnsureCategory registers an ordering list for a new category
func (s *Ideas) EnsureCategory(categoryID string) {
	s.lists.EnsureCategory(categoryID)
}

// DropCategory evicts a deleted category's list, appending its members to
// the unassigned list in order. Returns the moved ids.
func (s *Ideas) DropCategory(categoryID string) []string {
	return s.lists.DropCategory(categoryID)
}

// Snapshot returns copies of all ordering lists for persistence
func (s *Ideas) Snapshot() ([]string, map[string][]string) {
	return s.lists.Snapshot()
}

func (s *Ideas) newID() string {
	for {
		s.nextID++
		id := fmt.Sprintf("idea-%d", s.nextID)
		if _, exists := s.items[id]; !exists {
			return id
		}
	}
}
