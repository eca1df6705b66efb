package domain

// TagSet is the tag selection for one filter scope. An empty set means
// "show all". A non-empty set matches with OR semantics across the selected
// legend types plus the synthetic "untagged" pseudo-tag.
type TagSet struct {
	IDs      map[string]bool
	Untagged bool
}

// NewTagSet creates an empty tag selection
func NewTagSet() TagSet {
	return TagSet{IDs: make(map[string]bool)}
}

// Empty returns true if nothing is selected
func (s TagSet) Empty() bool {
	return len(s.IDs) == 0 && !s.Untagged
}

// Matches returns true if an idea with the given legend type passes this
// scope. An empty selection passes everything.
func (s TagSet) Matches(legendTypeID *string) bool {
	if s.Empty() {
		return true
	}
	if legendTypeID == nil {
		return s.Untagged
	}
	return s.IDs[*legendTypeID]
}

// Toggle flips the selection state of a legend type
func (s *TagSet) Toggle(id string) {
	if s.IDs == nil {
		s.IDs = make(map[string]bool)
	}
	if s.IDs[id] {
		delete(s.IDs, id)
	} else {
		s.IDs[id] = true
	}
}

// ToggleUntagged flips the untagged pseudo-tag
func (s *TagSet) ToggleUntagged() {
	s.Untagged = !s.Untagged
}

// Drop removes a legend type from the selection, used when the type is
// deleted.
func (s *TagSet) Drop(id string) {
	delete(s.IDs, id)
}

// Clear resets the selection
func (s *TagSet) Clear() {
	s.IDs = make(map[string]bool)
	s.Untagged = false
}

// Filter holds the global tag scope and one optional scope per category.
// Scopes combine with AND: an idea in a category is visible only if it
// matches both the global selection and that category's selection.
type Filter struct {
	Global     TagSet
	ByCategory map[string]TagSet
}

// NewFilter creates a filter with no active selections
func NewFilter() *Filter {
	return &Filter{
		Global:     NewTagSet(),
		ByCategory: make(map[string]TagSet),
	}
}

// CategoryScope returns the current selection for a category
func (f *Filter) CategoryScope(id string) TagSet {
	return f.ByCategory[id]
}

// ToggleCategoryTag flips a legend type in a category's scope
func (f *Filter) ToggleCategoryTag(categoryID, tagID string) {
	s := f.ByCategory[categoryID]
	s.Toggle(tagID)
	f.ByCategory[categoryID] = s
}

// ToggleCategoryUntagged flips the untagged pseudo-tag in a category's scope
func (f *Filter) ToggleCategoryUntagged(categoryID string) {
	s := f.ByCategory[categoryID]
	if s.IDs == nil {
		s.IDs = make(map[string]bool)
	}
	s.Untagged = !s.Untagged
	f.ByCategory[categoryID] = s
}

// ClearCategory resets a category's scope
func (f *Filter) ClearCategory(categoryID string) {
	delete(f.ByCategory, categoryID)
}

// DropTag removes a deleted legend type from every scope
func (f *Filter) DropTag(tagID string) {
	f.Global.Drop(tagID)
	for id, s := range f.ByCategory {
		s.Drop(tagID)
		f.ByCategory[id] = s
	}
}

// DropCategory removes a deleted category's scope
func (f *Filter) DropCategory(categoryID string) {
	delete(f.ByCategory, categoryID)
}

// IsActive returns true if any scope has a selection
func (f *Filter) IsActive() bool {
	if !f.Global.Empty() {
		return true
	}
	for _, s := range f.ByCategory {
		if !s.Empty() {
			return true
		}
	}
	return false
}

// CategoryActive returns true if the category's own scope has a selection
func (f *Filter) CategoryActive(categoryID string) bool {
	return !f.ByCategory[categoryID].Empty()
}

// Visible filters an ordering list down to the ideas that pass both the
// global scope and, for category lists, the category's scope. Order is
// preserved. Ids without a known idea are skipped.
func (f *Filter) Visible(list []string, ideas map[string]Idea, categoryID *string) []string {
	scope := NewTagSet()
	if categoryID != nil {
		scope = f.ByCategory[*categoryID]
	}
	result := make([]string, 0, len(list))
	for _, id := range list {
		idea, ok := ideas[id]
		if !ok {
			continue
		}
		if !f.Global.Matches(idea.LegendTypeID) {
			continue
		}
		if !scope.Matches(idea.LegendTypeID) {
			continue
		}
		result = append(result, id)
	}
	return result
}
