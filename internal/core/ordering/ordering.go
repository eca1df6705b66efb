// Package ordering maintains the per-list idea sequences: one list for the
// unassigned set and one per category. Together the lists partition the set
// of all idea ids — every id appears in exactly one list, with no
// duplicates.
package ordering

// Lists holds the unassigned sequence and one sequence per category. A nil
// category id selects the unassigned list throughout.
type Lists struct {
	unassigned []string
	categories map[string][]string
}

// NewLists creates an empty partition
func NewLists() *Lists {
	return &Lists{
		categories: make(map[string][]string),
	}
}

// Load replaces all lists with the given snapshot
func (l *Lists) Load(unassigned []string, byCategory map[string][]string) {
	l.unassigned = append([]string(nil), unassigned...)
	l.categories = make(map[string][]string, len(byCategory))
	for id, seq := range byCategory {
		l.categories[id] = append([]string(nil), seq...)
	}
}

// List returns a copy of the selected sequence
func (l *Lists) List(categoryID *string) []string {
	if categoryID == nil {
		return append([]string(nil), l.unassigned...)
	}
	return append([]string(nil), l.categories[*categoryID]...)
}

// Len returns the length of the selected sequence
func (l *Lists) Len(categoryID *string) int {
	if categoryID == nil {
		return len(l.unassigned)
	}
	return len(l.categories[*categoryID])
}

// EnsureCategory registers an empty list for a newly created category
func (l *Lists) EnsureCategory(categoryID string) {
	if _, ok := l.categories[categoryID]; !ok {
		l.categories[categoryID] = nil
	}
}

// Append adds an id to the end of the selected list. No-op if the id is
// already tracked anywhere, preserving the partition.
func (l *Lists) Append(categoryID *string, id string) {
	if l.Contains(id) {
		return
	}
	if categoryID == nil {
		l.unassigned = append(l.unassigned, id)
		return
	}
	l.categories[*categoryID] = append(l.categories[*categoryID], id)
}

// MoveWithin removes the id at from and reinserts it at to, with to
// interpreted against the list after removal. No-op if the indices are equal
// or out of range.
func (l *Lists) MoveWithin(categoryID *string, from, to int) bool {
	seq := l.unassigned
	if categoryID != nil {
		seq = l.categories[*categoryID]
	}
	if from == to || from < 0 || to < 0 || from >= len(seq) || to >= len(seq) {
		return false
	}

	id := seq[from]
	seq = append(seq[:from], seq[from+1:]...)
	seq = append(seq[:to], append([]string{id}, seq[to:]...)...)

	if categoryID == nil {
		l.unassigned = seq
	} else {
		l.categories[*categoryID] = seq
	}
	return true
}

// Transfer moves an id to the end of the destination list, removing it from
// whichever list currently holds it. An untracked id is still appended, so a
// transfer can double as a defensive reinsert.
func (l *Lists) Transfer(id string, toCategory *string) {
	l.Remove(id)
	if toCategory == nil {
		l.unassigned = append(l.unassigned, id)
		return
	}
	l.categories[*toCategory] = append(l.categories[*toCategory], id)
}

// Remove deletes an id from whichever list holds it. Returns false if the id
// was not tracked.
func (l *Lists) Remove(id string) bool {
	for i, v := range l.unassigned {
		if v == id {
			l.unassigned = append(l.unassigned[:i], l.unassigned[i+1:]...)
			return true
		}
	}
	for cat, seq := range l.categories {
		for i, v := range seq {
			if v == id {
				l.categories[cat] = append(seq[:i], seq[i+1:]...)
				return true
			}
		}
	}
	return false
}

// DropCategory removes a category's list, appending its members to the end
// of the unassigned list in their existing relative order. Returns the moved
// ids.
func (l *Lists) DropCategory(categoryID string) []string {
	seq := l.categories[categoryID]
	delete(l.categories, categoryID)
	l.unassigned = append(l.unassigned, seq...)
	return seq
}

// Find locates an id, returning the owning category (nil for unassigned) and
// the index within that list.
func (l *Lists) Find(id string) (*string, int, bool) {
	for i, v := range l.unassigned {
		if v == id {
			return nil, i, true
		}
	}
	for cat, seq := range l.categories {
		for i, v := range seq {
			if v == id {
				c := cat
				return &c, i, true
			}
		}
	}
	return nil, 0, false
}

// Contains reports whether any list tracks the id
func (l *Lists) Contains(id string) bool {
	_, _, ok := l.Find(id)
	return ok
}

// Snapshot returns copies of every sequence, keyed by category id with the
// unassigned list separate.
func (l *Lists) Snapshot() ([]string, map[string][]string) {
	byCategory := make(map[string][]string, len(l.categories))
	for id, seq := range l.categories {
		byCategory[id] = append([]string(nil), seq...)
	}
	return append([]string(nil), l.unassigned...), byCategory
}

// Count returns the total number of tracked ids across all lists
func (l *Lists) Count() int {
	n := len(l.unassigned)
	for _, seq := range l.categories {
		n += len(seq)
	}
	return n
}
