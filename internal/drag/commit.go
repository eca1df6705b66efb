package drag

import "ideaboard/internal/core/geometry"

// Commit is the outcome of a finished gesture. The app switches on the
// concrete type to apply the store mutation and fire the matching
// persistence call.
type Commit interface {
	isCommit()
}

// CategoryMoved carries the final clamped position of a category move
type CategoryMoved struct {
	ID       string
	Position geometry.Point
}

// CategoryResized carries the final clamped size of a category resize
type CategoryResized struct {
	ID   string
	Size geometry.Size
}

// IdeaReordered is a same-list reorder: remove at From, reinsert at To.
// To is interpreted after removal.
type IdeaReordered struct {
	ID         string
	CategoryID *string
	From       int
	To         int
}

// IdeaAssigned transfers an idea to the end of another list. A nil
// CategoryID means the unassigned list.
type IdeaAssigned struct {
	ID         string
	CategoryID *string
}

// LegendAssigned tags the idea the chip was dropped on
type LegendAssigned struct {
	IdeaID       string
	LegendTypeID string
}

// Discarded is a gesture that ended with no effect
type Discarded struct{}

func (CategoryMoved) isCommit()   {}
func (CategoryResized) isCommit() {}
func (IdeaReordered) isCommit()   {}
func (IdeaAssigned) isCommit()    {}
func (LegendAssigned) isCommit()  {}
func (Discarded) isCommit()       {}
