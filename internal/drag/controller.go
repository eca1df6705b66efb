// Package drag implements the gesture state machine. A Session exists for
// the duration of exactly one pointer gesture; the app holds at most one at
// a time. Spatial gestures (move, resize) write a live preview through the
// category store on every frame, so releasing only has to persist what is
// already on screen. Ordering gestures (idea move, legend assignment) keep
// their effect provisional and apply nothing until release.
package drag

import (
	"ideaboard/internal/core/geometry"
)

// Kind identifies what a session is dragging
type Kind int

const (
	MoveCategory Kind = iota
	ResizeCategory
	MoveIdea
	AssignLegend
)

// SpatialStore is the slice of the category store a spatial gesture writes
// its per-frame preview through.
type SpatialStore interface {
	SetPosition(id string, pos geometry.Point) error
	SetSize(id string, size geometry.Size) error
}

// IdeaRect is a hit-target for legend-chip drops. Callers supply cards in
// paint order; the last card containing the pointer wins, matching what is
// visually on top.
type IdeaRect struct {
	ID   string
	Rect geometry.Rect
}

// Frame is the hit-testing context for one pointer movement. The app
// rebuilds it from the current layout before each Move or Release.
type Frame struct {
	// Bounds is the size of the board surface the gesture is clamped to.
	Bounds geometry.Size

	// Sidebar is the unassigned-list region. It wins over category panels
	// when resolving an idea drop target.
	Sidebar geometry.Rect

	// Layers are the active category panels, hit-tested by stack order.
	Layers []geometry.Layer

	// Rows are the source list's card rectangles with the dragged card
	// excluded, so an insert slot maps directly onto a post-removal index.
	// Nil disables same-list reordering for this frame.
	Rows []geometry.Rect

	// Ideas are the visible cards, used only by legend-assignment drags.
	Ideas []IdeaRect
}

// Session is one in-progress gesture
type Session struct {
	kind    Kind
	subject string
	store   SpatialStore

	origin  geometry.Rect
	grab    geometry.Point
	minSize geometry.Size
	current geometry.Rect

	source      *string
	sourceIndex int
	target      *string
	hasTarget   bool
	insertIndex int
	hasIndex    bool

	hoverIdea string
}

// StartMoveCategory begins dragging a category by its header. The rect is
// the category's current footprint and grab the press point, so the panel
// keeps its offset under the pointer instead of snapping its corner to it.
func StartMoveCategory(store SpatialStore, id string, rect geometry.Rect, grab geometry.Point) *Session {
	return &Session{
		kind:    MoveCategory,
		subject: id,
		store:   store,
		origin:  rect,
		grab:    geometry.Point{X: grab.X - rect.X, Y: grab.Y - rect.Y},
		current: rect,
	}
}

// StartResizeCategory begins dragging a category's resize handle. The
// category stays anchored at its top-left corner; min is the smallest size
// the category may take, derived from its name.
func StartResizeCategory(store SpatialStore, id string, rect geometry.Rect, grab geometry.Point, min geometry.Size) *Session {
	return &Session{
		kind:    ResizeCategory,
		subject: id,
		store:   store,
		origin:  rect,
		grab:    grab,
		minSize: min,
		current: rect,
	}
}

// StartMoveIdea begins dragging an idea card out of its list. source is the
// list holding the card (nil for unassigned) and sourceIndex its position
// there.
func StartMoveIdea(id string, source *string, sourceIndex int) *Session {
	return &Session{
		kind:        MoveIdea,
		subject:     id,
		source:      source,
		sourceIndex: sourceIndex,
	}
}

// StartAssignLegend begins dragging a legend chip toward an idea card
func StartAssignLegend(legendTypeID string) *Session {
	return &Session{
		kind:    AssignLegend,
		subject: legendTypeID,
	}
}

// Kind returns what the session is dragging
func (s *Session) Kind() Kind {
	return s.kind
}

// Subject returns the dragged entity id (the legend type id for
// AssignLegend).
func (s *Session) Subject() string {
	return s.subject
}

// Preview returns the latest clamped rect of a spatial gesture
func (s *Session) Preview() geometry.Rect {
	return s.current
}

// HoverTarget returns the list an idea drag is currently over. ok is false
// while the pointer is over neither the sidebar nor a panel.
func (s *Session) HoverTarget() (*string, bool) {
	return s.target, s.hasTarget
}

// InsertIndex returns the provisional same-list drop slot, valid only while
// hovering the gesture's own source list.
func (s *Session) InsertIndex() (int, bool) {
	return s.insertIndex, s.hasIndex
}

// HoverIdea returns the card a legend drag is over, empty when none
func (s *Session) HoverIdea() string {
	return s.hoverIdea
}

// Move feeds one pointer movement into the session
func (s *Session) Move(p geometry.Point, frame Frame) {
	switch s.kind {
	case MoveCategory:
		rect := s.current
		rect.X = p.X - s.grab.X
		rect.Y = p.Y - s.grab.Y
		pos := geometry.ClampPosition(rect, frame.Bounds)
		s.current.X = pos.X
		s.current.Y = pos.Y
		_ = s.store.SetPosition(s.subject, pos)

	case ResizeCategory:
		proposed := geometry.Size{
			Width:  s.origin.Width + p.X - s.grab.X,
			Height: s.origin.Height + p.Y - s.grab.Y,
		}
		max := geometry.Size{
			Width:  frame.Bounds.Width - s.origin.X,
			Height: frame.Bounds.Height - s.origin.Y,
		}
		size := geometry.ClampSize(proposed, s.minSize, max)
		s.current.Width = size.Width
		s.current.Height = size.Height
		_ = s.store.SetSize(s.subject, size)

	case MoveIdea:
		s.resolveIdeaTarget(p, frame)

	case AssignLegend:
		s.hoverIdea = ""
		for _, card := range frame.Ideas {
			if card.Rect.Contains(p) {
				s.hoverIdea = card.ID
			}
		}
	}
}

// Release ends the gesture at the given pointer position and returns what
// to commit.
func (s *Session) Release(p geometry.Point, frame Frame) Commit {
	s.Move(p, frame)

	switch s.kind {
	case MoveCategory:
		return CategoryMoved{
			ID:       s.subject,
			Position: geometry.Point{X: s.current.X, Y: s.current.Y},
		}

	case ResizeCategory:
		return CategoryResized{
			ID:   s.subject,
			Size: geometry.Size{Width: s.current.Width, Height: s.current.Height},
		}

	case MoveIdea:
		target := s.target
		if !s.hasTarget {
			// Dropping over nothing lands the card in the unassigned list.
			target = nil
		}
		if sameList(target, s.source) {
			if !s.hasIndex {
				return Discarded{}
			}
			return IdeaReordered{
				ID:         s.subject,
				CategoryID: s.source,
				From:       s.sourceIndex,
				To:         s.insertIndex,
			}
		}
		return IdeaAssigned{ID: s.subject, CategoryID: target}

	case AssignLegend:
		if s.hoverIdea == "" {
			return Discarded{}
		}
		return LegendAssigned{IdeaID: s.hoverIdea, LegendTypeID: s.subject}
	}
	return Discarded{}
}

// Cancel aborts the gesture. Spatial previews already written to the store
// are reverted to the gesture's origin; ordering gestures have nothing to
// undo.
func (s *Session) Cancel() Commit {
	switch s.kind {
	case MoveCategory:
		_ = s.store.SetPosition(s.subject, geometry.Point{X: s.origin.X, Y: s.origin.Y})
	case ResizeCategory:
		_ = s.store.SetSize(s.subject, geometry.Size{Width: s.origin.Width, Height: s.origin.Height})
	}
	return Discarded{}
}

func (s *Session) resolveIdeaTarget(p geometry.Point, frame Frame) {
	switch {
	case frame.Sidebar.Contains(p):
		s.target = nil
		s.hasTarget = true
	default:
		if id, ok := geometry.HitTest(p, frame.Layers); ok {
			s.target = &id
			s.hasTarget = true
		} else {
			s.target = nil
			s.hasTarget = false
		}
	}

	// The insert slot is meaningful only over the gesture's own list, and
	// goes stale the moment the pointer leaves it.
	s.hasIndex = false
	if s.hasTarget && sameList(s.target, s.source) && frame.Rows != nil {
		s.insertIndex = geometry.InsertIndex(p.Y, frame.Rows)
		s.hasIndex = true
	}
}

func sameList(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
