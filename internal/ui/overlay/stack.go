package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack holds the open overlays, topmost last. The board opens one at a
// time in practice, but dialogs nest, so a confirm may land on top of the
// form that asked for it.
type Stack struct {
	open []Overlay
}

// NewStack creates an empty overlay stack
func NewStack() *Stack {
	return &Stack{}
}

// Push opens an overlay above whatever is showing and starts it
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.open = append(s.open, o)
	return o.Init()
}

// Pop dismisses the top overlay, nil when nothing is open
func (s *Stack) Pop() Overlay {
	if len(s.open) == 0 {
		return nil
	}
	top := s.open[len(s.open)-1]
	s.open = s.open[:len(s.open)-1]
	return top
}

// Current returns the top overlay without dismissing it, nil when nothing
// is open
func (s *Stack) Current() Overlay {
	if len(s.open) == 0 {
		return nil
	}
	return s.open[len(s.open)-1]
}

// IsEmpty reports whether any overlay is open
func (s *Stack) IsEmpty() bool {
	return len(s.open) == 0
}

// Update routes a message to the top overlay. CloseOverlayMsg dismisses it
// instead of being forwarded.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if s.IsEmpty() {
		return nil
	}
	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}
	next, cmd := s.Current().Update(msg)
	if o, ok := next.(Overlay); ok {
		s.open[len(s.open)-1] = o
	}
	return cmd
}
