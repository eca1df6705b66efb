package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal drawn centered over the board. Title and Size feed the
// chrome the app paints around the overlay's View.
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg asks the stack to dismiss the top overlay
type CloseOverlayMsg struct{}

// SelectionMsg carries a choice made inside an overlay. Key names the
// pending action, Value is overlay-specific (a ConfirmResult, a tag id).
type SelectionMsg struct {
	Key   string
	Value any
}
