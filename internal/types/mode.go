// Package types contains shared types used across the application.
package types

// Mode represents what the board's key and pointer input currently drives
type Mode int

const (
	ModeBoard Mode = iota
	ModeDragging
	ModeOverlay
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeBoard:
		return "BOARD"
	case ModeDragging:
		return "DRAG"
	case ModeOverlay:
		return "OVERLAY"
	default:
		return "UNKNOWN"
	}
}
