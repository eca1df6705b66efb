package statusbar

import "ideaboard/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeBoard:
		return "n: idea  c: category  t: legend  f: filter  ?: help  q: quit"
	case types.ModeDragging:
		return "release: drop  Esc: cancel"
	case types.ModeOverlay:
		// Overlay hints come from the overlay's own footer
		return ""
	default:
		return ""
	}
}
