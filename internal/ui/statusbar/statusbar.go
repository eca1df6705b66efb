package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"ideaboard/internal/types"
	"ideaboard/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode     types.Mode
	width    int
	filterOn bool
	failures int
	offline  bool
	styles   *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithFilter marks the filter indicator on or off
func (sb StatusBar) WithFilter(active bool) StatusBar {
	sb.filterOn = active
	return sb
}

// WithFailures sets the save-failure counter shown on the right
func (sb StatusBar) WithFailures(n int) StatusBar {
	sb.failures = n
	return sb
}

// WithOffline marks the server-unreachable indicator on or off
func (sb StatusBar) WithOffline(offline bool) StatusBar {
	sb.offline = offline
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	parts := []string{modeBadge}
	if hints := GetHints(sb.mode); hints != "" {
		parts = append(parts, sb.styles.StatusHint.Render(" │ "+hints))
	}
	if sb.filterOn {
		parts = append(parts, sb.styles.StatusInfo.Render("  FILTER"))
	}
	if sb.failures > 0 {
		parts = append(parts, sb.styles.StatusInfo.Render(fmt.Sprintf("  %d saves failed (d)", sb.failures)))
	}
	if sb.offline {
		parts = append(parts, sb.styles.StatusInfo.Render("  OFFLINE"))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
