package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ideaboard/internal/services/diagnostics"
)

// DiagnosticsClearedMsg is sent after the user clears the failure log.
type DiagnosticsClearedMsg struct{}

// DiagnosticsPanel shows the save-failure log. Saves are optimistic, so
// this panel is the only place a failed write surfaces after its toast
// expires.
type DiagnosticsPanel struct {
	log     *diagnostics.Log
	scrollY int
	height  int
	styles  *Styles
}

// NewDiagnosticsPanel creates a panel over the given failure log.
func NewDiagnosticsPanel(log *diagnostics.Log) *DiagnosticsPanel {
	return &DiagnosticsPanel{
		log:    log,
		height: 16,
		styles: New(),
	}
}

// Init initializes the panel
func (d *DiagnosticsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *DiagnosticsPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch key.String() {
	case "esc", "q":
		return d, func() tea.Msg { return CloseOverlayMsg{} }

	case "j", "down":
		if d.scrollY < d.maxScroll() {
			d.scrollY++
		}

	case "k", "up":
		if d.scrollY > 0 {
			d.scrollY--
		}

	case "g":
		d.scrollY = 0

	case "G":
		d.scrollY = d.maxScroll()

	case "c":
		d.log.Clear()
		d.scrollY = 0
		return d, func() tea.Msg { return DiagnosticsClearedMsg{} }
	}

	return d, nil
}

// View renders the panel
func (d *DiagnosticsPanel) View() string {
	lines := strings.Split(d.log.Format(), "\n")

	start := min(d.scrollY, d.maxScroll())
	end := min(start+d.height, len(lines))

	var b strings.Builder
	for _, line := range lines[start:end] {
		style := d.styles.MenuItem
		if strings.Contains(line, "→") {
			style = d.styles.MenuItemDanger
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := "c: clear • j/k: scroll • Esc: close"
	if d.maxScroll() > 0 {
		footer += fmt.Sprintf("  (line %d/%d)", start+1, len(lines))
	}
	b.WriteString(d.styles.Footer.Render(footer))
	return b.String()
}

// Title returns the panel title
func (d *DiagnosticsPanel) Title() string {
	if n := d.log.Len(); n > 0 {
		return fmt.Sprintf("Diagnostics · %d failed", n)
	}
	return "Diagnostics"
}

// Size returns the panel dimensions
func (d *DiagnosticsPanel) Size() (width, height int) {
	return 70, d.height + 4
}

func (d *DiagnosticsPanel) maxScroll() int {
	return max(0, len(strings.Split(d.log.Format(), "\n"))-d.height)
}
