package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		styles:     New(),
		viewHeight: 20,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch key.String() {
	case "esc", "q", "?":
		return h, func() tea.Msg { return CloseOverlayMsg{} }

	case "j", "down":
		if h.scroll < h.maxScroll {
			h.scroll++
		}

	case "k", "up":
		if h.scroll > 0 {
			h.scroll--
		}

	case "g":
		h.scroll = 0

	case "G":
		h.scroll = h.maxScroll
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var content strings.Builder
	for i, cat := range h.getCategories() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(h.styles.MenuHeader.Render(cat.Name + ":"))
		content.WriteString("\n")

		for _, binding := range cat.Bindings {
			content.WriteString("  " + h.styles.MenuKey.Render(binding.Key) + "  " + h.styles.MenuItem.Render(binding.Description))
			content.WriteString("\n")
		}
	}

	lines := strings.Split(content.String(), "\n")
	h.maxScroll = max(0, len(lines)-h.viewHeight)

	start := h.scroll
	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[start:end], "\n")

	if h.maxScroll > 0 {
		result += "\n" + h.styles.Footer.Render("j/k: scroll • g/G: jump")
	}
	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	h.viewHeight = 20
	return 54, 24
}

// getCategories returns all keybinding categories
func (h *HelpOverlay) getCategories() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Mouse",
			Bindings: []KeyBinding{
				{Key: "Drag header", Description: "Move a category"},
				{Key: "Drag ◢ corner", Description: "Resize a category"},
				{Key: "Drag card", Description: "Move or reorder an idea"},
				{Key: "Drag legend row", Description: "Tag the idea dropped on"},
				{Key: "Click ▁ / ▔", Description: "Minimize or restore"},
				{Key: "Click ▼", Description: "Archive category"},
				{Key: "Click ✕", Description: "Delete category"},
				{Key: "Right-click", Description: "Edit what's under the pointer"},
				{Key: "Ctrl-click", Description: "Delete what's under the pointer"},
				{Key: "Shift-click header", Description: "Filter within that category"},
				{Key: "Alt-click card", Description: "Collapse/expand the idea"},
				{Key: "Alt-click header", Description: "Collapse/expand all members"},
			},
		},
		{
			Name: "Creating",
			Bindings: []KeyBinding{
				{Key: "n", Description: "New idea"},
				{Key: "c", Description: "New category"},
				{Key: "t", Description: "New legend type"},
			},
		},
		{
			Name: "Filtering",
			Bindings: []KeyBinding{
				{Key: "f", Description: "Edit global filter"},
				{Key: "F", Description: "Clear all filters"},
			},
		},
		{
			Name: "Other",
			Bindings: []KeyBinding{
				{Key: "a", Description: "Toggle archive drawer"},
				{Key: "[ / ]", Description: "Shrink / widen the sidebar"},
				{Key: "d", Description: "Save-failure diagnostics"},
				{Key: "Esc", Description: "Cancel drag / close overlay"},
				{Key: "?", Description: "Help (this screen)"},
				{Key: "q", Description: "Quit"},
			},
		},
	}
}
