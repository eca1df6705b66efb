package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ideaboard/internal/domain"
)

// FilterChangedMsg signals that the filter was mutated and visible lists
// must be recomputed.
type FilterChangedMsg struct{}

// FilterOverlay toggles legend-type selections on one filter scope: the
// global scope, or one category's own. Each row is a legend type plus the
// synthetic "untagged" entry; digits toggle rows, matching the OR-within-
// scope selection model.
type FilterOverlay struct {
	filter   *domain.Filter
	scope    *string // nil = global scope
	scopeTag string  // label shown in the title
	legends  []domain.LegendType
	cursor   int
	styles   *Styles
}

// NewFilterOverlay creates a filter editor for the given scope. scope nil
// edits the global filter; otherwise the named category's.
func NewFilterOverlay(filter *domain.Filter, scope *string, scopeName string, legends []domain.LegendType) *FilterOverlay {
	label := "all ideas"
	if scope != nil {
		label = scopeName
	}
	return &FilterOverlay{
		filter:   filter,
		scope:    scope,
		scopeTag: label,
		legends:  legends,
		styles:   New(),
	}
}

// Init initializes the overlay
func (f *FilterOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (f *FilterOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch key.String() {
	case "esc", "q":
		return f, func() tea.Msg { return CloseOverlayMsg{} }

	case "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
		return f, nil

	case "down", "j":
		if f.cursor < len(f.legends) {
			f.cursor++
		}
		return f, nil

	case "enter", " ":
		return f, f.toggle(f.cursor)

	case "u":
		return f, f.toggle(len(f.legends))

	case "c":
		if f.scope == nil {
			f.filter.Global.Clear()
		} else {
			f.filter.ClearCategory(*f.scope)
		}
		return f, changed()
	}

	// Digit shortcuts toggle rows directly.
	if n := len(key.String()); n == 1 {
		if d := key.String()[0]; d >= '1' && d <= '9' {
			idx := int(d - '1')
			if idx <= len(f.legends) {
				return f, f.toggle(idx)
			}
		}
	}

	return f, nil
}

// toggle flips the row at idx; the row after the last legend is the
// untagged pseudo-tag.
func (f *FilterOverlay) toggle(idx int) tea.Cmd {
	untagged := idx == len(f.legends)
	switch {
	case f.scope == nil && untagged:
		f.filter.Global.ToggleUntagged()
	case f.scope == nil:
		f.filter.Global.Toggle(f.legends[idx].ID)
	case untagged:
		f.filter.ToggleCategoryUntagged(*f.scope)
	default:
		f.filter.ToggleCategoryTag(*f.scope, f.legends[idx].ID)
	}
	return changed()
}

func changed() tea.Cmd {
	return func() tea.Msg { return FilterChangedMsg{} }
}

// View renders the overlay
func (f *FilterOverlay) View() string {
	set := f.scopeSet()

	var b strings.Builder
	for i, lt := range f.legends {
		b.WriteString(f.renderRow(i, lt.Name, set.IDs[lt.ID]))
	}
	b.WriteString(f.renderRow(len(f.legends), "(untagged)", set.Untagged))

	b.WriteString(f.styles.Separator.Render(strings.Repeat("─", 36)))
	b.WriteString("\n")
	b.WriteString(f.styles.MenuKey.Render("[c]") + " " + f.styles.MenuItem.Render("Clear this scope"))
	b.WriteString("\n")
	b.WriteString(f.styles.Footer.Render("Space/digit: toggle • u: untagged • Esc: close"))
	return b.String()
}

func (f *FilterOverlay) renderRow(idx int, label string, active bool) string {
	indicator := "[ ]"
	style := f.styles.MenuItem
	if active {
		indicator = "[●]"
		style = f.styles.MenuItemActive
	}

	cursor := "  "
	if idx == f.cursor {
		cursor = f.styles.MenuItemActive.Render("▸ ")
	}

	key := f.styles.MenuKey.Render(fmt.Sprintf("[%d]", idx+1))
	return cursor + key + " " + style.Render(indicator+" "+label) + "\n"
}

func (f *FilterOverlay) scopeSet() domain.TagSet {
	if f.scope == nil {
		return f.filter.Global
	}
	return f.filter.CategoryScope(*f.scope)
}

// Title returns the overlay title
func (f *FilterOverlay) Title() string {
	return "Filter · " + f.scopeTag
}

// Size returns the overlay dimensions
func (f *FilterOverlay) Size() (width, height int) {
	return 44, len(f.legends) + 7
}
