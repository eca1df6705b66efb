package styles

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the UI styles
type Styles struct {
	// Board surface
	Surface lipgloss.Style

	// Category panels
	PanelBorder         lipgloss.Style
	PanelBorderDragging lipgloss.Style
	PanelBorderFiltered lipgloss.Style
	PanelHeader         lipgloss.Style
	PanelControl        lipgloss.Style
	PanelCount          lipgloss.Style
	ResizeHandle        lipgloss.Style

	// Idea cards
	CardTitle    lipgloss.Style
	CardHeadline lipgloss.Style
	CardDragging lipgloss.Style
	DropSlot     lipgloss.Style

	// Sidebar
	Sidebar        lipgloss.Style
	SidebarTitle   lipgloss.Style
	SidebarSection lipgloss.Style
	SidebarHint    lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Surface: lipgloss.NewStyle().
			Foreground(Surface1),

		PanelBorder: lipgloss.NewStyle().
			Foreground(Surface2),

		PanelBorderDragging: lipgloss.NewStyle().
			Foreground(Lavender),

		PanelBorderFiltered: lipgloss.NewStyle().
			Foreground(Mauve),

		PanelHeader: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		PanelControl: lipgloss.NewStyle().
			Foreground(Overlay1),

		PanelCount: lipgloss.NewStyle().
			Foreground(Subtext0),

		ResizeHandle: lipgloss.NewStyle().
			Foreground(Overlay0),

		CardTitle: lipgloss.NewStyle().
			Foreground(Text),

		CardHeadline: lipgloss.NewStyle().
			Foreground(Subtext0).
			Italic(true),

		CardDragging: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true),

		DropSlot: lipgloss.NewStyle().
			Foreground(Lavender),

		Sidebar: lipgloss.NewStyle().
			Foreground(Text),

		SidebarTitle: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		SidebarSection: lipgloss.NewStyle().
			Foreground(Subtext1).
			Bold(true),

		SidebarHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// Chip returns a badge style for a legend type's hex color, picking a dark
// or light foreground by the color's luminance so the label stays readable.
// Unparseable colors fall back to a neutral chip.
func Chip(hex string) lipgloss.Style {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.NewStyle().
			Background(Surface1).
			Foreground(Text).
			Padding(0, 1)
	}

	fg := Crust
	if _, _, l := c.Hsl(); l < 0.5 {
		fg = Text
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(fg).
		Padding(0, 1)
}

// Dot returns a style that paints the legend marker itself in the legend's
// color.
func Dot(hex string) lipgloss.Style {
	if _, err := colorful.Hex(hex); err != nil {
		return lipgloss.NewStyle().Foreground(Overlay0)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
