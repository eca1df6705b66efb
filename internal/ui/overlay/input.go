package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field describes one text input in an InputOverlay
type Field struct {
	Label       string
	Placeholder string
	Value       string
	CharLimit   int
	// Required fields block submission while blank
	Required bool
}

// InputSubmittedMsg carries the trimmed field values when the form is
// submitted. Key identifies which form it came from.
type InputSubmittedMsg struct {
	Key    string
	Values []string
}

// InputOverlay is a small form of labelled text inputs. It backs every
// create and rename dialog on the board.
type InputOverlay struct {
	key    string
	title  string
	inputs []textinput.Model
	labels []string
	reqs   []bool
	focus  int
	styles *Styles
}

// NewInputOverlay creates a form overlay. key tags the submission message so
// the app can tell forms apart.
func NewInputOverlay(key, title string, fields []Field) *InputOverlay {
	inputs := make([]textinput.Model, len(fields))
	labels := make([]string, len(fields))
	reqs := make([]bool, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.SetValue(f.Value)
		ti.CharLimit = f.CharLimit
		if ti.CharLimit == 0 {
			ti.CharLimit = 200
		}
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
		labels[i] = f.Label
		reqs[i] = f.Required
	}

	return &InputOverlay{
		key:    key,
		title:  title,
		inputs: inputs,
		labels: labels,
		reqs:   reqs,
		styles: New(),
	}
}

// Init initializes the overlay
func (o *InputOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (o *InputOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return o, func() tea.Msg { return CloseOverlayMsg{} }

		case "enter":
			if o.focus == len(o.inputs)-1 {
				return o, o.submit()
			}
			o.setFocus(o.focus + 1)
			return o, nil

		case "ctrl+s":
			return o, o.submit()

		case "tab":
			o.setFocus((o.focus + 1) % len(o.inputs))
			return o, nil

		case "shift+tab":
			o.setFocus((o.focus - 1 + len(o.inputs)) % len(o.inputs))
			return o, nil
		}
	}

	var cmd tea.Cmd
	o.inputs[o.focus], cmd = o.inputs[o.focus].Update(msg)
	return o, cmd
}

// View renders the form
func (o *InputOverlay) View() string {
	var b strings.Builder
	for i, in := range o.inputs {
		label := o.styles.MenuItem
		if i == o.focus {
			label = o.styles.MenuItemActive
		}
		b.WriteString(label.Render(o.labels[i] + ":"))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	b.WriteString(o.styles.Footer.Render("Enter: Next/Submit • Tab: Switch • Esc: Cancel"))
	return b.String()
}

// Title returns the overlay title
func (o *InputOverlay) Title() string {
	return o.title
}

// Size returns the overlay dimensions
func (o *InputOverlay) Size() (width, height int) {
	return 50, len(o.inputs)*3 + 4
}

func (o *InputOverlay) setFocus(i int) {
	o.inputs[o.focus].Blur()
	o.focus = i
	o.inputs[o.focus].Focus()
}

func (o *InputOverlay) submit() tea.Cmd {
	values := make([]string, len(o.inputs))
	for i, in := range o.inputs {
		values[i] = strings.TrimSpace(in.Value())
		if values[i] == "" && o.reqs[i] {
			o.setFocus(i)
			return nil
		}
	}

	return tea.Batch(
		func() tea.Msg { return InputSubmittedMsg{Key: o.key, Values: values} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}
