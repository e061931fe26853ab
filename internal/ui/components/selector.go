package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contextlens/internal/ui/theme"
)

// Selector cycles through a fixed option list with left/right keys.
// Used for cognitive style, voice, teaching style, and tone fields.
type Selector struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewSelector creates a selector positioned at the given option; an
// unknown value starts at the first option.
func NewSelector(label string, options []string, value string) Selector {
	selected := 0
	for i, opt := range options {
		if opt == value {
			selected = i
			break
		}
	}
	return Selector{Label: label, Options: options, Selected: selected}
}

// Update handles left/right cycling while focused.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Selected--
		if s.Selected < 0 {
			s.Selected = len(s.Options) - 1
		}
	case "right", "l":
		s.Selected++
		if s.Selected >= len(s.Options) {
			s.Selected = 0
		}
	}

	return s, nil
}

// Value returns the currently selected option.
func (s Selector) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

// View renders the selector.
func (s Selector) View() string {
	value := "‹ " + s.Value() + " ›"
	if s.Focused {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(value)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(value)
}
