package profiles

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contextlens/internal/profile"
	"github.com/abhisek/contextlens/internal/router"
	"github.com/abhisek/contextlens/internal/screen"
	"github.com/abhisek/contextlens/internal/state"
	"github.com/abhisek/contextlens/internal/ui/layout"
	"github.com/abhisek/contextlens/internal/ui/theme"
)

type loadedMsg struct {
	Learners []profile.Learner
}

// ReloadMsg asks the list to re-read profiles from the repository. The
// editor emits it after a save so the list reflects the change.
type ReloadMsg struct{}

type deleteDoneMsg struct {
	Err error
}

// ListScreen shows all learner profiles and lets the educator select,
// create, edit, or delete them.
type ListScreen struct {
	app           *state.App
	learners      []profile.Learner
	selected      int
	loaded        bool
	confirmDelete bool
	errMsg        string
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates a new learner list screen.
func New(app *state.App) *ListScreen {
	return &ListScreen{app: app}
}

func (s *ListScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ListScreen) load() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{Learners: s.app.Repo.List(context.Background())}
	}
}

func (s *ListScreen) Title() string {
	return "Learner Profiles"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	if s.confirmDelete {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "N", Description: "New"},
		{Key: "E", Description: "Edit"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.learners = msg.Learners
		s.loaded = true
		if s.selected >= len(s.learners) {
			s.selected = len(s.learners) - 1
		}
		if s.selected < 0 {
			s.selected = 0
		}
		return s, nil

	case ReloadMsg:
		return s, s.load()

	case deleteDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		if s.confirmDelete {
			switch msg.String() {
			case "y", "Y":
				s.confirmDelete = false
				return s, s.deleteSelected()
			default:
				s.confirmDelete = false
				return s, nil
			}
		}

		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.learners)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.learners) {
				s.app.SetCurrent(s.learners[s.selected].ID)
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
		case "n":
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: NewForm(s.app, nil)}
			}
		case "e":
			if s.selected < len(s.learners) {
				learner := s.learners[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: NewForm(s.app, &learner)}
				}
			}
		case "d":
			if s.selected < len(s.learners) {
				s.confirmDelete = true
			}
		}
	}
	return s, nil
}

func (s *ListScreen) deleteSelected() tea.Cmd {
	learner := s.learners[s.selected]
	app := s.app
	return func() tea.Msg {
		ctx := context.Background()
		if err := app.Repo.Delete(ctx, learner.ID); err != nil {
			return deleteDoneMsg{Err: err}
		}
		if app.CurrentID() == learner.ID {
			app.SetCurrent("")
		}
		return deleteDoneMsg{}
	}
}

func (s *ListScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading profiles...")
	}
	if len(s.learners) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No learner profiles yet. Press N to create one.")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg)))
		b.WriteString("\n\n")
	}

	for i, l := range s.learners {
		marker := "  "
		if l.ID == s.app.CurrentID() {
			marker = "◉ "
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		interests := strings.Join(l.Interests, ", ")
		line := fmt.Sprintf("%s%s%s  age %d  %s  %s",
			prefix, marker, l.Name, l.Age, l.CognitiveStyle, interests)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.confirmDelete && s.selected < len(s.learners) {
		b.WriteString("\n")
		prompt := fmt.Sprintf("Delete %s and their saved lessons? (y/n)", s.learners[s.selected].Name)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render(prompt)))
		b.WriteString("\n")
	}

	return b.String()
}
