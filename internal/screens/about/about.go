package about

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contextlens/internal/screen"
	"github.com/abhisek/contextlens/internal/ui/theme"
)

// AboutScreen shows a short description of the app.
type AboutScreen struct {
	version string
}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates the about screen.
func New(version string) *AboutScreen {
	return &AboutScreen{version: version}
}

func (s *AboutScreen) Init() tea.Cmd {
	return nil
}

func (s *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *AboutScreen) Title() string {
	return "About"
}

func (s *AboutScreen) View(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("ContextLens " + s.version)

	body := lipgloss.NewStyle().Foreground(theme.Text).Width(60).Render(
		"ContextLens reframes any lesson text through a learner's " +
			"cultural and cognitive lens. Build a profile for each learner, " +
			"paste lesson content, and get five teaching strategies with " +
			"reflection questions and fit scores, ready to read aloud or " +
			"export as a report.")

	hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("Set GEMINI_API_KEY to enable generation and read-aloud.")

	content := strings.Join([]string{title, "", body, "", hint}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
