package generate

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contextlens/internal/profile"
	"github.com/abhisek/contextlens/internal/router"
	"github.com/abhisek/contextlens/internal/screen"
	"github.com/abhisek/contextlens/internal/screens/cards"
	"github.com/abhisek/contextlens/internal/state"
	"github.com/abhisek/contextlens/internal/ui/components"
	"github.com/abhisek/contextlens/internal/ui/layout"
	"github.com/abhisek/contextlens/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerTickMsg struct{}

type generatedMsg struct {
	Learner profile.Learner
	Entry   profile.LibraryEntry
	Err     error
}

// GenerateScreen takes lesson text and produces reframing cards for the
// active learner. The result is saved to the learner's library before the
// card browser opens.
type GenerateScreen struct {
	app   *state.App
	input components.TextArea

	generating bool
	spinner    int
	errMsg     string
}

var _ screen.Screen = (*GenerateScreen)(nil)
var _ screen.KeyHintProvider = (*GenerateScreen)(nil)

// New creates the lesson input screen.
func New(app *state.App) *GenerateScreen {
	return &GenerateScreen{
		app:   app,
		input: components.NewTextArea("Paste or type the lesson text to personalize...", 80, 10),
	}
}

func (s *GenerateScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *GenerateScreen) Title() string {
	return "Generate Lesson"
}

func (s *GenerateScreen) KeyHints() []layout.KeyHint {
	if s.generating {
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+G", Description: "Generate"},
		{Key: "Ctrl+T", Description: "Random topic"},
		{Key: "Ctrl+D", Description: "Demo text"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !s.generating {
			return s, nil
		}
		s.spinner++
		return s, spinnerTick()

	case generatedMsg:
		s.generating = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: cards.New(s.app, msg.Learner, msg.Entry),
			}
		}

	case tea.WindowSizeMsg:
		w := msg.Width - 10
		if w > 100 {
			w = 100
		}
		if w < 30 {
			w = 30
		}
		h := msg.Height / 2
		if h < 5 {
			h = 5
		}
		s.input.Resize(w, h)
		return s, nil

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "ctrl+g":
			return s, s.generate()
		case "ctrl+t":
			topic := profile.SampleTopics[rand.IntN(len(profile.SampleTopics))]
			s.input.SetValue(topic)
			return s, nil
		case "ctrl+d":
			s.input.SetValue(profile.DemoText)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func spinnerTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (s *GenerateScreen) generate() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		s.errMsg = "enter some lesson text first"
		return nil
	}

	ctx := context.Background()
	learner, ok := s.app.CurrentLearner(ctx)
	if !ok {
		s.errMsg = "no learner selected"
		return nil
	}

	s.generating = true
	s.errMsg = ""
	app := s.app

	run := func() tea.Msg {
		// No local deadline: the gateway call resolves or fails on the
		// provider's own terms.
		ctx := context.Background()

		teacher := app.Repo.Teacher(ctx)
		generated, err := app.Reframe.Generate(ctx, text, learner, teacher)
		if err != nil {
			return generatedMsg{Err: err}
		}

		entry := profile.LibraryEntry{
			ID:         profile.NewID(),
			Timestamp:  time.Now().UnixMilli(),
			SourceText: text,
			Cards:      generated,
		}

		updated, err := app.Repo.AppendLibraryEntry(ctx, learner.ID, entry)
		if err != nil {
			return generatedMsg{Err: err}
		}
		return generatedMsg{Learner: updated, Entry: entry}
	}

	return tea.Batch(run, spinnerTick())
}

func (s *GenerateScreen) View(width, height int) string {
	if s.generating {
		frame := spinnerFrames[s.spinner%len(spinnerFrames)]
		msg := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(frame + " Reframing the lesson...")
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("This usually takes a few seconds")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			msg+"\n\n"+hint)
	}

	var sections []string

	ctx := context.Background()
	if learner, ok := s.app.CurrentLearner(ctx); ok {
		header := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Personalizing for ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(learner.Name)
		sections = append(sections, header, "")
	}

	sections = append(sections, s.input.View())

	if s.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+s.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
