package home

import (
	"context"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contextlens/internal/router"
	"github.com/abhisek/contextlens/internal/screen"
	"github.com/abhisek/contextlens/internal/screens/about"
	"github.com/abhisek/contextlens/internal/screens/generate"
	"github.com/abhisek/contextlens/internal/screens/library"
	"github.com/abhisek/contextlens/internal/screens/profiles"
	"github.com/abhisek/contextlens/internal/screens/teacherform"
	"github.com/abhisek/contextlens/internal/state"
	"github.com/abhisek/contextlens/internal/transfer"
	"github.com/abhisek/contextlens/internal/ui/components"
	"github.com/abhisek/contextlens/internal/ui/theme"
)

type exportDoneMsg struct {
	Path string
	Err  error
}

// HomeScreen is the main navigation screen.
type HomeScreen struct {
	app         *state.App
	menu        components.Menu
	status      string
	statusIsErr bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(app *state.App) *HomeScreen {
	items := []components.MenuItem{
		{Label: "GENERATE LESSON", Action: func() tea.Cmd {
			return func() tea.Msg {
				// Generation needs an active learner; route to the
				// picker first when none is selected.
				if app.CurrentID() == "" {
					return router.PushScreenMsg{Screen: profiles.New(app)}
				}
				return router.PushScreenMsg{Screen: generate.New(app)}
			}
		}},
		{Label: "LEARNER PROFILES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profiles.New(app)}
			}
		}},
		{Label: "TEACHER PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: teacherform.New(app)}
			}
		}},
		{Label: "LIBRARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				if app.CurrentID() == "" {
					return router.PushScreenMsg{Screen: profiles.New(app)}
				}
				return router.PushScreenMsg{Screen: library.New(app)}
			}
		}},
		{Label: "EXPORT DATA", Action: func() tea.Cmd {
			return func() tea.Msg {
				data, err := transfer.NewCodec(app.Repo).Export(context.Background())
				if err != nil {
					return exportDoneMsg{Err: err}
				}
				path := transfer.ExportFileName(time.Now())
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return exportDoneMsg{Err: err}
				}
				return exportDoneMsg{Path: path}
			}
		}},
		{Label: "ABOUT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: about.New(app.Version)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		app:  app,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.Err != nil {
			h.status = "export failed: " + msg.Err.Error()
			h.statusIsErr = true
		} else {
			h.status = "exported to " + msg.Path
			h.statusIsErr = false
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("ContextLens")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Personalize any lesson for the learner in front of you")
	sections = append(sections, title, subtitle, "")

	ctx := context.Background()
	if learner, ok := h.app.CurrentLearner(ctx); ok {
		active := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Active learner: ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(learner.Name)
		sections = append(sections, active)
	} else {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("No learner selected yet"))
	}
	sections = append(sections, "")

	sections = append(sections, h.menu.View())

	if h.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(theme.Success)
		if h.statusIsErr {
			statusStyle = statusStyle.Foreground(theme.Error)
		}
		sections = append(sections, statusStyle.Render(h.status))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
