package library

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contextlens/internal/profile"
	"github.com/abhisek/contextlens/internal/report"
	"github.com/abhisek/contextlens/internal/router"
	"github.com/abhisek/contextlens/internal/screen"
	"github.com/abhisek/contextlens/internal/screens/cards"
	"github.com/abhisek/contextlens/internal/state"
	"github.com/abhisek/contextlens/internal/ui/layout"
	"github.com/abhisek/contextlens/internal/ui/theme"
)

const previewLen = 60

type loadedMsg struct {
	Learner profile.Learner
	OK      bool
}

type deleteDoneMsg struct {
	Learner profile.Learner
	Err     error
}

type reportDoneMsg struct {
	Path string
	Err  error
}

// LibraryScreen lists the active learner's saved lessons, newest first.
type LibraryScreen struct {
	app           *state.App
	learner       profile.Learner
	loaded        bool
	missing       bool
	selected      int
	confirmDelete bool
	errMsg        string
	status        string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates the library screen for the active learner.
func New(app *state.App) *LibraryScreen {
	return &LibraryScreen{app: app}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *LibraryScreen) load() tea.Cmd {
	app := s.app
	return func() tea.Msg {
		learner, ok := app.CurrentLearner(context.Background())
		return loadedMsg{Learner: learner, OK: ok}
	}
}

func (s *LibraryScreen) Title() string {
	return "Library"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	if s.confirmDelete {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "R", Description: "Report"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		s.missing = !msg.OK
		s.learner = msg.Learner
		if s.selected >= len(s.learner.Library) {
			s.selected = len(s.learner.Library) - 1
		}
		if s.selected < 0 {
			s.selected = 0
		}
		return s, nil

	case deleteDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case reportDoneMsg:
		if msg.Err != nil {
			s.errMsg = "report failed: " + msg.Err.Error()
		} else {
			s.status = "report saved to " + msg.Path
		}
		return s, nil

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
			if s.selected < len(s.learner.Library)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.learner.Library) {
				entry := s.learner.Library[s.selected]
				learner := s.learner
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: cards.New(s.app, learner, entry)}
				}
			}
		case "r":
			if s.selected < len(s.learner.Library) {
				return s, s.saveReport()
			}
		case "d":
			if s.selected < len(s.learner.Library) {
				s.confirmDelete = true
			}
		}
	}
	return s, nil
}

func (s *LibraryScreen) deleteSelected() tea.Cmd {
	entry := s.learner.Library[s.selected]
	learnerID := s.learner.ID
	app := s.app
	return func() tea.Msg {
		learner, err := app.Repo.DeleteLibraryEntry(context.Background(), learnerID, entry.ID)
		return deleteDoneMsg{Learner: learner, Err: err}
	}
}

func (s *LibraryScreen) saveReport() tea.Cmd {
	learner := s.learner
	entry := s.learner.Library[s.selected]
	teacher := s.app.Repo.Teacher(context.Background())

	return func() tea.Msg {
		lesson := report.Lesson{
			SourceText:  entry.SourceText,
			Cards:       entry.Cards,
			Learner:     learner,
			Teacher:     teacher,
			GeneratedAt: time.UnixMilli(entry.Timestamp),
		}
		html, err := report.Render(lesson)
		if err != nil {
			return reportDoneMsg{Err: err}
		}
		path := report.FileName(learner.Name, time.Now())
		if err := os.WriteFile(path, html, 0o644); err != nil {
			return reportDoneMsg{Err: err}
		}
		return reportDoneMsg{Path: path}
	}
}

func (s *LibraryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading library...")
	}
	if s.missing {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Select a learner first.")
	}
	if len(s.learner.Library) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(fmt.Sprintf("\n\n  No saved lessons for %s yet.", s.learner.Name))
	}

	var b strings.Builder
	b.WriteString("\n")

	heading := fmt.Sprintf("%s's saved lessons", s.learner.Name)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(heading)))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg)))
		b.WriteString("\n\n")
	}

	for i, entry := range s.learner.Library {
		dateStr := time.UnixMilli(entry.Timestamp).Format("Jan 02, 2006 3:04 PM")

		preview := strings.Join(strings.Fields(entry.SourceText), " ")
		if len(preview) > previewLen {
			preview = preview[:previewLen] + "..."
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d cards  %s", prefix, dateStr, len(entry.Cards), preview)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).Render(s.status)))
		b.WriteString("\n")
	}

	if s.confirmDelete {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
				Render("Delete this saved lesson? (y/n)")))
		b.WriteString("\n")
	}

	return b.String()
}
