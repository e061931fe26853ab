package cards

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contextlens/internal/audio"
	"github.com/abhisek/contextlens/internal/profile"
	"github.com/abhisek/contextlens/internal/report"
	"github.com/abhisek/contextlens/internal/screen"
	"github.com/abhisek/contextlens/internal/state"
	"github.com/abhisek/contextlens/internal/ui/components"
	"github.com/abhisek/contextlens/internal/ui/layout"
	"github.com/abhisek/contextlens/internal/ui/theme"
)

type speechReadyMsg struct {
	CardID string
	WAV    []byte
	Err    error
}

type playbackDoneMsg struct{}

type reportSavedMsg struct {
	Path string
	Err  error
}

// CardsScreen browses the reframing cards of one saved lesson. One card
// is shown at a time with its fit scores; cards can be read aloud and the
// whole lesson exported as an HTML report.
type CardsScreen struct {
	app     *state.App
	learner profile.Learner
	entry   profile.LibraryEntry

	selected     int
	synthesizing bool
	playingID    string
	status       string
	statusIsErr  bool
}

var _ screen.Screen = (*CardsScreen)(nil)
var _ screen.KeyHintProvider = (*CardsScreen)(nil)

// New creates a card browser for one library entry.
func New(app *state.App, learner profile.Learner, entry profile.LibraryEntry) *CardsScreen {
	return &CardsScreen{app: app, learner: learner, entry: entry}
}

func (s *CardsScreen) Init() tea.Cmd {
	return nil
}

func (s *CardsScreen) Title() string {
	return "Reframing Cards"
}

func (s *CardsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Card"},
		{Key: "R", Description: "Save report"},
	}
	if s.app.CanSpeak() {
		label := "Read aloud"
		if s.playingID != "" {
			label = "Stop"
		}
		hints = append(hints, layout.KeyHint{Key: "P", Description: label})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *CardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case speechReadyMsg:
		s.synthesizing = false
		if msg.Err != nil {
			s.status = "read aloud failed: " + msg.Err.Error()
			s.statusIsErr = true
			return s, nil
		}
		return s, s.play(msg.CardID, msg.WAV)

	case playbackDoneMsg:
		s.playingID = ""
		return s, nil

	case reportSavedMsg:
		if msg.Err != nil {
			s.status = "report failed: " + msg.Err.Error()
			s.statusIsErr = true
		} else {
			s.status = "report saved to " + msg.Path
			s.statusIsErr = false
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "right", "l", "down", "j":
			if s.selected < len(s.entry.Cards)-1 {
				s.selected++
			}
		case "p":
			return s, s.toggleSpeech()
		case "r":
			return s, s.saveReport()
		}
	}
	return s, nil
}

// toggleSpeech starts synthesis for the selected card, or stops the
// current playback if one is running.
func (s *CardsScreen) toggleSpeech() tea.Cmd {
	if !s.app.CanSpeak() || s.synthesizing {
		return nil
	}
	if s.playingID != "" {
		s.app.Player.Stop()
		s.playingID = ""
		return nil
	}
	if s.selected >= len(s.entry.Cards) {
		return nil
	}

	card := s.entry.Cards[s.selected]
	voice := s.learner.VoicePreference
	speech := s.app.Speech

	s.synthesizing = true
	s.status = ""
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		a, err := speech.Synthesize(ctx, card.ReframedText, voice)
		if err != nil {
			return speechReadyMsg{CardID: card.ID, Err: err}
		}
		wav, err := audio.EncodeWAV(a.PCM, a.SampleRate)
		if err != nil {
			return speechReadyMsg{CardID: card.ID, Err: err}
		}
		return speechReadyMsg{CardID: card.ID, WAV: wav}
	}
}

func (s *CardsScreen) play(cardID string, wav []byte) tea.Cmd {
	done, err := s.app.Player.Play(wav)
	if err != nil {
		s.status = "playback failed: " + err.Error()
		s.statusIsErr = true
		return nil
	}
	s.playingID = cardID
	return func() tea.Msg {
		<-done
		return playbackDoneMsg{}
	}
}

func (s *CardsScreen) saveReport() tea.Cmd {
	learner := s.learner
	entry := s.entry
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
			return reportSavedMsg{Err: err}
		}
		path := report.FileName(learner.Name, time.Now())
		if err := os.WriteFile(path, html, 0o644); err != nil {
			return reportSavedMsg{Err: err}
		}
		return reportSavedMsg{Path: path}
	}
}

func (s *CardsScreen) View(width, height int) string {
	if len(s.entry.Cards) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  This lesson has no cards.")
	}

	card := s.entry.Cards[s.selected]

	cw := width - 8
	if cw > 90 {
		cw = 90
	}
	if cw < 20 {
		cw = 20
	}

	var b strings.Builder

	position := fmt.Sprintf("Strategy %d of %d", s.selected+1, len(s.entry.Cards))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(position))
	b.WriteString("\n\n")

	title := card.Title
	if s.playingID == card.ID {
		title += "  ♪"
	} else if s.synthesizing {
		title += "  …"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(card.ReframedText)
	b.WriteString(body)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Reflection"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Italic(true).Width(cw).
		Render(card.ReflectionQuestion))
	b.WriteString("\n\n")

	barWidth := cw
	if barWidth > 50 {
		barWidth = 50
	}
	bars := []components.ScoreBar{
		components.NewScoreBar("Cultural resonance   ", card.Analysis.CulturalResonance, barWidth),
		components.NewScoreBar("Cognitive fit        ", card.Analysis.CognitiveFit, barWidth),
		components.NewScoreBar("Vocabulary complexity", card.Analysis.VocabularyComplexity, barWidth),
	}
	for _, bar := range bars {
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n")
		statusStyle := lipgloss.NewStyle().Foreground(theme.Success)
		if s.statusIsErr {
			statusStyle = statusStyle.Foreground(theme.Error)
		}
		b.WriteString(statusStyle.Width(cw).Render(s.status))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
