package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/contextlens/internal/ui/theme"
)

// ScoreBar displays a labeled 1-100 fit score as a horizontal bar.
type ScoreBar struct {
	Label string
	Score int
	Width int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, score, width int) ScoreBar {
	return ScoreBar{Label: label, Score: score, Width: width}
}

// View renders the score bar.
func (s ScoreBar) View() string {
	var result string

	if s.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 6 // " 100%"

	barWidth := s.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	score := s.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	filled := barWidth * score / 100
	empty := barWidth - filled

	filledStr := theme.ScoreFilled.Render(strings.Repeat(" ", filled))
	emptyStr := theme.ScoreEmpty.Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", score))

	return result
}
