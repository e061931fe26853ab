package profiles

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/contextlens/internal/profile"
	"github.com/abhisek/contextlens/internal/router"
	"github.com/abhisek/contextlens/internal/screen"
	"github.com/abhisek/contextlens/internal/state"
	"github.com/abhisek/contextlens/internal/ui/components"
	"github.com/abhisek/contextlens/internal/ui/layout"
	"github.com/abhisek/contextlens/internal/ui/theme"
)

// Form field order.
const (
	fieldName = iota
	fieldAge
	fieldLanguage
	fieldCulture
	fieldInterests
	fieldStyle
	fieldVoice
	fieldCount
)

type saveDoneMsg struct {
	Err error
}

// FormScreen creates or edits a single learner profile.
type FormScreen struct {
	app      *state.App
	original *profile.Learner // nil when creating

	inputs  [5]components.TextInput
	style   components.Selector
	voice   components.Selector
	focused int
	errMsg  string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// NewForm creates a profile editor. Pass nil to create a new learner, or
// an existing learner to edit it in place.
func NewForm(app *state.App, learner *profile.Learner) *FormScreen {
	f := &FormScreen{app: app, original: learner}

	f.inputs[0] = components.NewTextInput("Learner name", false, 40)
	f.inputs[1] = components.NewTextInput("Age", true, 3)
	f.inputs[2] = components.NewTextInput("Native language", false, 40)
	f.inputs[3] = components.NewTextInput("Cultural background", false, 60)
	f.inputs[4] = components.NewTextInput("Interests (comma separated)", false, 120)

	styleNames := make([]string, len(profile.CognitiveStyles))
	for i, cs := range profile.CognitiveStyles {
		styleNames[i] = string(cs)
	}

	styleValue := styleNames[0]
	voiceValue := profile.Voices[0]

	if learner != nil {
		f.inputs[0].SetValue(learner.Name)
		if learner.Age > 0 {
			f.inputs[1].SetValue(strconv.Itoa(learner.Age))
		}
		f.inputs[2].SetValue(learner.NativeLanguage)
		f.inputs[3].SetValue(learner.Culture)
		f.inputs[4].SetValue(strings.Join(learner.Interests, ", "))
		styleValue = string(learner.CognitiveStyle)
		voiceValue = learner.VoicePreference
	}

	f.style = components.NewSelector("Cognitive style", styleNames, styleValue)
	f.voice = components.NewSelector("Preferred voice", profile.Voices, voiceValue)

	f.setFocus(fieldName)
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return f.inputs[0].Init()
}

func (f *FormScreen) Title() string {
	if f.original != nil {
		return "Edit Learner"
	}
	return "New Learner"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Change option"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (f *FormScreen) setFocus(idx int) {
	f.focused = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Model.Focus()
		} else {
			f.inputs[i].Model.Blur()
		}
	}
	f.style.Focused = idx == fieldStyle
	f.voice.Focused = idx == fieldVoice
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		if msg.Err != nil {
			f.errMsg = msg.Err.Error()
			return f, nil
		}
		return f, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return ReloadMsg{} },
		)

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			f.setFocus((f.focused + 1) % fieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focused + fieldCount - 1) % fieldCount)
			return f, nil
		case "ctrl+s":
			return f, f.save()
		case "enter":
			if f.focused == fieldCount-1 {
				return f, f.save()
			}
			f.setFocus(f.focused + 1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focused {
	case fieldStyle:
		f.style, cmd = f.style.Update(msg)
	case fieldVoice:
		f.voice, cmd = f.voice.Update(msg)
	default:
		f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	}
	return f, cmd
}

func (f *FormScreen) save() tea.Cmd {
	name := strings.TrimSpace(f.inputs[0].Value())
	language := strings.TrimSpace(f.inputs[2].Value())

	if name == "" || language == "" {
		f.errMsg = "name and native language are required"
		return nil
	}
	f.errMsg = ""

	age := 0
	if v, err := f.inputs[1].NumericValue(); err == nil {
		age = v
	}

	var interests []string
	for _, part := range strings.Split(f.inputs[4].Value(), ",") {
		if p := strings.TrimSpace(part); p != "" {
			interests = append(interests, p)
		}
	}
	if interests == nil {
		interests = []string{}
	}

	learner := profile.Learner{
		ID:              profile.NewID(),
		Name:            name,
		Age:             age,
		NativeLanguage:  language,
		Culture:         strings.TrimSpace(f.inputs[3].Value()),
		CognitiveStyle:  profile.CognitiveStyle(f.style.Value()),
		Interests:       interests,
		VoicePreference: f.voice.Value(),
		Library:         []profile.LibraryEntry{},
	}
	if f.original != nil {
		learner.ID = f.original.ID
		learner.Library = f.original.Library
	}

	app := f.app
	return func() tea.Msg {
		return saveDoneMsg{Err: app.Repo.Save(context.Background(), learner)}
	}
}

func (f *FormScreen) View(width, height int) string {
	labels := []string{
		"Name", "Age", "Native language", "Culture", "Interests",
		"Cognitive style", "Preferred voice",
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(18)
	focusedLabel := labelStyle.Foreground(theme.Primary).Bold(true)

	var rows []string
	for i := 0; i < fieldCount; i++ {
		ls := labelStyle
		if i == f.focused {
			ls = focusedLabel
		}

		var field string
		switch i {
		case fieldStyle:
			field = f.style.View()
		case fieldVoice:
			field = f.voice.View()
		default:
			field = f.inputs[i].View()
		}

		rows = append(rows, ls.Render(labels[i])+" "+field)
	}

	if f.errMsg != "" {
		rows = append(rows, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+f.errMsg))
	}

	content := strings.Join(rows, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
