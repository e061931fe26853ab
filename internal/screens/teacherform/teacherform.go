package teacherform

import (
	"context"
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

const (
	fieldName = iota
	fieldStyle
	fieldSubjects
	fieldTone
	fieldCount
)

type saveDoneMsg struct {
	Err error
}

// FormScreen edits the singleton teacher profile. Saving overwrites the
// stored record wholesale.
type FormScreen struct {
	app      *state.App
	name     components.TextInput
	subjects components.TextInput
	style    components.Selector
	tone     components.Selector
	focused  int
	errMsg   string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the teacher profile editor pre-filled from the repository.
func New(app *state.App) *FormScreen {
	teacher := app.Repo.Teacher(context.Background())

	f := &FormScreen{app: app}
	f.name = components.NewTextInput("Your name", false, 40)
	f.name.SetValue(teacher.Name)
	f.subjects = components.NewTextInput("Comfort subjects (comma separated)", false, 120)
	f.subjects.SetValue(strings.Join(teacher.ComfortSubjects, ", "))
	f.style = components.NewSelector("Teaching style", profile.TeachingStyles, teacher.TeachingStyle)
	f.tone = components.NewSelector("Communication tone", profile.CommunicationTones, teacher.CommunicationTone)

	f.setFocus(fieldName)
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return f.name.Init()
}

func (f *FormScreen) Title() string {
	return "Teacher Profile"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Change option"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FormScreen) setFocus(idx int) {
	f.focused = idx
	if idx == fieldName {
		f.name.Model.Focus()
	} else {
		f.name.Model.Blur()
	}
	if idx == fieldSubjects {
		f.subjects.Model.Focus()
	} else {
		f.subjects.Model.Blur()
	}
	f.style.Focused = idx == fieldStyle
	f.tone.Focused = idx == fieldTone
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		if msg.Err != nil {
			f.errMsg = msg.Err.Error()
			return f, nil
		}
		return f, func() tea.Msg { return router.PopScreenMsg{} }

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
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldSubjects:
		f.subjects, cmd = f.subjects.Update(msg)
	case fieldStyle:
		f.style, cmd = f.style.Update(msg)
	case fieldTone:
		f.tone, cmd = f.tone.Update(msg)
	}
	return f, cmd
}

func (f *FormScreen) save() tea.Cmd {
	name := strings.TrimSpace(f.name.Value())
	if name == "" {
		f.errMsg = "name is required"
		return nil
	}
	f.errMsg = ""

	var subjects []string
	for _, part := range strings.Split(f.subjects.Value(), ",") {
		if p := strings.TrimSpace(part); p != "" {
			subjects = append(subjects, p)
		}
	}
	if subjects == nil {
		subjects = []string{}
	}

	teacher := profile.Teacher{
		Name:              name,
		TeachingStyle:     f.style.Value(),
		ComfortSubjects:   subjects,
		CommunicationTone: f.tone.Value(),
	}

	app := f.app
	return func() tea.Msg {
		return saveDoneMsg{Err: app.Repo.SaveTeacher(context.Background(), teacher)}
	}
}

func (f *FormScreen) View(width, height int) string {
	labels := []string{"Name", "Teaching style", "Comfort subjects", "Tone"}

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(18)
	focusedLabel := labelStyle.Foreground(theme.Primary).Bold(true)

	fields := []string{
		f.name.View(),
		f.style.View(),
		f.subjects.View(),
		f.tone.View(),
	}

	var rows []string
	intro := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("How you teach shapes how lessons are reframed.")
	rows = append(rows, intro, "")

	for i := 0; i < fieldCount; i++ {
		ls := labelStyle
		if i == f.focused {
			ls = focusedLabel
		}
		rows = append(rows, ls.Render(labels[i])+" "+fields[i], "")
	}

	if f.errMsg != "" {
		rows = append(rows,
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+f.errMsg))
	}

	content := strings.Join(rows, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
