// Package report renders a self-contained HTML lesson report for a
// generated set of reframing cards. The output has no external assets,
// so the file opens and prints anywhere.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/abhisek/contextlens/internal/profile"
)

// Lesson bundles everything a report needs.
type Lesson struct {
	SourceText  string
	Cards       []profile.Card
	Learner     profile.Learner
	Teacher     profile.Teacher
	GeneratedAt time.Time
}

type lessonView struct {
	Lesson
	Date      string
	Time      string
	Interests string
}

// Render produces the full HTML document for the lesson. It is a pure
// function of its input; nothing is read from storage.
func Render(lesson Lesson) ([]byte, error) {
	view := lessonView{
		Lesson:    lesson,
		Date:      lesson.GeneratedAt.Format("1/2/2006"),
		Time:      lesson.GeneratedAt.Format("3:04:05 PM"),
		Interests: strings.Join(lesson.Learner.Interests, ", "),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName returns the suggested download name for a lesson report,
// embedding the learner's name (whitespace collapsed to dashes) and a
// millisecond timestamp so repeated saves never collide.
func FileName(learnerName string, at time.Time) string {
	name := strings.Join(strings.Fields(learnerName), "-")
	return fmt.Sprintf("ContextLens-Lesson-%s-%d.html", name, at.UnixMilli())
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>ContextLens Lesson Report: {{.Learner.Name}}</title>
  <style>
    body { font-family: system-ui, -apple-system, sans-serif; line-height: 1.6; color: #1f2937; max-width: 800px; margin: 0 auto; padding: 40px 20px; background: #f9fafb; }
    .container { background: white; padding: 40px; border-radius: 16px; box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1); border: 1px solid #e5e7eb; }
    h1 { color: #4f46e5; margin-bottom: 0.5rem; }
    h2 { color: #111827; margin-top: 2rem; border-bottom: 2px solid #e5e7eb; padding-bottom: 0.5rem; font-size: 1.25rem; }
    h3 { color: #4338ca; margin-top: 1.5rem; font-size: 1.1rem; }
    .meta { display: grid; grid-template-columns: repeat(auto-fit, minmax(250px, 1fr)); gap: 20px; margin-bottom: 30px; background: #f3f4f6; padding: 20px; border-radius: 12px; }
    .meta-box h4 { margin: 0 0 10px 0; color: #6b7280; font-size: 0.875rem; text-transform: uppercase; letter-spacing: 0.05em; font-weight: 700; }
    .meta-box p { margin: 5px 0; font-size: 0.95rem; }
    .card { border: 1px solid #e5e7eb; border-radius: 12px; padding: 25px; margin-bottom: 25px; background: #fff; box-shadow: 0 1px 3px rgba(0,0,0,0.05); page-break-inside: avoid; }
    .card h3 { margin-top: 0; color: #1f2937; }
    .reflection { background: #fffbeb; border-left: 4px solid #fcd34d; padding: 15px; margin-top: 15px; color: #92400e; font-style: italic; border-radius: 0 4px 4px 0; }
    .stats { display: flex; flex-wrap: wrap; gap: 15px; margin-top: 15px; font-size: 0.8rem; color: #6b7280; border-top: 1px solid #f3f4f6; padding-top: 15px; }
    .stat-item { background: #f9fafb; padding: 4px 8px; border-radius: 4px; font-weight: 500; }
    .source-text { background: #f3f4f6; padding: 20px; border-radius: 8px; font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace; white-space: pre-wrap; font-size: 0.9rem; border: 1px solid #e5e7eb; max-height: 300px; overflow-y: auto; }
    .footer { margin-top: 40px; text-align: center; color: #9ca3af; font-size: 0.875rem; border-top: 1px solid #e5e7eb; padding-top: 20px; }
    @media print { body { background: white; padding: 0; } .container { box-shadow: none; padding: 0; border: none; } .source-text { max-height: none; } }
  </style>
</head>
<body>
  <div class="container">
    <h1>ContextLens Report</h1>
    <p style="color: #6b7280; margin-bottom: 30px; margin-top: 0;">Generated on {{.Date}} at {{.Time}}</p>

    <div class="meta">
      <div class="meta-box">
        <h4>Teacher Profile</h4>
        <p><strong>Name:</strong> {{.Teacher.Name}}</p>
        <p><strong>Style:</strong> {{.Teacher.TeachingStyle}}</p>
        <p><strong>Tone:</strong> {{.Teacher.CommunicationTone}}</p>
      </div>
      <div class="meta-box">
        <h4>Student Profile</h4>
        <p><strong>Name:</strong> {{.Learner.Name}} ({{.Learner.Age}}y)</p>
        <p><strong>Culture:</strong> {{.Learner.Culture}}</p>
        <p><strong>Interests:</strong> {{.Interests}}</p>
        <p><strong>Cognitive Style:</strong> {{.Learner.CognitiveStyle}}</p>
      </div>
    </div>

    <h2>Topic / Source Material</h2>
    <div class="source-text">{{.SourceText}}</div>

    <h2>Instructional Strategies</h2>
    {{range $i, $card := .Cards}}
    <div class="card">
      <h3>Strategy {{inc $i}}: {{$card.Title}}</h3>
      <p style="white-space: pre-wrap;">{{$card.ReframedText}}</p>
      <div class="reflection">
        <strong>Reflection:</strong> {{$card.ReflectionQuestion}}
      </div>
      <div class="stats">
        <span class="stat-item">Cultural Resonance: {{$card.Analysis.CulturalResonance}}%</span>
        <span class="stat-item">Cognitive Fit: {{$card.Analysis.CognitiveFit}}%</span>
        <span class="stat-item">Vocabulary Level: {{$card.Analysis.VocabularyComplexity}}%</span>
      </div>
    </div>
    {{end}}

    <div class="footer">
      Generated with <strong>ContextLens</strong> &bull; Empowering Personalized Education
    </div>
  </div>
</body>
</html>
`))
