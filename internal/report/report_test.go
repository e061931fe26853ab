package report

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/contextlens/internal/profile"
)

func sampleLesson() Lesson {
	return Lesson{
		SourceText: "The water cycle moves water between oceans, air, and land.",
		Cards: []profile.Card{
			{
				ID:                 "c1",
				Title:              "Water's Journey",
				ReframedText:       "Think of water as a traveler on a loop.",
				ReflectionQuestion: "Where does rain in your town come from?",
				Analysis:           profile.Analysis{CulturalResonance: 85, CognitiveFit: 90, VocabularyComplexity: 40},
			},
			{
				ID:                 "c2",
				Title:              "Cloud Factory",
				ReframedText:       "Evaporation is the factory floor.",
				ReflectionQuestion: "What powers the factory?",
				Analysis:           profile.Analysis{CulturalResonance: 70, CognitiveFit: 80, VocabularyComplexity: 55},
			},
		},
		Learner: profile.Learner{
			ID: "p1", Name: "Yuki", Age: 14, NativeLanguage: "Japanese",
			Culture: "Japanese, loves anime and space exploration",
			CognitiveStyle: profile.StyleVisual,
			Interests:      []string{"Astronomy", "Manga"},
		},
		Teacher: profile.Teacher{
			Name: "Educator", TeachingStyle: "Socratic (Question-based)",
			CommunicationTone: "Warm & Encouraging",
		},
		GeneratedAt: time.Date(2026, 8, 27, 14, 30, 0, 0, time.UTC),
	}
}

func TestRenderEmbedsLessonFields(t *testing.T) {
	out, err := Render(sampleLesson())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"ContextLens Lesson Report: Yuki",
		"Yuki (14y)",
		"Astronomy, Manga",
		"Strategy 1: Water&#39;s Journey",
		"Strategy 2: Cloud Factory",
		"Cultural Resonance: 85%",
		"Cognitive Fit: 90%",
		"Vocabulary Level: 40%",
		"Where does rain in your town come from?",
		"The water cycle moves water",
		"Socratic (Question-based)",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	lesson := sampleLesson()
	lesson.SourceText = `<script>alert("x")</script>`
	lesson.Cards[0].Title = `Math & "Magic" <b>`

	out, err := Render(lesson)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if strings.Contains(html, `<script>alert`) {
		t.Error("source text not escaped")
	}
	if strings.Contains(html, `Math & "Magic" <b>`) {
		t.Error("card title not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped script tag")
	}
}

func TestRenderSelfContained(t *testing.T) {
	out, err := Render(sampleLesson())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	// No external assets: styles are inline, no src/href references.
	if strings.Contains(html, "http://") || strings.Contains(html, "https://") {
		t.Error("report references external resources")
	}
	if !strings.Contains(html, "<style>") {
		t.Error("report missing inline styles")
	}
}

func TestFileName(t *testing.T) {
	at := time.UnixMilli(1764000000000)
	tests := []struct {
		name string
		want string
	}{
		{"Yuki", "ContextLens-Lesson-Yuki-1764000000000.html"},
		{"Mateo Reyes", "ContextLens-Lesson-Mateo-Reyes-1764000000000.html"},
		{"  Ana   Lu  ", "ContextLens-Lesson-Ana-Lu-1764000000000.html"},
	}
	for _, tt := range tests {
		if got := FileName(tt.name, at); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
