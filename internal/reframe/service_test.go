package reframe

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/contextlens/internal/llm"
	"github.com/abhisek/contextlens/internal/profile"
)

func testLearner() profile.Learner {
	return profile.Learner{
		ID: "p1", Name: "Yuki", Age: 14, NativeLanguage: "Japanese",
		Culture:         "Japanese, loves anime and space exploration",
		CognitiveStyle:  profile.StyleVisual,
		Interests:       []string{"Astronomy", "Manga"},
		VoicePreference: "Kore",
		Library:         []profile.LibraryEntry{},
	}
}

func testTeacher() profile.Teacher {
	return profile.Teacher{
		Name:              "Educator",
		TeachingStyle:     "Socratic (Question-based)",
		ComfortSubjects:   []string{"History", "Literature"},
		CommunicationTone: "Warm & Encouraging",
	}
}

func cannedCards() json.RawMessage {
	return json.RawMessage(`{"cards":[
		{"id":"model-1","title":"Orbit as a Manga Panel","reframedText":"Picture gravity as...","reflectionQuestion":"What keeps the moon in frame?","analysis":{"culturalResonance":88,"cognitiveFit":92,"vocabularyComplexity":35}},
		{"id":"model-2","title":"Telescope Questions","reframedText":"Ask yourself...","reflectionQuestion":"Why do stars twinkle?","analysis":{"culturalResonance":140,"cognitiveFit":0,"vocabularyComplexity":50}}
	]}`)
}

func TestGenerate_ReturnsCards(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedCards()})
	svc := NewService(mock)

	cards, err := svc.Generate(context.Background(), "Gravity", testLearner(), testTeacher())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	if cards[0].Title != "Orbit as a Manga Panel" {
		t.Errorf("title = %q", cards[0].Title)
	}
}

func TestGenerate_MintsLocalIDs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedCards()})
	svc := NewService(mock)

	cards, err := svc.Generate(context.Background(), "Gravity", testLearner(), testTeacher())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	seen := map[string]bool{}
	for _, c := range cards {
		if strings.HasPrefix(c.ID, "model-") {
			t.Errorf("model-supplied id kept: %q", c.ID)
		}
		if c.ID == "" || seen[c.ID] {
			t.Errorf("id %q empty or duplicated", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestGenerate_ClampsScores(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedCards()})
	svc := NewService(mock)

	cards, err := svc.Generate(context.Background(), "Gravity", testLearner(), testTeacher())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Second card came back with 140 and 0; both must land in [1,100].
	if cards[1].Analysis.CulturalResonance != 100 {
		t.Errorf("culturalResonance = %d, want 100", cards[1].Analysis.CulturalResonance)
	}
	if cards[1].Analysis.CognitiveFit != 1 {
		t.Errorf("cognitiveFit = %d, want 1", cards[1].Analysis.CognitiveFit)
	}
	if cards[1].Analysis.VocabularyComplexity != 50 {
		t.Errorf("vocabularyComplexity = %d, want 50", cards[1].Analysis.VocabularyComplexity)
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)

	if _, err := svc.Generate(context.Background(), "   ", testLearner(), testTeacher()); err == nil {
		t.Fatal("expected error for blank input")
	}
	if mock.CallCount() != 0 {
		t.Fatalf("provider called %d times for blank input", mock.CallCount())
	}
}

func TestGenerate_EmptyCardList(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"cards":[]}`)})
	svc := NewService(mock)

	if _, err := svc.Generate(context.Background(), "Gravity", testLearner(), testTeacher()); err == nil {
		t.Fatal("expected error for empty card list")
	}
}

func TestGenerate_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock)

	_, err := svc.Generate(context.Background(), "Gravity", testLearner(), testTeacher())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got: %v", err)
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: cannedCards()})
	svc := NewService(mock)

	learner := testLearner()
	teacher := testTeacher()
	if _, err := svc.Generate(context.Background(), "The causes of WWI", learner, teacher); err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "reframing-cards" {
		t.Fatalf("schema = %+v", req.Schema)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("messages = %+v", req.Messages)
	}

	prompt := req.Messages[0].Content
	for _, want := range []string{
		"The causes of WWI",
		"Yuki", "Educator",
		"Socratic (Question-based)",
		"Astronomy, Manga",
		"Visual/Spatial",
		"Japanese",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
