package reframe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/contextlens/internal/llm"
	"github.com/abhisek/contextlens/internal/profile"
)

// Purpose is the event-log label for card generation requests.
const Purpose = "reframe-cards"

const maxResponseTokens = 8192

// Service generates reframing cards through an LLM provider.
type Service struct {
	provider llm.Provider
}

// NewService creates a generation service over the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Generate produces reframing cards for the input, personalized to the
// learner and delivered in the teacher's style. Card ids are minted
// locally; model-supplied ids are discarded so ids stay unique across
// the library.
func (s *Service) Generate(ctx context.Context, input string, learner profile.Learner, teacher profile.Teacher) ([]profile.Card, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("input text is empty")
	}

	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(input, learner, teacher)}},
		Schema:    cardsSchema(),
		MaxTokens: maxResponseTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate reframings: %w", err)
	}

	var parsed struct {
		Cards []profile.Card `json:"cards"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("parse reframings: %w", err)
	}
	if len(parsed.Cards) == 0 {
		return nil, fmt.Errorf("generate reframings: no cards in response")
	}

	seed := profile.NewID()
	for i := range parsed.Cards {
		parsed.Cards[i].ID = fmt.Sprintf("%s-%d", seed, i)
		parsed.Cards[i].Analysis = clampAnalysis(parsed.Cards[i].Analysis)
	}

	return parsed.Cards, nil
}

// clampAnalysis forces fit scores into the 1-100 range the UI renders.
func clampAnalysis(a profile.Analysis) profile.Analysis {
	a.CulturalResonance = clampScore(a.CulturalResonance)
	a.CognitiveFit = clampScore(a.CognitiveFit)
	a.VocabularyComplexity = clampScore(a.VocabularyComplexity)
	return a
}

func clampScore(v int) int {
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}
