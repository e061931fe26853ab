package reframe

import "github.com/abhisek/contextlens/internal/llm"

// cardsSchema describes the structured response: an object holding a
// list of reframing cards with per-card fit analysis.
func cardsSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "reframing-cards",
		Description: "Personalized lesson strategy cards for one learner",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"cards": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":                 map[string]any{"type": "string"},
							"title":              map[string]any{"type": "string"},
							"reframedText":       map[string]any{"type": "string"},
							"reflectionQuestion": map[string]any{"type": "string"},
							"analysis": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"culturalResonance":    map[string]any{"type": "integer"},
									"cognitiveFit":         map[string]any{"type": "integer"},
									"vocabularyComplexity": map[string]any{"type": "integer"},
								},
								"required": []any{"culturalResonance", "cognitiveFit", "vocabularyComplexity"},
							},
						},
						"required": []any{"id", "title", "reframedText", "reflectionQuestion", "analysis"},
					},
				},
			},
			"required": []any{"cards"},
		},
	}
}
