package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":        map[string]any{"type": "string"},
			"resonance":    map[string]any{"type": "integer"},
			"style":        map[string]any{"type": "string", "enum": []any{"visual", "narrative", "literal"}},
			"cards": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
		},
		"required": []any{"title", "resonance"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING for title, got %s", schema.Properties["title"].Type)
	}
	if schema.Properties["resonance"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for resonance, got %s", schema.Properties["resonance"].Type)
	}
	if len(schema.Properties["style"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["style"].Enum))
	}
	if schema.Properties["cards"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for cards, got %s", schema.Properties["cards"].Type)
	}
	if schema.Properties["cards"].Items.Type != "OBJECT" {
		t.Fatalf("expected OBJECT for cards items, got %s", schema.Properties["cards"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if got != 2.8 {
		t.Fatalf("cost = %v, want 2.8", got)
	}

	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
