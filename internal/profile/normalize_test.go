package profile

import (
	"encoding/json"
	"testing"
)

func TestDecodeLearnersRepairsLibrary(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing library", `[{"id":"x","name":"X","nativeLanguage":"English"}]`},
		{"null library", `[{"id":"x","name":"X","nativeLanguage":"English","library":null}]`},
		{"object library", `[{"id":"x","name":"X","nativeLanguage":"English","library":{"oops":true}}]`},
		{"string library", `[{"id":"x","name":"X","nativeLanguage":"English","library":"nope"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			learners, err := DecodeLearners([]byte(tt.input))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(learners) != 1 {
				t.Fatalf("got %d learners, want 1", len(learners))
			}
			if learners[0].Library == nil {
				t.Fatal("library is nil, want empty list")
			}
			if len(learners[0].Library) != 0 {
				t.Errorf("library has %d entries, want 0", len(learners[0].Library))
			}
		})
	}
}

func TestDecodeLearnersKeepsValidLibrary(t *testing.T) {
	input := `[{"id":"x","name":"X","nativeLanguage":"English","library":[
		{"id":"e1","timestamp":1700000000000,"sourceText":"Photosynthesis","cards":[]}
	]}]`

	learners, err := DecodeLearners([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(learners[0].Library) != 1 {
		t.Fatalf("library has %d entries, want 1", len(learners[0].Library))
	}
	if learners[0].Library[0].SourceText != "Photosynthesis" {
		t.Errorf("sourceText = %q", learners[0].Library[0].SourceText)
	}
}

func TestDecodeLearnersIgnoresUnknownFields(t *testing.T) {
	input := `[{"id":"x","name":"X","nativeLanguage":"English","favoriteColor":"teal"}]`

	learners, err := DecodeLearners([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if learners[0].ID != "x" {
		t.Errorf("id = %q", learners[0].ID)
	}
}

func TestDecodeLearnersMalformed(t *testing.T) {
	if _, err := DecodeLearners([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

// Repair must not disturb other fields: decoding then re-encoding a
// profile with a broken library changes only the library.
func TestRepairPreservesOtherFields(t *testing.T) {
	input := `[{"id":"p9","name":"Nia","age":12,"nativeLanguage":"Swahili",
		"culture":"Kenyan coastal","cognitiveStyle":"Visual/Spatial",
		"interests":["Astronomy","Running"],"voicePreference":"Zephyr",
		"library":"broken"}]`

	learners, err := DecodeLearners([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := learners[0]
	want := Learner{
		ID:              "p9",
		Name:            "Nia",
		Age:             12,
		NativeLanguage:  "Swahili",
		Culture:         "Kenyan coastal",
		CognitiveStyle:  StyleVisual,
		Interests:       []string{"Astronomy", "Running"},
		VoicePreference: "Zephyr",
		Library:         []LibraryEntry{},
	}

	gotJSON, _ := json.Marshal(got)
	wantJSON, _ := json.Marshal(want)
	if string(gotJSON) != string(wantJSON) {
		t.Errorf("got %s\nwant %s", gotJSON, wantJSON)
	}
}
