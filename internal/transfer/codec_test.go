package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/contextlens/internal/profile"
	"github.com/abhisek/contextlens/internal/store"
)

func newTestCodec(t *testing.T) (*Codec, *profile.Repo) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	repo := profile.NewRepo(s.Records())
	return NewCodec(repo), repo
}

func TestExportImportRoundTrip(t *testing.T) {
	codec, repo := newTestCodec(t)
	ctx := context.Background()

	custom := profile.Teacher{
		Name:              "Mr. Ortiz",
		TeachingStyle:     "Socratic (Question-based)",
		ComfortSubjects:   []string{"History"},
		CommunicationTone: "Warm & Encouraging",
	}
	if err := repo.SaveTeacher(ctx, custom); err != nil {
		t.Fatalf("save teacher: %v", err)
	}
	entry := profile.LibraryEntry{ID: "e1", Timestamp: 1700000000000, SourceText: "Gravity", Cards: []profile.Card{}}
	learners := repo.List(ctx)
	if _, err := repo.AppendLibraryEntry(ctx, learners[0].ID, entry); err != nil {
		t.Fatalf("append entry: %v", err)
	}

	data, err := codec.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"profiles\"") {
		t.Errorf("export not pretty-printed with 2-space indent:\n%s", data[:40])
	}

	// Wipe and re-import.
	if err := repo.SaveAll(ctx, []profile.Learner{{ID: "z", Name: "Z", NativeLanguage: "English", Library: []profile.LibraryEntry{}}}); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	doc, err := codec.Import(ctx, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(doc.Profiles) != 3 {
		t.Fatalf("imported %d profiles, want 3", len(doc.Profiles))
	}
	if doc.Teacher.Name != "Mr. Ortiz" {
		t.Errorf("teacher = %q", doc.Teacher.Name)
	}

	restored := repo.List(ctx)
	if len(restored) != 3 || len(restored[0].Library) != 1 {
		t.Errorf("restored state wrong: %d profiles, library %d", len(restored), len(restored[0].Library))
	}
}

func TestImportLegacyBareArray(t *testing.T) {
	codec, repo := newTestCodec(t)
	ctx := context.Background()

	legacy := `[{"id":"a","name":"Amara","nativeLanguage":"Igbo"}]`
	doc, err := codec.Import(ctx, []byte(legacy))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(doc.Profiles) != 1 || doc.Profiles[0].Name != "Amara" {
		t.Fatalf("profiles = %+v", doc.Profiles)
	}
	if doc.Profiles[0].Library == nil {
		t.Error("library not normalized to empty list")
	}
	if doc.Teacher.Name != "Educator" {
		t.Errorf("teacher = %q, want default", doc.Teacher.Name)
	}
	if got := repo.Teacher(ctx); got.Name != "Educator" {
		t.Errorf("persisted teacher = %q", got.Name)
	}
}

func TestImportMalformedJSONLeavesStateUntouched(t *testing.T) {
	codec, repo := newTestCodec(t)
	ctx := context.Background()

	before := repo.List(ctx)
	if err := repo.SaveAll(ctx, before); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err := codec.Import(ctx, []byte(`{definitely not json`))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("err = %v, want ErrMalformedDocument", err)
	}

	after := repo.List(ctx)
	if len(after) != len(before) {
		t.Errorf("state changed after failed import")
	}
}

func TestImportValidationAllOrNothing(t *testing.T) {
	codec, repo := newTestCodec(t)
	ctx := context.Background()

	before := repo.List(ctx)
	if err := repo.SaveAll(ctx, before); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Second profile lacks nativeLanguage.
	bad := `{"profiles":[
		{"id":"a","name":"A","nativeLanguage":"English"},
		{"id":"b","name":"B"}
	]}`
	_, err := codec.Import(ctx, []byte(bad))
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}

	after := repo.List(ctx)
	if len(after) != len(before) || after[0].ID != before[0].ID {
		t.Error("partial import: state changed despite validation failure")
	}
}

func TestImportNonProfileElementsRejected(t *testing.T) {
	codec, repo := newTestCodec(t)
	ctx := context.Background()

	before := repo.List(ctx)
	if err := repo.SaveAll(ctx, before); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A profiles list is present, but its elements are not profiles.
	_, err := codec.Import(ctx, []byte(`{"profiles":[1,2,3]}`))
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}

	after := repo.List(ctx)
	if len(after) != len(before) {
		t.Error("state changed after rejected import")
	}
}

func TestImportNullDocumentRejected(t *testing.T) {
	codec, repo := newTestCodec(t)
	ctx := context.Background()

	before := repo.List(ctx)
	if err := repo.SaveAll(ctx, before); err != nil {
		t.Fatalf("save: %v", err)
	}

	for _, input := range []string{`null`, `"profiles"`, `42`} {
		_, err := codec.Import(ctx, []byte(input))
		if !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("Import(%s) err = %v, want ErrMalformedDocument", input, err)
		}
	}

	after := repo.List(ctx)
	if len(after) != len(before) {
		t.Error("state changed after rejected import")
	}
}

func TestDecodeEnvelopeDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty object", `{}`},
		{"non-list profiles", `{"profiles":{"oops":true}}`},
		{"null teacher", `{"profiles":[],"teacher":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.input))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if doc.Profiles == nil || len(doc.Profiles) != 0 {
				t.Errorf("profiles = %+v, want empty list", doc.Profiles)
			}
			if doc.Teacher.Name != "Educator" {
				t.Errorf("teacher = %q, want default", doc.Teacher.Name)
			}
		})
	}
}

func TestExportEmittedJSONIsValid(t *testing.T) {
	codec, _ := newTestCodec(t)

	data, err := codec.Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export not parseable: %v", err)
	}
}

func TestExportFileName(t *testing.T) {
	at := time.Date(2026, 8, 27, 15, 4, 5, 0, time.UTC)
	if got := ExportFileName(at); got != "contextlens-data-2026-08-27.json" {
		t.Errorf("name = %q", got)
	}
}
