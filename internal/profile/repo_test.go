package profile

import (
	"context"
	"testing"

	"github.com/abhisek/contextlens/internal/store"
)

func newTestRepo(t *testing.T) (*Repo, store.RecordStore) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewRepo(s.Records()), s.Records()
}

func TestListReturnsSeedsWhenEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	learners := repo.List(ctx)
	if len(learners) != 3 {
		t.Fatalf("got %d learners, want 3", len(learners))
	}

	names := []string{learners[0].Name, learners[1].Name, learners[2].Name}
	want := []string{"Yuki", "Mateo", "Alex"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestListFallsBackOnMalformedData(t *testing.T) {
	repo, records := newTestRepo(t)
	ctx := context.Background()

	if err := records.Set(ctx, store.KeyProfiles, []byte(`{not json`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	learners := repo.List(ctx)
	if len(learners) != 3 {
		t.Fatalf("got %d learners, want 3 seeds on parse failure", len(learners))
	}
	if learners[0].Name != "Yuki" {
		t.Errorf("first learner = %q, want Yuki", learners[0].Name)
	}
}

func TestListRepairsLibraryOnEveryRead(t *testing.T) {
	repo, records := newTestRepo(t)
	ctx := context.Background()

	stored := `[{"id":"a","name":"A","nativeLanguage":"English"},
		{"id":"b","name":"B","nativeLanguage":"French","library":null}]`
	if err := records.Set(ctx, store.KeyProfiles, []byte(stored)); err != nil {
		t.Fatalf("set: %v", err)
	}

	// Repair applies on every read, not just the first.
	for i := 0; i < 2; i++ {
		learners := repo.List(ctx)
		for _, l := range learners {
			if l.Library == nil {
				t.Fatalf("read %d: learner %s has nil library", i, l.ID)
			}
		}
	}
}

func TestSaveReplacesInPlace(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	before := repo.List(ctx)
	if err := repo.SaveAll(ctx, before); err != nil {
		t.Fatalf("save all: %v", err)
	}

	updated := before[1]
	updated.Name = "Mateo R."
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("save: %v", err)
	}

	after := repo.List(ctx)
	if len(after) != len(before) {
		t.Fatalf("list length changed: %d -> %d", len(before), len(after))
	}
	if after[1].Name != "Mateo R." {
		t.Errorf("after[1].Name = %q, want position preserved", after[1].Name)
	}
	if after[0].ID != before[0].ID || after[2].ID != before[2].ID {
		t.Error("other entries moved")
	}
}

func TestSaveAppendsNewProfile(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	before := repo.List(ctx)

	newcomer := Learner{
		ID:             NewID(),
		Name:           "Priya",
		NativeLanguage: "Hindi",
		Library:        []LibraryEntry{},
	}
	if err := repo.Save(ctx, newcomer); err != nil {
		t.Fatalf("save: %v", err)
	}

	after := repo.List(ctx)
	if len(after) != len(before)+1 {
		t.Fatalf("list length = %d, want %d", len(after), len(before)+1)
	}
	if after[len(after)-1].Name != "Priya" {
		t.Errorf("new profile not appended at end")
	}
}

func TestDeleteProfile(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	learners := repo.List(ctx)
	if err := repo.Delete(ctx, learners[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	after := repo.List(ctx)
	if len(after) != len(learners)-1 {
		t.Fatalf("list length = %d, want %d", len(after), len(learners)-1)
	}
	for _, l := range after {
		if l.ID == learners[0].ID {
			t.Error("deleted profile still present")
		}
	}
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	before := repo.List(ctx)
	if err := repo.Delete(ctx, "nonexistent-id"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	after := repo.List(ctx)
	if len(after) != len(before) {
		t.Errorf("list length changed: %d -> %d", len(before), len(after))
	}
}

func TestTeacherDefaultAndSave(t *testing.T) {
	repo, records := newTestRepo(t)
	ctx := context.Background()

	teacher := repo.Teacher(ctx)
	if teacher.Name != "Educator" {
		t.Errorf("default teacher name = %q", teacher.Name)
	}

	// Unparsable stored value also yields the default.
	if err := records.Set(ctx, store.KeyTeacher, []byte(`nope`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	teacher = repo.Teacher(ctx)
	if teacher.Name != "Educator" {
		t.Errorf("teacher after corrupt read = %q, want default", teacher.Name)
	}

	custom := Teacher{
		Name:              "Ms. Frizzle",
		TeachingStyle:     "Storytelling (Narrative)",
		ComfortSubjects:   []string{"Science"},
		CommunicationTone: "Enthusiastic & High Energy",
	}
	if err := repo.SaveTeacher(ctx, custom); err != nil {
		t.Fatalf("save teacher: %v", err)
	}

	teacher = repo.Teacher(ctx)
	if teacher.Name != "Ms. Frizzle" || teacher.TeachingStyle != custom.TeachingStyle {
		t.Errorf("teacher = %+v", teacher)
	}
}

func TestAppendLibraryEntryPrepends(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	learners := repo.List(ctx)
	id := learners[0].ID

	first := LibraryEntry{ID: "e1", Timestamp: 1000, SourceText: "first", Cards: []Card{}}
	second := LibraryEntry{ID: "e2", Timestamp: 2000, SourceText: "second", Cards: []Card{}}

	if _, err := repo.AppendLibraryEntry(ctx, id, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	updated, err := repo.AppendLibraryEntry(ctx, id, second)
	if err != nil {
		t.Fatalf("append second: %v", err)
	}

	if len(updated.Library) != 2 {
		t.Fatalf("library has %d entries, want 2", len(updated.Library))
	}
	if updated.Library[0].ID != "e2" {
		t.Errorf("library[0] = %q, want most recent entry first", updated.Library[0].ID)
	}

	// Persisted, not just in the returned copy.
	stored, ok := repo.Get(ctx, id)
	if !ok {
		t.Fatal("learner missing after append")
	}
	if len(stored.Library) != 2 || stored.Library[0].ID != "e2" {
		t.Errorf("stored library = %+v", stored.Library)
	}
}

func TestDeleteLibraryEntry(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	learners := repo.List(ctx)
	id := learners[0].ID

	entry := LibraryEntry{ID: "e1", Timestamp: 1000, SourceText: "topic", Cards: []Card{}}
	if _, err := repo.AppendLibraryEntry(ctx, id, entry); err != nil {
		t.Fatalf("append: %v", err)
	}

	updated, err := repo.DeleteLibraryEntry(ctx, id, "e1")
	if err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if len(updated.Library) != 0 {
		t.Errorf("library has %d entries, want 0", len(updated.Library))
	}

	// Deleting a missing entry id is a no-op.
	updated, err = repo.DeleteLibraryEntry(ctx, id, "missing")
	if err != nil {
		t.Fatalf("delete missing entry: %v", err)
	}
	if len(updated.Library) != 0 {
		t.Errorf("library changed on missing-id delete")
	}
}
