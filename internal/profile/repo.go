package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/contextlens/internal/store"
)

// Repo provides CRUD access to learner profiles and the teacher record,
// backed by the durable record store. Reads never fail: malformed or
// missing data falls back to the seed profiles / default teacher.
type Repo struct {
	records store.RecordStore
}

// NewRepo creates a repository over the given record store.
func NewRepo(records store.RecordStore) *Repo {
	return &Repo{records: records}
}

// List returns all learner profiles, normalized, in stored order.
// On first-ever read (nothing stored) it returns the built-in seed set.
func (r *Repo) List(ctx context.Context) []Learner {
	data, ok, err := r.records.Get(ctx, store.KeyProfiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: read profiles: %v; using samples\n", err)
		return SeedLearners()
	}
	if !ok {
		return SeedLearners()
	}

	learners, err := DecodeLearners(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: parse profiles: %v; using samples\n", err)
		return SeedLearners()
	}
	return learners
}

// Get returns the learner with the given id, if present.
func (r *Repo) Get(ctx context.Context, id string) (Learner, bool) {
	for _, l := range r.List(ctx) {
		if l.ID == id {
			return l, true
		}
	}
	return Learner{}, false
}

// Save replaces the profile with the same id in place (preserving list
// position), or appends it if the id is new, then persists the whole list.
// The incoming record replaces the old one entirely; no field merge.
func (r *Repo) Save(ctx context.Context, learner Learner) error {
	learners := r.List(ctx)

	replaced := false
	for i := range learners {
		if learners[i].ID == learner.ID {
			learners[i] = learner
			replaced = true
			break
		}
	}
	if !replaced {
		learners = append(learners, learner)
	}

	return r.SaveAll(ctx, learners)
}

// Delete removes the profile with the given id and persists the list.
// A missing id is a no-op, not an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	learners := r.List(ctx)

	filtered := learners[:0]
	for _, l := range learners {
		if l.ID != id {
			filtered = append(filtered, l)
		}
	}

	return r.SaveAll(ctx, filtered)
}

// SaveAll persists the given list wholesale, replacing all stored profiles.
func (r *Repo) SaveAll(ctx context.Context, learners []Learner) error {
	if learners == nil {
		learners = []Learner{}
	}
	data, err := json.Marshal(learners)
	if err != nil {
		return fmt.Errorf("marshal profiles: %w", err)
	}
	if err := r.records.Set(ctx, store.KeyProfiles, data); err != nil {
		return fmt.Errorf("persist profiles: %w", err)
	}
	return nil
}

// Teacher returns the stored teacher record, or the default if unset or
// unreadable. Never fails.
func (r *Repo) Teacher(ctx context.Context) Teacher {
	data, ok, err := r.records.Get(ctx, store.KeyTeacher)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: read teacher profile: %v; using default\n", err)
		return DefaultTeacher()
	}
	if !ok {
		return DefaultTeacher()
	}

	var teacher Teacher
	if err := json.Unmarshal(data, &teacher); err != nil {
		fmt.Fprintf(os.Stderr, "warning: parse teacher profile: %v; using default\n", err)
		return DefaultTeacher()
	}
	return teacher
}

// SaveTeacher overwrites the teacher record unconditionally.
func (r *Repo) SaveTeacher(ctx context.Context, teacher Teacher) error {
	data, err := json.Marshal(teacher)
	if err != nil {
		return fmt.Errorf("marshal teacher profile: %w", err)
	}
	if err := r.records.Set(ctx, store.KeyTeacher, data); err != nil {
		return fmt.Errorf("persist teacher profile: %w", err)
	}
	return nil
}

// AppendLibraryEntry prepends entry to the learner's library (newest
// first) and saves the updated profile. Returns the updated learner.
func (r *Repo) AppendLibraryEntry(ctx context.Context, learnerID string, entry LibraryEntry) (Learner, error) {
	learner, ok := r.Get(ctx, learnerID)
	if !ok {
		return Learner{}, fmt.Errorf("learner %q not found", learnerID)
	}

	learner.Library = append([]LibraryEntry{entry}, learner.Library...)
	if err := r.Save(ctx, learner); err != nil {
		return Learner{}, err
	}
	return learner, nil
}

// DeleteLibraryEntry removes the entry with the given id from the
// learner's library. A missing entry id is a no-op.
func (r *Repo) DeleteLibraryEntry(ctx context.Context, learnerID, entryID string) (Learner, error) {
	learner, ok := r.Get(ctx, learnerID)
	if !ok {
		return Learner{}, fmt.Errorf("learner %q not found", learnerID)
	}

	filtered := learner.Library[:0]
	for _, e := range learner.Library {
		if e.ID != entryID {
			filtered = append(filtered, e)
		}
	}
	learner.Library = filtered

	if err := r.Save(ctx, learner); err != nil {
		return Learner{}, err
	}
	return learner, nil
}
