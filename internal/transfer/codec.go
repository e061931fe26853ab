// Package transfer serializes the full application state (learner
// profiles plus the teacher record) to a single JSON document and back.
package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/contextlens/internal/profile"
)

var (
	// ErrMalformedDocument indicates the import input is not valid JSON.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrValidationFailed indicates a profile in the import is missing a
	// required field. Nothing is persisted when this is returned.
	ErrValidationFailed = errors.New("validation failed")
)

// Document is the export envelope.
type Document struct {
	Profiles []profile.Learner `json:"profiles"`
	Teacher  profile.Teacher   `json:"teacher"`
}

// Codec reads and writes the whole persisted state through the repository.
type Codec struct {
	repo *profile.Repo
}

// NewCodec creates a codec over the given repository.
func NewCodec(repo *profile.Repo) *Codec {
	return &Codec{repo: repo}
}

// Export returns the current persisted state as a pretty-printed JSON
// document. It reflects storage, not transient UI state.
func (c *Codec) Export(ctx context.Context) ([]byte, error) {
	doc := Document{
		Profiles: c.repo.List(ctx),
		Teacher:  c.repo.Teacher(ctx),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// Import parses data, validates it, and on success replaces the entire
// persisted state. Two shapes are accepted: the export envelope, or a
// legacy bare array of profiles (the teacher then defaults). Validation
// is all-or-nothing: on any failure the prior state is untouched.
func (c *Codec) Import(ctx context.Context, data []byte) (Document, error) {
	doc, err := Decode(data)
	if err != nil {
		return Document{}, err
	}

	if err := c.repo.SaveAll(ctx, doc.Profiles); err != nil {
		return Document{}, fmt.Errorf("persist imported profiles: %w", err)
	}
	if err := c.repo.SaveTeacher(ctx, doc.Teacher); err != nil {
		return Document{}, fmt.Errorf("persist imported teacher: %w", err)
	}

	return doc, nil
}

// Decode parses and validates an import document without persisting it.
func Decode(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Document{}, fmt.Errorf("%w: empty input", ErrMalformedDocument)
	}

	var doc Document

	if trimmed[0] == '[' {
		// Legacy format: bare profiles array, default teacher.
		learners, err := profile.DecodeLearners(trimmed)
		if err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		doc.Profiles = learners
		doc.Teacher = profile.DefaultTeacher()
	} else {
		// Anything else must be the envelope object. This also rejects
		// top-level null, which would otherwise unmarshal as a no-op.
		if trimmed[0] != '{' {
			return Document{}, fmt.Errorf("%w: expected a JSON object or array", ErrMalformedDocument)
		}
		var envelope struct {
			Profiles json.RawMessage `json:"profiles"`
			Teacher  json.RawMessage `json:"teacher"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		// A missing, null, or non-array profiles value defaults to an
		// empty list. A present array must decode in full; a bad element
		// rejects the whole document rather than vanishing silently.
		doc.Profiles = []profile.Learner{}
		if raw := bytes.TrimSpace(envelope.Profiles); len(raw) > 0 && raw[0] == '[' {
			learners, err := profile.DecodeLearners(raw)
			if err != nil {
				return Document{}, fmt.Errorf("%w: profiles: %v", ErrValidationFailed, err)
			}
			doc.Profiles = learners
		}

		doc.Teacher = profile.DefaultTeacher()
		if len(envelope.Teacher) > 0 && !bytes.Equal(envelope.Teacher, []byte("null")) {
			var teacher profile.Teacher
			if err := json.Unmarshal(envelope.Teacher, &teacher); err == nil {
				doc.Teacher = teacher
			}
		}
	}

	for i, l := range doc.Profiles {
		if l.ID == "" || l.Name == "" || l.NativeLanguage == "" {
			return Document{}, fmt.Errorf(
				"%w: profile %d is missing a required field (id, name, nativeLanguage)",
				ErrValidationFailed, i)
		}
	}

	return doc, nil
}

// ExportFileName returns the download name for an export taken at t,
// encoding the date: contextlens-data-2006-01-02.json.
func ExportFileName(t time.Time) string {
	return "contextlens-data-" + t.Format("2006-01-02") + ".json"
}
