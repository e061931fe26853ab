package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Process-wide record keys. Each key addresses one independently written
// JSON document; there is no transaction spanning both.
const (
	KeyProfiles = "profiles"
	KeyTeacher  = "teacher"
)

// RecordStore is durable key-value storage for JSON documents.
// Reads distinguish "absent" from "present but empty" via the ok flag.
type RecordStore interface {
	// Get returns the raw value stored under key, or ok=false if absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

// recordStore implements RecordStore on the records table.
type recordStore struct {
	db *sql.DB
}

func (r *recordStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM records WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get record %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (r *recordStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO records (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("set record %q: %w", key, err)
	}
	return nil
}
