package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"records", "llm_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestRecordsGetAbsent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Records().Get(ctx, KeyProfiles)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for absent key")
	}
}

func TestRecordsSetGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	records := s.Records()

	if err := records.Set(ctx, KeyTeacher, []byte(`{"name":"Educator"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := records.Get(ctx, KeyTeacher)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after set")
	}
	if string(value) != `{"name":"Educator"}` {
		t.Errorf("value = %q", value)
	}
}

func TestRecordsSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	records := s.Records()

	if err := records.Set(ctx, KeyProfiles, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := records.Set(ctx, KeyProfiles, []byte(`[{"id":"p1"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, ok, err := records.Get(ctx, KeyProfiles)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(value) != `[{"id":"p1"}]` {
		t.Errorf("value = %q", value)
	}
}

func TestRecordKeysIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	records := s.Records()

	if err := records.Set(ctx, KeyProfiles, []byte(`[]`)); err != nil {
		t.Fatalf("set profiles: %v", err)
	}

	// Teacher key is untouched by a profiles write.
	_, ok, err := records.Get(ctx, KeyTeacher)
	if err != nil {
		t.Fatalf("get teacher: %v", err)
	}
	if ok {
		t.Fatal("expected teacher key to remain absent")
	}
}
