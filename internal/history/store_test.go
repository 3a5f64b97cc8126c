package history

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func tempHistory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mentora", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dirs", "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
}

func TestRecordAndRecent(t *testing.T) {
	s := tempHistory(t)

	mutations := []struct {
		concept string
		known   bool
	}{
		{"Flexbox", true},
		{"Grid", false},
		{"Container Queries", true},
	}
	for _, m := range mutations {
		if err := s.Record(m.concept, m.known); err != nil {
			t.Fatalf("Record(%s): %v", m.concept, err)
		}
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Recent len = %d, want 3", len(entries))
	}

	// Newest first.
	if entries[0].Concept != "Container Queries" || entries[2].Concept != "Flexbox" {
		t.Errorf("order = [%s %s %s], want newest first",
			entries[0].Concept, entries[1].Concept, entries[2].Concept)
	}
	if !entries[0].Known || entries[1].Known {
		t.Errorf("known flags not round-tripped: %+v", entries)
	}
	if entries[0].CreatedAt == "" {
		t.Error("CreatedAt not populated")
	}
}

func TestRecent_Limit(t *testing.T) {
	s := tempHistory(t)
	for i := 0; i < 5; i++ {
		if err := s.Record("Concept", true); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Recent len = %d, want 2", len(entries))
	}
}

func TestRecent_Empty(t *testing.T) {
	s := tempHistory(t)

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Recent len = %d, want 0", len(entries))
	}
}

func TestOpen_DriverFailure(t *testing.T) {
	orig := openDB
	openDB = func(driver, dsn string) (*sql.DB, error) {
		return nil, errors.New("driver unavailable")
	}
	defer func() { openDB = orig }()

	if _, err := Open(filepath.Join(t.TempDir(), "history.db")); err == nil {
		t.Error("Open succeeded with failing driver")
	}
}
