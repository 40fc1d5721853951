package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plugins.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s, _ := openTestStore(t)

	names, err := s.DisabledNames()
	if err != nil {
		t.Fatalf("DisabledNames() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("fresh store has disabled entries: %v", names)
	}

	if err := s.SetEnabled("Alpha", false); err != nil {
		t.Fatal(err)
	}
	if err := s.SetEnabled("Beta", true); err != nil {
		t.Fatal(err)
	}

	names, err = s.DisabledNames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "Alpha" {
		t.Errorf("DisabledNames() = %v, want [Alpha]", names)
	}

	// Flipping back removes it from the disabled set.
	if err := s.SetEnabled("Alpha", true); err != nil {
		t.Fatal(err)
	}
	names, err = s.DisabledNames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Errorf("DisabledNames() after re-enable = %v, want none", names)
	}
}

func TestSQLiteStore_Persists(t *testing.T) {
	s, path := openTestStore(t)
	if err := s.SetEnabled("Alpha", false); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	names, err := reopened.DisabledNames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "Alpha" {
		t.Errorf("DisabledNames() after reopen = %v, want [Alpha]", names)
	}
}
