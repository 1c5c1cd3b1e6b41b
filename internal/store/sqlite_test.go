package store

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *SQLiteBackend {
	t.Helper()
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "notes.sqlite"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestSQLiteLoadAbsent(t *testing.T) {
	b := openTestDB(t)
	_, ok, err := b.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Error("ok = true for a slot that was never written")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	b := openTestDB(t)

	if err := b.Save([]byte(`[{"id":"n1"}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, ok, err := b.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("ok = false after save")
	}
	if string(data) != `[{"id":"n1"}]` {
		t.Errorf("data = %q, want the saved bytes", data)
	}

	// A second save overwrites the single slot.
	if err := b.Save([]byte(`[]`)); err != nil {
		t.Fatalf("second save: %v", err)
	}
	data, _, err = b.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("data = %q, want %q", data, `[]`)
	}
}

func TestSQLiteDelete(t *testing.T) {
	b := openTestDB(t)

	if err := b.Save([]byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := b.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := b.Load(); ok {
		t.Error("slot still present after delete")
	}

	if err := b.Delete(); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestSQLiteStoreIntegration(t *testing.T) {
	b := openTestDB(t)
	s := New(b)
	if err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := s.Prepend(testNote("n1", "persisted through sqlite", "en-US")); err != nil {
		t.Fatalf("prepend: %v", err)
	}

	reloaded := New(b)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	n, ok := reloaded.Get("n1")
	if !ok {
		t.Fatal("note missing after reload")
	}
	if n.Content != "persisted through sqlite" {
		t.Errorf("content = %q, want %q", n.Content, "persisted through sqlite")
	}
}
