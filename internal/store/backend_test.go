package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileBackendLoadAbsent(t *testing.T) {
	b := NewFileBackend(filepath.Join(t.TempDir(), "notes.json"))
	_, ok, err := b.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Error("ok = true for a file that was never written")
	}
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "notes.json")
	b := NewFileBackend(path)

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

	// Save leaves no temp file behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}

func TestFileBackendDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	b := NewFileBackend(path)

	if err := b.Save([]byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := b.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := b.Load(); ok {
		t.Error("slot still present after delete")
	}

	// Deleting an absent slot is not an error.
	if err := b.Delete(); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
