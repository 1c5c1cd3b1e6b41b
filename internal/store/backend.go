// Package store keeps the durable note list: an in-memory slice kept
// pointwise consistent with a serialized backing copy that is rewritten
// wholesale on every mutation.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend persists the serialized note list as a single slot.
type Backend interface {
	// Load reads the slot. ok is false when the slot has never been
	// written (or was deleted), which is not an error.
	Load() (data []byte, ok bool, err error)
	// Save overwrites the slot wholesale.
	Save(data []byte) error
	// Delete removes the slot entirely, as distinct from saving an empty
	// value.
	Delete() error
}

// FileBackend stores the slot in a single JSON file.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend writing to path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// DefaultNotesPath returns the default location of the notes file.
func DefaultNotesPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".quicktranscript", "notes.json")
}

func (f *FileBackend) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read notes file: %w", err)
	}
	return data, true, nil
}

// Save writes via a temp file and rename so a crash mid-write never leaves
// a truncated slot behind.
func (f *FileBackend) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create notes dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write notes file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("rename notes file: %w", err)
	}
	return nil
}

func (f *FileBackend) Delete() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove notes file: %w", err)
	}
	return nil
}
