package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amanlall/QuickTranscipt/internal/note"
)

// FilterAll is the language filter value matching every language.
const FilterAll = "all"

// Store owns the durable note list. Every accepted mutation re-serializes
// the full list to the backend before the in-memory copy is updated, so
// memory and backing copy never diverge: a failed write rejects the
// mutation and leaves both unchanged.
//
// The store does no locking; all calls arrive from one event loop.
type Store struct {
	backend Backend
	notes   []note.Note
}

// New returns a store over the given backend with an empty list. Call Load
// to read the persisted notes.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load reads the backing slot once at startup. An absent slot yields an
// empty list. A slot that cannot be parsed also yields an empty list — the
// corrupt value is discarded rather than crashing — and the parse error is
// returned so the caller can report it.
func (s *Store) Load() error {
	data, ok, err := s.backend.Load()
	if err != nil {
		return err
	}
	if !ok {
		s.notes = nil
		return nil
	}
	var notes []note.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.notes = nil
		return fmt.Errorf("parse saved notes: %w", err)
	}
	s.notes = notes
	return nil
}

// Len returns the number of notes.
func (s *Store) Len() int { return len(s.notes) }

// Notes returns a copy of the note list, most recent first.
func (s *Store) Notes() []note.Note {
	out := make([]note.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Get returns the note with the given id.
func (s *Store) Get(id string) (note.Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return note.Note{}, false
}

// Prepend inserts a note at the head of the list (the display convention
// is most-recent-first). Ids are unique across the store; inserting a
// duplicate id is rejected.
func (s *Store) Prepend(n note.Note) error {
	if _, exists := s.Get(n.ID); exists {
		return fmt.Errorf("note %s already exists", n.ID)
	}
	next := make([]note.Note, 0, len(s.notes)+1)
	next = append(next, n)
	next = append(next, s.notes...)
	return s.commit(next)
}

// Rename sets a note's title. An empty or whitespace-only title falls back
// to the timestamp-derived default label. Renaming a missing id is a
// silent no-op.
func (s *Store) Rename(id, title string) error {
	idx := s.index(id)
	if idx < 0 {
		return nil
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = note.DefaultTitle(s.notes[idx].Timestamp)
	}
	next := s.copyNotes()
	next[idx].Title = title
	return s.commit(next)
}

// Delete removes the note with the given id. A missing id is a silent
// no-op. Callers also discard any pending enhancement for the id.
func (s *Store) Delete(id string) error {
	idx := s.index(id)
	if idx < 0 {
		return nil
	}
	next := make([]note.Note, 0, len(s.notes)-1)
	next = append(next, s.notes[:idx]...)
	next = append(next, s.notes[idx+1:]...)
	return s.commit(next)
}

// ClearAll empties the list and removes the backing slot entirely rather
// than writing an empty list.
func (s *Store) ClearAll() error {
	if err := s.backend.Delete(); err != nil {
		return err
	}
	s.notes = nil
	return nil
}

// ReplaceContent swaps a note's content for the enhanced text, recording
// it in aiEnhanced as well. Title, timestamp and language are untouched.
// A missing id is a silent no-op.
func (s *Store) ReplaceContent(id, text string) error {
	idx := s.index(id)
	if idx < 0 {
		return nil
	}
	next := s.copyNotes()
	next[idx].Content = text
	next[idx].AIEnhanced = text
	return s.commit(next)
}

// Filter returns the notes whose content or language name contains the
// search term (case-insensitive) and whose language matches the filter
// (FilterAll matches every language). The result is recomputed on every
// call and never mutates the store.
func (s *Store) Filter(search, language string) []note.Note {
	search = strings.ToLower(search)
	var out []note.Note
	for _, n := range s.notes {
		matchesSearch := strings.Contains(strings.ToLower(n.Content), search) ||
			strings.Contains(strings.ToLower(n.LanguageName), search)
		matchesLanguage := language == FilterAll || n.Language == language
		if matchesSearch && matchesLanguage {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) index(id string) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) copyNotes() []note.Note {
	next := make([]note.Note, len(s.notes))
	copy(next, s.notes)
	return next
}

// commit serializes the candidate list and writes it to the backend; only
// after the write succeeds does it become the in-memory list.
func (s *Store) commit(next []note.Note) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	if err := s.backend.Save(data); err != nil {
		return err
	}
	s.notes = next
	return nil
}
