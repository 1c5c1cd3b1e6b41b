// Package session holds the in-flight state of one recording session: the
// per-result segment buffer, the periodic flush that turns it into saved
// segments, and the combine step that folds segments into a note.
package session

import "strings"

// Buffer maps recognizer result ids to their latest text. Both interim and
// final results may update the same id; a later update overwrites the
// earlier text but keeps the original insertion position, so a recognizer
// revising its own interim guess does not reorder the transcript.
type Buffer struct {
	order []string
	texts map[string]string
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{texts: make(map[string]string)}
}

// Set records the latest text for a result id.
func (b *Buffer) Set(resultID, text string) {
	if _, ok := b.texts[resultID]; !ok {
		b.order = append(b.order, resultID)
	}
	b.texts[resultID] = text
}

// Len returns the number of distinct result ids held.
func (b *Buffer) Len() int { return len(b.order) }

// Joined returns all entries in insertion order, separated by single
// spaces and trimmed.
func (b *Buffer) Joined() string {
	parts := make([]string, 0, len(b.order))
	for _, id := range b.order {
		parts = append(parts, b.texts[id])
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Clear drops every entry. Fragments never carry across flushes.
func (b *Buffer) Clear() {
	b.order = b.order[:0]
	b.texts = make(map[string]string)
}
