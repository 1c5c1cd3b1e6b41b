// Package note defines the persisted note model and the ephemeral segment
// records produced during a recording session.
package note

import (
	"fmt"
	"time"
)

// Note is a saved transcription. Optional fields use pointers so that
// absence survives a serialize/deserialize round trip.
type Note struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Language     string   `json:"language"`
	LanguageName string   `json:"languageName"`
	Timestamp    int64    `json:"timestamp"` // epoch milliseconds
	Duration     *float64 `json:"duration,omitempty"`
	Confidence   *float64 `json:"confidence,omitempty"`
	AIEnhanced   string   `json:"aiEnhanced,omitempty"`
}

// Segment is a session-scoped snapshot of recognized speech. It shares the
// Note shape but is never written to durable storage; it lives in memory
// until combined into a Note or dropped when a new session starts.
type Segment = Note

// Time returns the creation time of the note.
func (n Note) Time() time.Time {
	return time.UnixMilli(n.Timestamp)
}

// DisplayTitle returns the user-set title, or the timestamp-derived default
// when no title has been set.
func (n Note) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	return DefaultTitle(n.Timestamp)
}

// DefaultTitle derives the fallback label for a note created at the given
// epoch-millisecond timestamp.
func DefaultTitle(timestamp int64) string {
	t := time.UnixMilli(timestamp)
	return fmt.Sprintf("#%s %s", t.Format("1/2/2006"), t.Format("3:04:05 PM"))
}

// CombinedTitle labels a note produced by combining a session's segments.
func CombinedTitle(now time.Time) string {
	return fmt.Sprintf("#%s Combined Session", now.Format("1/2/2006"))
}

// SegmentID returns the id for a segment flushed at the given time.
func SegmentID(now time.Time) string {
	return fmt.Sprintf("segment-%d", now.UnixMilli())
}

// CombinedID returns the id for a note combined at the given time.
func CombinedID(now time.Time) string {
	return fmt.Sprintf("combined-%d", now.UnixMilli())
}

// Float64Ptr returns a pointer to v. Convenience for optional fields.
func Float64Ptr(v float64) *float64 { return &v }
