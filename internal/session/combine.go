package session

import (
	"strings"
	"time"

	"github.com/amanlall/QuickTranscipt/internal/note"
)

// Combine merges segments into one note. The note is dated to the first
// segment (when the session started, not when combined), its duration is
// the wall-clock span between first and last segment, and its confidence
// is the arithmetic mean over all segments with a missing confidence
// counted as zero. Reports false for an empty segment list.
func Combine(segments []note.Segment, now time.Time) (note.Note, bool) {
	if len(segments) == 0 {
		return note.Note{}, false
	}

	contents := make([]string, 0, len(segments))
	var confidenceSum float64
	for _, seg := range segments {
		contents = append(contents, seg.Content)
		if seg.Confidence != nil {
			confidenceSum += *seg.Confidence
		}
	}

	first := segments[0]
	last := segments[len(segments)-1]

	return note.Note{
		ID:           note.CombinedID(now),
		Title:        note.CombinedTitle(now),
		Content:      strings.Join(contents, "\n\n"),
		Language:     first.Language,
		LanguageName: first.LanguageName,
		Timestamp:    first.Timestamp,
		Duration:     note.Float64Ptr(float64(last.Timestamp-first.Timestamp) / 1000),
		Confidence:   note.Float64Ptr(confidenceSum / float64(len(segments))),
	}, true
}
