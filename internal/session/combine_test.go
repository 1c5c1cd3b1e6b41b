package session

import (
	"math"
	"testing"
	"time"

	"github.com/amanlall/QuickTranscipt/internal/note"
)

func seg(id, content string, ts int64, conf *float64) note.Segment {
	return note.Segment{
		ID:           id,
		Content:      content,
		Language:     "en-US",
		LanguageName: "English (US)",
		Timestamp:    ts,
		Confidence:   conf,
	}
}

func TestCombineEmpty(t *testing.T) {
	if _, ok := Combine(nil, time.Now()); ok {
		t.Error("combine of no segments should report false")
	}
}

func TestCombineJoinsWithBlankLines(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	segments := []note.Segment{
		seg("segment-1", "first", 1000, note.Float64Ptr(1)),
		seg("segment-2", "second", 3000, note.Float64Ptr(1)),
		seg("segment-3", "third", 6000, note.Float64Ptr(1)),
	}

	n, ok := Combine(segments, now)
	if !ok {
		t.Fatal("combine reported false")
	}
	if got, want := n.Content, "first\n\nsecond\n\nthird"; got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestCombineDatesNoteToFirstSegment(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	segments := []note.Segment{
		seg("segment-1", "a", 10_000, nil),
		seg("segment-2", "b", 25_000, nil),
	}

	n, _ := Combine(segments, now)
	if n.Timestamp != 10_000 {
		t.Errorf("timestamp = %d, want 10000 (first segment, not combine time)", n.Timestamp)
	}
	if n.Duration == nil || *n.Duration != 15 {
		t.Errorf("duration = %v, want 15 (span between first and last)", n.Duration)
	}
}

func TestCombineConfidenceMeanCountsMissingAsZero(t *testing.T) {
	now := time.Now()
	segments := []note.Segment{
		seg("segment-1", "a", 1000, note.Float64Ptr(0.9)),
		seg("segment-2", "b", 2000, note.Float64Ptr(0.8)),
		seg("segment-3", "c", 3000, nil),
	}

	n, _ := Combine(segments, now)
	if n.Confidence == nil {
		t.Fatal("confidence = nil, want a value")
	}
	want := (0.9 + 0.8 + 0) / 3
	if math.Abs(*n.Confidence-want) > 1e-9 {
		t.Errorf("confidence = %v, want %v", *n.Confidence, want)
	}
}

func TestCombineSingleSegment(t *testing.T) {
	now := time.Now()
	segments := []note.Segment{seg("segment-1", "solo", 5000, note.Float64Ptr(0.75))}

	n, _ := Combine(segments, now)
	if n.Content != "solo" {
		t.Errorf("content = %q, want %q", n.Content, "solo")
	}
	if n.Duration == nil || *n.Duration != 0 {
		t.Errorf("duration = %v, want 0", n.Duration)
	}
	if n.Confidence == nil || *n.Confidence != 0.75 {
		t.Errorf("confidence = %v, want 0.75", n.Confidence)
	}
}

func TestCombineTitleAndID(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	segments := []note.Segment{seg("segment-1", "x", 1000, nil)}

	n, _ := Combine(segments, now)
	if got, want := n.Title, "#8/28/2026 Combined Session"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
	if got, want := n.ID, note.CombinedID(now); got != want {
		t.Errorf("id = %q, want %q", got, want)
	}
}
