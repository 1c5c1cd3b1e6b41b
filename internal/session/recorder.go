package session

import (
	"math"
	"time"

	"github.com/amanlall/QuickTranscipt/internal/note"
	"github.com/amanlall/QuickTranscipt/internal/transcript"
)

// AutosaveInterval is the fixed period between segment flushes while a
// recording is active.
const AutosaveInterval = 2 * time.Second

// Recorder accumulates recognition results for one recording session and
// snapshots them into segments. It is driven from a single event loop and
// performs no locking of its own.
type Recorder struct {
	buf       *Buffer
	acc       *transcript.Accumulator
	locale    string
	localeNm  string
	startedAt time.Time
	recording bool
	segments  []note.Segment
}

// NewRecorder returns a recorder with an empty buffer and transcript.
func NewRecorder() *Recorder {
	return &Recorder{
		buf: NewBuffer(),
		acc: &transcript.Accumulator{},
	}
}

// Transcript exposes the session's transcript accumulator.
func (r *Recorder) Transcript() *transcript.Accumulator { return r.acc }

// Recording reports whether a session is active.
func (r *Recorder) Recording() bool { return r.recording }

// Locale returns the recognition locale of the active session.
func (r *Recorder) Locale() string { return r.locale }

// Segments returns the session's saved segments, oldest first.
func (r *Recorder) Segments() []note.Segment { return r.segments }

// Start begins a recording session at the given locale. Segments left over
// from a previous session that were never combined are dropped, and the
// per-result buffer is reset.
func (r *Recorder) Start(locale string, now time.Time) {
	r.locale = locale
	r.localeNm = note.LanguageName(locale)
	r.startedAt = now
	r.recording = true
	r.segments = nil
	r.buf.Clear()
}

// Result folds one recognition result into the session: the transcript
// accumulator reconciles interim/final text while the buffer keeps the
// latest text per result id for the next flush.
func (r *Recorder) Result(res transcript.Result) {
	r.acc.Apply([]transcript.Result{res})
	r.buf.Set(res.ResultID, res.Text)
}

// Flush snapshots the buffer into a segment. It returns nil when the
// buffer is empty or its joined text is blank; in every case the buffer is
// left empty afterwards.
func (r *Recorder) Flush(now time.Time) *note.Segment {
	if r.buf.Len() == 0 {
		return nil
	}
	joined := r.buf.Joined()
	r.buf.Clear()
	if joined == "" {
		return nil
	}
	seg := r.newSegment(joined, now)
	r.segments = append(r.segments, seg)
	return &r.segments[len(r.segments)-1]
}

// Stop ends the session: a final buffer flush, then a fallback segment
// from any text still sitting in the transcript accumulators. The fallback
// covers recognizer back-ends that never populate the per-result buffer.
// Afterwards the transcript and confidence are reset. The caller must have
// cancelled the autosave tick before calling Stop.
func (r *Recorder) Stop(now time.Time) []note.Segment {
	var flushed []note.Segment

	if seg := r.Flush(now); seg != nil {
		flushed = append(flushed, *seg)
	}

	if remainder := r.acc.Remainder(); remainder != "" {
		seg := r.newSegment(remainder, now)
		r.segments = append(r.segments, seg)
		flushed = append(flushed, seg)
	}

	r.acc.Reset()
	r.recording = false
	return flushed
}

// Combine merges the session's segments into a single note, oldest first,
// and empties the segment list. It reports false without touching anything
// when there are no segments.
func (r *Recorder) Combine(now time.Time) (note.Note, bool) {
	n, ok := Combine(r.segments, now)
	if !ok {
		return note.Note{}, false
	}
	r.segments = nil
	return n, true
}

func (r *Recorder) newSegment(content string, now time.Time) note.Segment {
	seg := note.Segment{
		ID:           note.SegmentID(now),
		Content:      content,
		Language:     r.locale,
		LanguageName: r.localeNm,
		Timestamp:    now.UnixMilli(),
		Confidence:   note.Float64Ptr(r.acc.Confidence()),
	}
	seg.Title = note.DefaultTitle(seg.Timestamp)
	if !r.startedAt.IsZero() {
		seg.Duration = note.Float64Ptr(math.Round(now.Sub(r.startedAt).Seconds()))
	}
	return seg
}
