package transcript

import "strings"

// Result is one recognition result fragment. Interim results are
// best-effort and will be superseded; final results are authoritative for
// their utterance span.
type Result struct {
	ResultID   string
	Final      bool
	Text       string
	Confidence float64
}

// Accumulator reconciles interim and final recognition results into a
// growing final transcript plus the latest interim snapshot. It holds no
// locks; callers serialize access (the TUI event loop does this naturally).
type Accumulator struct {
	final      strings.Builder
	interim    string
	confidence float64
}

// Apply folds a batch of results delivered together into the accumulator.
// Final fragments are normalized and appended in event order; the batch's
// interim fragments are normalized and replace the previous interim value.
// Confidence tracks the most recent final fragment.
func (a *Accumulator) Apply(batch []Result) {
	var interim strings.Builder
	for _, r := range batch {
		if r.Final {
			a.final.WriteString(NormalizeSentences(r.Text))
			a.confidence = r.Confidence
		} else {
			interim.WriteString(NormalizeSentences(r.Text))
		}
	}
	// Interim text is a snapshot, never an accumulation. An empty batch
	// interim leaves the previous snapshot in place until superseded.
	if interim.Len() > 0 {
		a.interim = interim.String()
	}
}

// Final returns the accumulated final transcript.
func (a *Accumulator) Final() string { return a.final.String() }

// Interim returns the latest interim snapshot.
func (a *Accumulator) Interim() string { return a.interim }

// Confidence returns the confidence of the most recent final fragment.
func (a *Accumulator) Confidence() float64 { return a.confidence }

// Remainder returns any text still sitting in the accumulators, final
// first, joined with a single space and trimmed.
func (a *Accumulator) Remainder() string {
	return strings.TrimSpace(strings.TrimSpace(a.final.String()) + " " + a.interim)
}

// ClearInterim drops the interim snapshot, e.g. when recognition stops
// mid-utterance.
func (a *Accumulator) ClearInterim() { a.interim = "" }

// Reset clears both transcripts and the confidence.
func (a *Accumulator) Reset() {
	a.final.Reset()
	a.interim = ""
	a.confidence = 0
}
