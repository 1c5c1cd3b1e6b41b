package transcript

import "testing"

func TestAccumulatorAppendsFinals(t *testing.T) {
	var acc Accumulator
	acc.Apply([]Result{{ResultID: "r1", Final: true, Text: "Hello world", Confidence: 0.91}})
	acc.Apply([]Result{{ResultID: "r2", Final: true, Text: "This is a test", Confidence: 0.88}})

	if got, want := acc.Final(), "Hello world. This is a test. "; got != want {
		t.Errorf("final = %q, want %q", got, want)
	}
	if got := acc.Confidence(); got != 0.88 {
		t.Errorf("confidence = %v, want 0.88", got)
	}
}

func TestAccumulatorInterimReplacedNotAppended(t *testing.T) {
	var acc Accumulator
	acc.Apply([]Result{{ResultID: "r1", Text: "hel"}})
	acc.Apply([]Result{{ResultID: "r1", Text: "hello wor"}})
	acc.Apply([]Result{{ResultID: "r1", Text: "hello world"}})

	if got, want := acc.Interim(), "hello world. "; got != want {
		t.Errorf("interim = %q, want %q", got, want)
	}
	if acc.Final() != "" {
		t.Errorf("final = %q, want empty", acc.Final())
	}
}

func TestAccumulatorInterimSurvivesFinalOnlyBatch(t *testing.T) {
	var acc Accumulator
	acc.Apply([]Result{{ResultID: "r1", Text: "still talking"}})
	acc.Apply([]Result{{ResultID: "r2", Final: true, Text: "done", Confidence: 0.7}})

	// A batch with no interim fragments leaves the previous snapshot alone.
	if got, want := acc.Interim(), "still talking. "; got != want {
		t.Errorf("interim = %q, want %q", got, want)
	}
	if got, want := acc.Final(), "done. "; got != want {
		t.Errorf("final = %q, want %q", got, want)
	}
}

func TestAccumulatorRemainder(t *testing.T) {
	var acc Accumulator
	acc.Apply([]Result{{ResultID: "r1", Final: true, Text: "first part"}})
	acc.Apply([]Result{{ResultID: "r2", Text: "second part"}})

	if got, want := acc.Remainder(), "first part. second part."; got != want {
		t.Errorf("remainder = %q, want %q", got, want)
	}
}

func TestAccumulatorClearInterim(t *testing.T) {
	var acc Accumulator
	acc.Apply([]Result{{ResultID: "r1", Text: "partial"}})
	acc.ClearInterim()

	if acc.Interim() != "" {
		t.Errorf("interim = %q, want empty", acc.Interim())
	}
}

func TestAccumulatorReset(t *testing.T) {
	var acc Accumulator
	acc.Apply([]Result{
		{ResultID: "r1", Final: true, Text: "finished", Confidence: 0.95},
		{ResultID: "r2", Text: "in flight"},
	})
	acc.Reset()

	if acc.Final() != "" {
		t.Errorf("final = %q, want empty", acc.Final())
	}
	if acc.Interim() != "" {
		t.Errorf("interim = %q, want empty", acc.Interim())
	}
	if acc.Confidence() != 0 {
		t.Errorf("confidence = %v, want 0", acc.Confidence())
	}
}
