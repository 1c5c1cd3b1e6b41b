package enhance

import "testing"

func TestPendingLifecycle(t *testing.T) {
	p := NewPending()

	token := p.Begin("n1")
	if !p.InProgress("n1") {
		t.Error("not in progress after Begin")
	}
	if _, ok := p.Text("n1"); ok {
		t.Error("text available while still in progress")
	}

	p.Complete("n1", token, "enhanced")
	if p.InProgress("n1") {
		t.Error("still in progress after Complete")
	}
	text, ok := p.Text("n1")
	if !ok || text != "enhanced" {
		t.Errorf("text = %q, %v, want %q, true", text, ok, "enhanced")
	}
}

func TestPendingDiscardRemovesEntry(t *testing.T) {
	p := NewPending()
	token := p.Begin("n1")
	p.Complete("n1", token, "proposal")

	p.Discard("n1")
	if _, ok := p.Text("n1"); ok {
		t.Error("text still available after discard")
	}
	if p.Len() != 0 {
		t.Errorf("len = %d, want 0", p.Len())
	}
}

func TestPendingReplacedRequestCompletionDropped(t *testing.T) {
	p := NewPending()
	stale := p.Begin("n1")
	fresh := p.Begin("n1")

	// The first request's completion arrives late and must be ignored.
	p.Complete("n1", stale, "stale text")
	if _, ok := p.Text("n1"); ok {
		t.Error("stale completion was accepted")
	}
	if !p.InProgress("n1") {
		t.Error("fresh request no longer in progress")
	}

	p.Complete("n1", fresh, "fresh text")
	if text, _ := p.Text("n1"); text != "fresh text" {
		t.Errorf("text = %q, want %q", text, "fresh text")
	}
}

func TestPendingFail(t *testing.T) {
	p := NewPending()
	token := p.Begin("n1")
	p.Fail("n1", token)

	if p.InProgress("n1") {
		t.Error("still in progress after Fail")
	}
	if p.Len() != 0 {
		t.Errorf("len = %d, want 0", p.Len())
	}

	// A stale failure must not clobber a newer request.
	stale := p.Begin("n2")
	p.Begin("n2")
	p.Fail("n2", stale)
	if !p.InProgress("n2") {
		t.Error("stale failure removed the fresh request")
	}
}

func TestPendingIsolatedPerNote(t *testing.T) {
	p := NewPending()
	t1 := p.Begin("n1")
	t2 := p.Begin("n2")
	p.Complete("n1", t1, "one")
	p.Complete("n2", t2, "two")

	p.Discard("n1")
	if text, ok := p.Text("n2"); !ok || text != "two" {
		t.Errorf("n2 text = %q, %v, want %q, true", text, ok, "two")
	}
}
