package session

import "testing"

func TestBufferOverwritesSameResultID(t *testing.T) {
	b := NewBuffer()
	b.Set("r1", "hel")
	b.Set("r1", "hello wor")
	b.Set("r1", "hello world")

	if b.Len() != 1 {
		t.Fatalf("len = %d, want 1", b.Len())
	}
	if got, want := b.Joined(), "hello world"; got != want {
		t.Errorf("joined = %q, want %q", got, want)
	}
}

func TestBufferKeepsInsertionOrderOnOverwrite(t *testing.T) {
	b := NewBuffer()
	b.Set("r1", "first guess")
	b.Set("r2", "second")
	b.Set("r1", "first")

	if got, want := b.Joined(), "first second"; got != want {
		t.Errorf("joined = %q, want %q", got, want)
	}
}

func TestBufferJoinedTrims(t *testing.T) {
	b := NewBuffer()
	b.Set("r1", "  hello ")
	b.Set("r2", "")

	if got, want := b.Joined(), "hello"; got != want {
		t.Errorf("joined = %q, want %q", got, want)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer()
	b.Set("r1", "something")
	b.Clear()

	if b.Len() != 0 {
		t.Errorf("len after clear = %d, want 0", b.Len())
	}
	if b.Joined() != "" {
		t.Errorf("joined after clear = %q, want empty", b.Joined())
	}

	// Entries never carry across a clear.
	b.Set("r2", "fresh")
	if got, want := b.Joined(), "fresh"; got != want {
		t.Errorf("joined = %q, want %q", got, want)
	}
}
