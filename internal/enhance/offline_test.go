package enhance

import (
	"context"
	"strings"
	"testing"
)

func TestOfflineEnhanceEmpty(t *testing.T) {
	if _, err := (Offline{}).Enhance(context.Background(), "   "); err == nil {
		t.Error("enhance of blank content should fail")
	}
}

func TestOfflineEnhanceMeeting(t *testing.T) {
	out, err := (Offline{}).Enhance(context.Background(),
		"We had a meeting about the launch. We need to ship the beta by Friday. The design looks good.")
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}

	if !strings.HasPrefix(out, "# Meeting Notes\n") {
		t.Errorf("heading missing, got %q", firstLine(out))
	}
	if !strings.Contains(out, "## Key Points") {
		t.Error("key points section missing")
	}
	if !strings.Contains(out, "- [ ] We need to ship the beta by Friday.") {
		t.Errorf("action item missing from:\n%s", out)
	}
	if !strings.Contains(out, "*Enhanced locally • Original preserved*") {
		t.Error("footer missing")
	}
}

func TestOfflineEnhanceNoActions(t *testing.T) {
	out, err := (Offline{}).Enhance(context.Background(), "The sky was clear today.")
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if strings.Contains(out, "## Action Items") {
		t.Error("action items section present with no action sentences")
	}
	if !strings.HasPrefix(out, "# General Notes\n") {
		t.Errorf("heading = %q, want General Notes", firstLine(out))
	}
}

func TestOfflineClassify(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"our meeting ran long", "Meeting Notes"},
		{"why does this happen?", "Q&A Session"},
		{"an idea for the app", "Brainstorming Session"},
		{"1. first item", "Structured Notes"},
		{"plain prose", "General Notes"},
	}
	for _, tt := range tests {
		if got := classify(tt.content); got != tt.want {
			t.Errorf("classify(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
