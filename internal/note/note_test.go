package note

import (
	"testing"
	"time"
)

func TestDefaultTitle(t *testing.T) {
	ts := time.Date(2026, 8, 28, 15, 4, 5, 0, time.Local).UnixMilli()
	if got, want := DefaultTitle(ts), "#8/28/2026 3:04:05 PM"; got != want {
		t.Errorf("DefaultTitle = %q, want %q", got, want)
	}
}

func TestDisplayTitle(t *testing.T) {
	n := Note{Title: "Custom", Timestamp: time.Now().UnixMilli()}
	if n.DisplayTitle() != "Custom" {
		t.Errorf("DisplayTitle = %q, want %q", n.DisplayTitle(), "Custom")
	}

	n.Title = ""
	if got, want := n.DisplayTitle(), DefaultTitle(n.Timestamp); got != want {
		t.Errorf("DisplayTitle = %q, want %q", got, want)
	}
}

func TestSegmentAndCombinedIDs(t *testing.T) {
	now := time.UnixMilli(1756368000000)
	if got, want := SegmentID(now), "segment-1756368000000"; got != want {
		t.Errorf("SegmentID = %q, want %q", got, want)
	}
	if got, want := CombinedID(now), "combined-1756368000000"; got != want {
		t.Errorf("CombinedID = %q, want %q", got, want)
	}
}

func TestLanguageLookup(t *testing.T) {
	if got := LanguageName("fr-FR"); got != "Français (French)" {
		t.Errorf("LanguageName(fr-FR) = %q", got)
	}
	if got := LanguageName("xx-XX"); got != "" {
		t.Errorf("LanguageName(xx-XX) = %q, want empty", got)
	}
	if got := LanguageFlag("ja-JP"); got != "🇯🇵" {
		t.Errorf("LanguageFlag(ja-JP) = %q", got)
	}
	if len(Languages) != 15 {
		t.Errorf("languages = %d, want 15", len(Languages))
	}
}
