package enhance

import (
	"context"
	"fmt"
	"strings"
)

// Offline restructures note content locally without calling any service.
// Used when no API key is configured.
type Offline struct{}

// Enhance produces a markdown summary of the content: a heading derived
// from the kind of notes, the leading sentences as key points, and a
// checklist of sentences that read like actions.
func (Offline) Enhance(_ context.Context, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("nothing to enhance")
	}

	sentences := splitSentences(content)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", classify(content))

	b.WriteString("## Key Points\n\n")
	for i, s := range sentences {
		if i == 3 {
			break
		}
		fmt.Fprintf(&b, "- %s.\n", s)
	}

	if actions := actionItems(sentences); len(actions) > 0 {
		b.WriteString("\n## Action Items\n\n")
		for _, a := range actions {
			fmt.Fprintf(&b, "- [ ] %s.\n", a)
		}
	}

	b.WriteString("\n---\n*Enhanced locally • Original preserved*\n")
	return b.String(), nil
}

func classify(content string) string {
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "meeting"):
		return "Meeting Notes"
	case strings.Contains(content, "?"):
		return "Q&A Session"
	case strings.Contains(lower, "idea"):
		return "Brainstorming Session"
	case strings.Contains(content, "1.") || strings.Contains(content, "- "):
		return "Structured Notes"
	default:
		return "General Notes"
	}
}

func splitSentences(content string) []string {
	var out []string
	for _, s := range strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

var actionVerbs = []string{"need to", "should", "must", "todo", "follow up", "remember to"}

func actionItems(sentences []string) []string {
	var out []string
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
