// Package transcript turns raw recognition results into an accumulating
// final transcript and a transient interim transcript.
package transcript

import "strings"

// terminal reports whether r ends a sentence.
func terminal(r byte) bool {
	return r == '.' || r == '!' || r == '?'
}

// NormalizeSentences collapses internal whitespace, splits the text into
// sentences on terminal punctuation, and re-emits each sentence trimmed,
// with exactly one terminal mark (a period is added when the sentence has
// none) and a single trailing space.
func NormalizeSentences(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return ""
	}

	var out strings.Builder
	start := 0
	flush := func(end int, punct byte) {
		sentence := strings.TrimSpace(collapsed[start:end])
		if sentence == "" {
			return
		}
		out.WriteString(sentence)
		if punct != 0 {
			out.WriteByte(punct)
		} else if !terminal(sentence[len(sentence)-1]) {
			out.WriteByte('.')
		}
		out.WriteByte(' ')
	}

	for i := 0; i < len(collapsed); i++ {
		if terminal(collapsed[i]) {
			flush(i, collapsed[i])
			start = i + 1
		}
	}
	flush(len(collapsed), 0)

	return out.String()
}
