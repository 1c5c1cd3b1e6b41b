// Package enhance produces rewritten versions of note content and tracks
// them per note until the user accepts or discards the result.
package enhance

import "context"

// Preamble is the fixed instruction sent ahead of the note content.
const Preamble = `You are an expert note-taker. Given the following raw meeting or idea notes, break them down into clear, concise, actionable bullet points and sections. Make the notes easy to review and understand for a human. Format the output in markdown if possible.`

// Enhancer rewrites raw note content. Implementations are opaque and
// single-shot per request.
type Enhancer interface {
	Enhance(ctx context.Context, content string) (string, error)
}
