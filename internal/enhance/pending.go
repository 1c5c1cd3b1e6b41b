package enhance

// Pending tracks enhancement results per note id between generation and
// the user's accept/discard decision. Requests are single-flight per id:
// beginning a new request replaces an in-flight one, and the replaced
// request's completion is ignored via its stale token.
type Pending struct {
	entries map[string]*entry
}

type entry struct {
	token      int
	text       string
	inProgress bool
}

// NewPending returns an empty tracker.
func NewPending() *Pending {
	return &Pending{entries: make(map[string]*entry)}
}

// Begin marks an enhancement as in progress for the note and returns a
// token identifying this request. Any previous entry for the id — pending
// text or in-flight request — is replaced.
func (p *Pending) Begin(id string) int {
	token := 1
	if prev, ok := p.entries[id]; ok {
		token = prev.token + 1
	}
	p.entries[id] = &entry{token: token, inProgress: true}
	return token
}

// Complete stores the produced text for the note. A completion whose token
// no longer matches (the request was replaced or discarded) is dropped.
func (p *Pending) Complete(id string, token int, text string) {
	e, ok := p.entries[id]
	if !ok || e.token != token {
		return
	}
	e.text = text
	e.inProgress = false
}

// Fail removes the in-flight entry for a request that errored. Stale
// tokens are ignored.
func (p *Pending) Fail(id string, token int) {
	e, ok := p.entries[id]
	if !ok || e.token != token {
		return
	}
	delete(p.entries, id)
}

// Text returns the produced replacement text for the note, if one is
// ready.
func (p *Pending) Text(id string) (string, bool) {
	e, ok := p.entries[id]
	if !ok || e.inProgress {
		return "", false
	}
	return e.text, true
}

// InProgress reports whether a request is still running for the note.
func (p *Pending) InProgress(id string) bool {
	e, ok := p.entries[id]
	return ok && e.inProgress
}

// Discard removes the entry for the note without touching the note
// itself. Also called after an accepted replacement, and when the note is
// deleted.
func (p *Pending) Discard(id string) {
	delete(p.entries, id)
}

// Len returns the number of tracked entries.
func (p *Pending) Len() int { return len(p.entries) }
