package speech

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Replay plays back an NDJSON event file as if it were a live recognition
// source. Commands succeed without effect, so the app can run unchanged
// against a recorded session.
type Replay struct {
	closer  io.Closer
	scanner *bufio.Scanner
	ended   bool
}

// OpenReplay opens an NDJSON event file for playback.
func OpenReplay(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay file: %w", err)
	}
	return NewReplay(f), nil
}

// NewReplay wraps a reader of NDJSON event lines.
func NewReplay(r io.ReadCloser) *Replay {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	return &Replay{closer: r, scanner: scanner}
}

// SendCommand accepts any command.
func (r *Replay) SendCommand(cmd Command) (Response, error) {
	return Response{OK: true, Status: "replay"}, nil
}

// ReadEvent returns the next recorded event. When the file is exhausted a
// single end event is delivered, then the stream reports closed.
func (r *Replay) ReadEvent() (Event, error) {
	for r.scanner.Scan() {
		line := r.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			return Event{}, fmt.Errorf("unmarshal event: %w", err)
		}
		return ev, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Event{}, fmt.Errorf("read event: %w", err)
	}
	if !r.ended {
		r.ended = true
		return Event{Event: EventEnd}, nil
	}
	return Event{}, fmt.Errorf("connection closed")
}

// Close closes the underlying file.
func (r *Replay) Close() error {
	return r.closer.Close()
}
