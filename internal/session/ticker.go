package session

import (
	"sync"
	"time"
)

// Ticker runs a callback on a fixed period until stopped. Start while
// running cancels the previous run first, so a restart is idempotent and
// at most one tick loop is ever active. Stop waits for the loop to exit,
// guaranteeing no tick fires after Stop returns.
//
// The TUI drives its flushes through bubbletea's own tick messages; this
// type backs headless use of the recorder.
type Ticker struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// Start begins ticking every interval, invoking fn on each tick.
func (t *Ticker) Start(interval time.Duration, fn func()) {
	t.Stop()

	t.mu.Lock()
	stop := make(chan struct{})
	done := make(chan struct{})
	t.stop = stop
	t.done = done
	t.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-stop:
				return
			}
		}
	}()
}

// Stop cancels the active tick loop, if any, and waits for it to finish.
func (t *Ticker) Stop() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}
