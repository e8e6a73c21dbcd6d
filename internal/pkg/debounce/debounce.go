// Package debounce provides a cancellable timer that collapses rapid
// re-arms into the latest one: arming cancels any pending fire, so a
// burst of calls runs the callback once, for the last arm only, after
// the input has been quiet for the full delay.
package debounce

import (
	"sync"
	"time"
)

// Timer is a re-armable, cancellable delay timer.
// The zero value is ready to use.
type Timer struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// Arm schedules fn to run after delay, cancelling any pending fire.
// A fire that has already started checking in is discarded by the
// generation guard, so fn from a superseded arm never runs.
func (t *Timer) Arm(delay time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen

	t.timer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		if gen != t.gen {
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
		fn()
	})
}

// Stop cancels any pending fire without arming a new one.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}
