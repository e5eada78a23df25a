package tracker

import (
	"sync"
	"time"
)

// Debouncer runs a function once after a quiet period. Arm starts (or
// restarts) the countdown, so rapid successive calls coalesce into a
// single firing with whatever state exists at fire time.
type Debouncer struct {
	quiet time.Duration
	fn    func()

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewDebouncer creates a debouncer that fires fn after quiet elapses with
// no further Arm calls.
func NewDebouncer(quiet time.Duration, fn func()) *Debouncer {
	return &Debouncer{quiet: quiet, fn: fn}
}

// Arm schedules a firing after the quiet period, cancelling any pending
// one. Calling Arm again before the period elapses restarts the clock.
func (d *Debouncer) Arm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fn)
}

// Cancel drops any pending firing without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Close cancels any pending firing and rejects future Arm calls.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
