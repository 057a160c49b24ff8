// Package debounce delays an action until its trigger has been quiet for a fixed window.
package debounce

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer runs only the last function handed to Trigger, once no other Trigger
// arrived for the configured window. A newer Trigger replaces the pending function;
// it never interrupts one that already started.
type Debouncer struct {
	clock  clockwork.Clock
	window time.Duration

	mu    sync.Mutex
	timer clockwork.Timer
	gen   uint64
}

// New returns a Debouncer with the given quiescence window. A nil clock means wall time.
func New(window time.Duration, clock clockwork.Clock) *Debouncer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Debouncer{clock: clock, window: window}
}

// Window returns the quiescence window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Trigger (re)arms the timer with fn.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.window, func() {
		d.mu.Lock()
		// A callback already queued when Stop lost the race still carries its generation.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending function, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.gen++
}

// Pending reports whether a function is waiting for the window to elapse.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
