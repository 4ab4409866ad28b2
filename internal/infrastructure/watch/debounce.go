// Package watch recomputes analytics when the workspace snapshot changes.
// Exports are often written in bursts (editors, sync tools), so change
// events are debounced before triggering a recompute.
package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid path triggers into a single callback once the
// quiet window elapses. Only the most recent path is delivered; a burst of
// writes to the snapshot collapses to one recompute of the final state.
type Debouncer struct {
	window   time.Duration
	callback func(path string)

	mu       sync.Mutex
	timer    *time.Timer
	lastPath string
}

// NewDebouncer creates a debouncer firing callback after window of quiet
// with the last triggered path.
func NewDebouncer(window time.Duration, callback func(path string)) *Debouncer {
	return &Debouncer{window: window, callback: callback}
}

// Trigger records path as the latest change and restarts the quiet window.
func (d *Debouncer) Trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastPath = path
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	path := d.lastPath
	d.mu.Unlock()
	d.callback(path)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
