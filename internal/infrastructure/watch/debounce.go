// Package watch re-runs reviews when test files change on disk.
package watch

import (
	"sort"
	"sync"
	"time"
)

// Debouncer coalesces rapid path notifications into one callback carrying
// every distinct path seen during the quiet window, sorted.
type Debouncer struct {
	window   time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	pending  map[string]struct{}
	callback func([]string)
}

func NewDebouncer(window time.Duration, callback func([]string)) *Debouncer {
	return &Debouncer{
		window:   window,
		pending:  make(map[string]struct{}),
		callback: callback,
	}
}

// Trigger records path and restarts the quiet window.
func (d *Debouncer) Trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.flush)
}

func (d *Debouncer) flush() {
	d.mu.Lock()
	paths := make([]string, 0, len(d.pending))
	for p := range d.pending {
		paths = append(paths, p)
	}
	d.pending = make(map[string]struct{})
	d.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	d.callback(paths)
}

// Stop cancels any pending callback and drops the collected paths.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = make(map[string]struct{})
}
