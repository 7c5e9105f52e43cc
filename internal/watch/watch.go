// Package watch re-runs an assembly whenever the input file changes on disk.
package watch

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Start watches path and invokes onChange after the file has been quiet for
// the debounce interval following a write or create event. Bursts of events
// (editors and pipelines often rewrite files in several syscalls) collapse
// into a single callback. Call the returned stop function to clean up.
func Start(path string, debounce time.Duration, onChange func()) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("input watcher: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("input watcher add %s: %w", path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
					fire = timer.C
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounce)
				}
			case <-fire:
				timer = nil
				fire = nil
				onChange()
			case <-w.Errors:
				// Ignore watcher errors; the next event still triggers.
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }, nil
}
