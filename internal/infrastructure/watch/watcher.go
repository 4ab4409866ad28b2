package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SnapshotWatcher watches a workspace directory and invokes onChange when a
// snapshot file is created, rewritten, or replaced. Other files in the
// directory (reports, config) are ignored so a report write does not
// trigger a recompute loop.
type SnapshotWatcher struct {
	watcher   *fsnotify.Watcher
	dir       string
	filenames map[string]bool
	debounce  time.Duration
	onChange  func(path string)
}

// NewSnapshotWatcher creates a watcher for the named snapshot files inside
// dir. A zero debounce defaults to 500ms.
func NewSnapshotWatcher(dir string, filenames []string, debounce time.Duration, onChange func(path string)) (*SnapshotWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	names := make(map[string]bool, len(filenames))
	for _, f := range filenames {
		names[f] = true
	}
	return &SnapshotWatcher{
		watcher:   w,
		dir:       dir,
		filenames: names,
		debounce:  debounce,
		onChange:  onChange,
	}, nil
}

// Run starts the event loop. It blocks until the context is cancelled or
// the watcher fails.
func (w *SnapshotWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	debouncer := NewDebouncer(w.debounce, func(path string) {
		if w.onChange != nil {
			w.onChange(path)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			debouncer.Trigger(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// relevant reports whether the event touches a snapshot file in a way that
// changes its content. Atomic replace shows up as create or rename.
func (w *SnapshotWatcher) relevant(event fsnotify.Event) bool {
	if !w.filenames[filepath.Base(event.Name)] {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}
