package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/felixgeelhaar/e2elint/pkg/storage"
)

const DefaultDebounce = 300 * time.Millisecond

// FSWatcher watches a directory tree and reports batches of changed test files.
type FSWatcher struct {
	watcher  *fsnotify.Watcher
	root     string
	debounce time.Duration
	filter   *storage.PatternFilter
	onChange func([]string)
}

// NewFSWatcher creates a watcher for root. Only paths admitted by filter
// (matched relative to root) are reported; a nil filter admits everything.
func NewFSWatcher(root string, debounce time.Duration, filter *storage.PatternFilter, onChange func([]string)) (*FSWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FSWatcher{
		watcher:  w,
		root:     root,
		debounce: debounce,
		filter:   filter,
		onChange: onChange,
	}, nil
}

// WatchRecursive adds dir and its subdirectories, skipping the same
// directories discovery skips.
func (w *FSWatcher) WatchRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && storage.SkipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *FSWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debouncer := NewDebouncer(w.debounce, func(paths []string) {
		if w.onChange != nil {
			w.onChange(paths)
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
			if !relevantOp(event.Op) {
				continue
			}

			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !storage.SkipDir(info.Name()) {
						_ = w.WatchRecursive(event.Name)
					}
					continue
				}
			}

			if w.admits(event.Name) {
				debouncer.Trigger(event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func (w *FSWatcher) admits(path string) bool {
	if w.filter == nil {
		return true
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		rel = path
	}
	return w.filter.Matches(rel)
}

func relevantOp(op fsnotify.Op) bool {
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Write) ||
		op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename)
}
