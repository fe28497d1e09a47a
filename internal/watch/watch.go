// Package watch rebuilds a flyer when its content or template file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Sentinel errors for watch setup.
var (
	ErrNoPaths = errors.New("no files to watch")
	ErrWatch   = errors.New("failed to watch files")
)

// DefaultDebounce coalesces the burst of events an editor emits on save.
const DefaultDebounce = 200 * time.Millisecond

// changeOps are the operations that may alter a watched file's content.
// Editors that save by rename-and-replace produce Create or Rename on the
// target name instead of Write.
const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watcher reports changes to a fixed set of files.
// Parent directories are watched rather than the files themselves so that
// replaced files keep being tracked.
type Watcher struct {
	files    map[string]bool
	dirs     []string
	debounce time.Duration
}

// New creates a Watcher for paths. A non-positive debounce uses DefaultDebounce.
func New(paths []string, debounce time.Duration) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{files: make(map[string]bool, len(paths)), debounce: debounce}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrWatch, p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		w.dirs = append(w.dirs, d)
	}
	sort.Strings(w.dirs)

	return w, nil
}

// Dirs returns the watched directories.
func (w *Watcher) Dirs() []string {
	return append([]string(nil), w.dirs...)
}

// Run calls rebuild after each debounced change until ctx is done.
// Watcher errors are passed to onError, which may be nil; they do not stop
// the loop. rebuild runs on the Run goroutine, so changes made during a
// rebuild trigger one more rebuild afterwards.
func (w *Watcher) Run(ctx context.Context, rebuild func(context.Context), onError func(error)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}
	defer fw.Close()

	for _, d := range w.dirs {
		if err := fw.Add(d); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWatch, d, err)
		}
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			rebuild(ctx)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// relevant reports whether ev may have changed a watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&changeOps == 0 {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}
