// Package watch reports changes to a set of source files using OS-native
// notifications, coalescing bursts of events.
package watch

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	stellarerrors "github.com/stellar-lang/stellar/internal/errors"
)

// Op describes what happened to a file. Values may be combined.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

var opNames = []struct {
	op   Op
	name string
}{
	{OpCreate, "CREATE"},
	{OpWrite, "WRITE"},
	{OpRemove, "REMOVE"},
	{OpRename, "RENAME"},
}

func (op Op) String() string {
	var parts []string
	for _, n := range opNames {
		if op&n.op != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// Event is a debounced change to one watched file. Op accumulates every
// operation seen during the debounce window.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Watcher watches individual files. The parent directory of each file is
// registered so that editors which save by rename are still observed.
type Watcher struct {
	w        *fsnotify.Watcher
	files    map[string]string // absolute path -> path as given
	debounce time.Duration
}

// New creates a watcher for paths. Events for a file are delivered once no
// further change arrived for the debounce interval.
func New(debounce time.Duration, paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, stellarerrors.WatchFailed(strings.Join(paths, ", "), err)
	}

	w := &Watcher{w: fw, files: make(map[string]string), debounce: debounce}
	dirs := make(map[string]bool)

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fw.Close()
			return nil, stellarerrors.WatchFailed(path, err)
		}
		w.files[abs] = path

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, stellarerrors.WatchFailed(path, err)
		}
		dirs[dir] = true
	}

	return w, nil
}

// Files returns the watched paths as given to New, sorted.
func (w *Watcher) Files() []string {
	files := make([]string, 0, len(w.files))
	for _, path := range w.files {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

// Run delivers events to onChange until ctx is done or the underlying
// watcher fails. onChange is called from Run's goroutine. Run returns
// ctx.Err() on cancellation.
func (w *Watcher) Run(ctx context.Context, onChange func(Event)) error {
	pending := make(map[string]Event)
	var fire <-chan time.Time

	flush := func() {
		paths := make([]string, 0, len(pending))
		for path := range pending {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			onChange(pending[path])
			delete(pending, path)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			path, watched := w.files[filepath.Clean(ev.Name)]
			op := convertOp(ev.Op)
			if !watched || op == 0 {
				continue
			}

			pe := pending[path]
			pe.Path = path
			pe.Op |= op
			pe.Time = time.Now()
			pending[path] = pe

			if w.debounce <= 0 {
				flush()
				continue
			}
			fire = time.After(w.debounce)

		case <-fire:
			fire = nil
			flush()

		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			return stellarerrors.WatchFailed(strings.Join(w.Files(), ", "), err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.w.Close()
}

func convertOp(op fsnotify.Op) Op {
	var out Op
	if op&fsnotify.Create != 0 {
		out |= OpCreate
	}
	if op&fsnotify.Write != 0 {
		out |= OpWrite
	}
	if op&fsnotify.Remove != 0 {
		out |= OpRemove
	}
	if op&fsnotify.Rename != 0 {
		out |= OpRename
	}
	return out
}
