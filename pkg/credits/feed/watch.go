package feed

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/jamesainslie/creditscope/pkg/credits/logging"
)

// Watcher reloads a feed file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file via rename (vim, sed -i) keep working.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	mu      sync.Mutex
	closed  bool
}

// NewWatcher creates a watcher for the feed at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{path: abs, watcher: fsw}, nil
}

// Run blocks until the context is cancelled, invoking onReload with the
// freshly decoded feed after each change. Feeds that fail to decode are
// logged and skipped; the previous dataset keeps rendering.
func (w *Watcher) Run(ctx context.Context, onReload func(*Feed)) {
	log := logging.Get("feed")

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			f, err := Load(w.path)
			if err != nil {
				log.Warn("feed reload failed", "path", w.path, "error", err)
				continue
			}

			log.Debug("feed reloaded", "path", w.path, "dates", len(f.Events))
			if onReload != nil {
				onReload(f)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error("watch error", "error", err)
		}
	}
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}
