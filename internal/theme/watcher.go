package theme

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the delay before a changed theme file is reloaded.
// Editors often produce several write events per save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches a theme file for changes and triggers hot-reload.
type Watcher struct {
	mu     sync.Mutex
	logger *slog.Logger

	fsw      *fsnotify.Watcher
	theme    *Theme
	debounce time.Duration

	onChange func(*Theme)

	done    chan struct{}
	running bool
}

// NewWatcher creates a new watcher for a theme file.
func NewWatcher(theme *Theme, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		logger:   logger,
		fsw:      fsw,
		theme:    theme,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}, nil
}

// SetDebounce sets the reload debounce interval.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.debounce = d
	}
}

// SetChangeCallback sets the callback to invoke when the theme changes.
// The callback receives the reloaded theme.
func (w *Watcher) SetChangeCallback(callback func(*Theme)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = callback
}

// Start begins watching the theme file for changes.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	// Bundled themes have no file to watch
	if w.theme.IsBundled {
		w.mu.Unlock()
		w.logger.Debug("not watching bundled theme (embedded)")
		return nil
	}

	w.running = true
	w.done = make(chan struct{})
	w.mu.Unlock()

	// Watch the directory containing the file (more reliable for writes)
	dir := filepath.Dir(w.theme.Path)
	if err := w.fsw.Add(dir); err != nil {
		return err
	}

	go w.watch(ctx)

	w.logger.Debug("theme watcher started", "path", w.theme.Path)
	return nil
}

// Stop stops watching the theme file.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.done)
	w.mu.Unlock()

	if err := w.fsw.Close(); err != nil {
		w.logger.Debug("failed to close fsnotify watcher", "error", err)
	}
	w.logger.Debug("theme watcher stopped")
}

// IsRunning returns whether the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// watch is the main watch loop.
func (w *Watcher) watch(ctx context.Context) {
	filename := filepath.Base(w.theme.Path)

	var reload *time.Timer
	defer func() {
		if reload != nil {
			reload.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			// Only care about our file
			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				// Debounce bursts of write events
				if reload == nil {
					reload = time.AfterFunc(w.debounce, w.reloadTheme)
				} else {
					reload.Reset(w.debounce)
				}
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)

		case <-ctx.Done():
			return
		case <-w.done:
			return
		}
	}
}

// reloadTheme re-reads the theme file and notifies on change.
func (w *Watcher) reloadTheme() {
	w.mu.Lock()
	theme := w.theme
	callback := w.onChange
	w.mu.Unlock()

	changed, err := theme.Reload()
	if err != nil {
		w.logger.Warn("failed to reload theme", "path", theme.Path, "error", err)
		return
	}

	if changed {
		w.logger.Info("theme file changed, reloaded", "path", theme.Path)
		if callback != nil {
			callback(theme)
		}
	}
}
