package theme

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Loader handles loading theme records with hot-reload support.
type Loader struct {
	mu            sync.RWMutex
	logger        *slog.Logger
	themesDir     string
	currentName   string
	theme         *Theme
	watcher       *Watcher
	watchDebounce time.Duration
}

// NewLoader creates a new theme loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	themesDir, err := ThemesDir()
	if err != nil {
		logger.Warn("failed to get themes directory", "error", err)
		themesDir = ""
	}

	return &Loader{
		logger:    logger,
		themesDir: themesDir,
	}
}

// ThemesDir returns the path to the user's themes directory.
func ThemesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "themeconf", "themes"), nil
}

// LoadTheme loads a theme by name.
// Theme resolution order:
//  1. User themes directory (~/.config/themeconf/themes/)
//  2. Embedded/bundled themes
//
// This allows users to override bundled themes by placing a file with the
// same name in their themes directory.
func (l *Loader) LoadTheme(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" {
		name = DefaultThemeName
	}

	// First, check user themes directory
	if l.themesDir != "" {
		for _, ext := range Extensions {
			themePath := filepath.Join(l.themesDir, name+ext)
			if _, err := os.Stat(themePath); err != nil {
				continue
			}
			theme, err := NewTheme(name, themePath)
			if err != nil {
				l.logger.Warn("failed to load user theme, trying bundled", "theme", name, "error", err)
				break
			}
			l.theme = theme
			l.currentName = name
			l.logger.Info("loaded user theme", "name", name, "path", themePath)
			return nil
		}
	}

	// Second, check embedded themes
	if IsEmbeddedTheme(name) {
		l.theme = NewBundledTheme(name)
		l.currentName = name
		l.logger.Info("loaded bundled theme", "name", name)
		return nil
	}

	// Fallback to default theme
	l.logger.Warn("theme not found, using default", "theme", name)
	l.theme = NewDefaultTheme()
	l.currentName = DefaultThemeName
	l.logger.Info("loaded default theme")
	return nil
}

// LoadPath loads a theme record from an explicit file path.
func (l *Loader) LoadPath(path string) error {
	name := filepath.Base(path)
	name = name[:len(name)-len(filepath.Ext(name))]

	theme, err := NewTheme(name, path)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.theme = theme
	l.currentName = name
	l.logger.Info("loaded theme file", "name", name, "path", path)
	return nil
}

// Current returns the currently loaded theme.
func (l *Loader) Current() *Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.theme
}

// CurrentName returns the name of the currently loaded theme.
func (l *Loader) CurrentName() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentName
}

// Reload reloads the current theme from disk.
func (l *Loader) Reload() error {
	l.mu.RLock()
	name := l.currentName
	path := ""
	if l.theme != nil {
		path = l.theme.Path
	}
	l.mu.RUnlock()

	if path != "" {
		return l.LoadPath(path)
	}
	return l.LoadTheme(name)
}

// SetWatchDebounce sets the reload debounce used by StartWatch.
func (l *Loader) SetWatchDebounce(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.watchDebounce = d
}

// StartWatch starts watching the current theme file for changes.
// The callback receives the reloaded theme after each change.
func (l *Loader) StartWatch(ctx context.Context, onChange func(*Theme)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.theme == nil || l.theme.IsBundled {
		l.logger.Debug("not watching bundled theme (embedded)")
		return nil
	}

	// Stop existing watcher if any
	if l.watcher != nil {
		l.watcher.Stop()
	}

	watcher, err := NewWatcher(l.theme, l.logger)
	if err != nil {
		return err
	}
	if l.watchDebounce > 0 {
		watcher.SetDebounce(l.watchDebounce)
	}
	watcher.SetChangeCallback(onChange)
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	l.watcher = watcher
	return nil
}

// StopWatch stops watching the theme for changes.
func (l *Loader) StopWatch() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.watcher != nil {
		l.watcher.Stop()
		l.watcher = nil
	}
}

// ListThemes returns a list of available theme names.
// Returns both bundled themes and user themes, with duplicates removed.
func (l *Loader) ListThemes() []string {
	seen := make(map[string]bool)
	var themes []string

	// Add bundled themes first
	for _, name := range ListEmbeddedThemes() {
		if !seen[name] {
			seen[name] = true
			themes = append(themes, name)
		}
	}

	// Add user themes (may include overrides)
	if l.themesDir != "" {
		entries, err := os.ReadDir(l.themesDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				name := entry.Name()
				ext := filepath.Ext(name)
				if !isThemeExt(ext) {
					continue
				}
				themeName := name[:len(name)-len(ext)]
				if !seen[themeName] {
					seen[themeName] = true
					themes = append(themes, themeName)
				}
			}
		} else {
			l.logger.Debug("failed to read themes directory", "error", err)
		}
	}

	return themes
}
