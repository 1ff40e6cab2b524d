package theme

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Theme is a named theme configuration record with load metadata.
type Theme struct {
	Name      string    // Theme name (without file extension)
	Path      string    // Full path to the theme file (empty for bundled)
	Format    Format    // On-disk encoding
	Config    *Config   // The decoded record
	ModTime   time.Time // Last modification time
	IsBundled bool      // True if this is an embedded theme
}

// NewTheme creates a new Theme by loading and decoding a theme file.
func NewTheme(name, path string) (*Theme, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Decode(data, format)
	if err != nil {
		return nil, err
	}

	return &Theme{
		Name:    name,
		Path:    path,
		Format:  format,
		Config:  cfg,
		ModTime: info.ModTime(),
	}, nil
}

// NewBundledTheme creates a Theme from an embedded record.
// Falls back to an empty record if the name is unknown.
func NewBundledTheme(name string) *Theme {
	cfg, found := GetEmbeddedTheme(name)
	if !found {
		cfg = &Config{}
	}
	return &Theme{
		Name:      name,
		Path:      "",
		Format:    FormatTOML,
		Config:    cfg,
		IsBundled: true,
	}
}

// NewDefaultTheme creates the embedded default theme.
func NewDefaultTheme() *Theme {
	return NewBundledTheme(DefaultThemeName)
}

// Reload re-reads the theme from disk.
// Returns true if the record changed.
func (t *Theme) Reload() (bool, error) {
	if t.IsBundled {
		return false, nil
	}

	info, err := os.Stat(t.Path)
	if err != nil {
		return false, err
	}

	// Check if modification time changed
	if !info.ModTime().After(t.ModTime) {
		return false, nil
	}

	data, err := os.ReadFile(t.Path)
	if err != nil {
		return false, err
	}

	cfg, err := Decode(data, t.Format)
	if err != nil {
		return false, err
	}

	changed := !t.Config.Equal(cfg)
	t.Config = cfg
	t.ModTime = info.ModTime()

	return changed, nil
}

// ThemeInfo provides basic theme information for listing.
type ThemeInfo struct {
	Name      string
	Path      string
	ModTime   time.Time
	IsDefault bool
	IsBundled bool // True if this is a bundled/embedded theme
}

// ListAvailableThemes lists all available themes (bundled + user).
// A user theme with the same name as a bundled one shadows it.
func ListAvailableThemes() ([]ThemeInfo, error) {
	seen := make(map[string]bool)
	var themes []ThemeInfo

	// User themes first so they shadow bundled names
	themesDir, dirErr := ThemesDir()
	if dirErr == nil {
		entries, err := os.ReadDir(themesDir)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			ext := filepath.Ext(name)
			if !isThemeExt(ext) {
				continue
			}
			themeName := strings.TrimSuffix(name, ext)
			if seen[themeName] {
				continue
			}
			seen[themeName] = true
			info := ThemeInfo{
				Name:      themeName,
				Path:      filepath.Join(themesDir, name),
				IsDefault: themeName == DefaultThemeName,
			}
			if fi, err := entry.Info(); err == nil {
				info.ModTime = fi.ModTime()
			}
			themes = append(themes, info)
		}
	}

	for _, name := range ListEmbeddedThemes() {
		if seen[name] {
			continue
		}
		seen[name] = true
		themes = append(themes, ThemeInfo{
			Name:      name,
			Path:      "",
			IsDefault: name == DefaultThemeName,
			IsBundled: true,
		})
	}

	return themes, nil
}

// isThemeExt reports whether ext is a recognised theme file extension.
func isThemeExt(ext string) bool {
	for _, e := range Extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// CreateThemesDir creates the themes directory if it doesn't exist.
func CreateThemesDir() error {
	themesDir, err := ThemesDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(themesDir, 0755)
}
