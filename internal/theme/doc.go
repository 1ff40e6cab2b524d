// Package theme defines the theme configuration record and handles
// loading it from disk with hot-reload support. Themes resolve from
// ~/.config/themeconf/themes/ first, falling back to the embedded
// bundled themes when no user file exists.
package theme
