// Package core implements structural validation of theme configuration
// records. Validation never mutates the record; it reports a list of
// issues for the caller to render or act on.
package core

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jmylchreest/themeconf/internal/palette"
	"github.com/jmylchreest/themeconf/internal/theme"
)

// Severity classifies a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue describes a single validation finding.
type Issue struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
}

// String renders an issue as "severity: field: message".
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Field, i.Message)
}

// tokenNameRegex matches valid token identifiers: letters, digits,
// underscores and hyphens, not starting with a hyphen.
var tokenNameRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_-]*$`)

// spacingRegex matches CSS lengths: a bare 0 or a number with a unit.
var spacingRegex = regexp.MustCompile(`^(?:0|-?(?:\d+|\d*\.\d+)(?:px|rem|em|%|vh|vw|pt|ch))$`)

// Validate checks a theme configuration record for structural problems.
// Returns a list of issues; an empty list means the record is valid.
func Validate(cfg *theme.Config) []Issue {
	var issues []Issue

	if cfg == nil {
		return []Issue{{Severity: SeverityError, Field: "record", Message: "no theme configuration record"}}
	}

	issues = append(issues, validateContent(cfg.Content)...)
	issues = append(issues, validateColors(cfg.Theme.Extend.Colors)...)
	issues = append(issues, validateSpacing(cfg.Theme.Extend.Spacing)...)
	issues = append(issues, validatePlugins(cfg.Plugins)...)

	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// validateContent checks the content glob list.
func validateContent(content []string) []Issue {
	var issues []Issue

	if len(content) == 0 {
		return []Issue{{
			Severity: SeverityError,
			Field:    "content",
			Message:  "must list at least one glob pattern",
		}}
	}

	seen := make(map[string]bool)
	for i, pattern := range content {
		field := fmt.Sprintf("content[%d]", i)

		if pattern == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Field:    field,
				Message:  "empty glob pattern",
			})
			continue
		}

		if !doublestar.ValidatePattern(pattern) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Field:    field,
				Message:  fmt.Sprintf("invalid glob pattern %q", pattern),
			})
			continue
		}

		// Duplicates are harmless but wasteful
		if seen[pattern] {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Field:    field,
				Message:  fmt.Sprintf("duplicate glob pattern %q", pattern),
			})
		}
		seen[pattern] = true
	}

	return issues
}

// validateColors checks the color token extension map.
func validateColors(colors map[string]string) []Issue {
	var issues []Issue

	for _, name := range sortedKeys(colors) {
		field := "theme.extend.colors." + name

		if !tokenNameRegex.MatchString(name) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Field:    "theme.extend.colors",
				Message:  fmt.Sprintf("invalid token name %q", name),
			})
			continue
		}

		value := colors[name]
		if _, err := palette.ParseColor(value); err != nil {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Field:    field,
				Message:  fmt.Sprintf("invalid color value %q", value),
			})
		}
	}

	return issues
}

// validateSpacing checks the spacing token extension map.
func validateSpacing(spacing map[string]string) []Issue {
	var issues []Issue

	for _, name := range sortedKeys(spacing) {
		field := "theme.extend.spacing." + name

		if !tokenNameRegex.MatchString(name) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Field:    "theme.extend.spacing",
				Message:  fmt.Sprintf("invalid token name %q", name),
			})
			continue
		}

		value := spacing[name]
		if !spacingRegex.MatchString(value) {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Field:    field,
				Message:  fmt.Sprintf("invalid spacing value %q", value),
			})
		}
	}

	return issues
}

// validatePlugins checks the plugin hook list. An empty list is valid
// and means no extensions are registered.
func validatePlugins(plugins []string) []Issue {
	var issues []Issue

	for i, name := range plugins {
		if name == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Field:    fmt.Sprintf("plugins[%d]", i),
				Message:  "empty plugin entry",
			})
		}
	}

	return issues
}

// sortedKeys returns map keys in sorted order for stable issue output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
