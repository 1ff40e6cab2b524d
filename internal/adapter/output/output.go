// Package output provides output formatters for theme records,
// palettes and validation results.
package output

import (
	"io"

	"github.com/jmylchreest/themeconf/internal/core"
	"github.com/jmylchreest/themeconf/internal/palette"
	"github.com/jmylchreest/themeconf/internal/theme"
)

// Formatter renders themeconf data for output.
type Formatter interface {
	// FormatTheme writes a resolved theme record to the writer.
	FormatTheme(w io.Writer, t *theme.Theme) error

	// FormatPalette writes a palette to the writer.
	FormatPalette(w io.Writer, p palette.Palette) error

	// FormatIssues writes validation issues to the writer.
	FormatIssues(w io.Writer, issues []core.Issue) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// ParseFormatType maps a user-supplied format name to a FormatType.
// Unknown names fall back to plain.
func ParseFormatType(s string) FormatType {
	switch s {
	case "json":
		return FormatJSON
	default:
		return FormatPlain
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	ShowSwatches bool // Render terminal color swatches (plain format)
	ShowHex      bool // Show token values next to names
	ShowSource   bool // Show where each theme came from
}

// DefaultFormatterOptions returns sensible defaults for plain output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowSwatches: false,
		ShowHex:      true,
		ShowSource:   true,
	}
}
