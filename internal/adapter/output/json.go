package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/themeconf/internal/core"
	"github.com/jmylchreest/themeconf/internal/palette"
	"github.com/jmylchreest/themeconf/internal/theme"
)

// JSONFormatter formats themeconf data as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// themeEnvelope is the JSON shape of a resolved theme.
type themeEnvelope struct {
	Name    string        `json:"name"`
	Source  string        `json:"source,omitempty"`
	Bundled bool          `json:"bundled"`
	Record  *theme.Config `json:"record"`
}

// FormatTheme writes a resolved theme record as JSON.
func (f *JSONFormatter) FormatTheme(w io.Writer, t *theme.Theme) error {
	env := themeEnvelope{
		Name:    t.Name,
		Bundled: t.IsBundled,
		Record:  t.Config,
	}
	if f.opts.ShowSource {
		env.Source = t.Path
	}
	return encode(w, env)
}

// FormatPalette writes a palette as a JSON object of token name to value.
func (f *JSONFormatter) FormatPalette(w io.Writer, p palette.Palette) error {
	return encode(w, p)
}

// FormatIssues writes validation issues as a JSON array.
func (f *JSONFormatter) FormatIssues(w io.Writer, issues []core.Issue) error {
	if issues == nil {
		issues = []core.Issue{}
	}
	return encode(w, issues)
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
