package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/themeconf/internal/core"
	"github.com/jmylchreest/themeconf/internal/palette"
	"github.com/jmylchreest/themeconf/internal/theme"
)

// PlainFormatter formats themeconf data as plain text.
type PlainFormatter struct {
	opts FormatterOptions
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// FormatTheme writes a resolved theme record as sectioned plain text.
func (f *PlainFormatter) FormatTheme(w io.Writer, t *theme.Theme) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("theme: %s\n", t.Name))
	if f.opts.ShowSource {
		source := t.Path
		if t.IsBundled {
			source = "(bundled)"
		}
		sb.WriteString(fmt.Sprintf("source: %s\n", source))
	}

	sb.WriteString("content:\n")
	for _, pattern := range t.Config.Content {
		sb.WriteString("  " + pattern + "\n")
	}

	if colors := t.Config.Theme.Extend.Colors; len(colors) > 0 {
		sb.WriteString("colors:\n")
		f.writeTokens(&sb, colors, true)
	}

	if spacing := t.Config.Theme.Extend.Spacing; len(spacing) > 0 {
		sb.WriteString("spacing:\n")
		f.writeTokens(&sb, spacing, false)
	}

	if len(t.Config.Plugins) == 0 {
		sb.WriteString("plugins: (none)\n")
	} else {
		sb.WriteString("plugins:\n")
		for _, plugin := range t.Config.Plugins {
			sb.WriteString("  " + plugin + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatPalette writes a palette as aligned token lines.
func (f *PlainFormatter) FormatPalette(w io.Writer, p palette.Palette) error {
	var sb strings.Builder
	f.writeTokens(&sb, p, true)
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatIssues writes one line per validation issue.
func (f *PlainFormatter) FormatIssues(w io.Writer, issues []core.Issue) error {
	if len(issues) == 0 {
		_, err := io.WriteString(w, "ok\n")
		return err
	}

	var sb strings.Builder
	for _, issue := range issues {
		sb.WriteString(issue.String() + "\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeTokens writes "name  value" lines, name-aligned, sorted by name.
// Color swatches are rendered when enabled and the value parses.
func (f *PlainFormatter) writeTokens(sb *strings.Builder, tokens map[string]string, isColor bool) {
	names := make([]string, 0, len(tokens))
	width := 0
	for name := range tokens {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  %-*s", width, name))
		if f.opts.ShowHex {
			sb.WriteString("  " + tokens[name])
		}
		if isColor && f.opts.ShowSwatches {
			if swatch := renderSwatch(tokens[name]); swatch != "" {
				sb.WriteString("  " + swatch)
			}
		}
		sb.WriteString("\n")
	}
}

// renderSwatch renders a terminal color block for a token value.
// Returns empty for values outside the color grammar.
func renderSwatch(value string) string {
	hex, err := palette.NormalizeHex(value)
	if err != nil {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
