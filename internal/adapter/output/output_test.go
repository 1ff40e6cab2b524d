package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themeconf/internal/core"
	"github.com/jmylchreest/themeconf/internal/palette"
	"github.com/jmylchreest/themeconf/internal/theme"
)

func testTheme() *theme.Theme {
	return &theme.Theme{
		Name:      "default",
		IsBundled: true,
		Config: &theme.Config{
			Content: []string{"./*.html", "./src/**/*.{html,js,jsx,ts,tsx}"},
			Theme: theme.Spec{
				Extend: theme.Extend{
					Colors: map[string]string{
						"prologisCyan": "#00FFFF",
						"darkBg":       "#0D1117",
					},
				},
			},
			Plugins: []string{},
		},
	}
}

func TestNewFormatter(t *testing.T) {
	opts := DefaultFormatterOptions()

	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON, opts))
	assert.IsType(t, &PlainFormatter{}, NewFormatter(FormatPlain, opts))
	assert.IsType(t, &PlainFormatter{}, NewFormatter("bogus", opts))
}

func TestParseFormatType(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormatType("json"))
	assert.Equal(t, FormatPlain, ParseFormatType("plain"))
	assert.Equal(t, FormatPlain, ParseFormatType("unknown"))
}

func TestPlainFormatter_FormatTheme(t *testing.T) {
	var buf bytes.Buffer
	f := NewPlainFormatter(DefaultFormatterOptions())

	require.NoError(t, f.FormatTheme(&buf, testTheme()))
	out := buf.String()

	assert.Contains(t, out, "theme: default")
	assert.Contains(t, out, "source: (bundled)")
	assert.Contains(t, out, "./src/**/*.{html,js,jsx,ts,tsx}")
	assert.Contains(t, out, "prologisCyan")
	assert.Contains(t, out, "#00FFFF")
	assert.Contains(t, out, "plugins: (none)")
}

func TestPlainFormatter_FormatTheme_HidesSource(t *testing.T) {
	opts := DefaultFormatterOptions()
	opts.ShowSource = false

	var buf bytes.Buffer
	require.NoError(t, NewPlainFormatter(opts).FormatTheme(&buf, testTheme()))
	assert.NotContains(t, buf.String(), "source:")
}

func TestPlainFormatter_FormatPalette_SortedAndAligned(t *testing.T) {
	var buf bytes.Buffer
	f := NewPlainFormatter(DefaultFormatterOptions())

	p := palette.Palette{"b": "#000000", "a": "#FFFFFF"}
	require.NoError(t, f.FormatPalette(&buf, p))

	out := buf.String()
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("a")), bytes.Index(buf.Bytes(), []byte("b")))
	assert.Contains(t, out, "#FFFFFF")
}

func TestPlainFormatter_FormatIssues(t *testing.T) {
	f := NewPlainFormatter(DefaultFormatterOptions())

	var buf bytes.Buffer
	require.NoError(t, f.FormatIssues(&buf, nil))
	assert.Equal(t, "ok\n", buf.String())

	buf.Reset()
	issues := []core.Issue{
		{Severity: core.SeverityError, Field: "content", Message: "must list at least one glob pattern"},
		{Severity: core.SeverityWarning, Field: "content[1]", Message: `duplicate glob pattern "./*.html"`},
	}
	require.NoError(t, f.FormatIssues(&buf, issues))
	assert.Contains(t, buf.String(), "error: content:")
	assert.Contains(t, buf.String(), "warning: content[1]:")
}

func TestJSONFormatter_FormatTheme(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(DefaultFormatterOptions())

	require.NoError(t, f.FormatTheme(&buf, testTheme()))

	var env struct {
		Name    string        `json:"name"`
		Bundled bool          `json:"bundled"`
		Record  *theme.Config `json:"record"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.Equal(t, "default", env.Name)
	assert.True(t, env.Bundled)
	require.NotNil(t, env.Record)
	assert.Equal(t, "#00FFFF", env.Record.Theme.Extend.Colors["prologisCyan"])
}

func TestJSONFormatter_FormatPalette(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(DefaultFormatterOptions())

	require.NoError(t, f.FormatPalette(&buf, palette.Palette{"accent": "#00FFFF"}))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "#00FFFF", decoded["accent"])
}

func TestJSONFormatter_FormatIssues_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(DefaultFormatterOptions())

	require.NoError(t, f.FormatIssues(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
