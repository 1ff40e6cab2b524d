package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"theme.toml", FormatTOML, false},
		{"theme.json", FormatJSON, false},
		{"theme.yaml", FormatYAML, false},
		{"theme.yml", FormatYAML, false},
		{"/abs/path/dark.TOML", FormatTOML, false},
		{"theme.css", "", true},
		{"theme", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatForPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestDecode_TOML(t *testing.T) {
	data := []byte(`
content = ["./*.html", "./src/**/*.{html,js,jsx,ts,tsx}"]
plugins = []

[theme.extend.colors]
prologisCyan = "#00FFFF"
darkBg = "#0D1117"
`)
	cfg, err := Decode(data, FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"./*.html", "./src/**/*.{html,js,jsx,ts,tsx}"}, cfg.Content)
	assert.Equal(t, "#00FFFF", cfg.Theme.Extend.Colors["prologisCyan"])
	assert.Equal(t, "#0D1117", cfg.Theme.Extend.Colors["darkBg"])
	assert.Empty(t, cfg.Plugins)
}

func TestDecode_JSON(t *testing.T) {
	data := []byte(`{
  "content": ["./*.html"],
  "theme": {"extend": {"colors": {"darkCard": "#161B22"}}},
  "plugins": []
}`)
	cfg, err := Decode(data, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{"./*.html"}, cfg.Content)
	assert.Equal(t, "#161B22", cfg.Theme.Extend.Colors["darkCard"])
}

func TestDecode_YAML(t *testing.T) {
	data := []byte(`
content:
  - "./*.html"
theme:
  extend:
    colors:
      accent: "#FF00FF"
    spacing:
      gutter: "1.5rem"
plugins: []
`)
	cfg, err := Decode(data, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"./*.html"}, cfg.Content)
	assert.Equal(t, "#FF00FF", cfg.Theme.Extend.Colors["accent"])
	assert.Equal(t, "1.5rem", cfg.Theme.Extend.Spacing["gutter"])
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte(`this is not valid toml [`), FormatTOML)
	assert.Error(t, err)

	_, err = Decode([]byte(`{"content": [}`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte(`content: [`), FormatYAML)
	assert.Error(t, err)
}

// Serialising and re-parsing a record yields an identical structure.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	cfg := &Config{
		Content: []string{"./*.html", "./src/**/*.{html,js,jsx,ts,tsx}"},
		Theme: Spec{
			Extend: Extend{
				Colors: map[string]string{
					"prologisCyan": "#00FFFF",
					"darkBg":       "#0D1117",
					"darkCard":     "#161B22",
				},
			},
		},
		Plugins: []string{},
	}

	for _, format := range []Format{FormatTOML, FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(cfg, format)
			require.NoError(t, err)

			decoded, err := Decode(data, format)
			require.NoError(t, err)
			assert.True(t, cfg.Equal(decoded), "round-trip should preserve the record")
		})
	}
}

func TestConfig_Equal(t *testing.T) {
	a := &Config{
		Content: []string{"./*.html"},
		Theme:   Spec{Extend: Extend{Colors: map[string]string{"bg": "#000000"}}},
	}
	b := a.Clone()

	assert.True(t, a.Equal(b))

	b.Theme.Extend.Colors["bg"] = "#FFFFFF"
	assert.False(t, a.Equal(b))
}

func TestConfig_Clone_Independent(t *testing.T) {
	orig := &Config{
		Content: []string{"./*.html"},
		Theme:   Spec{Extend: Extend{Colors: map[string]string{"bg": "#000000"}}},
		Plugins: []string{},
	}

	clone := orig.Clone()
	clone.Content[0] = "./*.js"
	clone.Theme.Extend.Colors["bg"] = "#FFFFFF"

	assert.Equal(t, "./*.html", orig.Content[0])
	assert.Equal(t, "#000000", orig.Theme.Extend.Colors["bg"])
}
