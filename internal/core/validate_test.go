package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themeconf/internal/theme"
)

func validConfig() *theme.Config {
	return &theme.Config{
		Content: []string{"./*.html", "./src/**/*.{html,js,jsx,ts,tsx}"},
		Theme: theme.Spec{
			Extend: theme.Extend{
				Colors: map[string]string{
					"prologisCyan": "#00FFFF",
					"darkBg":       "#0D1117",
					"darkCard":     "#161B22",
				},
			},
		},
		Plugins: []string{},
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	issues := Validate(validConfig())
	assert.Empty(t, issues)
}

func TestValidate_BundledThemes(t *testing.T) {
	for _, name := range theme.BundledThemes {
		t.Run(name, func(t *testing.T) {
			cfg, found := theme.GetEmbeddedTheme(name)
			require.True(t, found)
			assert.Empty(t, Validate(cfg))
		})
	}
}

func TestValidate_NilRecord(t *testing.T) {
	issues := Validate(nil)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestValidate_EmptyContent(t *testing.T) {
	cfg := validConfig()
	cfg.Content = nil

	issues := Validate(cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, "content", issues[0].Field)
	assert.True(t, HasErrors(issues))
}

func TestValidate_InvalidGlob(t *testing.T) {
	cfg := validConfig()
	cfg.Content = []string{"./src/[unclosed"}

	issues := Validate(cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, "content[0]", issues[0].Field)
	assert.Contains(t, issues[0].Message, "invalid glob")
}

func TestValidate_EmptyGlob(t *testing.T) {
	cfg := validConfig()
	cfg.Content = []string{""}

	issues := Validate(cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestValidate_DuplicateGlobIsWarning(t *testing.T) {
	cfg := validConfig()
	cfg.Content = []string{"./*.html", "./*.html"}

	issues := Validate(cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, "content[1]", issues[0].Field)
	assert.False(t, HasErrors(issues))
}

func TestValidate_Colors(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		severity Severity
		valid    bool
	}{
		{"valid hex", "accent", "#00FFFF", "", true},
		{"valid short hex", "accent", "#0ff", "", true},
		{"valid rgb", "accent", "rgb(0, 255, 255)", "", true},
		{"valid hsl", "accent", "hsl(180, 100%, 50%)", "", true},
		{"valid named", "accent", "cyan", "", true},
		{"numeric scale key", "50", "#F9FAFB", "", true},
		{"invalid value", "accent", "#GGGGGG", SeverityError, false},
		{"empty value", "accent", "", SeverityError, false},
		{"invalid key", "-accent", "#00FFFF", SeverityError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Theme.Extend.Colors = map[string]string{tt.key: tt.value}

			issues := Validate(cfg)
			if tt.valid {
				assert.Empty(t, issues)
				return
			}
			require.Len(t, issues, 1)
			assert.Equal(t, tt.severity, issues[0].Severity)
		})
	}
}

func TestValidate_Spacing(t *testing.T) {
	cfg := validConfig()
	cfg.Theme.Extend.Spacing = map[string]string{
		"gutter": "1.5rem",
		"hair":   "1px",
		"none":   "0",
	}
	assert.Empty(t, Validate(cfg))

	cfg.Theme.Extend.Spacing = map[string]string{"bad": "wide"}
	issues := Validate(cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "theme.extend.spacing.bad", issues[0].Field)
}

func TestValidate_Plugins(t *testing.T) {
	cfg := validConfig()
	cfg.Plugins = []string{"typography", ""}

	issues := Validate(cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "plugins[1]", issues[0].Field)
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestValidate_MultipleIssuesStableOrder(t *testing.T) {
	cfg := validConfig()
	cfg.Theme.Extend.Colors = map[string]string{
		"zz": "bogus",
		"aa": "also-bogus",
	}

	first := Validate(cfg)
	second := Validate(cfg)
	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "theme.extend.colors.aa", first[0].Field)
	assert.Equal(t, "theme.extend.colors.zz", first[1].Field)
}

func TestIssue_String(t *testing.T) {
	issue := Issue{Severity: SeverityError, Field: "content", Message: "must list at least one glob pattern"}
	assert.Equal(t, "error: content: must list at least one glob pattern", issue.String())
}
