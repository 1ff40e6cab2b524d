package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the on-disk encoding of a theme file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Extensions lists recognised theme file extensions in resolution order.
var Extensions = []string{".toml", ".json", ".yaml", ".yml"}

// FormatForPath returns the Format implied by a file's extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported theme file extension: %q", filepath.Ext(path))
	}
}

// Config is the theme configuration record consumed by the build pipeline.
//
// Content lists glob patterns selecting the source files the pipeline
// scans for class usage. The patterns are unioned; order carries no
// meaning. Theme holds token extensions merged additively into the
// default design-token set. Plugins is an ordered list of pipeline
// extension hooks, and may be empty.
type Config struct {
	Content []string `toml:"content" json:"content" yaml:"content"`
	Plugins []string `toml:"plugins" json:"plugins" yaml:"plugins"`
	Theme   Spec     `toml:"theme,omitempty" json:"theme,omitempty" yaml:"theme,omitempty"`
}

// Spec holds the theme dimensions of a Config.
type Spec struct {
	Extend Extend `toml:"extend,omitempty" json:"extend,omitempty" yaml:"extend,omitempty"`
}

// Extend holds token maps merged into the default design tokens.
// Absent maps leave the corresponding defaults untouched.
type Extend struct {
	Colors  map[string]string `toml:"colors,omitempty" json:"colors,omitempty" yaml:"colors,omitempty"`
	Spacing map[string]string `toml:"spacing,omitempty" json:"spacing,omitempty" yaml:"spacing,omitempty"`
}

// Decode parses a theme configuration record in the given format.
func Decode(data []byte, format Format) (*Config, error) {
	cfg := &Config{}
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, cfg)
	case FormatJSON:
		err = json.Unmarshal(data, cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unknown theme format: %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s theme: %w", format, err)
	}
	return cfg, nil
}

// Encode serialises a record in the given format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unknown theme format: %q", format)
	}
}

// Equal reports whether two records are structurally identical.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return reflect.DeepEqual(*c, *other)
}

// Clone returns a deep copy of the record.
func (c *Config) Clone() *Config {
	clone := &Config{
		Content: append([]string(nil), c.Content...),
		Plugins: append([]string(nil), c.Plugins...),
	}
	if c.Theme.Extend.Colors != nil {
		clone.Theme.Extend.Colors = make(map[string]string, len(c.Theme.Extend.Colors))
		for k, v := range c.Theme.Extend.Colors {
			clone.Theme.Extend.Colors[k] = v
		}
	}
	if c.Theme.Extend.Spacing != nil {
		clone.Theme.Extend.Spacing = make(map[string]string, len(c.Theme.Extend.Spacing))
		for k, v := range c.Theme.Extend.Spacing {
			clone.Theme.Extend.Spacing[k] = v
		}
	}
	return clone
}
