package palette

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color value grammar: hex triplets (#RGB, #RRGGBB, #RRGGBBAA),
// rgb()/rgba(), hsl()/hsla() and CSS named colors.
var (
	hexRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbRegex = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*(?:0|1|0?\.\d+)\s*)?\)$`)
	hslRegex = regexp.MustCompile(`^hsla?\(\s*(\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%\s*,\s*(\d+(?:\.\d+)?)%\s*(?:,\s*(?:0|1|0?\.\d+)\s*)?\)$`)
)

// namedColors maps CSS named colors to their hex values.
// Covers the basic CSS color keywords plus a few common extended names.
var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#C0C0C0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#FFFFFF",
	"maroon":  "#800000",
	"red":     "#FF0000",
	"purple":  "#800080",
	"fuchsia": "#FF00FF",
	"magenta": "#FF00FF",
	"green":   "#008000",
	"lime":    "#00FF00",
	"olive":   "#808000",
	"yellow":  "#FFFF00",
	"navy":    "#000080",
	"blue":    "#0000FF",
	"teal":    "#008080",
	"aqua":    "#00FFFF",
	"cyan":    "#00FFFF",
	"orange":  "#FFA500",
}

// ParseColor parses a color value in the configuration color grammar.
func ParseColor(value string) (colorful.Color, error) {
	s := strings.TrimSpace(value)

	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		return colorful.Hex(hex)
	}

	switch {
	case strings.HasPrefix(s, "#"):
		if !hexRegex.MatchString(s) {
			return colorful.Color{}, fmt.Errorf("invalid hex color: %q", value)
		}
		// Drop the alpha channel of #RRGGBBAA values
		if len(s) == 9 {
			s = s[:7]
		}
		return colorful.Hex(s)

	case rgbRegex.MatchString(s):
		m := rgbRegex.FindStringSubmatch(s)
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			return colorful.Color{}, fmt.Errorf("rgb channel out of range: %q", value)
		}
		return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}, nil

	case hslRegex.MatchString(s):
		m := hslRegex.FindStringSubmatch(s)
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		if h > 360 || sat > 100 || l > 100 {
			return colorful.Color{}, fmt.Errorf("hsl component out of range: %q", value)
		}
		return colorful.Hsl(h, sat/100.0, l/100.0), nil
	}

	return colorful.Color{}, fmt.Errorf("unrecognised color value: %q", value)
}

// IsValidColor reports whether value parses in the color grammar.
func IsValidColor(value string) bool {
	_, err := ParseColor(value)
	return err == nil
}

// RGB returns the 8-bit channels of a color value.
func RGB(value string) (r, g, b uint8, err error) {
	c, err := ParseColor(value)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

// NormalizeHex returns the canonical lowercase #rrggbb form of a color value.
func NormalizeHex(value string) (string, error) {
	c, err := ParseColor(value)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// IsDark reports whether a color reads as dark, for choosing a
// contrasting foreground on swatches. Unparseable values count as dark.
func IsDark(value string) bool {
	c, err := ParseColor(value)
	if err != nil {
		return true
	}
	_, _, l := c.Hsl()
	return l < 0.5
}
