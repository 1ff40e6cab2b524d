// Package palette owns the default design-token palette and the additive
// merge of theme extensions into it. It also implements the color grammar
// (hex, rgb, hsl, named) used to validate token values.
package palette
