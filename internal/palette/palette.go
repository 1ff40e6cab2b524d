package palette

import "sort"

// Palette is a set of named color tokens.
type Palette map[string]string

// Merge returns a new palette containing every token of p plus the
// extension entries. The merge is additive: tokens of p that the
// extension does not name are carried over unchanged. An extension
// entry that reuses an existing name takes precedence.
func (p Palette) Merge(extend map[string]string) Palette {
	merged := make(Palette, len(p)+len(extend))
	for name, value := range p {
		merged[name] = value
	}
	for name, value := range extend {
		merged[name] = value
	}
	return merged
}

// Names returns the token names in sorted order.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up a token by name.
func (p Palette) Resolve(name string) (string, bool) {
	value, ok := p[name]
	return value, ok
}

// Clone returns a copy of the palette.
func (p Palette) Clone() Palette {
	clone := make(Palette, len(p))
	for name, value := range p {
		clone[name] = value
	}
	return clone
}
