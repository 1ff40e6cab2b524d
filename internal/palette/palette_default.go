package palette

// Default returns the default design-token palette that theme
// extensions merge into. Token names follow the usual utility-class
// conventions: plain names for the extremes, name-weight pairs for the
// neutral scale and the accent hues.
func Default() Palette {
	return Palette{
		"white": "#FFFFFF",
		"black": "#000000",

		"gray-50":  "#F9FAFB",
		"gray-100": "#F3F4F6",
		"gray-200": "#E5E7EB",
		"gray-300": "#D1D5DB",
		"gray-400": "#9CA3AF",
		"gray-500": "#6B7280",
		"gray-600": "#4B5563",
		"gray-700": "#374151",
		"gray-800": "#1F2937",
		"gray-900": "#111827",

		"red-500":    "#EF4444",
		"orange-500": "#F97316",
		"amber-500":  "#F59E0B",
		"yellow-500": "#EAB308",
		"green-500":  "#22C55E",
		"teal-500":   "#14B8A6",
		"cyan-500":   "#06B6D4",
		"sky-500":    "#0EA5E9",
		"blue-500":   "#3B82F6",
		"indigo-500": "#6366F1",
		"violet-500": "#8B5CF6",
		"purple-500": "#A855F7",
		"pink-500":   "#EC4899",
	}
}

// DefaultSpacing returns the default spacing tokens that spacing
// extensions merge into.
func DefaultSpacing() map[string]string {
	return map[string]string{
		"0":  "0",
		"1":  "0.25rem",
		"2":  "0.5rem",
		"3":  "0.75rem",
		"4":  "1rem",
		"6":  "1.5rem",
		"8":  "2rem",
		"12": "3rem",
		"16": "4rem",
		"24": "6rem",
	}
}
