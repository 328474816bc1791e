package styles

import (
	"image/color"
	"maps"
	"slices"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette is a semantic theme palette. Accent colors the orange annotation
// boxes; Success, Warning and Error double as the green, yellow and red ones.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
	Accent     color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "accessihome"

var themes = map[string]Palette{
	// Slate and blue, matching the web preview.
	"accessihome": {
		Primary:    lipgloss.Color("#3b82f6"), // blue-500
		Secondary:  lipgloss.Color("#93c5fd"), // blue-300
		Foreground: lipgloss.Color("#f3f4f6"), // gray-100
		Muted:      lipgloss.Color("#6b7280"), // gray-500
		Background: lipgloss.Color("#111827"), // gray-900
		Surface:    lipgloss.Color("#374151"), // gray-700
		Success:    lipgloss.Color("#22c55e"), // green-500
		Warning:    lipgloss.Color("#eab308"), // yellow-500
		Error:      lipgloss.Color("#ef4444"), // red-500
		Accent:     lipgloss.Color("#f97316"), // orange-500
	},
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
		Accent:     lipgloss.Color("#ff9e64"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
		Accent:     lipgloss.Color("#fe8019"),
	},
	// High contrast for low-vision users.
	"contrast": {
		Primary:    lipgloss.Color("#ffff00"),
		Secondary:  lipgloss.Color("#00ffff"),
		Foreground: lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#c0c0c0"),
		Background: lipgloss.Color("#000000"),
		Surface:    lipgloss.Color("#404040"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff4040"),
		Accent:     lipgloss.Color("#ff8000"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
