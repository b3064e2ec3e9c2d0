package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/netcheck/internal/monitor"
)

// Theme represents a Base16 color scheme.
type Theme struct {
	Name   string
	Base00 lipgloss.Color // Background
	Base01 lipgloss.Color // Lighter background
	Base02 lipgloss.Color // Selection
	Base03 lipgloss.Color // Comments / dim
	Base04 lipgloss.Color // Light foreground
	Base05 lipgloss.Color // Foreground
	Base06 lipgloss.Color // Light foreground
	Base07 lipgloss.Color // Light background
	Base08 lipgloss.Color // Red
	Base09 lipgloss.Color // Orange
	Base0A lipgloss.Color // Yellow
	Base0B lipgloss.Color // Green
	Base0C lipgloss.Color // Cyan
	Base0D lipgloss.Color // Blue
	Base0E lipgloss.Color // Magenta
	Base0F lipgloss.Color // Brown
}

// OutcomeColor maps a probe outcome to the theme's status palette.
// A nil result (no probe yet, or idle) renders dim.
func (t Theme) OutcomeColor(r *monitor.ProbeResult) lipgloss.Color {
	if r == nil {
		return t.Base03
	}
	switch r.Outcome {
	case monitor.Reachable:
		return t.Base0B
	case monitor.Unreachable:
		return t.Base08
	default:
		return t.Base0A
	}
}

// Themes holds every built-in scheme keyed by slug.
var Themes = map[string]Theme{
	"solarized-dark": {
		Name:   "Solarized Dark",
		Base00: "#002b36", Base01: "#073642", Base02: "#586e75", Base03: "#657b83",
		Base04: "#839496", Base05: "#93a1a1", Base06: "#eee8d5", Base07: "#fdf6e3",
		Base08: "#dc322f", Base09: "#cb4b16", Base0A: "#b58900", Base0B: "#859900",
		Base0C: "#2aa198", Base0D: "#268bd2", Base0E: "#6c71c4", Base0F: "#d33682",
	},
	"solarized-light": {
		Name:   "Solarized Light",
		Base00: "#fdf6e3", Base01: "#eee8d5", Base02: "#93a1a1", Base03: "#839496",
		Base04: "#657b83", Base05: "#586e75", Base06: "#073642", Base07: "#002b36",
		Base08: "#dc322f", Base09: "#cb4b16", Base0A: "#b58900", Base0B: "#859900",
		Base0C: "#2aa198", Base0D: "#268bd2", Base0E: "#6c71c4", Base0F: "#d33682",
	},
	"dracula": {
		Name:   "Dracula",
		Base00: "#282936", Base01: "#3a3c4e", Base02: "#4d4f68", Base03: "#626483",
		Base04: "#62d6e8", Base05: "#e9e9f4", Base06: "#f1f2f8", Base07: "#f7f7fb",
		Base08: "#ea51b2", Base09: "#b45bcf", Base0A: "#00f769", Base0B: "#ebff87",
		Base0C: "#a1efe4", Base0D: "#62d6e8", Base0E: "#b45bcf", Base0F: "#00f769",
	},
	"gruvbox-dark": {
		Name:   "Gruvbox Dark",
		Base00: "#282828", Base01: "#3c3836", Base02: "#504945", Base03: "#665c54",
		Base04: "#bdae93", Base05: "#d5c4a1", Base06: "#ebdbb2", Base07: "#fbf1c7",
		Base08: "#fb4934", Base09: "#fe8019", Base0A: "#fabd2f", Base0B: "#b8bb26",
		Base0C: "#8ec07c", Base0D: "#83a598", Base0E: "#d3869b", Base0F: "#d65d0e",
	},
	"nord": {
		Name:   "Nord",
		Base00: "#2e3440", Base01: "#3b4252", Base02: "#434c5e", Base03: "#4c566a",
		Base04: "#d8dee9", Base05: "#e5e9f0", Base06: "#eceff4", Base07: "#8fbcbb",
		Base08: "#bf616a", Base09: "#d08770", Base0A: "#ebcb8b", Base0B: "#a3be8c",
		Base0C: "#88c0d0", Base0D: "#81a1c1", Base0E: "#b48ead", Base0F: "#5e81ac",
	},
	"monokai": {
		Name:   "Monokai",
		Base00: "#272822", Base01: "#383830", Base02: "#49483e", Base03: "#75715e",
		Base04: "#a59f85", Base05: "#f8f8f2", Base06: "#f5f4f1", Base07: "#f9f8f5",
		Base08: "#f92672", Base09: "#fd971f", Base0A: "#f4bf75", Base0B: "#a6e22e",
		Base0C: "#a1efe4", Base0D: "#66d9ef", Base0E: "#ae81ff", Base0F: "#cc6633",
	},
	"tomorrow-night": {
		Name:   "Tomorrow Night",
		Base00: "#1d1f21", Base01: "#282a2e", Base02: "#373b41", Base03: "#969896",
		Base04: "#b4b7b4", Base05: "#c5c8c6", Base06: "#e0e0e0", Base07: "#ffffff",
		Base08: "#cc6666", Base09: "#de935f", Base0A: "#f0c674", Base0B: "#b5bd68",
		Base0C: "#8abeb7", Base0D: "#81a2be", Base0E: "#b294bb", Base0F: "#a3685a",
	},
	"onedark": {
		Name:   "OneDark",
		Base00: "#282c34", Base01: "#353b45", Base02: "#3e4451", Base03: "#545862",
		Base04: "#565c64", Base05: "#abb2bf", Base06: "#b6bdca", Base07: "#c8ccd4",
		Base08: "#e06c75", Base09: "#d19a66", Base0A: "#e5c07b", Base0B: "#98c379",
		Base0C: "#56b6c2", Base0D: "#61afef", Base0E: "#c678dd", Base0F: "#be5046",
	},
}

var (
	DefaultTheme Theme
	sortedSlugs  []string
)

func init() {
	sortedSlugs = make([]string, 0, len(Themes))
	for slug := range Themes {
		sortedSlugs = append(sortedSlugs, slug)
	}
	sort.Strings(sortedSlugs)
	DefaultTheme = Themes["solarized-dark"]
}

// GetThemeByName returns a theme by its slug, or nil if not found.
func GetThemeByName(name string) *Theme {
	t, ok := Themes[name]
	if !ok {
		return nil
	}
	return &t
}

// ListThemes returns sorted theme slugs.
func ListThemes() []string {
	return sortedSlugs
}

// GetThemeCount returns the total number of available themes.
func GetThemeCount() int {
	return len(Themes)
}

// GetThemeByIndex returns a theme at the given sorted index.
func GetThemeByIndex(idx int) *Theme {
	if idx < 0 || idx >= len(sortedSlugs) {
		return nil
	}
	t := Themes[sortedSlugs[idx]]
	return &t
}

// GetThemeIndex returns the sorted index of a theme slug, or -1.
func GetThemeIndex(slug string) int {
	for i, s := range sortedSlugs {
		if s == slug {
			return i
		}
	}
	return -1
}
