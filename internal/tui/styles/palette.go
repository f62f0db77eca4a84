package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Indigo/pink dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
	ThemeGruvbox ThemeName = "gruvbox" // Gruvbox retro groove
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeGruvbox),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	custom := CustomThemeNames()
	slices.Sort(custom)
	return append(themes, custom...)
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// NextTheme returns the theme after name in ValidThemes order, wrapping
// around. Unknown names cycle back to the first theme.
func NextTheme(name ThemeName) ThemeName {
	themes := ValidThemes()
	i := slices.Index(themes, string(name))
	return ThemeName(themes[(i+1)%len(themes)])
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (header, focused borders)
	Primary lipgloss.Color
	// Accent color (category badge background)
	Accent lipgloss.Color
	// Favorite color (favorited label, heart)
	Favorite lipgloss.Color
	// Success color ("Copied!" feedback)
	Success lipgloss.Color
	// Warning color
	Warning lipgloss.Color
	// Error color (copy and save failures)
	Error lipgloss.Color
	// Muted color (author line, help, faded card)
	Muted lipgloss.Color
	// Surface color (badge text, panel background)
	Surface lipgloss.Color
	// Text color (quote text)
	Text lipgloss.Color
	// Border color (unfocused panel borders)
	Border lipgloss.Color
}

// DefaultPalette returns the default indigo/pink dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:  lipgloss.Color("#818CF8"), // Indigo-400
		Accent:   lipgloss.Color("#A78BFA"), // Violet-400
		Favorite: lipgloss.Color("#F472B6"), // Pink-400
		Success:  lipgloss.Color("#34D399"), // Emerald-400
		Warning:  lipgloss.Color("#F59E0B"), // Amber
		Error:    lipgloss.Color("#F87171"), // Red-400
		Muted:    lipgloss.Color("#9CA3AF"), // Gray-400
		Surface:  lipgloss.Color("#1F2937"), // Gray-800
		Text:     lipgloss.Color("#F9FAFB"), // Gray-50
		Border:   lipgloss.Color("#6B7280"), // Gray-500
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:  lipgloss.Color("#66D9EF"), // Monokai cyan
		Accent:   lipgloss.Color("#AE81FF"), // Monokai purple
		Favorite: lipgloss.Color("#F92672"), // Monokai pink
		Success:  lipgloss.Color("#A6E22E"), // Monokai green
		Warning:  lipgloss.Color("#E6DB74"), // Monokai yellow
		Error:    lipgloss.Color("#FD971F"), // Monokai orange
		Muted:    lipgloss.Color("#75715E"), // Monokai comment gray
		Surface:  lipgloss.Color("#272822"), // Monokai background
		Text:     lipgloss.Color("#F8F8F2"), // Monokai foreground
		Border:   lipgloss.Color("#49483E"), // Monokai selection
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:  lipgloss.Color("#BD93F9"), // Dracula purple
		Accent:   lipgloss.Color("#8BE9FD"), // Dracula cyan
		Favorite: lipgloss.Color("#FF79C6"), // Dracula pink
		Success:  lipgloss.Color("#50FA7B"), // Dracula green
		Warning:  lipgloss.Color("#F1FA8C"), // Dracula yellow
		Error:    lipgloss.Color("#FF5555"), // Dracula red
		Muted:    lipgloss.Color("#6272A4"), // Dracula comment
		Surface:  lipgloss.Color("#282A36"), // Dracula background
		Text:     lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:   lipgloss.Color("#44475A"), // Dracula selection
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:  lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Accent:   lipgloss.Color("#81A1C1"), // Nord frost blue
		Favorite: lipgloss.Color("#B48EAD"), // Nord aurora purple
		Success:  lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning:  lipgloss.Color("#EBCB8B"), // Nord aurora yellow
		Error:    lipgloss.Color("#BF616A"), // Nord aurora red
		Muted:    lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:  lipgloss.Color("#2E3440"), // Nord polar night 0
		Text:     lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:   lipgloss.Color("#3B4252"), // Nord polar night 1
	}
}

// GruvboxPalette returns the Gruvbox dark palette.
func GruvboxPalette() *ColorPalette {
	return &ColorPalette{
		Primary:  lipgloss.Color("#83A598"), // Gruvbox blue
		Accent:   lipgloss.Color("#D3869B"), // Gruvbox purple
		Favorite: lipgloss.Color("#FB4934"), // Gruvbox red
		Success:  lipgloss.Color("#B8BB26"), // Gruvbox green
		Warning:  lipgloss.Color("#FABD2F"), // Gruvbox yellow
		Error:    lipgloss.Color("#FE8019"), // Gruvbox orange
		Muted:    lipgloss.Color("#928374"), // Gruvbox gray
		Surface:  lipgloss.Color("#282828"), // Gruvbox bg0
		Text:     lipgloss.Color("#EBDBB2"), // Gruvbox fg
		Border:   lipgloss.Color("#504945"), // Gruvbox bg2
	}
}

// GetPalette returns the color palette for the given theme name.
// Checks custom themes first, then falls back to built-in themes.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeGruvbox:
		return GruvboxPalette()
	default:
		return DefaultPalette()
	}
}
