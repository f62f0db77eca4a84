package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color palette.
// A new value is built whenever the theme changes.
type ThemedStyles struct {
	Name ThemeName

	// Colors from the palette
	PrimaryColor  lipgloss.Color
	AccentColor   lipgloss.Color
	FavoriteColor lipgloss.Color
	SuccessColor  lipgloss.Color
	ErrorColor    lipgloss.Color
	MutedColor    lipgloss.Color
	TextColor     lipgloss.Color
	BorderColor   lipgloss.Color

	// Header
	Header   lipgloss.Style
	Subtitle lipgloss.Style

	// Quote card
	Card       lipgloss.Style
	CardFaded  lipgloss.Style
	Badge      lipgloss.Style
	QuoteText  lipgloss.Style
	QuoteFaded lipgloss.Style
	Author     lipgloss.Style

	// Action bar
	ActionKey      lipgloss.Style
	Action         lipgloss.Style
	ActionFavorite lipgloss.Style
	ActionSuccess  lipgloss.Style
	ActionError    lipgloss.Style

	// Favorites panel
	Panel             lipgloss.Style
	PanelFocused      lipgloss.Style
	PanelTitle        lipgloss.Style
	FavoriteItem      lipgloss.Style
	FavoriteSelected  lipgloss.Style
	FavoriteAuthor    lipgloss.Style
	FavoriteRemoveKey lipgloss.Style

	// Footer
	HelpBar    lipgloss.Style
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
}

// NewThemedStyles creates a ThemedStyles from the given color palette.
func NewThemedStyles(name ThemeName, p *ColorPalette) *ThemedStyles {
	s := &ThemedStyles{
		Name:          name,
		PrimaryColor:  p.Primary,
		AccentColor:   p.Accent,
		FavoriteColor: p.Favorite,
		SuccessColor:  p.Success,
		ErrorColor:    p.Error,
		MutedColor:    p.Muted,
		TextColor:     p.Text,
		BorderColor:   p.Border,
	}

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		Align(lipgloss.Center)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true).
		Align(lipgloss.Center).
		MarginBottom(1)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)

	s.CardFaded = s.Card.
		BorderForeground(p.Border)

	s.Badge = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Surface).
		Background(p.Accent).
		Padding(0, 1).
		MarginBottom(1)

	s.QuoteText = lipgloss.NewStyle().
		Foreground(p.Text).
		Italic(true)

	s.QuoteFaded = lipgloss.NewStyle().
		Foreground(p.Muted).
		Faint(true).
		Italic(true)

	s.Author = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.ActionKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Action = lipgloss.NewStyle().
		Foreground(p.Text).
		MarginRight(2)

	s.ActionFavorite = s.Action.
		Foreground(p.Favorite).
		Bold(true)

	s.ActionSuccess = s.Action.
		Foreground(p.Success).
		Bold(true)

	s.ActionError = s.Action.
		Foreground(p.Error).
		Bold(true)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		MarginTop(1)

	s.PanelFocused = s.Panel.
		BorderForeground(p.Primary)

	s.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Favorite)

	s.FavoriteItem = lipgloss.NewStyle().
		Foreground(p.Text).
		PaddingLeft(2)

	s.FavoriteSelected = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(p.Primary).
		PaddingLeft(1)

	s.FavoriteAuthor = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.FavoriteRemoveKey = lipgloss.NewStyle().
		Foreground(p.Error)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.ErrorMsg = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	s.SuccessMsg = lipgloss.NewStyle().
		Foreground(p.Success)

	return s
}

// ForTheme builds the styles for a named theme.
func ForTheme(name ThemeName) *ThemedStyles {
	return NewThemedStyles(name, GetPalette(name))
}
