package styles

import (
	"strings"
	"testing"
)

func TestNewThemedStyles(t *testing.T) {
	p := DefaultPalette()
	s := NewThemedStyles(ThemeDefault, p)

	if s.Name != ThemeDefault {
		t.Errorf("Name = %q, want %q", s.Name, ThemeDefault)
	}
	if s.PrimaryColor != p.Primary {
		t.Errorf("PrimaryColor = %q, want %q", s.PrimaryColor, p.Primary)
	}
	if s.FavoriteColor != p.Favorite {
		t.Errorf("FavoriteColor = %q, want %q", s.FavoriteColor, p.Favorite)
	}
	if got := s.ActionFavorite.GetForeground(); got != p.Favorite {
		t.Errorf("ActionFavorite foreground = %v, want %v", got, p.Favorite)
	}
	if got := s.Card.GetBorderTopForeground(); got != p.Primary {
		t.Errorf("Card border = %v, want %v", got, p.Primary)
	}
	if got := s.CardFaded.GetBorderTopForeground(); got != p.Border {
		t.Errorf("CardFaded border = %v, want %v", got, p.Border)
	}
	if !s.QuoteFaded.GetFaint() {
		t.Error("QuoteFaded should be faint")
	}
}

func TestForTheme(t *testing.T) {
	s := ForTheme(ThemeNord)
	if s.Name != ThemeNord {
		t.Errorf("Name = %q, want %q", s.Name, ThemeNord)
	}
	if s.PrimaryColor != NordPalette().Primary {
		t.Errorf("PrimaryColor = %q, want nord primary", s.PrimaryColor)
	}
}

func TestThemedStylesRender(t *testing.T) {
	s := ForTheme(ThemeDefault)

	out := s.Card.Width(40).Render("hello")
	if !strings.Contains(out, "hello") {
		t.Errorf("rendered card missing content: %q", out)
	}
	if !strings.Contains(out, "╭") {
		t.Errorf("rendered card missing rounded border: %q", out)
	}
}
