package tui

import (
	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/Iron-Ham/inspire/internal/tui/styles"
	"github.com/Iron-Ham/inspire/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// Button labels
const (
	labelNewQuote   = "New Quote"
	labelAddFav     = "Add to Favorites"
	labelFavorited  = "Favorited"
	labelCopy       = "Copy Quote"
	labelCopied     = "Copied!"
	labelCopyFailed = "Copy failed"
)

// renderCard draws the current quote. While a transition is pending the card
// is drawn faint.
func (m Model) renderCard(width int) string {
	return RenderCard(m.styles, m.current, width, m.animating)
}

// RenderCard draws q as a bordered card width columns wide, with its category
// badge, wrapped text and author line.
func RenderCard(s *styles.ThemedStyles, q quote.Quote, width int, faded bool) string {
	card := s.Card
	text := s.QuoteText
	if faded {
		card = s.CardFaded
		text = s.QuoteFaded
	}

	inner := width - card.GetHorizontalFrameSize()
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Badge.Render(q.CategoryLabel()),
		text.Render(util.Wrap("\""+q.Text+"\"", inner)),
		s.Author.Render("— "+q.Author),
	)
	return card.Width(width - card.GetHorizontalBorderSize()).Render(body)
}

func (m Model) renderActions() string {
	favLabel, favStyle := labelAddFav, m.styles.Action
	if m.isFavorite() {
		favLabel, favStyle = labelFavorited, m.styles.ActionFavorite
	}

	copyLabel, copyStyle := labelCopy, m.styles.Action
	switch m.copyState {
	case copyDone:
		copyLabel, copyStyle = labelCopied, m.styles.ActionSuccess
	case copyFailed:
		copyLabel, copyStyle = labelCopyFailed, m.styles.ActionError
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderAction("n", labelNewQuote, m.styles.Action),
		m.renderAction("f", favLabel, favStyle),
		m.renderAction("c", copyLabel, copyStyle),
	)
}

func (m Model) renderAction(key, label string, style lipgloss.Style) string {
	return style.Render(m.styles.ActionKey.Render("["+key+"]") + " " + label)
}

func (m Model) isFavorite() bool {
	return m.favoriteCount() > 0 && m.favorites.Contains(m.current)
}
