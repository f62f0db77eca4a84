package tui

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/inspire/internal/tui/keymap"
	"github.com/Iron-Ham/inspire/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// linesPerFavorite is the height of one entry: quoted text, then author.
const linesPerFavorite = 2

// renderFavorites draws the favorites panel, or nothing when the list is
// empty.
func (m Model) renderFavorites(width int) string {
	n := m.favoriteCount()
	if n == 0 {
		return ""
	}

	panel := m.styles.Panel
	if m.mode == keymap.ModeFavorites {
		panel = m.styles.PanelFocused
	}

	title := m.styles.PanelTitle.Render(fmt.Sprintf("Your Favorites (%d)", n))
	return panel.Width(width - panel.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View()))
}

// favoritesContent renders every entry for the viewport.
func (m Model) favoritesContent(width int) string {
	items := m.favorites.Items()
	focused := m.mode == keymap.ModeFavorites

	entries := make([]string, 0, len(items))
	for i, q := range items {
		style := m.styles.FavoriteItem
		selected := focused && i == m.selected
		if selected {
			style = m.styles.FavoriteSelected
		}

		textWidth := width - style.GetHorizontalFrameSize()
		author := m.styles.FavoriteAuthor.Render("— " + q.Author)
		if selected {
			author += "  " + m.styles.FavoriteRemoveKey.Render("[x] remove")
		}

		entries = append(entries, style.Render(
			util.TruncateANSI("\""+q.Text+"\"", textWidth)+"\n"+util.TruncateANSI(author, textWidth),
		))
	}
	return strings.Join(entries, "\n")
}
