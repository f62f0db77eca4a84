package tui

import "github.com/charmbracelet/lipgloss"

// minPanelHeight keeps at least one favorite visible on short terminals.
const minPanelHeight = linesPerFavorite

// layoutFavorites sizes the favorites viewport to the space left under the
// card and keeps the selected entry visible.
func (m *Model) layoutFavorites() {
	n := m.favoriteCount()
	if n == 0 {
		m.viewport.SetContent("")
		m.viewport.Height = 0
		return
	}

	width := m.contentWidth()
	panel := m.styles.Panel
	m.viewport.Width = width - panel.GetHorizontalFrameSize()

	contentHeight := n * linesPerFavorite
	height := contentHeight
	if m.height > 0 {
		used := lipgloss.Height(m.renderHeader(width)) +
			lipgloss.Height(m.renderCard(width)) +
			lipgloss.Height(m.renderActions()) +
			lipgloss.Height(m.styles.HelpBar.Render(m.help.View(m.keymap.Help(m.mode)))) +
			1 + // status line
			panel.GetVerticalFrameSize() + 1 // title line
		height = min(contentHeight, max(minPanelHeight, m.height-used))
	}
	m.viewport.Height = height
	m.viewport.SetContent(m.favoritesContent(m.viewport.Width))

	top := m.selected * linesPerFavorite
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case top+linesPerFavorite > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(top + linesPerFavorite - m.viewport.Height)
	}
}
