package tui

import "github.com/charmbracelet/lipgloss"

const (
	headerTitle    = "Daily Inspiration"
	headerSubtitle = "Discover wisdom from great minds"
)

func (m Model) renderHeader(width int) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Header.Width(width).Render(headerTitle),
		m.styles.Subtitle.Width(width).Render(headerSubtitle),
	)
}
