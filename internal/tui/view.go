package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.contentWidth()
	sections := []string{
		m.renderHeader(width),
		m.renderCard(width),
		m.renderActions(),
	}
	if panel := m.renderFavorites(width); panel != "" {
		sections = append(sections, panel)
	}
	sections = append(sections, m.renderFooter())

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > width {
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body
}

// contentWidth is the column budget for the card and panel: the terminal
// width capped by tui.max_width.
func (m Model) contentWidth() int {
	width := m.maxWidth
	if m.width > 0 && m.width < width {
		width = m.width
	}
	return width
}

func (m Model) renderFooter() string {
	var b strings.Builder
	if m.statusMessage != "" {
		style := m.styles.SuccessMsg
		if m.statusIsError {
			style = m.styles.ErrorMsg
		}
		b.WriteString(style.Render(m.statusMessage))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.HelpBar.Render(m.help.View(m.keymap.Help(m.mode))))
	return b.String()
}
