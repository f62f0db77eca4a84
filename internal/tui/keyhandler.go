package tui

import (
	"github.com/Iron-Ham/inspire/internal/tui/keymap"
	"github.com/Iron-Ham/inspire/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeypress resolves a key to a command for the focused area and runs it.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(msg, m.mode)
	if !ok {
		return m, nil
	}
	return m.runCommand(cmd)
}

func (m Model) runCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	// -------------------------------------------------------------------------
	// Quote card
	// -------------------------------------------------------------------------
	case keymap.CmdNewQuote:
		return m, m.newQuote()

	case keymap.CmdToggleFavorite:
		return m, m.toggleFavorite()

	case keymap.CmdCopyQuote:
		return m, m.copyQuote(m.current)

	case keymap.CmdFocusFavorites:
		if m.favoriteCount() == 0 {
			return m, m.setStatus("No favorites yet", false)
		}
		m.mode = keymap.ModeFavorites
		m.syncFavorites()
		return m, nil

	// -------------------------------------------------------------------------
	// Favorites list
	// -------------------------------------------------------------------------
	case keymap.CmdSelectNext:
		m.moveSelection(1)
		return m, nil

	case keymap.CmdSelectPrev:
		m.moveSelection(-1)
		return m, nil

	case keymap.CmdRemoveFavorite:
		return m, m.removeSelected()

	case keymap.CmdCopyFavorite:
		q, ok := m.selectedFavorite()
		if !ok {
			return m, nil
		}
		return m, m.copyQuote(q)

	case keymap.CmdFocusQuote:
		m.mode = keymap.ModeQuote
		m.syncFavorites()
		return m, nil

	// -------------------------------------------------------------------------
	// Application
	// -------------------------------------------------------------------------
	case keymap.CmdCycleTheme:
		m.setTheme(styles.NextTheme(m.styles.Name))
		return m, m.setStatus("Theme: "+string(m.styles.Name), false)

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.syncFavorites()
		return m, nil

	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}
