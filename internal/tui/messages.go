package tui

import (
	"github.com/Iron-Ham/inspire/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
)

// Delay slot names. FiredMsg values are routed by these.
const (
	slotFade   = "fade"
	slotCopy   = "copy"
	slotStatus = "status"
)

// favoritesLoadedMsg is sent once the persisted favorites have been read.
type favoritesLoadedMsg struct {
	err error
}

// themeChangedMsg asks the model to switch palettes, typically after the
// config file was edited while the TUI is running.
type themeChangedMsg struct {
	name styles.ThemeName
}

// themesReloadedMsg reports that the custom theme directory was rescanned.
type themesReloadedMsg struct {
	loaded []string
	errs   []error
}

// copyState drives the copy button label.
type copyState int

const (
	copyIdle copyState = iota
	copyDone
	copyFailed
)

// loadFavorites reads persisted favorites off the update loop.
func (m Model) loadFavorites() tea.Cmd {
	favs := m.favorites
	return func() tea.Msg {
		ctx, cancel := loadContext()
		defer cancel()
		return favoritesLoadedMsg{err: favs.Load(ctx)}
	}
}
