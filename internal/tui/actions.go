package tui

import (
	"fmt"

	"github.com/Iron-Ham/inspire/internal/errors"
	"github.com/Iron-Ham/inspire/internal/event"
	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/Iron-Ham/inspire/internal/tui/keymap"
	tea "github.com/charmbracelet/bubbletea"
)

// newQuote starts the fade. The quote is swapped when the fade slot fires;
// pressing again before then replaces the pending swap.
func (m *Model) newQuote() tea.Cmd {
	m.animating = true
	return m.fade.Schedule(m.transition)
}

// commitNewQuote ends the fade by drawing a quote different from the
// current one.
func (m *Model) commitNewQuote() {
	previous := m.current
	if m.picker != nil {
		m.current = m.picker.Next(previous)
	}
	m.animating = false
	m.logger.Debug("quote changed", "quote", m.current.Key())
	m.publish(event.NewQuoteChangedEvent(previous, m.current))
}

func (m *Model) toggleFavorite() tea.Cmd {
	if m.favorites == nil {
		return nil
	}
	if !m.favoritesLoaded {
		return m.setStatus("Favorites are still loading", false)
	}

	added, err := m.favorites.Toggle(m.current)
	m.syncFavorites()
	if err != nil {
		return m.setStatus(failureMessage("Could not save favorites", err), true)
	}
	if added {
		return m.setStatus("Added to favorites", false)
	}
	return m.setStatus("Removed from favorites", false)
}

func (m *Model) removeSelected() tea.Cmd {
	if m.favorites == nil || m.favoriteCount() == 0 {
		return nil
	}

	removed, err := m.favorites.RemoveAt(m.selected)
	m.syncFavorites()
	if removed.IsZero() {
		return m.setStatus(failureMessage("Could not remove favorite", err), true)
	}
	if err != nil {
		return m.setStatus(failureMessage("Could not save favorites", err), true)
	}
	return m.setStatus("Removed favorite by "+removed.Author, false)
}

// copyQuote writes q to the clipboard and flips the copy label for the
// feedback window. A repeated copy restarts the window.
func (m *Model) copyQuote(q quote.Quote) tea.Cmd {
	text := quote.Format(q)
	err := m.clipboard.WriteText(text)
	m.publish(event.NewQuoteCopiedEvent(q, text, err))

	if err != nil {
		m.logger.Failure("copy failed", err, "quote", q.Key())
		m.copyState = copyFailed
	} else {
		m.logger.Debug("quote copied", "quote", q.Key())
		m.copyState = copyDone
	}
	reset := m.copyReset.Schedule(m.copyFeedback)
	if errors.IsRetryable(err) {
		return tea.Batch(reset, m.setStatus("Clipboard unavailable, press c to try again", true))
	}
	return reset
}

// failureMessage appends err to prefix only when err is safe to show.
func failureMessage(prefix string, err error) string {
	if errors.IsUserFacing(err) {
		return fmt.Sprintf("%s: %v", prefix, err)
	}
	return prefix
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.statusMessage = msg
	m.statusIsError = isError
	return m.statusClear.Schedule(statusDuration)
}

func (m *Model) moveSelection(delta int) {
	n := m.favoriteCount()
	if n == 0 {
		return
	}
	m.selected = (m.selected + delta + n) % n
	m.syncFavorites()
}

func (m Model) selectedFavorite() (quote.Quote, bool) {
	if m.favoriteCount() == 0 {
		return quote.Quote{}, false
	}
	items := m.favorites.Items()
	if m.selected < 0 || m.selected >= len(items) {
		return quote.Quote{}, false
	}
	return items[m.selected], true
}

// syncFavorites clamps the selection, leaves favorites mode when the list
// empties, and refreshes the panel viewport.
func (m *Model) syncFavorites() {
	n := m.favoriteCount()
	if n == 0 {
		m.selected = 0
		if m.mode == keymap.ModeFavorites {
			m.mode = keymap.ModeQuote
		}
	} else if m.selected >= n {
		m.selected = n - 1
	}
	m.layoutFavorites()
}
