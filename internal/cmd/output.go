package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Iron-Ham/inspire/internal/logging"
	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/Iron-Ham/inspire/internal/tui"
	"github.com/Iron-Ham/inspire/internal/tui/styles"
	"golang.org/x/term"
)

// quoteOutput is the JSON form of a quote. Index is its 1-based position in
// the list it was printed from.
type quoteOutput struct {
	Index    int    `json:"index"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

func toOutput(index int, q quote.Quote) quoteOutput {
	return quoteOutput{
		Index:    index,
		Text:     q.Text,
		Author:   q.Author,
		Category: q.Category,
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeList prints quotes one per line as `  n. "<text>" - <author>`.
func writeList(w io.Writer, quotes []quote.Quote) {
	for i, q := range quotes {
		fmt.Fprintf(w, "%3d. %s\n", i+1, quote.Format(q))
	}
}

// terminalWidth returns the column count of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(f.Fd()) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// writeQuote prints q as a styled card on a terminal and as plain clipboard
// text otherwise.
func writeQuote(w io.Writer, logger *logging.Logger, q quote.Quote, theme string, maxWidth int) {
	width, ok := terminalWidth(w)
	if !ok {
		fmt.Fprintln(w, quote.Format(q))
		return
	}

	loadCustomThemes(logger)
	name := styles.ThemeName(theme)
	if !styles.IsValidTheme(theme) {
		logger.Warn("unknown theme, using default", "theme", theme)
		name = styles.ThemeDefault
	}
	fmt.Fprintln(w, tui.RenderCard(styles.ForTheme(name), q, min(width, maxWidth), false))
}

// loadCustomThemes registers the user's theme files, logging the ones that
// could not be loaded.
func loadCustomThemes(logger *logging.Logger) {
	_, errs := styles.DiscoverCustomThemes()
	for _, err := range errs {
		logger.Warn("custom theme not loaded", "error", err)
	}
}
