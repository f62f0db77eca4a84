package cmd

import (
	"fmt"
	"strconv"

	"github.com/Iron-Ham/inspire/internal/errors"
	"github.com/Iron-Ham/inspire/internal/event"
	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/spf13/cobra"
)

var copyFavorite int

var copyCmd = &cobra.Command{
	Use:   "copy [n]",
	Short: "Copy a quote to the clipboard",
	Long: `Copy a random quote, or the n-th catalog quote, to the clipboard.

The text copied is "<text>" - <author>. The clipboard is reached through
the terminal's OSC52 escape sequence, so it also works over SSH.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().IntVarP(&copyFavorite, "favorite", "f", 0, "copy the n-th favorite instead of a catalog quote")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	if copyFavorite != 0 && len(args) > 0 {
		return errors.NewValidationError("pass either a catalog index or --favorite, not both").
			WithField("favorite").
			WithValue(copyFavorite)
	}

	rt, err := openRuntime(cmd, true)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	var q quote.Quote
	if copyFavorite != 0 {
		if err := rt.loadFavorites(cmd.Context()); err != nil {
			return err
		}
		items := rt.favorites.Items()
		if copyFavorite < 1 || copyFavorite > len(items) {
			return errors.NewNotFoundError("favorite", strconv.Itoa(copyFavorite)).
				WithCause(errors.ErrQuoteNotFound)
		}
		q = items[copyFavorite-1]
	} else {
		q, _, err = pickQuote(args)
		if err != nil {
			return err
		}
	}

	return copyQuote(cmd, rt, q)
}

func copyQuote(cmd *cobra.Command, rt *runtime, q quote.Quote) error {
	text := quote.Format(q)
	err := newClipboard(rt.cfg.Clipboard.Target).WriteText(text)
	rt.bus.Publish(event.NewQuoteCopiedEvent(q, text, err))
	if err != nil {
		rt.logger.Failure("copy failed", err, "quote", q.Key())
		return errors.Wrapf(err, "copying to %s", rt.cfg.Clipboard.Target)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Copied: %s\n", text)
	return nil
}
