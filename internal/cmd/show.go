package cmd

import (
	"strconv"

	"github.com/Iron-Ham/inspire/internal/config"
	"github.com/Iron-Ham/inspire/internal/errors"
	"github.com/Iron-Ham/inspire/internal/logging"
	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [n]",
	Short: "Print a quote",
	Long: `Print a random quote, or the n-th quote of the catalog.

On a terminal the quote is drawn as a card in the configured theme.
When piped, it is printed as a single line: "<text>" - <author>`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output the quote as JSON")
	rootCmd.AddCommand(showCmd)
}

// parseIndex converts a 1-based index argument, checking it against n.
func parseIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.NewValidationError("index must be a number").
			WithField("n").
			WithValue(arg)
	}
	if i < 1 || i > n {
		return 0, errors.NewNotFoundError("quote", arg).WithCause(errors.ErrQuoteNotFound)
	}
	return i, nil
}

// pickQuote returns the catalog quote named by args, or a random one.
func pickQuote(args []string) (quote.Quote, int, error) {
	if len(args) == 0 {
		q := newPicker().Random()
		return q, quote.IndexOf(q), nil
	}
	i, err := parseIndex(args[0], len(quote.Catalog()))
	if err != nil {
		return quote.Quote{}, 0, err
	}
	q, _ := quote.At(i)
	return q, i, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	q, index, err := pickQuote(args)
	if err != nil {
		return err
	}

	if showJSON {
		return writeJSON(cmd.OutOrStdout(), toOutput(index, q))
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	logger := logging.NewConsoleLogger(cmd.ErrOrStderr(), logging.LevelWarn)
	writeQuote(cmd.OutOrStdout(), logger, q, cfg.TUI.Theme, cfg.TUI.MaxWidth)
	return nil
}
