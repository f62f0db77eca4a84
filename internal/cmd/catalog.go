package cmd

import (
	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/spf13/cobra"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every built-in quote",
	Long: `List every built-in quote with its index.

The index can be passed to 'show', 'copy' and 'favorites add'.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Output the catalog as JSON")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	quotes := quote.Catalog()

	if catalogJSON {
		out := make([]quoteOutput, len(quotes))
		for i, q := range quotes {
			out[i] = toOutput(i+1, q)
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	writeList(cmd.OutOrStdout(), quotes)
	return nil
}
