package cmd

import (
	"fmt"

	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/spf13/cobra"
)

var favoritesJSON bool

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"favs"},
	Short:   "List and manage favorite quotes",
	Long: `List and manage favorite quotes.

Without a subcommand, lists the favorites in the order they were added.`,
	Args: cobra.NoArgs,
	RunE: runFavoritesList,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite quotes",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesList,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <n>",
	Short: "Add the n-th catalog quote to favorites",
	Long: `Add the n-th catalog quote to favorites.

Run 'inspire catalog' to see the catalog indexes.`,
	Args: cobra.ExactArgs(1),
	RunE: runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:     "remove <n>",
	Aliases: []string{"rm"},
	Short:   "Remove the n-th favorite",
	Args:    cobra.ExactArgs(1),
	RunE:    runFavoritesRemove,
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every favorite",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesClear,
}

func init() {
	favoritesCmd.PersistentFlags().BoolVar(&favoritesJSON, "json", false, "Output favorites as JSON")
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesClearCmd)
	rootCmd.AddCommand(favoritesCmd)
}

// withFavorites opens the runtime, loads favorites and runs fn.
func withFavorites(cmd *cobra.Command, fn func(rt *runtime) error) error {
	rt, err := openRuntime(cmd, true)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	if err := rt.loadFavorites(cmd.Context()); err != nil {
		return err
	}
	return fn(rt)
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	return withFavorites(cmd, func(rt *runtime) error {
		items := rt.favorites.Items()
		out := cmd.OutOrStdout()

		if favoritesJSON {
			list := make([]quoteOutput, len(items))
			for i, q := range items {
				list[i] = toOutput(i+1, q)
			}
			return writeJSON(out, list)
		}

		if len(items) == 0 {
			fmt.Fprintln(out, "No favorites yet. Add one with 'inspire favorites add <n>'.")
			return nil
		}
		writeList(out, items)
		return nil
	})
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	i, err := parseIndex(args[0], len(quote.Catalog()))
	if err != nil {
		return err
	}
	q, _ := quote.At(i)

	return withFavorites(cmd, func(rt *runtime) error {
		added, err := rt.favorites.Add(q)
		if err != nil {
			return err
		}
		if !added {
			fmt.Fprintf(cmd.OutOrStdout(), "Already a favorite: %s\n", quote.Format(q))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added to favorites: %s\n", quote.Format(q))
		return nil
	})
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	return withFavorites(cmd, func(rt *runtime) error {
		i, err := parseIndex(args[0], rt.favorites.Len())
		if err != nil {
			return err
		}
		removed, err := rt.favorites.RemoveAt(i - 1)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed from favorites: %s\n", quote.Format(removed))
		return nil
	})
}

func runFavoritesClear(cmd *cobra.Command, args []string) error {
	return withFavorites(cmd, func(rt *runtime) error {
		n := rt.favorites.Len()
		if err := rt.favorites.Clear(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d favorite(s)\n", n)
		return nil
	})
}
