package cmd

import (
	"context"
	"strings"

	cmdconfig "github.com/Iron-Ham/inspire/internal/cmd/config"
	"github.com/Iron-Ham/inspire/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "inspire",
	Short: "A daily inspiration quote widget for the terminal",
	Long: `Inspire shows a random quote from a small built-in collection.

Run without arguments to open the interactive widget: draw a new quote,
mark favorites, and copy quotes to the clipboard. Favorites are kept
between runs.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command. Cancelling ctx stops long-running
// subcommands such as 'logs --follow'.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/inspire/config.yaml)")
	flags.String("store", "", "storage backend: file, sqlite or memory")
	flags.String("data-dir", "", "directory holding persisted favorites")
	flags.Bool("ephemeral", false, "keep favorites in memory only for this run")
	flags.BoolP("verbose", "v", false, "log debug output to stderr")

	cmdconfig.Register(rootCmd)
}

// flagBindings maps config keys to the persistent flags that override them.
var flagBindings = map[string]string{
	"config":           "config",
	"storage.backend":  "store",
	"storage.data_dir": "data-dir",
	"ephemeral":        "ephemeral",
	"verbose":          "verbose",
}

func initConfig() {
	for key, flag := range flagBindings {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
	}

	viper.SetEnvPrefix("INSPIRE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., INSPIRE_STORAGE_BACKEND for storage.backend
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
