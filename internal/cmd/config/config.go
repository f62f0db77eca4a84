// Package config provides CLI commands for managing inspire configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appconfig "github.com/Iron-Ham/inspire/internal/config"
	"github.com/Iron-Ham/inspire/internal/tui/styles"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify inspire configuration",
	Long: `View or modify inspire configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  inspire config set tui.theme dracula
  inspire config set timing.transition_ms 500
  inspire config set storage.backend sqlite

Valid keys:
  tui.theme                - Color theme (built-in or custom)
  tui.alt_screen           - Use the alternate screen buffer (true/false)
  tui.max_width            - Maximum card width in columns (30-200)
  timing.transition_ms     - Fade duration before a new quote appears
  timing.copy_feedback_ms  - How long "Copied!" stays visible
  storage.backend          - Where favorites are kept: file, sqlite, memory
  storage.data_dir         - Directory for persisted favorites
  storage.key              - Storage key for the favorites list
  clipboard.target         - Stream for the OSC52 sequence: stderr, stdout
  logging.enabled          - Write a log file (true/false)
  logging.level            - debug, info, warn, error
  logging.max_size_mb      - Rotate the log file at this size
  logging.max_backups      - Rotated log files to keep
  logging.compress         - Gzip rotated log files (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at $XDG_CONFIG_HOME/inspire/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  inspire config reset            # Reset all to defaults
  inspire config reset tui.theme  # Reset only tui.theme to default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# Config file: %s\n", used)
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	data, err := yaml.Marshal(nestedSettings(viper.GetViper()))
	if err != nil {
		return fmt.Errorf("rendering configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// nestedSettings returns the configuration keys of v as a nested map,
// leaving out flag-only settings such as --verbose.
func nestedSettings(v *viper.Viper) map[string]map[string]any {
	settings := make(map[string]map[string]any)
	for _, key := range appconfig.Keys() {
		section, name, _ := strings.Cut(key, ".")
		if settings[section] == nil {
			settings[section] = make(map[string]any)
		}
		settings[section][name] = v.Get(key)
	}
	return settings
}

// snapshot copies the effective configuration into a fresh viper so it can
// be edited and written without the flag and env overlays of the global one.
func snapshot() *viper.Viper {
	v := viper.New()
	appconfig.ApplyDefaults(v)
	for _, key := range appconfig.Keys() {
		v.Set(key, viper.Get(key))
	}
	return v
}

func isKnownKey(key string) bool {
	for _, k := range appconfig.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// coerce converts value to the type of key's default.
func coerce(key, value string) (any, error) {
	defaults := viper.New()
	appconfig.ApplyDefaults(defaults)

	switch defaults.Get(key).(type) {
	case bool:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case int:
		n, err := cast.ToIntE(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if !isKnownKey(key) {
		return fmt.Errorf("unknown configuration key: %s\nRun 'inspire config set --help' to see valid keys", key)
	}

	typedValue, err := coerce(key, value)
	if err != nil {
		return err
	}

	if key == "tui.theme" {
		_, _ = styles.DiscoverCustomThemes()
		if !styles.IsValidTheme(value) {
			return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(styles.ValidThemes(), ", "))
		}
	}

	v := snapshot()
	v.Set(key, typedValue)
	if _, err := appconfig.LoadFrom(v); err != nil {
		return err
	}

	configFile, err := writeConfig(v)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	defaults := viper.New()
	appconfig.ApplyDefaults(defaults)

	v := snapshot()
	if len(args) == 1 {
		key := args[0]
		if !isKnownKey(key) {
			return fmt.Errorf("unknown configuration key: %s", key)
		}
		v.Set(key, defaults.Get(key))
	} else {
		v = defaults
	}

	configFile, err := writeConfig(v)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s = %v\n", args[0], defaults.Get(args[0]))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Reset all configuration to defaults")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
	return nil
}

// writeConfig writes v to the active config file, or the default path when
// none is in use, and returns the path written.
func writeConfig(v *viper.Viper) (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = appconfig.ConfigFile()
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := v.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configFile, nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'inspire config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize inspire.")
	return nil
}

const defaultConfigTemplate = `# inspire configuration

# Terminal UI
tui:
  # Color theme: default, monokai, dracula, nord, gruvbox or a custom theme
  theme: default
  # Run on the alternate screen buffer
  alt_screen: true
  # Maximum width of the quote card in columns
  max_width: 80

# Animation and feedback windows in milliseconds
timing:
  transition_ms: 300
  copy_feedback_ms: 2000

# Favorites persistence
storage:
  # Options: file, sqlite, memory
  backend: file
  # Empty means $XDG_DATA_HOME/inspire
  data_dir: ""
  key: favoriteQuotes

clipboard:
  # Stream the OSC52 copy sequence is written to: stderr, stdout
  target: stderr

# Log file under $XDG_STATE_HOME/inspire
logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info
  max_size_mb: 10
  max_backups: 3
  compress: false
`

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "Active config: %s\n", used)
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	fmt.Fprintf(out, "\nFavorites: %s\n", appconfig.DataDir())
	fmt.Fprintf(out, "Logs: %s\n", appconfig.StateDir())
	fmt.Fprintf(out, "Themes: %s\n", styles.ThemesDir())
	fmt.Fprintln(out, "\nEnvironment variables: INSPIRE_* (e.g., INSPIRE_TUI_THEME)")
	return nil
}
