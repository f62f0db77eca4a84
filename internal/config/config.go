package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "inspire"

// Config represents the complete inspire configuration
type Config struct {
	TUI       TUIConfig       `mapstructure:"tui"`
	Timing    TimingConfig    `mapstructure:"timing"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord", or a custom theme name
	Theme string `mapstructure:"theme"`
	// AltScreen runs the TUI in the terminal's alternate screen buffer
	AltScreen bool `mapstructure:"alt_screen"`
	// MaxWidth caps the width of the quote card in columns (min: 30, max: 200)
	MaxWidth int `mapstructure:"max_width"`
}

// TimingConfig controls UI animation and feedback windows
type TimingConfig struct {
	// TransitionMS is how long the quote card fades before a new quote is shown
	TransitionMS int `mapstructure:"transition_ms"`
	// CopyFeedbackMS is how long the "Copied!" label stays visible
	CopyFeedbackMS int `mapstructure:"copy_feedback_ms"`
}

// StorageConfig controls where favorites are persisted
type StorageConfig struct {
	// Backend selects the store implementation
	// Options: "file", "sqlite", "memory"
	Backend string `mapstructure:"backend"`
	// DataDir overrides the data directory. Empty means $XDG_DATA_HOME/inspire.
	DataDir string `mapstructure:"data_dir"`
	// Key is the storage key holding the favorites array
	Key string `mapstructure:"key"`
}

// ClipboardConfig controls how copied quotes reach the system clipboard
type ClipboardConfig struct {
	// Target is the terminal stream the OSC52 sequence is written to
	// Options: "stderr", "stdout"
	Target string `mapstructure:"target"`
}

// LoggingConfig controls file logging behavior
type LoggingConfig struct {
	// Enabled controls whether logs are written to the state directory
	Enabled bool `mapstructure:"enabled"`
	// Level sets the minimum log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// MaxSizeMB is the size at which the log file is rotated
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files
	Compress bool `mapstructure:"compress"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:     "default",
			AltScreen: true,
			MaxWidth:  80,
		},
		Timing: TimingConfig{
			TransitionMS:   300,
			CopyFeedbackMS: 2000,
		},
		Storage: StorageConfig{
			Backend: "file",
			DataDir: "",
			Key:     "favoriteQuotes",
		},
		Clipboard: ClipboardConfig{
			Target: "stderr",
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// Transition returns the fade window as a time.Duration
func (c *TimingConfig) Transition() time.Duration {
	return time.Duration(c.TransitionMS) * time.Millisecond
}

// CopyFeedback returns the copy label window as a time.Duration
func (c *TimingConfig) CopyFeedback() time.Duration {
	return time.Duration(c.CopyFeedbackMS) * time.Millisecond
}

// ResolveDataDir returns DataDir, or the XDG data directory when unset.
func (s *StorageConfig) ResolveDataDir() string {
	if s.DataDir != "" {
		return s.DataDir
	}
	return DataDir()
}

// SetDefaults registers default values with the global viper instance
func SetDefaults() {
	ApplyDefaults(viper.GetViper())
}

// ApplyDefaults registers default values with v
func ApplyDefaults(v *viper.Viper) {
	defaults := Default()

	// TUI defaults
	v.SetDefault("tui.theme", defaults.TUI.Theme)
	v.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)
	v.SetDefault("tui.max_width", defaults.TUI.MaxWidth)

	// Timing defaults
	v.SetDefault("timing.transition_ms", defaults.Timing.TransitionMS)
	v.SetDefault("timing.copy_feedback_ms", defaults.Timing.CopyFeedbackMS)

	// Storage defaults
	v.SetDefault("storage.backend", defaults.Storage.Backend)
	v.SetDefault("storage.data_dir", defaults.Storage.DataDir)
	v.SetDefault("storage.key", defaults.Storage.Key)

	// Clipboard defaults
	v.SetDefault("clipboard.target", defaults.Clipboard.Target)

	// Logging defaults
	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	v.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Keys returns every configuration key in display order.
func Keys() []string {
	return []string{
		"tui.theme",
		"tui.alt_screen",
		"tui.max_width",
		"timing.transition_ms",
		"timing.copy_feedback_ms",
		"storage.backend",
		"storage.data_dir",
		"storage.key",
		"clipboard.target",
		"logging.enabled",
		"logging.level",
		"logging.max_size_mb",
		"logging.max_backups",
		"logging.compress",
	}
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom is Load for an explicit viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDir returns the default directory for persisted favorites
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// StateDir returns the directory log files are written to
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// ValidBackends returns the list of valid storage backends
func ValidBackends() []string {
	return []string{"file", "sqlite", "memory"}
}

// ValidClipboardTargets returns the list of valid clipboard targets
func ValidClipboardTargets() []string {
	return []string{"stderr", "stdout"}
}
