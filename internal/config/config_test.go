package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.TUI.Theme != "default" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if !cfg.TUI.AltScreen {
		t.Error("TUI.AltScreen should default to true")
	}
	if cfg.TUI.MaxWidth != 80 {
		t.Errorf("TUI.MaxWidth = %d, want 80", cfg.TUI.MaxWidth)
	}
	if cfg.Timing.TransitionMS != 300 {
		t.Errorf("Timing.TransitionMS = %d, want 300", cfg.Timing.TransitionMS)
	}
	if cfg.Timing.CopyFeedbackMS != 2000 {
		t.Errorf("Timing.CopyFeedbackMS = %d, want 2000", cfg.Timing.CopyFeedbackMS)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, "file")
	}
	if cfg.Storage.Key != "favoriteQuotes" {
		t.Errorf("Storage.Key = %q, want %q", cfg.Storage.Key, "favoriteQuotes")
	}
	if cfg.Clipboard.Target != "stderr" {
		t.Errorf("Clipboard.Target = %q, want %q", cfg.Clipboard.Target, "stderr")
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "info" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestTimingConfig_Durations(t *testing.T) {
	cfg := TimingConfig{TransitionMS: 300, CopyFeedbackMS: 2000}

	if got := cfg.Transition(); got != 300*time.Millisecond {
		t.Errorf("Transition() = %v, want 300ms", got)
	}
	if got := cfg.CopyFeedback(); got != 2*time.Second {
		t.Errorf("CopyFeedback() = %v, want 2s", got)
	}
}

func withXDG(t *testing.T, env map[string]string) {
	t.Helper()
	// Registered first so it runs after the env vars are restored
	t.Cleanup(xdg.Reload)
	for k, v := range env {
		t.Setenv(k, v)
	}
	xdg.Reload()
}

func TestDirectories(t *testing.T) {
	withXDG(t, map[string]string{
		"XDG_CONFIG_HOME": "/custom/config",
		"XDG_DATA_HOME":   "/custom/data",
		"XDG_STATE_HOME":  "/custom/state",
	})

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ConfigDir", ConfigDir(), "/custom/config/inspire"},
		{"ConfigFile", ConfigFile(), "/custom/config/inspire/config.yaml"},
		{"DataDir", DataDir(), "/custom/data/inspire"},
		{"StateDir", StateDir(), "/custom/state/inspire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestStorageConfig_ResolveDataDir(t *testing.T) {
	withXDG(t, map[string]string{"XDG_DATA_HOME": "/xdg/data"})

	empty := StorageConfig{}
	if got := empty.ResolveDataDir(); got != filepath.Join("/xdg/data", AppName) {
		t.Errorf("ResolveDataDir() = %q", got)
	}

	explicit := StorageConfig{DataDir: "/tmp/quotes"}
	if got := explicit.ResolveDataDir(); got != "/tmp/quotes" {
		t.Errorf("ResolveDataDir() = %q, want /tmp/quotes", got)
	}
}

func TestApplyDefaults_CoversAllKeys(t *testing.T) {
	v := viper.New()
	ApplyDefaults(v)

	for _, key := range Keys() {
		if !v.IsSet(key) {
			t.Errorf("key %q has no default", key)
		}
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		v := viper.New()
		ApplyDefaults(v)

		cfg, err := LoadFrom(v)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if cfg.Storage.Key != "favoriteQuotes" {
			t.Errorf("Storage.Key = %q", cfg.Storage.Key)
		}
	})

	t.Run("yaml overrides", func(t *testing.T) {
		v := viper.New()
		ApplyDefaults(v)
		v.SetConfigType("yaml")
		yaml := "tui:\n  theme: nord\nstorage:\n  backend: sqlite\ntiming:\n  transition_ms: 150\n"
		if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
			t.Fatalf("ReadConfig() error = %v", err)
		}

		cfg, err := LoadFrom(v)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if cfg.TUI.Theme != "nord" {
			t.Errorf("TUI.Theme = %q, want nord", cfg.TUI.Theme)
		}
		if cfg.Storage.Backend != "sqlite" {
			t.Errorf("Storage.Backend = %q, want sqlite", cfg.Storage.Backend)
		}
		if cfg.Timing.TransitionMS != 150 {
			t.Errorf("Timing.TransitionMS = %d, want 150", cfg.Timing.TransitionMS)
		}
		// Untouched keys keep their defaults
		if cfg.Timing.CopyFeedbackMS != 2000 {
			t.Errorf("Timing.CopyFeedbackMS = %d, want 2000", cfg.Timing.CopyFeedbackMS)
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		v := viper.New()
		ApplyDefaults(v)
		v.Set("storage.backend", "redis")

		_, err := LoadFrom(v)
		if err == nil {
			t.Fatal("expected validation error")
		}
		verrs, ok := err.(ValidationErrors)
		if !ok {
			t.Fatalf("expected ValidationErrors, got %T", err)
		}
		if len(verrs) != 1 || verrs[0].Field != "storage.backend" {
			t.Errorf("unexpected errors: %v", verrs)
		}
	})
}

func TestGet(t *testing.T) {
	// Set defaults in viper first (normally done by cmd init)
	SetDefaults()

	cfg := Get()
	if cfg == nil {
		t.Fatal("Get() returned nil")
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("Get().Storage.Backend = %q, want %q", cfg.Storage.Backend, "file")
	}
}
