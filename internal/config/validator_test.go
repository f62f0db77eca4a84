package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default config should be valid, got errors: %v", errs)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"theme empty", func(c *Config) { c.TUI.Theme = "" }, "tui.theme"},
		{"theme uppercase", func(c *Config) { c.TUI.Theme = "Nord" }, "tui.theme"},
		{"max width too small", func(c *Config) { c.TUI.MaxWidth = 10 }, "tui.max_width"},
		{"max width too large", func(c *Config) { c.TUI.MaxWidth = 500 }, "tui.max_width"},
		{"transition zero", func(c *Config) { c.Timing.TransitionMS = 0 }, "timing.transition_ms"},
		{"copy feedback negative", func(c *Config) { c.Timing.CopyFeedbackMS = -5 }, "timing.copy_feedback_ms"},
		{"copy feedback too long", func(c *Config) { c.Timing.CopyFeedbackMS = 120000 }, "timing.copy_feedback_ms"},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage.backend"},
		{"empty key", func(c *Config) { c.Storage.Key = "" }, "storage.key"},
		{"key with slash", func(c *Config) { c.Storage.Key = "../escape" }, "storage.key"},
		{"data dir NUL", func(c *Config) { c.Storage.DataDir = "a\x00b" }, "storage.data_dir"},
		{"clipboard target", func(c *Config) { c.Clipboard.Target = "printer" }, "clipboard.target"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"log size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"log backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_AcceptsValidValues(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"custom theme", func(c *Config) { c.TUI.Theme = "solarized-dark" }},
		{"sqlite backend", func(c *Config) { c.Storage.Backend = "sqlite" }},
		{"memory backend", func(c *Config) { c.Storage.Backend = "memory" }},
		{"stdout target", func(c *Config) { c.Clipboard.Target = "stdout" }},
		{"uppercase level", func(c *Config) { c.Logging.Level = "DEBUG" }},
		{"dotted key", func(c *Config) { c.Storage.Key = "favorites.v2" }},
		{"zero backups", func(c *Config) { c.Logging.MaxBackups = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if errs := cfg.Validate(); len(errs) != 0 {
				t.Errorf("expected no errors, got %v", errs)
			}
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "redis"
	cfg.Clipboard.Target = "printer"
	cfg.Timing.TransitionMS = 0

	errs := cfg.Validate()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidLogLevels(t *testing.T) {
	levels := ValidLogLevels()
	expected := []string{"debug", "info", "warn", "error"}
	if len(levels) != len(expected) {
		t.Fatalf("ValidLogLevels() returned %d levels, want %d", len(levels), len(expected))
	}
	for i, level := range expected {
		if levels[i] != level {
			t.Errorf("ValidLogLevels()[%d] = %q, want %q", i, levels[i], level)
		}
	}
}
