package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "timing.transition_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// themeNameRegex matches built-in and custom theme names
var themeNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// storageKeyRegex restricts keys to characters that are safe as file names
var storageKeyRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateTiming()...)
	errors = append(errors, c.validateStorage()...)
	errors = append(errors, c.validateClipboard()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if !themeNameRegex.MatchString(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: "must start with a lowercase letter and contain only lowercase letters, digits, hyphens, or underscores",
		})
	}

	const minWidth = 30
	const maxWidth = 200
	if c.TUI.MaxWidth < minWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.max_width",
			Value:   c.TUI.MaxWidth,
			Message: fmt.Sprintf("must be at least %d columns", minWidth),
		})
	}
	if c.TUI.MaxWidth > maxWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.max_width",
			Value:   c.TUI.MaxWidth,
			Message: fmt.Sprintf("exceeds maximum of %d columns", maxWidth),
		})
	}

	return errors
}

// validateTiming validates the TimingConfig
func (c *Config) validateTiming() []ValidationError {
	var errors []ValidationError

	// A minute is far beyond anything a user would want to wait on.
	const maxMS = 60000

	check := func(field string, value int) {
		if value <= 0 {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   value,
				Message: "must be positive",
			})
			return
		}
		if value > maxMS {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   value,
				Message: fmt.Sprintf("exceeds maximum of %dms", maxMS),
			})
		}
	}

	check("timing.transition_ms", c.Timing.TransitionMS)
	check("timing.copy_feedback_ms", c.Timing.CopyFeedbackMS)

	return errors
}

// validateStorage validates the StorageConfig
func (c *Config) validateStorage() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidBackends(), c.Storage.Backend) {
		errors = append(errors, ValidationError{
			Field:   "storage.backend",
			Value:   c.Storage.Backend,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidBackends(), ", ")),
		})
	}

	if !storageKeyRegex.MatchString(c.Storage.Key) {
		errors = append(errors, ValidationError{
			Field:   "storage.key",
			Value:   c.Storage.Key,
			Message: "must be non-empty and contain only letters, digits, '.', '_' or '-'",
		})
	}

	if strings.ContainsRune(c.Storage.DataDir, 0) {
		errors = append(errors, ValidationError{
			Field:   "storage.data_dir",
			Value:   c.Storage.DataDir,
			Message: "must not contain NUL bytes",
		})
	}

	return errors
}

// validateClipboard validates the ClipboardConfig
func (c *Config) validateClipboard() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidClipboardTargets(), c.Clipboard.Target) {
		errors = append(errors, ValidationError{
			Field:   "clipboard.target",
			Value:   c.Clipboard.Target,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidClipboardTargets(), ", ")),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 1 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be at least 1",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
