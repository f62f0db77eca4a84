// Package logging provides structured logging for inspire.
//
// This package wraps Go's log/slog. The TUI writes JSON lines to a log file
// under the user's state directory so that rendering is never disturbed;
// CLI subcommands can opt into a colorized console handler with --verbose.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Persistent attributes on child loggers (component, key-value pairs)
//   - Size-based log rotation via lumberjack, with optional gzip
//   - Human-readable console output via charmbracelet/log
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. Child loggers
// created via With* methods share the underlying writer.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/state", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("favorites loaded", "count", 3)
//
// # Child Loggers
//
//	storeLogger := logger.WithComponent("store").With("backend", "file")
//	storeLogger.Warn("favorites unreadable, starting empty", "error", err)
//
// Output:
//
//	{"time":"...","level":"WARN","msg":"favorites unreadable, starting empty","component":"store","backend":"file","error":"..."}
//
// # Log Rotation
//
//	config := logging.RotationConfig{
//	    MaxSizeMB:  10,
//	    MaxBackups: 3,
//	    Compress:   true,
//	}
//	logger, err := logging.NewLoggerWithRotation("/path/to/state", "INFO", config)
//
// # Disabled Logging
//
// Use [NopLogger] when logging is disabled in config or in tests.
package logging
