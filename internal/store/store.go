// Package store provides key-value persistence for inspire. Values are opaque
// byte slices; callers own their encoding. Three backends are available:
// files on disk, a SQLite database, and process memory.
package store

import (
	"context"
	"io"
	"regexp"

	"github.com/Iron-Ham/inspire/internal/errors"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// -----------------------------------------------------------------------------
// Interfaces
// -----------------------------------------------------------------------------

// Store provides generic key-value persistence operations.
// Implementations are safe for concurrent use.
type Store interface {
	// Save persists data with the given key. If the key already exists,
	// the data is overwritten.
	Save(ctx context.Context, key string, data []byte) error

	// Load retrieves data for the given key.
	// Returns errors.ErrNotFound if the key does not exist.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes the data associated with the given key.
	// Returns errors.ErrNotFound if the key does not exist.
	Delete(ctx context.Context, key string) error

	// List returns all keys in lexical order.
	List(ctx context.Context) ([]string, error)

	// Exists checks if a key exists without loading its data.
	Exists(ctx context.Context, key string) (bool, error)

	// Backend returns the backend name, one of the Backend* constants.
	Backend() string

	io.Closer
}

// keyRegex restricts keys to characters that are safe as file names.
var keyRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidateKey returns a ValidationError if key cannot be stored.
func ValidateKey(key string) error {
	if !keyRegex.MatchString(key) {
		return errors.NewValidationError("invalid storage key").
			WithField("key").
			WithValue(key)
	}
	return nil
}

// storageErr tags cause with the key and backend. An interrupted operation
// is only a warning: nothing was written and the caller may simply retry.
func storageErr(backend, key, msg string, cause error) error {
	err := errors.NewStorageError(msg, cause).WithKey(key).WithBackend(backend)
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		err = err.WithSeverity(errors.SeverityWarning)
	}
	return err
}
