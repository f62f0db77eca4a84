package store

import (
	"fmt"

	"github.com/Iron-Ham/inspire/internal/config"
	"github.com/Iron-Ham/inspire/internal/errors"
)

// Open creates the Store selected by cfg.Backend.
// File and SQLite backends live in cfg.ResolveDataDir().
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case BackendFile, "":
		s, err := NewFileStore(cfg.ResolveDataDir())
		if err != nil {
			return nil, storageErr(BackendFile, cfg.Key, "failed to open store", err)
		}
		return s, nil
	case BackendSQLite:
		s, err := NewSQLiteStore(cfg.ResolveDataDir())
		if err != nil {
			return nil, storageErr(BackendSQLite, cfg.Key, "failed to open store", err)
		}
		return s, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownBackend, cfg.Backend)
	}
}
