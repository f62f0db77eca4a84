package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/inspire/internal/config"
	"github.com/Iron-Ham/inspire/internal/errors"
)

func isStorageError(err error) bool {
	var storageErr *errors.StorageError
	return errors.As(err, &storageErr)
}

func TestOpen(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{"file", BackendFile},
		{"", BackendFile},
		{"sqlite", BackendSQLite},
		{"memory", BackendMemory},
	}

	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.backend, func(t *testing.T) {
			dir := t.TempDir()
			s, err := Open(config.StorageConfig{Backend: tt.backend, DataDir: dir, Key: "favoriteQuotes"})
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer s.Close()

			if got := s.Backend(); got != tt.want {
				t.Errorf("Backend() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpen_SQLiteCreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := Open(config.StorageConfig{Backend: "sqlite", DataDir: dir})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, SQLiteFileName)); err != nil {
		t.Errorf("expected database file: %v", err)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(config.StorageConfig{Backend: "redis"})
	if !errors.Is(err, errors.ErrUnknownBackend) {
		t.Errorf("Open() error = %v, want ErrUnknownBackend", err)
	}
}
