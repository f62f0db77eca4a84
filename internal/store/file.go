package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/inspire/internal/errors"
)

const fileExt = ".json"

// FileStore keeps each key in its own file, {baseDir}/{key}.json.
// Writes go to a temporary file in the same directory and are renamed into
// place, so readers never observe a partially written value.
type FileStore struct {
	fs      afero.Fs
	baseDir string
	mu      sync.RWMutex
}

// NewFileStore creates a FileStore on the OS filesystem rooted at baseDir.
// The directory will be created if it doesn't exist.
func NewFileStore(baseDir string) (*FileStore, error) {
	return NewFileStoreFs(afero.NewOsFs(), baseDir)
}

// NewFileStoreFs creates a FileStore on an arbitrary afero filesystem.
func NewFileStoreFs(fs afero.Fs, baseDir string) (*FileStore, error) {
	if ok, _ := afero.DirExists(fs, baseDir); ok {
		return &FileStore{fs: fs, baseDir: baseDir}, nil
	}
	if err := fs.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{fs: fs, baseDir: baseDir}, nil
}

// Dir returns the directory the store writes to.
func (s *FileStore) Dir() string {
	return s.baseDir
}

// Backend implements Store.
func (s *FileStore) Backend() string {
	return BackendFile
}

// Save persists data with the given key using atomic write.
func (s *FileStore) Save(ctx context.Context, key string, data []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := atomicWriteFile(s.fs, s.keyToPath(key), data, 0644); err != nil {
		return storageErr(BackendFile, key, "failed to save", err)
	}
	return nil
}

// Load retrieves data for the given key.
func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := afero.ReadFile(s.fs, s.keyToPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrNotFound
		}
		return nil, storageErr(BackendFile, key, "failed to read file", err)
	}
	return data, nil
}

// Delete removes the data associated with the given key.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.keyToPath(key)); err != nil {
		if os.IsNotExist(err) {
			return errors.ErrNotFound
		}
		return storageErr(BackendFile, key, "failed to delete file", err)
	}
	return nil
}

// List returns all stored keys.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := afero.ReadDir(s.fs, s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".tmp-") || !strings.HasSuffix(name, fileExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, fileExt))
	}
	sort.Strings(keys)
	return keys, nil
}

// Exists checks if a key exists without loading its data.
func (s *FileStore) Exists(ctx context.Context, key string) (bool, error) {
	if err := ValidateKey(key); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := s.fs.Stat(s.keyToPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check file existence: %w", err)
	}
	return true, nil
}

// Close implements io.Closer. FileStore holds no open handles.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) keyToPath(key string) string {
	return filepath.Join(s.baseDir, key+fileExt)
}

// atomicWriteFile writes data to a temp file and renames it into place.
func atomicWriteFile(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Create temp file in same directory to ensure atomic rename
	tmpFile, err := afero.TempFile(fs, dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = fs.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := fs.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}
