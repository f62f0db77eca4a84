// Package testutil provides testing utilities for inspire tests.
package testutil

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/Iron-Ham/inspire/internal/errors"
	"github.com/Iron-Ham/inspire/internal/store"
)

// Rand returns a deterministic random source for seed.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewFileStore creates a FileStore in a temporary directory that is removed
// when the test completes. Returns the store and its directory.
func NewFileStore(t *testing.T) (*store.FileStore, string) {
	t.Helper()

	dir := t.TempDir()
	s, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}
	return s, dir
}

// NewSQLiteStore creates a SQLiteStore in a temporary directory and closes
// it when the test completes.
func NewSQLiteStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// FlakyStore wraps a Store and fails Save calls while FailSaves is set.
// It also counts writes so tests can assert how often data was persisted.
type FlakyStore struct {
	store.Store

	mu      sync.Mutex
	saveErr error
	saves   int
}

// NewFlakyStore wraps an in-memory store.
func NewFlakyStore() *FlakyStore {
	return &FlakyStore{Store: store.NewMemoryStore()}
}

// FailSaves toggles Save failures with a "disk full" StorageError.
func (s *FlakyStore) FailSaves(fail bool) {
	var err error
	if fail {
		err = errors.NewStorageError("disk full", nil).WithBackend(s.Backend())
	}
	s.FailSavesWith(err)
}

// FailSavesWith makes Save return err until called again with nil.
func (s *FlakyStore) FailSavesWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves returns the number of Save calls, failed or not.
func (s *FlakyStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Save implements store.Store.
func (s *FlakyStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	s.saves++
	err := s.saveErr
	s.mu.Unlock()

	if err != nil {
		return err
	}
	return s.Store.Save(ctx, key, data)
}
