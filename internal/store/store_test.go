package store

import (
	"context"
	"testing"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/inspire/internal/errors"
)

// backends returns a fresh instance of every Store implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	memFsStore, err := NewFileStoreFs(afero.NewMemMapFs(), "/data/inspire")
	if err != nil {
		t.Fatalf("NewFileStoreFs() error = %v", err)
	}
	sqliteStore, err := NewSQLiteStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	sqliteMem, err := NewSQLiteMemoryStore()
	if err != nil {
		t.Fatalf("NewSQLiteMemoryStore() error = %v", err)
	}

	stores := map[string]Store{
		"file":          fileStore,
		"file-memmapfs": memFsStore,
		"sqlite":        sqliteStore,
		"sqlite-memory": sqliteMem,
		"memory":        NewMemoryStore(),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			payload := []byte(`[{"text":"t","author":"a","category":"c"}]`)
			if err := s.Save(ctx, "favoriteQuotes", payload); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			got, err := s.Load(ctx, "favoriteQuotes")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if string(got) != string(payload) {
				t.Errorf("Load() = %s, want %s", got, payload)
			}
		})
	}
}

func TestStore_Overwrite(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_ = s.Save(ctx, "k", []byte("first, much longer value"))
			if err := s.Save(ctx, "k", []byte("second")); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := s.Load(ctx, "k")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if string(got) != "second" {
				t.Errorf("Load() = %q, want %q", got, "second")
			}
		})
	}
}

func TestStore_Missing(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Load(ctx, "absent"); !errors.Is(err, errors.ErrNotFound) {
				t.Errorf("Load() error = %v, want ErrNotFound", err)
			}
			if err := s.Delete(ctx, "absent"); !errors.Is(err, errors.ErrNotFound) {
				t.Errorf("Delete() error = %v, want ErrNotFound", err)
			}
			ok, err := s.Exists(ctx, "absent")
			if err != nil || ok {
				t.Errorf("Exists() = %v, %v; want false, nil", ok, err)
			}
		})
	}
}

func TestStore_DeleteListExists(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"b", "a", "c"} {
				if err := s.Save(ctx, k, []byte(k)); err != nil {
					t.Fatalf("Save(%q) error = %v", k, err)
				}
			}

			keys, err := s.List(ctx)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
				t.Errorf("List() = %v, want [a b c]", keys)
			}

			if err := s.Delete(ctx, "b"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if ok, _ := s.Exists(ctx, "b"); ok {
				t.Error("Exists(b) = true after delete")
			}
			if ok, _ := s.Exists(ctx, "a"); !ok {
				t.Error("Exists(a) = false")
			}
		})
	}
}

func TestStore_InvalidKey(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
				if err := s.Save(ctx, key, []byte("x")); !errors.Is(err, errors.ErrInvalidInput) {
					t.Errorf("Save(%q) error = %v, want ErrInvalidInput", key, err)
				}
			}
		})
	}
}

func TestStore_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_ = s.Save(ctx, "k", []byte("abc"))
			got, _ := s.Load(ctx, "k")
			got[0] = 'z'

			again, _ := s.Load(ctx, "k")
			if string(again) != "abc" {
				t.Errorf("stored value changed to %q", again)
			}
		})
	}
}

func TestStore_Backend(t *testing.T) {
	want := map[string]string{
		"file":          BackendFile,
		"file-memmapfs": BackendFile,
		"sqlite":        BackendSQLite,
		"sqlite-memory": BackendSQLite,
		"memory":        BackendMemory,
	}
	for name, s := range backends(t) {
		if got := s.Backend(); got != want[name] {
			t.Errorf("%s: Backend() = %q, want %q", name, got, want[name])
		}
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"favoriteQuotes", true},
		{"favorites.v2", true},
		{"a_b-c", true},
		{"", false},
		{"a/b", false},
		{"..", false},
		{"-lead", false},
		{"with space", false},
	}
	for _, tt := range tests {
		err := ValidateKey(tt.key)
		if (err == nil) != tt.valid {
			t.Errorf("ValidateKey(%q) = %v, valid want %v", tt.key, err, tt.valid)
		}
	}
}

func TestStorageErrSeverity(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		want  errors.Severity
	}{
		{"io failure", errors.New("disk full"), errors.SeverityError},
		{"canceled", context.Canceled, errors.SeverityWarning},
		{"deadline", errors.Join(errors.New("write"), context.DeadlineExceeded), errors.SeverityWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storageErr(BackendFile, "favoriteQuotes", "failed to save", tt.cause)
			if got := errors.GetSeverity(err); got != tt.want {
				t.Errorf("GetSeverity() = %v, want %v", got, tt.want)
			}
			if !errors.IsUserFacing(err) {
				t.Error("storage errors are user facing")
			}
		})
	}
}
