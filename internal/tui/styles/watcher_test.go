package styles

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestReloadCustomThemesDropsDeleted(t *testing.T) {
	dir := useThemesDir(t)
	writeTheme(t, dir, "solarized.yaml", solarizedTheme)

	if _, errs := DiscoverCustomThemes(); len(errs) != 0 {
		t.Fatalf("DiscoverCustomThemes() errs = %v", errs)
	}
	if !IsCustomTheme("solarized") {
		t.Fatal("expected solarized to be registered")
	}

	if err := os.Remove(filepath.Join(dir, "solarized.yaml")); err != nil {
		t.Fatal(err)
	}
	loaded, _ := ReloadCustomThemes()
	if len(loaded) != 0 {
		t.Errorf("loaded = %v, want none", loaded)
	}
	if IsCustomTheme("solarized") {
		t.Error("deleted theme should be unregistered after reload")
	}
}

func TestThemeWatcherReloadsOnWrite(t *testing.T) {
	dir := useThemesDir(t)

	reloaded := make(chan []string, 4)
	w, err := NewThemeWatcher(func(loaded []string, _ []error) {
		reloaded <- loaded
	})
	if err != nil {
		t.Fatalf("NewThemeWatcher() error = %v", err)
	}
	defer w.Stop()

	writeTheme(t, dir, "readme.txt", "not a theme")
	writeTheme(t, dir, "solarized.yaml", solarizedTheme)

	select {
	case loaded := <-reloaded:
		if !slices.Contains(loaded, "solarized") {
			t.Errorf("loaded = %v, want solarized", loaded)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for theme reload")
	}

	if !IsValidTheme("solarized") {
		t.Error("solarized should be valid after reload")
	}
}

func TestThemeWatcherStopIdempotent(t *testing.T) {
	useThemesDir(t)

	w, err := NewThemeWatcher(nil)
	if err != nil {
		t.Fatalf("NewThemeWatcher() error = %v", err)
	}
	w.Stop()
	w.Stop()
}
