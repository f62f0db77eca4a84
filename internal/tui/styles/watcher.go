package styles

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// themeDebounce coalesces the burst of events editors emit on save.
const themeDebounce = 100 * time.Millisecond

// ThemeWatcher re-runs ReloadCustomThemes whenever a YAML file in the
// themes directory is written, created, or removed.
type ThemeWatcher struct {
	watcher  *fsnotify.Watcher
	onReload func(loaded []string, errs []error)
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewThemeWatcher creates the themes directory if needed and starts watching
// it. onReload runs on the watcher goroutine.
func NewThemeWatcher(onReload func(loaded []string, errs []error)) (*ThemeWatcher, error) {
	dir := ThemesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating themes directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch themes directory: %w", err)
	}

	tw := &ThemeWatcher{
		watcher:  watcher,
		onReload: onReload,
		stopCh:   make(chan struct{}),
	}
	go tw.watchLoop()
	return tw, nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *ThemeWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
	})
}

func (w *ThemeWatcher) watchLoop() {
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer

	for {
		select {
		case <-w.stopCh:
			debounceTimer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isThemeFile(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			debounceTimer.Reset(themeDebounce)

		case <-debounceTimer.C:
			loaded, errs := ReloadCustomThemes()
			if w.onReload != nil {
				w.onReload(loaded, errs)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func isThemeFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
