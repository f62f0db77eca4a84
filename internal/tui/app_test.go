package tui

import (
	"context"
	"testing"
	"time"

	"github.com/Iron-Ham/inspire/internal/config"
	"github.com/Iron-Ham/inspire/internal/event"
	"github.com/Iron-Ham/inspire/internal/favorites"
	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/Iron-Ham/inspire/internal/store"
	"github.com/Iron-Ham/inspire/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewAppDefaults(t *testing.T) {
	st := store.NewMemoryStore()
	favs := favorites.NewManager(st, event.NewBus(nil))
	t.Cleanup(favs.Close)

	cfg := config.Default()
	cfg.TUI.Theme = "does-not-exist"

	app := New(Deps{
		Picker:    quote.NewDefaultPicker(nil),
		Favorites: favs,
		Config:    cfg,
	}, Options{})

	if app.logger == nil {
		t.Fatal("logger should default to a no-op logger")
	}
	if app.model.clipboard == nil {
		t.Error("clipboard should default to the configured OSC52 target")
	}
	if app.model.styles.Name != styles.ThemeDefault {
		t.Errorf("theme = %q, want fallback to %q", app.model.styles.Name, styles.ThemeDefault)
	}
	if !app.model.Current().Same(quote.First()) {
		t.Errorf("first quote = %q, want %q", app.model.Current().Text, quote.First().Text)
	}
}

func TestInitLoadsFavorites(t *testing.T) {
	st := store.NewMemoryStore()
	seed := favorites.NewManager(st, event.NewBus(nil))
	if _, err := seed.Add(quote.First()); err != nil {
		t.Fatal(err)
	}
	seed.Close()

	m, f := newTestModel(t, st)
	if f.favs.Len() != 1 {
		t.Fatalf("fixture loaded %d favorites, want 1", f.favs.Len())
	}

	batch, ok := m.Init()().(tea.BatchMsg)
	if !ok {
		t.Fatal("Init() should batch its commands")
	}

	var loaded bool
	for _, cmd := range batch {
		if cmd == nil {
			continue
		}
		if msg, ok := cmd().(favoritesLoadedMsg); ok {
			loaded = true
			if msg.err != nil {
				t.Errorf("favoritesLoadedMsg.err = %v", msg.err)
			}
		}
	}
	if !loaded {
		t.Error("Init() should load favorites")
	}
}

func TestQuitOnCancel(t *testing.T) {
	t.Run("quits when the context is cancelled", func(t *testing.T) {
		sent := make(chan tea.Msg, 1)
		ctx, cancel := context.WithCancel(context.Background())
		stop := quitOnCancel(ctx, func(msg tea.Msg) { sent <- msg })
		defer stop()

		cancel()
		select {
		case msg := <-sent:
			if _, ok := msg.(tea.QuitMsg); !ok {
				t.Errorf("sent %T, want tea.QuitMsg", msg)
			}
		case <-time.After(time.Second):
			t.Fatal("no quit message after cancel")
		}
	})

	t.Run("stop releases without quitting", func(t *testing.T) {
		sent := make(chan tea.Msg, 1)
		stop := quitOnCancel(context.Background(), func(msg tea.Msg) { sent <- msg })
		stop()

		select {
		case msg := <-sent:
			t.Errorf("unexpected message %T", msg)
		case <-time.After(20 * time.Millisecond):
		}
	})
}
