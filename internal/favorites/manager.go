package favorites

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/Iron-Ham/inspire/internal/errors"
	"github.com/Iron-Ham/inspire/internal/event"
	"github.com/Iron-Ham/inspire/internal/logging"
	"github.com/Iron-Ham/inspire/internal/quote"
	"github.com/Iron-Ham/inspire/internal/store"
)

// DefaultKey is the storage key holding the favorites array.
const DefaultKey = "favoriteQuotes"

// saveTimeout bounds a single persistence write.
const saveTimeout = 5 * time.Second

// Manager owns the in-memory favorites list and keeps the store in sync.
//
// Every mutation publishes an event.FavoritesChangedEvent on the bus. The
// manager subscribes itself to that event and rewrites the whole list under
// its key, so the stored value always mirrors the latest published snapshot.
// The in-memory list stays authoritative when a write fails.
//
// Bus handlers run while the Manager is locked and must not call back into it;
// use the snapshot carried by the event instead.
type Manager struct {
	mu   sync.Mutex // serializes mutate, publish, and persist
	list *List

	store  store.Store
	key    string
	bus    *event.Bus
	logger *logging.Logger
	subID  string

	errMu   sync.Mutex
	saveErr error
}

// Option configures a Manager.
type Option func(*Manager)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(m *Manager) {
		if key != "" {
			m.key = key
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *logging.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a Manager persisting through st and publishing on bus.
// The list starts empty; call Load to read the stored favorites.
func NewManager(st store.Store, bus *event.Bus, opts ...Option) *Manager {
	m := &Manager{
		list:   &List{},
		store:  st,
		key:    DefaultKey,
		bus:    bus,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.WithComponent("favorites").With("key", m.key, "backend", st.Backend())
	m.subID = bus.Subscribe(event.TypeFavoritesChanged, m.persist)
	return m
}

// Key returns the storage key.
func (m *Manager) Key() string {
	return m.key
}

// Load replaces the in-memory list with the stored favorites.
//
// An absent key yields an empty list. Data that cannot be decoded also yields
// an empty list and is logged at WARN; it is not an error to the caller.
// Other storage failures leave the list empty and are returned.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.list = &List{}

	data, err := m.store.Load(ctx, m.key)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			m.logger.Debug("no stored favorites")
			return nil
		}
		m.logger.Failure("failed to load favorites", err)
		return errors.NewStorageError("failed to load favorites", err).
			WithKey(m.key).
			WithBackend(m.store.Backend())
	}

	items, err := Decode(data)
	if err != nil {
		m.logger.Warn("stored favorites unreadable, starting empty", "error", err, "bytes", len(data))
		return nil
	}

	m.list = NewList(items...)
	if dropped := len(items) - m.list.Len(); dropped > 0 {
		m.logger.Warn("dropped duplicate favorites", "count", dropped)
	}
	m.logger.Info("favorites loaded", "count", m.list.Len())
	return nil
}

// Contains reports whether q is a favorite.
func (m *Manager) Contains(q quote.Quote) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.list.Contains(q)
}

// Len returns the number of favorites.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.list.Len()
}

// Items returns a copy of the favorites in order.
func (m *Manager) Items() []quote.Quote {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.list.Items()
}

// Toggle removes q if it is a favorite, otherwise appends it.
// Reports whether q is now a favorite, and the persistence error, if any.
func (m *Manager) Toggle(q quote.Quote) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	added := m.list.Toggle(q)
	action := event.FavoriteRemoved
	if added {
		action = event.FavoriteAdded
	}
	return added, m.publish(action, q)
}

// Add appends q unless it is already a favorite.
// Reports whether the list changed. Nothing is written when it did not.
func (m *Manager) Add(q quote.Quote) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.list.Add(q) {
		return false, nil
	}
	return true, m.publish(event.FavoriteAdded, q)
}

// Remove deletes the favorite sharing q's text.
// Reports whether the list changed. Nothing is written when it did not.
func (m *Manager) Remove(q quote.Quote) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.list.Remove(q) {
		return false, nil
	}
	return true, m.publish(event.FavoriteRemoved, q)
}

// RemoveAt deletes the favorite at index i (0-based) and returns it.
func (m *Manager) RemoveAt(i int) (quote.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed, ok := m.list.RemoveAt(i)
	if !ok {
		return quote.Quote{}, errors.NewNotFoundError("favorite", strconv.Itoa(i+1)).
			WithCause(errors.ErrQuoteNotFound)
	}
	return removed, m.publish(event.FavoriteRemoved, removed)
}

// Clear removes every favorite.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.list.Clear()
	return m.publish(event.FavoritesClear, quote.Quote{})
}

// Close stops persisting changes.
func (m *Manager) Close() {
	m.bus.Unsubscribe(m.subID)
}

// publish announces the current snapshot and returns the result of the
// write it triggered. Must be called with m.mu held.
func (m *Manager) publish(action event.FavoritesAction, q quote.Quote) error {
	m.setSaveErr(nil)
	m.bus.Publish(event.NewFavoritesChangedEvent(m.key, action, q, m.list.Items()))
	return m.takeSaveErr()
}

// persist is the bus handler that writes the full favorites array. Changes
// published for another key belong to another list and are skipped.
func (m *Manager) persist(e event.Event) {
	changed, ok := e.(event.FavoritesChangedEvent)
	if !ok || changed.Key != m.key {
		return
	}

	data, err := Encode(changed.Favorites)
	if err != nil {
		err = errors.Wrap(err, "encoding favorites")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err = m.store.Save(ctx, m.key, data)
		cancel()
	}
	if err != nil {
		m.logger.Failure("failed to persist favorites", err, "action", string(changed.Action))
		m.setSaveErr(err)
		m.bus.Publish(event.NewFavoritesPersistFailedEvent(m.key, err))
		return
	}
	m.logger.Debug("favorites persisted", "action", string(changed.Action), "count", len(changed.Favorites))
}

func (m *Manager) setSaveErr(err error) {
	m.errMu.Lock()
	m.saveErr = err
	m.errMu.Unlock()
}

func (m *Manager) takeSaveErr() error {
	m.errMu.Lock()
	defer m.errMu.Unlock()
	err := m.saveErr
	m.saveErr = nil
	return err
}
