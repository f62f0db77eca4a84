package event

import (
	"time"

	"github.com/Iron-Ham/inspire/internal/quote"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "favorites.changed", "quote.copied")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeFavoritesChanged = "favorites.changed"
	TypeFavoritesPersist = "favorites.persist_failed"
	TypeQuoteChanged     = "quote.changed"
	TypeQuoteCopied      = "quote.copied"
)

// baseEvent provides common fields for all events.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Favorites Events
// -----------------------------------------------------------------------------

// FavoritesAction describes what changed in the favorites list.
type FavoritesAction string

const (
	FavoriteAdded   FavoritesAction = "added"
	FavoriteRemoved FavoritesAction = "removed"
	FavoritesClear  FavoritesAction = "cleared"
)

// FavoritesChangedEvent is emitted after every favorites mutation.
// Favorites is a snapshot of the full list after the change; Key is the
// storage key of the list that changed.
type FavoritesChangedEvent struct {
	baseEvent
	Key       string
	Action    FavoritesAction
	Quote     quote.Quote // Zero for FavoritesClear
	Favorites []quote.Quote
}

// NewFavoritesChangedEvent creates a FavoritesChangedEvent.
func NewFavoritesChangedEvent(key string, action FavoritesAction, q quote.Quote, favorites []quote.Quote) FavoritesChangedEvent {
	return FavoritesChangedEvent{
		baseEvent: newBaseEvent(TypeFavoritesChanged),
		Key:       key,
		Action:    action,
		Quote:     q,
		Favorites: favorites,
	}
}

// FavoritesPersistFailedEvent is emitted when the favorites list could not be written.
type FavoritesPersistFailedEvent struct {
	baseEvent
	Key string
	Err error
}

// NewFavoritesPersistFailedEvent creates a FavoritesPersistFailedEvent.
func NewFavoritesPersistFailedEvent(key string, err error) FavoritesPersistFailedEvent {
	return FavoritesPersistFailedEvent{
		baseEvent: newBaseEvent(TypeFavoritesPersist),
		Key:       key,
		Err:       err,
	}
}

// -----------------------------------------------------------------------------
// Quote Events
// -----------------------------------------------------------------------------

// QuoteChangedEvent is emitted when a new quote is committed to the display.
type QuoteChangedEvent struct {
	baseEvent
	Previous quote.Quote
	Current  quote.Quote
}

// NewQuoteChangedEvent creates a QuoteChangedEvent.
func NewQuoteChangedEvent(previous, current quote.Quote) QuoteChangedEvent {
	return QuoteChangedEvent{
		baseEvent: newBaseEvent(TypeQuoteChanged),
		Previous:  previous,
		Current:   current,
	}
}

// QuoteCopiedEvent is emitted after a clipboard write attempt.
// Err is nil on success.
type QuoteCopiedEvent struct {
	baseEvent
	Quote quote.Quote
	Text  string
	Err   error
}

// NewQuoteCopiedEvent creates a QuoteCopiedEvent.
func NewQuoteCopiedEvent(q quote.Quote, text string, err error) QuoteCopiedEvent {
	return QuoteCopiedEvent{
		baseEvent: newBaseEvent(TypeQuoteCopied),
		Quote:     q,
		Text:      text,
		Err:       err,
	}
}
