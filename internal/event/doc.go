// Package event provides a pub-sub event bus for decoupled communication
// between inspire components.
//
// The favorites manager publishes a [FavoritesChangedEvent] after every
// mutation; persistence is a subscriber that writes the full list back to
// the store. The TUI publishes [QuoteChangedEvent] and [QuoteCopiedEvent]
// which are logged by a wildcard subscriber.
//
// # Main Types
//
//   - [Event]: interface with EventType() and Timestamp()
//   - [Bus]: synchronous dispatcher, safe for concurrent use
//   - [Handler]: func(Event)
//
// # Usage
//
//	bus := event.NewBus(logger)
//	bus.Subscribe(event.TypeFavoritesChanged, func(e event.Event) {
//	    changed := e.(event.FavoritesChangedEvent)
//	    save(changed.Favorites)
//	})
//	bus.Publish(event.NewFavoritesChangedEvent(key, event.FavoriteAdded, q, list))
//
// # Delivery
//
// Publish calls handlers synchronously on the caller's goroutine. Handlers
// subscribed to the specific type run before wildcard handlers. A handler
// that panics is recovered and logged; remaining handlers still run.
package event
