// Package favorites manages the user's favorite quotes: an ordered list,
// unique by quote text, persisted as a JSON array in a key-value store.
package favorites

import "github.com/Iron-Ham/inspire/internal/quote"

// List is an ordered sequence of quotes with no two entries sharing a text.
// The zero value is an empty list. List is not safe for concurrent use;
// Manager provides synchronization.
type List struct {
	items []quote.Quote
}

// NewList builds a List from items, keeping the first occurrence of each text.
func NewList(items ...quote.Quote) *List {
	l := &List{}
	for _, q := range items {
		l.Add(q)
	}
	return l
}

// IndexOf returns the position of the entry sharing q's text, or -1.
func (l *List) IndexOf(q quote.Quote) int {
	for i, item := range l.items {
		if item.Same(q) {
			return i
		}
	}
	return -1
}

// Contains reports whether a quote with q's text is in the list.
func (l *List) Contains(q quote.Quote) bool {
	return l.IndexOf(q) >= 0
}

// Add appends q unless its text is already present. Reports whether q was added.
func (l *List) Add(q quote.Quote) bool {
	if l.Contains(q) {
		return false
	}
	l.items = append(l.items, q)
	return true
}

// Remove deletes the entry sharing q's text. Reports whether one was removed.
func (l *List) Remove(q quote.Quote) bool {
	i := l.IndexOf(q)
	if i < 0 {
		return false
	}
	_, ok := l.RemoveAt(i)
	return ok
}

// RemoveAt deletes the entry at index i and returns it.
func (l *List) RemoveAt(i int) (quote.Quote, bool) {
	if i < 0 || i >= len(l.items) {
		return quote.Quote{}, false
	}
	removed := l.items[i]
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	return removed, true
}

// Toggle removes q if present, otherwise appends it at the end.
// Reports whether q is now in the list.
func (l *List) Toggle(q quote.Quote) bool {
	if l.Remove(q) {
		return false
	}
	l.items = append(l.items, q)
	return true
}

// Len returns the number of favorites.
func (l *List) Len() int {
	return len(l.items)
}

// At returns the entry at index i.
func (l *List) At(i int) (quote.Quote, bool) {
	if i < 0 || i >= len(l.items) {
		return quote.Quote{}, false
	}
	return l.items[i], true
}

// Items returns a copy of the entries in order.
func (l *List) Items() []quote.Quote {
	out := make([]quote.Quote, len(l.items))
	copy(out, l.items)
	return out
}

// Clear removes every entry.
func (l *List) Clear() {
	l.items = nil
}
