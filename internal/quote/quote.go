// Package quote defines the Quote value, the built-in catalog, and random
// selection over it.
package quote

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Quote is an immutable catalog entry.
type Quote struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// Key returns the identity of q. Two quotes with equal text are the same
// quote for favoriting and deduplication.
func (q Quote) Key() string {
	return q.Text
}

// Same reports whether q and other share an identity.
func (q Quote) Same(other Quote) bool {
	return q.Key() == other.Key()
}

// IsZero reports whether q is the zero value.
func (q Quote) IsZero() bool {
	return q == Quote{}
}

// CategoryLabel returns the category in title case for display ("motivation" -> "Motivation").
func (q Quote) CategoryLabel() string {
	// Casers are stateful and must not be shared between goroutines.
	return cases.Title(language.English).String(q.Category)
}

// Format renders q as clipboard text: "<text>" - <author>
// The text is not escaped.
func Format(q Quote) string {
	return `"` + q.Text + `" - ` + q.Author
}
