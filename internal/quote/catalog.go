package quote

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var catalogJSON []byte

var builtin = mustParse(catalogJSON)

func mustParse(data []byte) []Quote {
	quotes, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("quote: invalid embedded catalog: %v", err))
	}
	return quotes
}

// Parse decodes a JSON array of quotes.
func Parse(data []byte) ([]Quote, error) {
	var quotes []Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// Catalog returns a copy of the built-in catalog in its fixed order.
func Catalog() []Quote {
	out := make([]Quote, len(builtin))
	copy(out, builtin)
	return out
}

// First returns the catalog's first entry, the quote shown on startup.
func First() Quote {
	return builtin[0]
}

// At returns the catalog quote at the 1-based index n.
func At(n int) (Quote, bool) {
	if n < 1 || n > len(builtin) {
		return Quote{}, false
	}
	return builtin[n-1], true
}

// IndexOf returns the 1-based catalog index of q, or 0 if q is not in the catalog.
func IndexOf(q Quote) int {
	for i, c := range builtin {
		if c.Same(q) {
			return i + 1
		}
	}
	return 0
}
