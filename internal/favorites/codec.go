package favorites

import (
	"encoding/json"
	"fmt"

	"github.com/Iron-Ham/inspire/internal/errors"
	"github.com/Iron-Ham/inspire/internal/quote"
)

// Encode serializes favorites as a JSON array of {text, author, category}.
// An empty list encodes as [].
func Encode(items []quote.Quote) ([]byte, error) {
	if items == nil {
		items = []quote.Quote{}
	}
	return json.Marshal(items)
}

// Decode parses a persisted favorites array. A JSON null decodes to an empty
// list. Anything that is not an array of quote objects returns an error
// wrapping ErrStoreCorrupted. Entries without text are dropped.
func Decode(data []byte) ([]quote.Quote, error) {
	var raw []quote.Quote
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding favorites: %w: %w", errors.ErrStoreCorrupted, err)
	}

	items := make([]quote.Quote, 0, len(raw))
	for _, q := range raw {
		if q.Text == "" {
			continue
		}
		items = append(items, q)
	}
	return items, nil
}
