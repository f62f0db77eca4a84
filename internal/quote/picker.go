package quote

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Iron-Ham/inspire/internal/errors"
)

// Picker selects random quotes from a catalog, never repeating the
// current quote back to back unless the catalog has a single entry.
type Picker struct {
	quotes []Quote

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewPicker creates a Picker over quotes. A nil rng uses a time-seeded source.
// Returns ErrEmptyCatalog if quotes is empty.
func NewPicker(quotes []Quote, rng *rand.Rand) (*Picker, error) {
	if len(quotes) == 0 {
		return nil, errors.ErrEmptyCatalog
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	qs := make([]Quote, len(quotes))
	copy(qs, quotes)
	return &Picker{quotes: qs, rng: rng}, nil
}

// NewDefaultPicker creates a Picker over the built-in catalog.
func NewDefaultPicker(rng *rand.Rand) *Picker {
	// The embedded catalog is never empty.
	p, _ := NewPicker(builtin, rng)
	return p
}

// Len returns the number of quotes the picker draws from.
func (p *Picker) Len() int {
	return len(p.quotes)
}

// Next returns a uniformly random quote whose text differs from current.
// With a single-entry catalog that entry is always returned.
//
// Drawing from the entries that differ from current has the same
// distribution as resampling until a different text comes up, and it
// terminates even when every entry shares current's text.
func (p *Picker) Next(current Quote) Quote {
	if len(p.quotes) == 1 {
		return p.quotes[0]
	}

	candidates := make([]int, 0, len(p.quotes))
	for i, q := range p.quotes {
		if !q.Same(current) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return p.quotes[0]
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quotes[candidates[p.rng.IntN(len(candidates))]]
}

// Random returns a uniformly random quote with no exclusion.
func (p *Picker) Random() Quote {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quotes[p.rng.IntN(len(p.quotes))]
}
