// Package ranking orders players into a leaderboard and aggregates it.
package ranking

import (
	"cmp"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/okian/tierboard/internal/domain/model"
)

// Ranker sorts players by score descending, then by name in collation order.
// Equal scores never share a position.
type Ranker struct {
	locale language.Tag

	// collate.Collator keeps scratch buffers and is not safe for concurrent use.
	mu       sync.Mutex
	collator *collate.Collator
}

// New builds a Ranker. The default collation locale is English.
func New(opts ...Option) *Ranker {
	r := &Ranker{locale: language.English}
	for _, opt := range opts {
		opt(r)
	}
	r.collator = collate.New(r.locale)
	return r
}

// Locale returns the collation locale.
func (r *Ranker) Locale() language.Tag { return r.locale }

// Rank returns a new slice in leaderboard order with positions 1..n assigned.
// The input slice and its elements are left untouched.
func (r *Ranker) Rank(players []model.Player) []model.Player {
	out := make([]model.Player, len(players))
	copy(out, players)

	r.mu.Lock()
	slices.SortStableFunc(out, func(a, b model.Player) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return r.collator.CompareString(a.Name, b.Name)
	})
	r.mu.Unlock()

	for i := range out {
		out[i].Position = i + 1
	}
	return out
}
