package game

import (
	"golang.org/x/exp/rand"
)

// Shoe models the pool of cards across all decks in play as a
// rank-frequency distribution. Draws sample with replacement: the engine
// treats the shoe as always full, so drawing never depletes it. Only the
// cards already visible on the table are removed, once, via Remove.
type Shoe struct {
	counts [NumRanks]int
	total  int
}

// NewShoe creates a shoe of numDecks standard 52-card decks: 4 copies of
// each rank per deck.
func NewShoe(numDecks int) *Shoe {
	if numDecks < 1 {
		panic("shoe needs at least one deck")
	}
	s := &Shoe{}
	for i := range s.counts {
		s.counts[i] = 4 * numDecks
	}
	s.total = 4 * numDecks * NumRanks
	return s
}

// Remove takes one card of the given rank out of the pool, clamped at
// zero. Used to account for the current hand's known cards.
func (s *Shoe) Remove(r Rank) {
	if s.counts[r] > 0 {
		s.counts[r]--
		s.total--
	}
}

// Count returns how many cards of the given rank remain in the pool.
func (s *Shoe) Count(r Rank) int {
	return s.counts[r]
}

// Draw samples a rank with probability proportional to its count. The
// shoe is not mutated, so concurrent draws from multiple workers are safe
// as long as each worker brings its own rng.
func (s *Shoe) Draw(rng *rand.Rand) Rank {
	if s.total <= 0 {
		panic("cannot draw from an empty shoe")
	}
	n := rng.Intn(s.total)
	for r, count := range s.counts {
		if n < count {
			return Rank(r)
		}
		n -= count
	}
	panic("shoe counts do not sum to total")
}
