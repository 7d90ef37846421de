package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// scriptedDraw returns cards from a fixed sequence, then panics. Lets
// tests pin the dealer's exact draws.
func scriptedDraw(cards ...Rank) func() Rank {
	i := 0
	return func() Rank {
		if i >= len(cards) {
			panic("dealer drew more cards than scripted")
		}
		c := cards[i]
		i++
		return c
	}
}

func TestPlayDealer(t *testing.T) {
	t.Run("stands immediately at 17", func(t *testing.T) {
		hand := PlayDealer(scriptedDraw(Seven), Ten, StandSoft17)
		require.Equal(t, []Rank{Ten, Seven}, hand, "hard 17 should stand with no extra draws")
	})

	t.Run("hits below 17", func(t *testing.T) {
		hand := PlayDealer(scriptedDraw(Six, Ten), Five, StandSoft17)
		require.Equal(t, []Rank{Five, Six, Ten}, hand, "11 should keep drawing until 17 or more")
		require.Equal(t, 21, Value(hand).Total)
	})

	t.Run("stops on bust", func(t *testing.T) {
		hand := PlayDealer(scriptedDraw(Six, King), Ten, StandSoft17)
		require.True(t, Value(hand).Busted, "10+6+K should be bust")
		require.Len(t, hand, 3, "no draws after busting")
	})

	t.Run("stands on soft 17 under the stand rule", func(t *testing.T) {
		hand := PlayDealer(scriptedDraw(Six), Ace, StandSoft17)
		require.Equal(t, []Rank{Ace, Six}, hand, "soft 17 should stand")
	})

	t.Run("hits soft 17 under the hit rule", func(t *testing.T) {
		hand := PlayDealer(scriptedDraw(Six, Three), Ace, HitSoft17)
		require.Equal(t, []Rank{Ace, Six, Three}, hand, "soft 17 should take exactly one more card to 20")
		require.Equal(t, 20, Value(hand).Total)
	})

	t.Run("stands on hard 17 under the hit rule", func(t *testing.T) {
		hand := PlayDealer(scriptedDraw(Seven), Ten, HitSoft17)
		require.Equal(t, []Rank{Ten, Seven}, hand)
	})
}

func TestPlayDealerTerminates(t *testing.T) {
	// Every policy run reaches 17 or busts within a bounded number of
	// draws; the worst case is a long run of aces and low cards.
	s := NewShoe(1)
	rng := rand.New(rand.NewSource(3))
	draw := func() Rank { return s.Draw(rng) }

	for i := 0; i < 10000; i++ {
		hand := PlayDealer(draw, Two, StandSoft17)
		v := Value(hand)
		require.True(t, v.Total >= 17 || v.Busted, "dealer stopped early at %d", v.Total)
		// At most 16 cards: a total of 16 needs at least 14 draws of
		// demoted aces after the up card, and the next draw terminates.
		require.LessOrEqual(t, len(hand), 16, "dealer hand grew past the worst-case bound")
	}
}

func TestPlayDealerAllAces(t *testing.T) {
	// A+A+A+A+A+A+A is soft 17: six demoted aces plus one at 11.
	hand := PlayDealer(scriptedDraw(Ace, Ace, Ace, Ace, Ace, Ace), Ace, StandSoft17)
	require.Len(t, hand, 7)
	v := Value(hand)
	require.Equal(t, 17, v.Total)
	require.True(t, v.Soft)
}
