package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewShoe(t *testing.T) {
	s := NewShoe(6)
	for r := Ace; r < NumRanks; r++ {
		require.Equal(t, 24, s.Count(r), "6 decks should hold 24 of each rank")
	}
}

func TestShoeRemove(t *testing.T) {
	s := NewShoe(1)
	s.Remove(Ace)
	require.Equal(t, 3, s.Count(Ace))

	// Clamp at zero rather than going negative
	for i := 0; i < 10; i++ {
		s.Remove(Ace)
	}
	require.Equal(t, 0, s.Count(Ace))
}

func TestShoeDrawSkipsRemovedRank(t *testing.T) {
	s := NewShoe(1)
	for i := 0; i < 4; i++ {
		s.Remove(Ace)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		require.NotEqual(t, Ace, s.Draw(rng), "a fully removed rank should never be drawn")
	}
}

func TestShoeDrawDoesNotDeplete(t *testing.T) {
	s := NewShoe(1)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		s.Draw(rng)
	}
	for r := Ace; r < NumRanks; r++ {
		require.Equal(t, 4, s.Count(r), "draws must not reduce shoe counts")
	}
}

// Chi-square goodness of fit across the 13 ranks. With 12 degrees of
// freedom the 99.9th percentile is 32.91, so a fair sampler fails this
// about once per thousand seeds; the seed is fixed to keep it stable.
func TestShoeDrawUniformity(t *testing.T) {
	const draws = 130000
	const expected = draws / NumRanks

	s := NewShoe(4)
	rng := rand.New(rand.NewSource(42))
	observed := [NumRanks]int{}
	for i := 0; i < draws; i++ {
		observed[s.Draw(rng)]++
	}

	chi2 := 0.0
	for _, count := range observed {
		diff := float64(count - expected)
		chi2 += diff * diff / float64(expected)
	}
	require.Less(t, chi2, 32.91, "rank distribution is detectably biased: chi2=%f counts=%v", chi2, observed)
}

func TestShoeDrawFollowsCounts(t *testing.T) {
	// Remove half the tens; their frequency should drop accordingly.
	s := NewShoe(1)
	s.Remove(Ten)
	s.Remove(Ten)

	rng := rand.New(rand.NewSource(7))
	tens := 0
	const draws = 100000
	for i := 0; i < draws; i++ {
		if s.Draw(rng) == Ten {
			tens++
		}
	}
	want := float64(draws) * 2.0 / 50.0
	require.InDelta(t, want, float64(tens), float64(draws)*0.01,
		"ten frequency should track its reduced count")
}
