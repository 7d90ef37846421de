package simulator

import (
	"testing"

	"blackjack/game"

	"github.com/stretchr/testify/require"
)

func TestTallyAdd(t *testing.T) {
	var tl tally
	tl.add(trialResult{verdicts: [2]game.Verdict{game.Win}, n: 1})
	tl.add(trialResult{verdicts: [2]game.Verdict{game.Loss}, n: 1})
	tl.add(trialResult{verdicts: [2]game.Verdict{game.Win, game.Tie}, n: 2})

	require.Equal(t, 2, tl.wins)
	require.Equal(t, 1, tl.losses)
	require.Equal(t, 1, tl.ties)
	require.Equal(t, 4, tl.observations, "a split trial counts two observations")
}

func TestTallyMergeCommutes(t *testing.T) {
	a := tally{wins: 3, losses: 1, ties: 2, observations: 6}
	b := tally{wins: 1, losses: 4, ties: 0, observations: 5}

	ab := a
	ab.merge(b)
	ba := b
	ba.merge(a)

	require.Equal(t, ab, ba, "merge order must not matter")
	require.Equal(t, tally{wins: 4, losses: 5, ties: 2, observations: 11}, ab)
}

func TestTallyStats(t *testing.T) {
	t.Run("probabilities and EV", func(t *testing.T) {
		tl := tally{wins: 5, losses: 3, ties: 2, observations: 10}
		s := tl.stats(10)

		require.InDelta(t, 0.5, s.WinProbability, 1e-12)
		require.InDelta(t, 0.3, s.LossProbability, 1e-12)
		require.InDelta(t, 0.2, s.TieProbability, 1e-12)
		require.Equal(t, 10*(s.WinProbability-s.LossProbability), s.EstimatedValue,
			"EV must be exactly bet times the win/loss gap")
	})

	t.Run("zero observations yield zeros, not NaN", func(t *testing.T) {
		var tl tally
		s := tl.stats(100)
		require.Equal(t, Stats{}, s)
	})

	t.Run("zero bet zeroes EV but not probabilities", func(t *testing.T) {
		tl := tally{wins: 9, losses: 1, observations: 10}
		s := tl.stats(0)
		require.Equal(t, 0.0, s.EstimatedValue)
		require.InDelta(t, 0.9, s.WinProbability, 1e-12)
	})
}
