package simulator

import "blackjack/game"

// trialResult holds the verdicts of one trial. A split trial produces one
// verdict per post-split hand; everything else produces one.
type trialResult struct {
	verdicts [2]game.Verdict
	n        int
}

// runTrial plays out one independent trial of the given action: the
// player's draws, then the dealer's, then the comparison. draw samples
// from the trial's shoe distribution.
func runTrial(draw func() game.Rank, cards []game.Rank, upCard game.Rank, action Action, rule game.Soft17Rule) trialResult {
	if action.IsSplit() {
		return runSplitTrial(draw, cards, upCard, action, rule)
	}

	player := make([]game.Rank, len(cards), len(cards)+action.Hits())
	copy(player, cards)
	// Exactly k draws, even through a bust: the hit count is fixed, not
	// adaptive, and a busted hand compares as a loss regardless.
	for i := 0; i < action.Hits(); i++ {
		player = append(player, draw())
	}

	dealer := game.PlayDealer(draw, upCard, rule)
	return trialResult{
		verdicts: [2]game.Verdict{game.Compare(player, dealer)},
		n:        1,
	}
}

// runSplitTrial splits the pair into two hands, each seeded with one of
// the original cards plus a fresh draw, hits each exactly k times, and
// compares both against a single shared dealer hand.
func runSplitTrial(draw func() game.Rank, cards []game.Rank, upCard game.Rank, action Action, rule game.Soft17Rule) trialResult {
	k := action.Hits()
	hands := [2][]game.Rank{
		{cards[0], draw()},
		{cards[1], draw()},
	}
	for i := range hands {
		for j := 0; j < k; j++ {
			hands[i] = append(hands[i], draw())
		}
	}

	dealer := game.PlayDealer(draw, upCard, rule)
	return trialResult{
		verdicts: [2]game.Verdict{
			game.Compare(hands[0], dealer),
			game.Compare(hands[1], dealer),
		},
		n: 2,
	}
}
