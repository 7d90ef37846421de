package simulator

import "blackjack/game"

// tally accumulates verdict counts for one action. Each worker keeps its
// own tallies; they are merged by summation once all workers finish, so
// no tally is ever shared between goroutines.
type tally struct {
	wins         int
	losses       int
	ties         int
	observations int
}

func (t *tally) add(res trialResult) {
	for i := 0; i < res.n; i++ {
		switch res.verdicts[i] {
		case game.Win:
			t.wins++
		case game.Loss:
			t.losses++
		case game.Tie:
			t.ties++
		}
	}
	t.observations += res.n
}

func (t *tally) merge(other tally) {
	t.wins += other.wins
	t.losses += other.losses
	t.ties += other.ties
	t.observations += other.observations
}

// Stats is the derived statistics for one action. A split action counts
// each post-split hand as one observation, so its denominator is twice
// the trial count.
type Stats struct {
	EstimatedValue  float64 `json:"estimated_value"`
	WinProbability  float64 `json:"win"`
	LossProbability float64 `json:"loss"`
	TieProbability  float64 `json:"tie"`
}

// stats converts counts into probabilities and expected value. Ties
// neither pay nor cost under even-money payout, so EV only weighs the
// win/loss gap. Zero observations yield all zeros.
func (t tally) stats(betSize float64) Stats {
	if t.observations == 0 {
		return Stats{}
	}
	n := float64(t.observations)
	win := float64(t.wins) / n
	loss := float64(t.losses) / n
	return Stats{
		EstimatedValue:  betSize * (win - loss),
		WinProbability:  win,
		LossProbability: loss,
		TieProbability:  float64(t.ties) / n,
	}
}
