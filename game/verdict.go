package game

// Verdict is the outcome of one finished hand from the player's
// perspective.
type Verdict int

const (
	Win Verdict = iota
	Loss
	Tie
)

func (v Verdict) String() string {
	switch v {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Compare resolves two finished hands to a verdict. A busted player loses
// outright, even against a busted dealer. Naturals carry no bonus: a
// two-card 21 compares like any other 21.
func Compare(player, dealer []Rank) Verdict {
	pv := Value(player)
	if pv.Busted {
		return Loss
	}
	dv := Value(dealer)
	if dv.Busted {
		return Win
	}
	switch {
	case pv.Total > dv.Total:
		return Win
	case pv.Total < dv.Total:
		return Loss
	default:
		return Tie
	}
}
