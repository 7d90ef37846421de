package game

// HandValue is the evaluation of a hand: its best total, whether an ace
// is still counted as 11, and whether the hand is bust.
type HandValue struct {
	Total  int
	Soft   bool
	Busted bool
}

// Value computes the best total of a hand. Aces start at 11 and are
// demoted to 1 one at a time while the total exceeds 21.
func Value(cards []Rank) HandValue {
	total := 0
	aces := 0
	for _, r := range cards {
		total += r.Value()
		if r == Ace {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return HandValue{
		Total:  total,
		Soft:   aces > 0,
		Busted: total > 21,
	}
}

// IsNatural reports whether the hand is a two-card 21 (ace plus a
// ten-value card).
func IsNatural(cards []Rank) bool {
	return len(cards) == 2 && Value(cards).Total == 21
}
