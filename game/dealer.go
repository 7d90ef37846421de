package game

// Soft17Rule configures what the dealer does on a soft 17. The house rule
// varies by casino, so it is an explicit configuration point rather than
// a hidden constant.
type Soft17Rule int

const (
	// StandSoft17 stands on any total of 17 or more, soft or hard.
	StandSoft17 Soft17Rule = iota
	// HitSoft17 keeps hitting while the total is a soft 17.
	HitSoft17
)

func (r Soft17Rule) String() string {
	if r == HitSoft17 {
		return "hit-soft-17"
	}
	return "stand-soft-17"
}

// PlayDealer simulates the dealer's hand: the up card, a hidden card, and
// forced hits until the total reaches 17 or the hand busts. draw supplies
// cards from whatever pool the caller samples.
func PlayDealer(draw func() Rank, upCard Rank, rule Soft17Rule) []Rank {
	hand := []Rank{upCard, draw()}
	for {
		v := Value(hand)
		if v.Total > 17 {
			return hand
		}
		if v.Total == 17 && !(rule == HitSoft17 && v.Soft) {
			return hand
		}
		hand = append(hand, draw())
	}
}
