package game

import (
	"fmt"
	"strings"
)

// Rank represents one of the 13 card ranks. Suits are irrelevant to
// blackjack outcomes, so a card is just its rank.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the size of the rank enumeration.
const NumRanks = 13

var rankSymbols = [NumRanks]string{
	"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

var rankValues = [NumRanks]int{11, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10}

// Value returns the blackjack value of the rank. Aces are valued at 11
// here; demotion to 1 is the hand evaluator's job.
func (r Rank) Value() int {
	return rankValues[r]
}

func (r Rank) Valid() bool {
	return r >= Ace && r < NumRanks
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankSymbols[r]
}

// ParseRank converts a card symbol ("A", "7", "10", "K", case-insensitive)
// to its Rank.
func ParseRank(s string) (Rank, error) {
	symbol := strings.ToUpper(strings.TrimSpace(s))
	for i, known := range rankSymbols {
		if symbol == known {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("unknown card rank %q", s)
}
