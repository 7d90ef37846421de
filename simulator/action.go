package simulator

import "blackjack/game"

// Action is one of the candidate player actions the engine estimates.
// The hit counts form a small closed enumeration rather than open-ended
// play: the caller asks "what if I hit exactly k times", not "play out a
// strategy".
type Action int

const (
	Stand Action = iota
	HitOnce
	HitTwice
	HitThrice
	SplitHitOnce
	SplitHitTwice
	SplitHitThrice
)

// NumActions is the size of the action enumeration.
const NumActions = 7

var actionNames = [NumActions]string{
	"stand",
	"hit_once", "hit_twice", "hit_thrice",
	"split_hit_once", "split_hit_twice", "split_hit_thrice",
}

func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return "unknown"
	}
	return actionNames[a]
}

// Hits returns how many additional cards the action draws per hand.
func (a Action) Hits() int {
	switch a {
	case HitOnce, SplitHitOnce:
		return 1
	case HitTwice, SplitHitTwice:
		return 2
	case HitThrice, SplitHitThrice:
		return 3
	default:
		return 0
	}
}

// IsSplit reports whether the action splits the hand first.
func (a Action) IsSplit() bool {
	return a >= SplitHitOnce && a <= SplitHitThrice
}

// CanSplit reports whether the hand qualifies for splitting: exactly two
// cards of equal blackjack value. A ten and a king count as a pair.
func CanSplit(cards []game.Rank) bool {
	return len(cards) == 2 && cards[0].Value() == cards[1].Value()
}

// ActionsFor returns the actions applicable to the given hand. Stand and
// the hit variants always apply; the split variants only for a pair.
func ActionsFor(cards []game.Rank) []Action {
	actions := []Action{Stand, HitOnce, HitTwice, HitThrice}
	if CanSplit(cards) {
		actions = append(actions, SplitHitOnce, SplitHitTwice, SplitHitThrice)
	}
	return actions
}
