package blackjack

import (
	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

const (
	// Target is the best possible hand total
	Target = 21
	// DefaultStandValue is the total at which the dealer stops drawing
	DefaultStandValue = 17
	// DefaultBlackjackPayout is the 3:2 multiplier applied to a natural
	DefaultBlackjackPayout = 1.5
)

// Score totals the cards counting every ace as 11, then demotes aces to 1 one at a
// time while the total is over 21. The result is the largest total not above 21 if
// one exists, otherwise the smallest possible total.
func Score(cards []entities.Card) int {
	total := 0
	aces := 0

	for _, card := range cards {
		if card.IsAce() {
			aces++
		}
		total += card.Value()
	}

	for total > Target && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBlackjack reports a two-card 21
func IsBlackjack(cards []entities.Card) bool {
	return len(cards) == 2 && Score(cards) == Target
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []entities.Card) bool {
	return Score(cards) > Target
}

// CompareTotals returns 1 if the player total beats the dealer's, -1 if it loses and
// 0 on a tie. Busts are not considered.
func CompareTotals(player, dealer int) int {
	if player > dealer {
		return 1
	} else if player < dealer {
		return -1
	}
	return 0
}
