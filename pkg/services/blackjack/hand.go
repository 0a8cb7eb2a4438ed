package blackjack

import (
	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

// Hand is an ordered set of cards with a per-card face-up mask. The total is cached
// and recomputed lazily after each AddCard.
type Hand struct {
	cards  []entities.Card
	faceUp []bool

	total      int
	totalValid bool
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{
		cards:  make([]entities.Card, 0, 4),
		faceUp: make([]bool, 0, 4),
	}
}

// AddCard adds a face-up card to the hand
func (h *Hand) AddCard(card entities.Card) {
	h.cards = append(h.cards, card)
	h.faceUp = append(h.faceUp, true)
	h.totalValid = false
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []entities.Card {
	out := make([]entities.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// IsFaceUp reports whether the i-th card is visible
func (h *Hand) IsFaceUp(i int) bool {
	return i >= 0 && i < len(h.faceUp) && h.faceUp[i]
}

// SetFaceUp changes the visibility of the i-th card
func (h *Hand) SetFaceUp(i int, up bool) {
	if i >= 0 && i < len(h.faceUp) {
		h.faceUp[i] = up
	}
}

// FaceUpCount returns how many cards are visible
func (h *Hand) FaceUpCount() int {
	count := 0
	for _, up := range h.faceUp {
		if up {
			count++
		}
	}
	return count
}

// Total returns the best score of all cards, regardless of visibility
func (h *Hand) Total() int {
	if !h.totalValid {
		h.total = Score(h.cards)
		h.totalValid = true
	}
	return h.total
}

// VisibleTotal scores only the face-up cards
func (h *Hand) VisibleTotal() int {
	visible := make([]entities.Card, 0, len(h.cards))
	for i, card := range h.cards {
		if h.faceUp[i] {
			visible = append(visible, card)
		}
	}
	return Score(visible)
}

// IsBusted returns true when the total exceeds 21
func (h *Hand) IsBusted() bool {
	return h.Total() > Target
}

// HasBlackjack returns true for exactly two cards totalling 21
func (h *Hand) HasBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == Target
}

// Clear removes every card
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
	h.faceUp = h.faceUp[:0]
	h.totalValid = false
}
