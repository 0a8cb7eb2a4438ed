package blackjack

import (
	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

// Dealer is the house seat. It never wagers and draws by the stand rule.
type Dealer struct {
	Hand       *Hand
	StandValue int
}

var _ TurnPolicy = (*Dealer)(nil)

// NewDealer creates a dealer that stands on standValue (17 when not positive)
func NewDealer(standValue int) *Dealer {
	if standValue <= 0 {
		standValue = DefaultStandValue
	}
	return &Dealer{
		Hand:       NewHand(),
		StandValue: standValue,
	}
}

// AddCard adds a card to the dealer's hand
func (d *Dealer) AddCard(card entities.Card) {
	d.Hand.AddCard(card)
}

// ShouldHit uses the true total; visibility only affects what is displayed
func (d *Dealer) ShouldHit() bool {
	return d.Hand.Total() < d.StandValue && !d.Hand.IsBusted()
}

// AutoPlays is true: the dealer follows the stand rule
func (d *Dealer) AutoPlays() bool {
	return true
}

// HideFirstCard turns the hole card face down
func (d *Dealer) HideFirstCard() {
	if d.Hand.Len() > 0 {
		d.Hand.SetFaceUp(0, false)
	}
}

// RevealCards turns every card face up
func (d *Dealer) RevealCards() {
	for i := 0; i < d.Hand.Len(); i++ {
		d.Hand.SetFaceUp(i, true)
	}
}

// Total returns the dealer's full hand total
func (d *Dealer) Total() int {
	return d.Hand.Total()
}

// VisibleTotal returns the total of the face-up cards
func (d *Dealer) VisibleTotal() int {
	return d.Hand.VisibleTotal()
}

// ShowsTotal reports whether more than one card is face up
func (d *Dealer) ShowsTotal() bool {
	return d.Hand.FaceUpCount() > 1
}

// IsBusted returns true when the hand exceeds 21
func (d *Dealer) IsBusted() bool {
	return d.Hand.IsBusted()
}

// HasBlackjack returns true for a two-card 21
func (d *Dealer) HasBlackjack() bool {
	return d.Hand.HasBlackjack()
}

// ResetHand clears the dealer's cards
func (d *Dealer) ResetHand() {
	d.Hand.Clear()
}
