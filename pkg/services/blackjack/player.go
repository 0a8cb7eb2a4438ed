package blackjack

import (
	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

// TableLimits bounds a single wager
type TableLimits struct {
	MinBet int
	MaxBet int
}

// TurnPolicy tells the round engine how a participant's turn is driven
type TurnPolicy interface {
	// AutoPlays is true when the participant draws on its own rule rather than on commands
	AutoPlays() bool
	// ShouldHit reports whether an auto-playing participant takes another card
	ShouldHit() bool
}

// Player is the human seat: a hand, a bankroll and the active wager
type Player struct {
	Hand     *Hand
	Balance  int
	Bet      int
	Standing bool

	limits TableLimits
}

var _ TurnPolicy = (*Player)(nil)

// NewPlayer creates a player with the given bankroll
func NewPlayer(balance int, limits TableLimits) *Player {
	return &Player{
		Hand:    NewHand(),
		Balance: balance,
		limits:  limits,
	}
}

// Limits returns the table limits the player bets against
func (p *Player) Limits() TableLimits {
	return p.limits
}

// PlaceBet clamps amount to the table limits and then to the balance, moves it from
// the balance into the active bet and returns the amount actually wagered. With less
// than the minimum left the whole balance is wagered.
func (p *Player) PlaceBet(amount int) int {
	if amount < p.limits.MinBet {
		amount = p.limits.MinBet
	}
	if amount > p.limits.MaxBet {
		amount = p.limits.MaxBet
	}
	if amount > p.Balance {
		amount = p.Balance
	}

	p.Bet = amount
	p.Balance -= amount
	return amount
}

// Win returns the stake plus floor(bet*multiplier) to the balance and returns the
// winnings alone
func (p *Player) Win(multiplier float64) int {
	winnings := int(float64(p.Bet) * multiplier)
	p.Balance += p.Bet + winnings
	return winnings
}

// Push returns the stake
func (p *Player) Push() {
	p.Balance += p.Bet
}

// ResetHand clears the hand, bet and flags; the balance is untouched
func (p *Player) ResetHand() {
	p.Hand.Clear()
	p.Bet = 0
	p.Standing = false
}

// CanPlay reports whether the balance covers the table minimum
func (p *Player) CanPlay() bool {
	return p.Balance >= p.limits.MinBet
}

// AddCard adds a card to the player's hand
func (p *Player) AddCard(card entities.Card) {
	p.Hand.AddCard(card)
}

// Total returns the player's hand total
func (p *Player) Total() int {
	return p.Hand.Total()
}

// IsBusted returns true when the hand exceeds 21
func (p *Player) IsBusted() bool {
	return p.Hand.IsBusted()
}

// HasBlackjack returns true for a two-card 21
func (p *Player) HasBlackjack() bool {
	return p.Hand.HasBlackjack()
}

// AutoPlays is false: the player acts through Hit and Stand
func (p *Player) AutoPlays() bool {
	return false
}

// ShouldHit is never decided by the engine for the player
func (p *Player) ShouldHit() bool {
	return false
}
