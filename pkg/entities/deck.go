package entities

import (
	"math/rand"
	"time"
)

// CardsPerDeck is the size of one standard deck
const CardsPerDeck = 52

// Deck is a shoe made of one or more standard decks. Cards are dealt from the end
// of the slice; an empty shoe is rebuilt and reshuffled on the next deal.
type Deck struct {
	Cards    []Card
	NumDecks int

	rng        *rand.Rand
	reshuffles int
}

// NewDeck creates an ordered shoe of numDecks standard decks
func NewDeck(numDecks int) *Deck {
	// Create a new random source using current time as seed
	return NewDeckWithRand(numDecks, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewDeckWithRand creates an ordered shoe that shuffles with the given source
func NewDeckWithRand(numDecks int, rng *rand.Rand) *Deck {
	if numDecks < 1 {
		numDecks = 1
	}
	d := &Deck{
		NumDecks: numDecks,
		rng:      rng,
	}
	d.Create()
	return d
}

// Create rebuilds the shoe in canonical suit/rank order
func (d *Deck) Create() {
	cards := make([]Card, 0, d.NumDecks*CardsPerDeck)
	for i := 0; i < d.NumDecks; i++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				cards = append(cards, NewCard(suit, rank))
			}
		}
	}
	d.Cards = cards
}

// Shuffle permutes the remaining cards uniformly at random
func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Use Go's built-in shuffle algorithm
	d.rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Deal removes and returns the last card, replenishing an empty shoe first
func (d *Deck) Deal() Card {
	if len(d.Cards) == 0 {
		d.Create()
		d.Shuffle()
		d.reshuffles++
	}
	card := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return card
}

// Remaining returns how many cards are left before the next replenish
func (d *Deck) Remaining() int {
	return len(d.Cards)
}

// Reshuffles returns how many times the shoe was replenished by Deal
func (d *Deck) Reshuffles() int {
	return d.reshuffles
}
