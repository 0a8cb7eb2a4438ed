package game

import (
	"time"

	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

// ESRoundDocument represents a completed round in Elasticsearch
type ESRoundDocument struct {
	RoundID      string    `json:"round_id"`
	Difficulty   string    `json:"difficulty"`
	Result       string    `json:"result"`
	Bet          int       `json:"bet"`
	Winnings     int       `json:"winnings"`
	BalanceAfter int       `json:"balance_after"`
	PlayerCards  []string  `json:"player_cards"`
	DealerCards  []string  `json:"dealer_cards"`
	PlayerScore  int       `json:"player_score"`
	DealerScore  int       `json:"dealer_score"`
	Blackjack    bool      `json:"blackjack"`
	Busted       bool      `json:"busted"`
	CompletedAt  time.Time `json:"completed_at"`
}

// newESRoundDocument flattens a round record for indexing
func newESRoundDocument(record *entities.RoundRecord) *ESRoundDocument {
	return &ESRoundDocument{
		RoundID:      record.ID,
		Difficulty:   record.Difficulty,
		Result:       record.Result.String(),
		Bet:          record.Bet,
		Winnings:     record.WinAmount,
		BalanceAfter: record.BalanceAfter,
		PlayerCards:  cardStrings(record.PlayerCards),
		DealerCards:  cardStrings(record.DealerCards),
		PlayerScore:  record.PlayerScore,
		DealerScore:  record.DealerScore,
		Blackjack:    record.Result == entities.ResultBlackjack,
		Busted:       record.Result == entities.ResultBust,
		CompletedAt:  record.CompletedAt,
	}
}

func cardStrings(cards []entities.Card) []string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = card.String()
	}
	return out
}
