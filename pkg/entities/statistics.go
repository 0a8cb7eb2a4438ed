package entities

import "time"

// Stat names as stored under the "stats" key of the config document
const (
	StatTotalGames     = "total_games"
	StatWins           = "wins"
	StatLosses         = "losses"
	StatBlackjacks     = "blackjacks"
	StatHighestBalance = "highest_balance"
)

// Stats is the current balance together with the cumulative counters
type Stats struct {
	Balance        int `json:"balance"`
	TotalGames     int `json:"total_games"`
	Wins           int `json:"wins"`
	Losses         int `json:"losses"`
	Blackjacks     int `json:"blackjacks"`
	HighestBalance int `json:"highest_balance"`
}

// Pushes derives the number of tied rounds
func (s *Stats) Pushes() int {
	pushes := s.TotalGames - s.Wins - s.Losses
	if pushes < 0 {
		return 0
	}
	return pushes
}

// WinRate calculates the player's win rate as a percentage
func (s *Stats) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.TotalGames) * 100.0
}

// RoundRecord is the persisted summary of one completed round
type RoundRecord struct {
	ID           string    `json:"id"`
	Difficulty   string    `json:"difficulty"`
	Result       Result    `json:"result"`
	Bet          int       `json:"bet"`
	WinAmount    int       `json:"win_amount"`
	BalanceAfter int       `json:"balance_after"`
	PlayerCards  []Card    `json:"player_cards"`
	DealerCards  []Card    `json:"dealer_cards"`
	PlayerScore  int       `json:"player_score"`
	DealerScore  int       `json:"dealer_score"`
	CompletedAt  time.Time `json:"completed_at"`
}
