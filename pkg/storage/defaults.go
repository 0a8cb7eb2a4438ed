package storage

// DefaultDocument returns a fresh copy of the stock game configuration
func DefaultDocument() map[string]interface{} {
	return map[string]interface{}{
		"game": map[string]interface{}{
			"title":              "Blackjack",
			"min_bet":            10,
			"max_bet":            1000,
			"starting_balance":   1000,
			"dealer_stand_value": 17,
			"blackjack_payout":   1.5,
			"difficulty":         "medium",
		},
		"difficulty": map[string]interface{}{
			"easy": map[string]interface{}{
				"decks":            1,
				"starting_balance": 1500,
			},
			"medium": map[string]interface{}{
				"decks":            4,
				"starting_balance": 1000,
			},
			"hard": map[string]interface{}{
				"decks":            6,
				"starting_balance": 500,
			},
		},
		"stats": map[string]interface{}{
			"total_games":     0,
			"wins":            0,
			"losses":          0,
			"blackjacks":      0,
			"highest_balance": 0,
		},
		"card_suits": map[string]interface{}{
			"hearts":   "♥",
			"diamonds": "♦",
			"clubs":    "♣",
			"spades":   "♠",
		},
		"card_values": map[string]interface{}{
			"A": 11, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
			"8": 8, "9": 9, "10": 10, "J": 10, "Q": 10, "K": 10,
		},
		"colors": map[string]interface{}{
			"background":      []interface{}{0, 80, 0},
			"table_border":    []interface{}{139, 69, 19},
			"text_white":      []interface{}{255, 255, 255},
			"text_black":      []interface{}{0, 0, 0},
			"text_gold":       []interface{}{255, 215, 0},
			"text_red":        []interface{}{255, 0, 0},
			"text_green":      []interface{}{0, 255, 0},
			"card_background": []interface{}{255, 255, 255},
			"card_border":     []interface{}{0, 0, 0},
		},
	}
}

// Difficulties lists the preset names in menu order
var Difficulties = []string{"easy", "medium", "hard"}
