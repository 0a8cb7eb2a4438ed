package entities

// GameState is the phase of the current round
type GameState string

const (
	StateBetting    GameState = "betting"
	StatePlaying    GameState = "playing"
	StateDealerTurn GameState = "dealer_turn"
	StateRoundOver  GameState = "round_over"
	StateGameOver   GameState = "game_over"
)

// Result represents the outcome of a round
type Result string

const (
	ResultWin       Result = "win"
	ResultLose      Result = "lose"
	ResultBust      Result = "bust"
	ResultPush      Result = "push"
	ResultBlackjack Result = "blackjack"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r Result) IsWin() bool {
	return r == ResultWin || r == ResultBlackjack
}

// IsLoss returns true if the stake was lost
func (r Result) IsLoss() bool {
	return r == ResultLose || r == ResultBust
}
