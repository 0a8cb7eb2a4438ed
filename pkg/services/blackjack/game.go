package blackjack

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/tucoblackjack/internal/logging"
	"github.com/fadedpez/tucoblackjack/internal/types"
	"github.com/fadedpez/tucoblackjack/pkg/entities"
	"github.com/fadedpez/tucoblackjack/pkg/repositories/game"
	"github.com/fadedpez/tucoblackjack/pkg/storage"
)

const (
	MessageBlackjack = "BLACKJACK!"
	MessageWin       = "YOU WIN!"
	MessageLose      = "YOU LOSE!"
	MessageBust      = "BUST!"
	MessagePush      = "PUSH - Tie!"
	MessageGameOver  = "Game Over - No money left!"

	// DefaultDifficulty is used when the store names none
	DefaultDifficulty = "medium"
)

// Option configures a Game
type Option func(*Game)

// WithRepository records every completed round in repo
func WithRepository(repo game.Repository) Option {
	return func(g *Game) {
		g.repo = repo
	}
}

// WithLogger replaces the default logger
func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithDeck uses deck instead of a freshly shuffled shoe
func WithDeck(deck *entities.Deck) Option {
	return func(g *Game) {
		g.deck = deck
	}
}

// WithClock sets the time source for round records
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// CardView is a card as the table shows it
type CardView struct {
	Card   entities.Card
	FaceUp bool
}

// TableView is a read-only snapshot of everything a renderer needs
type TableView struct {
	State           entities.GameState
	RoundID         string
	Difficulty      string
	PlayerCards     []CardView
	DealerCards     []CardView
	PlayerTotal     int
	DealerTotal     int
	ShowDealerTotal bool
	Balance         int
	Bet             int
	MinBet          int
	MaxBet          int
	Result          entities.Result
	Message         string
	WinAmount       int
	CardsRemaining  int
	Reshuffles      int
}

// Game runs single-player rounds against the dealer and keeps the cumulative
// statistics in the store up to date
type Game struct {
	mu sync.Mutex

	store  storage.Store
	repo   game.Repository
	logger *logging.Logger
	now    func() time.Time

	deck   *entities.Deck
	player *Player
	dealer *Dealer

	difficulty      string
	blackjackPayout float64

	state     entities.GameState
	roundID   string
	result    entities.Result
	message   string
	winAmount int
}

// NewGame reads the table parameters from store and opens the first round. Missing
// or invalid parameters are returned as a CONFIG_INVALID *types.GameError.
func NewGame(store storage.Store, opts ...Option) (*Game, error) {
	g := &Game{
		store:  store,
		logger: logging.Default,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	params, err := readTableParams(store)
	if err != nil {
		return nil, err
	}

	g.difficulty = params.difficulty
	g.blackjackPayout = params.blackjackPayout
	g.player = NewPlayer(params.startingBalance, TableLimits{MinBet: params.minBet, MaxBet: params.maxBet})
	g.dealer = NewDealer(params.standValue)

	if g.deck == nil {
		g.deck = entities.NewDeck(params.decks)
		g.deck.Shuffle()
	}

	g.logger.Info("New game: difficulty=%s decks=%d balance=%d limits=%d-%d",
		g.difficulty, g.deck.NumDecks, params.startingBalance, params.minBet, params.maxBet)

	g.startNewRound()
	return g, nil
}

// StartNewRound clears the table for the next bet, or ends the game when the
// balance no longer covers the minimum bet
func (g *Game) StartNewRound() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.startNewRound()
}

// PlaceBet wagers amount (clamped to the table limits and balance) and deals the
// opening hands. Returns false outside the betting phase.
func (g *Game) PlaceBet(amount int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != entities.StateBetting {
		return false
	}

	wager := g.player.PlaceBet(amount)
	g.logger.Debug("Round %s: requested bet %d, placed %d", g.roundID, amount, wager)

	g.player.AddCard(g.deck.Deal())
	g.dealer.AddCard(g.deck.Deal())
	g.player.AddCard(g.deck.Deal())
	g.dealer.AddCard(g.deck.Deal())

	g.dealer.HideFirstCard()

	if g.player.HasBlackjack() {
		g.dealer.RevealCards()
		if g.dealer.HasBlackjack() {
			g.endRound(entities.ResultPush)
		} else {
			g.endRound(entities.ResultBlackjack)
		}
		return true
	}

	g.state = entities.StatePlaying
	return true
}

// PlayerHit deals the player one card. Does nothing outside the playing phase.
func (g *Game) PlayerHit() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != entities.StatePlaying {
		return
	}

	g.player.AddCard(g.deck.Deal())

	if g.player.IsBusted() {
		g.endRound(entities.ResultBust)
	}
}

// PlayerStand ends the player's turn and plays out the dealer's hand
func (g *Game) PlayerStand() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != entities.StatePlaying {
		return
	}

	g.player.Standing = true
	g.state = entities.StateDealerTurn
	g.dealer.RevealCards()

	g.playOut(g.dealer, g.dealer.Hand)
	g.determineWinner()
}

// State returns the current phase
func (g *Game) State() entities.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// CanHit reports whether PlayerHit would act
func (g *Game) CanHit() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state == entities.StatePlaying && !g.player.IsBusted()
}

// CanStand reports whether PlayerStand would act
func (g *Game) CanStand() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state == entities.StatePlaying
}

// CanBet reports whether PlaceBet would act
func (g *Game) CanBet() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state == entities.StateBetting
}

// Difficulty returns the difficulty the shoe was built for
func (g *Game) Difficulty() string {
	return g.difficulty
}

// Stats returns the current balance with the cumulative counters from the store
func (g *Game) Stats() entities.Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	return entities.Stats{
		Balance:        g.player.Balance,
		TotalGames:     g.store.Int(0, "stats", entities.StatTotalGames),
		Wins:           g.store.Int(0, "stats", entities.StatWins),
		Losses:         g.store.Int(0, "stats", entities.StatLosses),
		Blackjacks:     g.store.Int(0, "stats", entities.StatBlackjacks),
		HighestBalance: g.store.Int(0, "stats", entities.StatHighestBalance),
	}
}

// Table returns a snapshot of the table for rendering
func (g *Game) Table() TableView {
	g.mu.Lock()
	defer g.mu.Unlock()

	view := TableView{
		State:          g.state,
		RoundID:        g.roundID,
		Difficulty:     g.difficulty,
		PlayerCards:    cardViews(g.player.Hand),
		DealerCards:    cardViews(g.dealer.Hand),
		PlayerTotal:    g.player.Total(),
		Balance:        g.player.Balance,
		Bet:            g.player.Bet,
		MinBet:         g.player.Limits().MinBet,
		MaxBet:         g.player.Limits().MaxBet,
		Result:         g.result,
		Message:        g.message,
		WinAmount:      g.winAmount,
		CardsRemaining: g.deck.Remaining(),
		Reshuffles:     g.deck.Reshuffles(),
	}

	// while the player acts only the up card counts
	if g.state == entities.StatePlaying {
		view.DealerTotal = g.dealer.VisibleTotal()
		view.ShowDealerTotal = g.dealer.ShowsTotal()
	} else {
		view.DealerTotal = g.dealer.Total()
		view.ShowDealerTotal = g.dealer.Hand.Len() > 0
	}

	return view
}

// Helper functions

func (g *Game) startNewRound() {
	if !g.player.CanPlay() {
		g.state = entities.StateGameOver
		g.message = MessageGameOver
		g.logger.Info("Game over with balance %d", g.player.Balance)
		return
	}

	g.player.ResetHand()
	g.dealer.ResetHand()

	g.state = entities.StateBetting
	g.roundID = uuid.NewString()
	g.result = ""
	g.message = ""
	g.winAmount = 0
}

// playOut draws for an auto-playing participant until its policy stops
func (g *Game) playOut(policy TurnPolicy, hand *Hand) {
	for policy.AutoPlays() && policy.ShouldHit() {
		hand.AddCard(g.deck.Deal())
	}
}

func (g *Game) determineWinner() {
	if g.dealer.IsBusted() {
		g.endRound(entities.ResultWin)
		return
	}

	switch CompareTotals(g.player.Total(), g.dealer.Total()) {
	case 1:
		g.endRound(entities.ResultWin)
	case -1:
		g.endRound(entities.ResultLose)
	default:
		g.endRound(entities.ResultPush)
	}
}

func (g *Game) endRound(result entities.Result) {
	g.state = entities.StateRoundOver
	g.result = result
	g.winAmount = 0

	switch result {
	case entities.ResultBlackjack:
		g.winAmount = g.player.Win(g.blackjackPayout)
		g.message = MessageBlackjack
		g.updateStat(entities.StatBlackjacks)
		g.updateStat(entities.StatWins)
	case entities.ResultWin:
		g.winAmount = g.player.Win(1.0)
		g.message = MessageWin
		g.updateStat(entities.StatWins)
	case entities.ResultLose:
		g.message = MessageLose
		g.updateStat(entities.StatLosses)
	case entities.ResultBust:
		g.message = MessageBust
		g.updateStat(entities.StatLosses)
	case entities.ResultPush:
		g.player.Push()
		g.message = MessagePush
	}

	g.updateStat(entities.StatTotalGames)

	if g.player.Balance > g.store.Int(0, "stats", entities.StatHighestBalance) {
		if err := g.store.Set(g.player.Balance, "stats", entities.StatHighestBalance); err != nil {
			g.logger.LogError(types.WrapError(types.ErrStorageError, "failed to record highest balance", err))
		} else if err := g.store.Save(); err != nil {
			g.logger.LogError(types.WrapError(types.ErrStorageError, "failed to save highest balance", err))
		}
	}

	g.logger.Info("Round %s over: %s (bet %d, won %d, balance %d)",
		g.roundID, result, g.player.Bet, g.winAmount, g.player.Balance)

	g.recordRound()
}

func (g *Game) updateStat(name string) {
	if err := g.store.UpdateStats(name, 1); err != nil {
		g.logger.LogError(types.WrapError(types.ErrStorageError, fmt.Sprintf("failed to update stat %s", name), err))
	}
}

func (g *Game) recordRound() {
	if g.repo == nil {
		return
	}

	record := &entities.RoundRecord{
		ID:           g.roundID,
		Difficulty:   g.difficulty,
		Result:       g.result,
		Bet:          g.player.Bet,
		WinAmount:    g.winAmount,
		BalanceAfter: g.player.Balance,
		PlayerCards:  g.player.Hand.Cards(),
		DealerCards:  g.dealer.Hand.Cards(),
		PlayerScore:  g.player.Total(),
		DealerScore:  g.dealer.Total(),
		CompletedAt:  g.now(),
	}

	if err := g.repo.SaveRound(context.Background(), record); err != nil {
		g.logger.LogError(types.WrapError(types.ErrDatabaseError, fmt.Sprintf("failed to save round %s", record.ID), err))
	}
}

func cardViews(h *Hand) []CardView {
	cards := h.Cards()
	views := make([]CardView, len(cards))
	for i, card := range cards {
		views[i] = CardView{Card: card, FaceUp: h.IsFaceUp(i)}
	}
	return views
}

type tableParams struct {
	minBet          int
	maxBet          int
	startingBalance int
	standValue      int
	blackjackPayout float64
	difficulty      string
	decks           int
}

func readTableParams(store storage.Store) (*tableParams, error) {
	required := [][]string{
		{"game", "min_bet"},
		{"game", "max_bet"},
		{"game", "starting_balance"},
		{"game", "dealer_stand_value"},
	}

	var missing []string
	for _, keys := range required {
		if _, ok := store.Get(keys...); !ok {
			missing = append(missing, strings.Join(keys, "."))
		}
	}

	params := &tableParams{
		difficulty: store.String(DefaultDifficulty, "game", "difficulty"),
	}
	if _, ok := store.Get("difficulty", params.difficulty, "decks"); !ok {
		missing = append(missing, fmt.Sprintf("difficulty.%s.decks", params.difficulty))
	}

	if len(missing) > 0 {
		return nil, types.NewGameError(types.ErrConfigInvalid,
			fmt.Sprintf("missing config keys: %s", strings.Join(missing, ", ")))
	}

	params.minBet = store.Int(0, "game", "min_bet")
	params.maxBet = store.Int(0, "game", "max_bet")
	params.startingBalance = store.Int(-1, "game", "starting_balance")
	params.standValue = store.Int(0, "game", "dealer_stand_value")
	params.blackjackPayout = store.Float(DefaultBlackjackPayout, "game", "blackjack_payout")
	params.decks = store.Int(0, "difficulty", params.difficulty, "decks")

	switch {
	case params.minBet <= 0:
		return nil, types.NewGameError(types.ErrConfigInvalid, "game.min_bet must be positive")
	case params.maxBet < params.minBet:
		return nil, types.NewGameError(types.ErrConfigInvalid, "game.max_bet must not be below game.min_bet")
	case params.startingBalance < 0:
		return nil, types.NewGameError(types.ErrConfigInvalid, "game.starting_balance must be a non-negative number")
	case params.blackjackPayout < 0:
		return nil, types.NewGameError(types.ErrConfigInvalid, "game.blackjack_payout must be a non-negative number")
	case params.decks < 1:
		return nil, types.NewGameError(types.ErrConfigInvalid,
			fmt.Sprintf("difficulty.%s.decks must be at least 1", params.difficulty))
	}

	return params, nil
}
