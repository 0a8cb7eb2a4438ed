package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fadedpez/tucoblackjack/internal/logging"
	"github.com/fadedpez/tucoblackjack/internal/types"
	"github.com/fadedpez/tucoblackjack/pkg/entities"
	"github.com/fadedpez/tucoblackjack/pkg/services/blackjack"
	"github.com/fadedpez/tucoblackjack/pkg/services/statistics"
	"github.com/fadedpez/tucoblackjack/pkg/storage"
)

// BetPresets are the quick bet amounts offered at the table
var BetPresets = []int{10, 25, 50, 100, 500, 1000}

// GameFactory builds a fresh game from the current settings
type GameFactory func() (*blackjack.Game, error)

// Session is a line-oriented terminal front end for a game
type Session struct {
	in           *bufio.Scanner
	out          io.Writer
	newGame      GameFactory
	game         *blackjack.Game
	stats        *statistics.Service
	styles       *Styles
	logger       *logging.Logger
	historyLimit int
}

// Option configures a Session
type Option func(*Session)

// WithHistoryLimit sets how many rounds the history command shows
func WithHistoryLimit(limit int) Option {
	return func(s *Session) {
		if limit > 0 {
			s.historyLimit = limit
		}
	}
}

// WithSessionLogger replaces the default logger
func WithSessionLogger(logger *logging.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates the first game with newGame and binds it to in and out.
// store supplies the palette and may be nil.
func NewSession(in io.Reader, out io.Writer, newGame GameFactory, stats *statistics.Service, store storage.Store, opts ...Option) (*Session, error) {
	s := &Session{
		in:           bufio.NewScanner(in),
		out:          out,
		newGame:      newGame,
		stats:        stats,
		styles:       NewStyles(out, store),
		logger:       logging.Default,
		historyLimit: 10,
	}
	for _, opt := range opts {
		opt(s)
	}

	game, err := newGame()
	if err != nil {
		return nil, err
	}
	s.game = game
	return s, nil
}

// Game returns the game currently being played
func (s *Session) Game() *blackjack.Game {
	return s.game
}

// Run reads commands until quit, end of input or ctx is done
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.println(s.styles.Header.Render("BLACKJACK"))
	s.println(s.renderTable(s.game.Table()))

	var scanErr error
	lines := make(chan string)
	go func() {
		defer close(lines)
		for s.in.Scan() {
			select {
			case lines <- s.in.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = s.in.Err()
	}()

	for {
		fmt.Fprint(s.out, "> ")

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			return scanErr
		}

		quit, err := s.Execute(ctx, line)
		if err != nil {
			var gameErr *types.GameError
			if types.As(err, &gameErr) && (gameErr.Code == types.ErrInvalidCommand || gameErr.Code == types.ErrInvalidState) {
				s.println(s.styles.Loss.Render(gameErr.Message))
				continue
			}
			s.logger.LogError(err)
			s.println(s.styles.Loss.Render(err.Error()))
		}
		if quit {
			s.println("Goodbye!")
			return nil
		}
	}
}

// Execute runs one command line. It returns true when the session should end.
func (s *Session) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	command, args := fields[0], fields[1:]
	switch command {
	case "bet", "b":
		return false, s.bet(args)
	case "hit", "h":
		if !s.game.CanHit() {
			return false, wrongState("You can't hit right now.")
		}
		s.game.PlayerHit()
		s.println(s.renderTable(s.game.Table()))
	case "stand", "s":
		if !s.game.CanStand() {
			return false, wrongState("You can't stand right now.")
		}
		s.game.PlayerStand()
		s.println(s.renderTable(s.game.Table()))
	case "new", "n":
		if state := s.game.State(); state != entities.StateRoundOver && state != entities.StateGameOver {
			return false, wrongState("Finish the current round first.")
		}
		s.game.StartNewRound()
		s.println(s.renderTable(s.game.Table()))
	case "table", "t":
		s.println(s.renderTable(s.game.Table()))
	case "stats":
		return false, s.showStats(ctx)
	case "history":
		return false, s.showHistory(ctx)
	case "difficulty":
		return false, s.difficulty(args)
	case "restart":
		return false, s.restart()
	case "help", "?":
		s.println(helpText)
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, invalidCommand(fmt.Sprintf("Unknown command %q. Type 'help' for a list.", command))
	}
	return false, nil
}

func (s *Session) bet(args []string) error {
	if len(args) == 0 {
		presets := make([]string, len(BetPresets))
		for i, amount := range BetPresets {
			presets[i] = fmt.Sprintf("$%d", amount)
		}
		s.println("Bets: " + strings.Join(presets, " "))
		return nil
	}

	amount, err := strconv.Atoi(strings.TrimPrefix(args[0], "$"))
	if err != nil || amount <= 0 {
		return invalidCommand(fmt.Sprintf("%q is not a bet amount.", args[0]))
	}

	if !s.game.CanBet() {
		return wrongState("Bets are only taken before the deal.")
	}
	if amount > s.game.Table().Balance {
		return invalidCommand(fmt.Sprintf("Not enough money for a $%d bet.", amount))
	}

	s.game.PlaceBet(amount)
	s.println(s.renderTable(s.game.Table()))
	return nil
}

func (s *Session) showStats(ctx context.Context) error {
	shares, err := s.stats.ResultBreakdown(ctx)
	if err != nil {
		return err
	}
	s.println(s.renderSummary(s.stats.Summary(), shares))
	return nil
}

func (s *Session) showHistory(ctx context.Context) error {
	rounds, err := s.stats.RecentRounds(ctx, s.historyLimit)
	if err != nil {
		return err
	}
	s.println(s.renderHistory(rounds))
	return nil
}

func (s *Session) difficulty(args []string) error {
	if len(args) == 0 {
		s.println(s.renderDifficulties(s.stats.Difficulties()))
		return nil
	}

	if err := s.stats.ApplyDifficulty(args[0]); err != nil {
		if types.IsGameError(err, types.ErrInvalidArgument) {
			return invalidCommand(fmt.Sprintf("Unknown difficulty %q.", args[0]))
		}
		return err
	}
	s.println(fmt.Sprintf("Difficulty set to %s. Type 'restart' to start a new game with it.", args[0]))
	return nil
}

func (s *Session) restart() error {
	if s.game.State() == entities.StatePlaying {
		return wrongState("Finish the current round first.")
	}

	game, err := s.newGame()
	if err != nil {
		return err
	}
	s.game = game
	s.println(s.renderTable(s.game.Table()))
	return nil
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func invalidCommand(message string) error {
	return types.NewGameError(types.ErrInvalidCommand, message)
}

func wrongState(message string) error {
	return types.NewGameError(types.ErrInvalidState, message)
}

const helpText = `Commands:
  bet <amount>        place a bet and deal (bet alone lists quick bets)
  hit                 take another card
  stand               end your turn
  new                 start the next round
  table               show the table
  stats               show cumulative statistics
  history             show recent rounds
  difficulty [name]   list presets or pick one for the next game
  restart             start a new game with the current settings
  quit                leave the table`
