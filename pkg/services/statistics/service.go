package statistics

import (
	"context"
	"fmt"
	"sort"

	"github.com/fadedpez/tucoblackjack/internal/types"
	"github.com/fadedpez/tucoblackjack/pkg/entities"
	"github.com/fadedpez/tucoblackjack/pkg/repositories/game"
	"github.com/fadedpez/tucoblackjack/pkg/storage"
)

// Service reads the cumulative statistics and difficulty presets from the store
// and the round history from the repository
type Service struct {
	store      storage.Store
	repository game.Repository
}

// NewService creates a new statistics service. repository may be nil.
func NewService(store storage.Store, repository game.Repository) *Service {
	return &Service{
		store:      store,
		repository: repository,
	}
}

// Summary is the cumulative record shown on the statistics screen
type Summary struct {
	TotalGames     int     `json:"total_games"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Pushes         int     `json:"pushes"`
	Blackjacks     int     `json:"blackjacks"`
	HighestBalance int     `json:"highest_balance"`
	WinRate        float64 `json:"win_rate"`
}

// Summary reads the counters from the store
func (s *Service) Summary() *Summary {
	stats := &entities.Stats{
		TotalGames:     s.store.Int(0, "stats", entities.StatTotalGames),
		Wins:           s.store.Int(0, "stats", entities.StatWins),
		Losses:         s.store.Int(0, "stats", entities.StatLosses),
		Blackjacks:     s.store.Int(0, "stats", entities.StatBlackjacks),
		HighestBalance: s.store.Int(0, "stats", entities.StatHighestBalance),
	}

	return &Summary{
		TotalGames:     stats.TotalGames,
		Wins:           stats.Wins,
		Losses:         stats.Losses,
		Pushes:         stats.Pushes(),
		Blackjacks:     stats.Blackjacks,
		HighestBalance: stats.HighestBalance,
		WinRate:        stats.WinRate(),
	}
}

// Difficulty describes one preset
type Difficulty struct {
	Name            string `json:"name"`
	Decks           int    `json:"decks"`
	StartingBalance int    `json:"starting_balance"`
	Selected        bool   `json:"selected"`
}

// Difficulties lists the presets found in the store in menu order
func (s *Service) Difficulties() []*Difficulty {
	selected := s.store.String("", "game", "difficulty")

	presets := make([]*Difficulty, 0, len(storage.Difficulties))
	for _, name := range storage.Difficulties {
		if _, ok := s.store.Get("difficulty", name); !ok {
			continue
		}
		presets = append(presets, &Difficulty{
			Name:            name,
			Decks:           s.store.Int(0, "difficulty", name, "decks"),
			StartingBalance: s.store.Int(0, "difficulty", name, "starting_balance"),
			Selected:        name == selected,
		})
	}
	return presets
}

// ApplyDifficulty copies the preset's starting balance into the game settings and
// selects it for the next game
func (s *Service) ApplyDifficulty(name string) error {
	balance, ok := s.store.Get("difficulty", name, "starting_balance")
	if !ok {
		return types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("unknown difficulty %q", name))
	}

	if err := s.store.Set(balance, "game", "starting_balance"); err != nil {
		return types.WrapError(types.ErrStorageError, "failed to set starting balance", err)
	}
	if err := s.store.Set(name, "game", "difficulty"); err != nil {
		return types.WrapError(types.ErrStorageError, "failed to set difficulty", err)
	}
	if err := s.store.Save(); err != nil {
		return types.WrapError(types.ErrStorageError, "failed to save difficulty", err)
	}
	return nil
}

// RecentRounds returns up to limit completed rounds, newest first
func (s *Service) RecentRounds(ctx context.Context, limit int) ([]*entities.RoundRecord, error) {
	if s.repository == nil {
		return []*entities.RoundRecord{}, nil
	}

	rounds, err := s.repository.GetRecentRounds(ctx, limit)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to load round history", err)
	}
	return rounds, nil
}

// ResultShare is how often one result occurs in the stored history
type ResultShare struct {
	Result  entities.Result `json:"result"`
	Count   int             `json:"count"`
	Percent float64         `json:"percent"`
}

// ResultBreakdown tallies the stored history by result, most frequent first
func (s *Service) ResultBreakdown(ctx context.Context) ([]*ResultShare, error) {
	if s.repository == nil {
		return []*ResultShare{}, nil
	}

	counts, err := s.repository.CountResults(ctx)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to count results", err)
	}

	total := 0
	for _, count := range counts {
		total += count
	}

	shares := make([]*ResultShare, 0, len(counts))
	for result, count := range counts {
		share := &ResultShare{Result: result, Count: count}
		if total > 0 {
			share.Percent = float64(count) / float64(total) * 100.0
		}
		shares = append(shares, share)
	}

	// Sort by count (descending), then by name for a stable order
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Result < shares[j].Result
	})

	return shares, nil
}

// PruneHistory keeps only the newest keep rounds in the repository
func (s *Service) PruneHistory(ctx context.Context, keep int) (int, error) {
	if s.repository == nil {
		return 0, nil
	}

	removed, err := s.repository.PruneRounds(ctx, keep)
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "failed to prune round history", err)
	}
	return removed, nil
}
