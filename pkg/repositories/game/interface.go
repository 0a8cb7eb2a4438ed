package game

import (
	"context"
	"errors"

	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_game

// ErrRoundNotFound is returned when no round has the requested id
var ErrRoundNotFound = errors.New("round not found")

// Repository stores the history of completed rounds
type Repository interface {
	// SaveRound persists a completed round
	SaveRound(ctx context.Context, record *entities.RoundRecord) error
	// GetRound returns a single round by id
	GetRound(ctx context.Context, id string) (*entities.RoundRecord, error)
	// GetRecentRounds returns up to limit rounds, newest first
	GetRecentRounds(ctx context.Context, limit int) ([]*entities.RoundRecord, error)

	// CountResults tallies stored rounds by result
	CountResults(ctx context.Context) (map[entities.Result]int, error)
	// PruneRounds keeps only the newest keep rounds and returns how many were removed
	PruneRounds(ctx context.Context, keep int) (int, error)

	// Close closes any resources used by the repository
	Close() error
}
