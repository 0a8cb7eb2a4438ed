package game

import (
	"context"
	"sync"

	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// rounds in the order they were saved
	rounds []*entities.RoundRecord
	// round id to record
	byID map[string]*entities.RoundRecord
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rounds: make([]*entities.RoundRecord, 0),
		byID:   make(map[string]*entities.RoundRecord),
	}
}

// SaveRound stores a round, replacing any earlier record with the same id
func (r *MemoryRepository) SaveRound(ctx context.Context, record *entities.RoundRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[record.ID]; exists {
		for i, existing := range r.rounds {
			if existing.ID == record.ID {
				r.rounds[i] = record
				break
			}
		}
	} else {
		r.rounds = append(r.rounds, record)
	}
	r.byID[record.ID] = record
	return nil
}

// GetRound retrieves a round by id
func (r *MemoryRepository) GetRound(ctx context.Context, id string) (*entities.RoundRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.byID[id]
	if !exists {
		return nil, ErrRoundNotFound
	}
	return record, nil
}

// GetRecentRounds retrieves up to limit rounds, newest first
func (r *MemoryRepository) GetRecentRounds(ctx context.Context, limit int) ([]*entities.RoundRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.rounds) {
		limit = len(r.rounds)
	}

	results := make([]*entities.RoundRecord, 0, limit)
	for i := len(r.rounds) - 1; i >= 0 && len(results) < limit; i-- {
		results = append(results, r.rounds[i])
	}
	return results, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
