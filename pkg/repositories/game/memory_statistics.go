package game

import (
	"context"

	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

// CountResults tallies the stored rounds by result
func (r *MemoryRepository) CountResults(ctx context.Context) (map[entities.Result]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[entities.Result]int)
	for _, record := range r.rounds {
		counts[record.Result]++
	}
	return counts, nil
}

// PruneRounds drops all but the newest keep rounds
func (r *MemoryRepository) PruneRounds(ctx context.Context, keep int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	if len(r.rounds) <= keep {
		return 0, nil
	}

	removed := len(r.rounds) - keep
	for _, record := range r.rounds[:removed] {
		delete(r.byID, record.ID)
	}

	kept := make([]*entities.RoundRecord, keep)
	copy(kept, r.rounds[removed:])
	r.rounds = kept

	return removed, nil
}
