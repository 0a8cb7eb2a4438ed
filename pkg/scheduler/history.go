package scheduler

import (
	"context"
	"time"

	"github.com/fadedpez/tucoblackjack/internal/logging"
)

// HistoryPruner trims round history to the newest keep rounds
type HistoryPruner interface {
	PruneHistory(ctx context.Context, keep int) (int, error)
}

// HistoryMaintenanceScheduler keeps the round history bounded while the table is open
type HistoryMaintenanceScheduler struct {
	scheduler *Scheduler
	pruner    HistoryPruner
	keep      int
	interval  time.Duration
	logger    *logging.Logger
}

// NewHistoryMaintenanceScheduler prunes to keep rounds at start and then every interval.
// A non-positive interval prunes once.
func NewHistoryMaintenanceScheduler(pruner HistoryPruner, keep int, interval time.Duration, logger *logging.Logger) *HistoryMaintenanceScheduler {
	if logger == nil {
		logger = logging.Default
	}
	return &HistoryMaintenanceScheduler{
		scheduler: NewScheduler(logger),
		pruner:    pruner,
		keep:      keep,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the pruning task
func (s *HistoryMaintenanceScheduler) Start(ctx context.Context) {
	s.scheduler.AddTask("history_pruning", s.interval, s.pruneHistory)
	s.scheduler.Start(ctx)
}

// Stop stops the maintenance scheduler
func (s *HistoryMaintenanceScheduler) Stop() {
	s.scheduler.Stop()
}

func (s *HistoryMaintenanceScheduler) pruneHistory(ctx context.Context) error {
	pruned, err := s.pruner.PruneHistory(ctx, s.keep)
	if err != nil {
		return err
	}
	if pruned > 0 {
		s.logger.Info("Pruned %d old rounds from history", pruned)
	}
	return nil
}
