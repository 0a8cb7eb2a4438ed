package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fadedpez/tucoblackjack/internal/logging"
)

type mockPruner struct {
	mock.Mock
}

func (m *mockPruner) PruneHistory(ctx context.Context, keep int) (int, error) {
	args := m.Called(ctx, keep)
	return args.Int(0), args.Error(1)
}

func TestSchedulerRunsImmediatelyAndOnInterval(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(logging.Discard())
	s.AddTask("count", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
	s.Stop()

	stopped := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load(), "Stop should wait for tasks to exit")
}

func TestSchedulerZeroIntervalRunsOnce(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(logging.Discard())
	s.AddTask("once", 0, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestSchedulerLogsTaskErrors(t *testing.T) {
	var buf bytes.Buffer
	s := NewScheduler(logging.NewLoggerWithWriter(&buf, logging.DEBUG))
	s.AddTask("broken", 0, func(ctx context.Context) error {
		return errors.New("disk full")
	})

	s.Start(context.Background())
	s.Stop()

	assert.Contains(t, buf.String(), "Error running task broken: disk full")
}

func TestSchedulerStartStopIdempotent(t *testing.T) {
	s := NewScheduler(logging.Discard())
	s.Stop()

	s.Start(context.Background())
	s.Start(context.Background())
	s.Stop()
	s.Stop()
}

func TestHistoryMaintenancePrunesOnStart(t *testing.T) {
	pruner := &mockPruner{}
	pruner.On("PruneHistory", mock.Anything, 50).Return(3, nil).Once()

	var buf bytes.Buffer
	maintenance := NewHistoryMaintenanceScheduler(pruner, 50, 0, logging.NewLoggerWithWriter(&buf, logging.INFO))
	maintenance.Start(context.Background())
	maintenance.Stop()

	pruner.AssertExpectations(t)
	assert.Contains(t, buf.String(), "Pruned 3 old rounds from history")
}

func TestHistoryMaintenanceReportsFailure(t *testing.T) {
	pruner := &mockPruner{}
	pruner.On("PruneHistory", mock.Anything, 10).Return(0, errors.New("database is locked"))

	var buf bytes.Buffer
	maintenance := NewHistoryMaintenanceScheduler(pruner, 10, 0, logging.NewLoggerWithWriter(&buf, logging.INFO))
	maintenance.Start(context.Background())
	maintenance.Stop()

	pruner.AssertNumberOfCalls(t, "PruneHistory", 1)
	assert.Contains(t, buf.String(), "database is locked")
}
