package game

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/tucoblackjack/internal/logging"
	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() Repository
	repo    Repository
	ctx     context.Context
	base    time.Time
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() Repository { return NewMemoryRepository() },
	})
}

func TestSQLiteRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() Repository {
		dir := s.T().TempDir()
		repo, err := NewSQLiteRepository(filepath.Join(dir, "nested", "rounds.db"), logging.Discard())
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.base = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.repo = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

func newTestRecord(id string, result entities.Result, completedAt time.Time) *entities.RoundRecord {
	return &entities.RoundRecord{
		ID:           id,
		Difficulty:   "medium",
		Result:       result,
		Bet:          50,
		WinAmount:    0,
		BalanceAfter: 950,
		PlayerCards: []entities.Card{
			entities.NewCard(entities.Hearts, entities.Ten),
			entities.NewCard(entities.Spades, entities.Seven),
		},
		DealerCards: []entities.Card{
			entities.NewCard(entities.Clubs, entities.King),
			entities.NewCard(entities.Diamonds, entities.Nine),
		},
		PlayerScore: 17,
		DealerScore: 19,
		CompletedAt: completedAt,
	}
}

func (s *RepositoryTestSuite) saveRounds(results ...entities.Result) {
	for i, result := range results {
		record := newTestRecord(fmt.Sprintf("round-%d", i), result, s.base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.repo.SaveRound(s.ctx, record))
	}
}

func (s *RepositoryTestSuite) TestSaveAndGetRound() {
	record := newTestRecord("abc", entities.ResultLose, s.base)
	s.Require().NoError(s.repo.SaveRound(s.ctx, record))

	got, err := s.repo.GetRound(s.ctx, "abc")

	s.Require().NoError(err)
	s.Equal(record.Result, got.Result)
	s.Equal(record.PlayerCards, got.PlayerCards)
	s.Equal(record.DealerCards, got.DealerCards)
	s.Equal(19, got.DealerScore)
	s.Equal(950, got.BalanceAfter)
	s.True(record.CompletedAt.Equal(got.CompletedAt), "completed_at should round-trip")
}

func (s *RepositoryTestSuite) TestGetRoundNotFound() {
	_, err := s.repo.GetRound(s.ctx, "missing")
	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RepositoryTestSuite) TestSaveRoundReplacesSameID() {
	s.Require().NoError(s.repo.SaveRound(s.ctx, newTestRecord("same", entities.ResultLose, s.base)))
	s.Require().NoError(s.repo.SaveRound(s.ctx, newTestRecord("same", entities.ResultWin, s.base)))

	rounds, err := s.repo.GetRecentRounds(s.ctx, 10)
	s.Require().NoError(err)
	s.Len(rounds, 1)
	s.Equal(entities.ResultWin, rounds[0].Result)
}

func (s *RepositoryTestSuite) TestGetRecentRoundsNewestFirst() {
	s.saveRounds(entities.ResultWin, entities.ResultLose, entities.ResultPush, entities.ResultBust)

	testCases := []struct {
		name     string
		limit    int
		expected []string
	}{
		{name: "limited", limit: 2, expected: []string{"round-3", "round-2"}},
		{name: "limit above count", limit: 10, expected: []string{"round-3", "round-2", "round-1", "round-0"}},
		{name: "zero means all", limit: 0, expected: []string{"round-3", "round-2", "round-1", "round-0"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rounds, err := s.repo.GetRecentRounds(s.ctx, tc.limit)
			s.Require().NoError(err)

			ids := make([]string, len(rounds))
			for i, r := range rounds {
				ids[i] = r.ID
			}
			s.Equal(tc.expected, ids)
		})
	}
}

func (s *RepositoryTestSuite) TestGetRecentRoundsEmpty() {
	rounds, err := s.repo.GetRecentRounds(s.ctx, 5)
	s.NoError(err)
	s.NotNil(rounds)
	s.Empty(rounds)
}

func (s *RepositoryTestSuite) TestCountResults() {
	s.saveRounds(entities.ResultWin, entities.ResultWin, entities.ResultBlackjack, entities.ResultBust, entities.ResultPush)

	counts, err := s.repo.CountResults(s.ctx)

	s.Require().NoError(err)
	s.Equal(map[entities.Result]int{
		entities.ResultWin:       2,
		entities.ResultBlackjack: 1,
		entities.ResultBust:      1,
		entities.ResultPush:      1,
	}, counts)
}

func (s *RepositoryTestSuite) TestPruneRoundsKeepsNewest() {
	s.saveRounds(entities.ResultWin, entities.ResultLose, entities.ResultPush, entities.ResultBust, entities.ResultWin)

	removed, err := s.repo.PruneRounds(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(3, removed)

	rounds, err := s.repo.GetRecentRounds(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(rounds, 2)
	s.Equal("round-4", rounds[0].ID)
	s.Equal("round-3", rounds[1].ID)

	_, err = s.repo.GetRound(s.ctx, "round-0")
	s.ErrorIs(err, ErrRoundNotFound)

	removed, err = s.repo.PruneRounds(s.ctx, 5)
	s.Require().NoError(err)
	s.Zero(removed, "Nothing to prune below the limit")
}

func TestSQLiteRepositoryReopen(t *testing.T) {
	dir, err := os.MkdirTemp("", "round-history")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "rounds.db")

	repo, err := NewSQLiteRepository(path, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveRound(context.Background(), newTestRecord("persisted", entities.ResultBlackjack, time.Now())); err != nil {
		t.Fatal(err)
	}
	repo.Close()

	// migrations must be idempotent on an existing database
	reopened, err := NewSQLiteRepository(path, logging.Discard())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	record, err := reopened.GetRound(context.Background(), "persisted")
	if err != nil {
		t.Fatalf("expected persisted round, got %v", err)
	}
	if record.Result != entities.ResultBlackjack {
		t.Errorf("expected blackjack, got %s", record.Result)
	}
}

func TestSQLiteRepositoryLogsMigrationsToGivenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.db")

	var quiet bytes.Buffer
	repo, err := NewSQLiteRepository(path, logging.NewLoggerWithWriter(&quiet, logging.WARN))
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	assert.Empty(t, quiet.String(), "Migration progress is below WARN")

	var verbose bytes.Buffer
	fresh := filepath.Join(t.TempDir(), "fresh.db")
	repo, err = NewSQLiteRepository(fresh, logging.NewLoggerWithWriter(&verbose, logging.INFO))
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	assert.Contains(t, verbose.String(), "Applying migration 001")
}
