package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fadedpez/tucoblackjack/internal/logging"
	"github.com/fadedpez/tucoblackjack/pkg/db/migrations"
	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

const selectRoundColumns = `
	SELECT id, difficulty, result, bet, win_amount, balance_after,
		player_cards, dealer_cards, player_score, dealer_score, completed_at
	FROM round_records`

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (creating if needed) the database at dbPath and applies
// the embedded migrations, reporting progress to logger (nil uses logging.Default)
func NewSQLiteRepository(dbPath string, logger *logging.Logger) (*SQLiteRepository, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	migrator := migrations.NewMigrator(db, nil, logger)
	if _, err := migrator.MigrateUp(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRound stores a round, replacing any earlier record with the same id
func (r *SQLiteRepository) SaveRound(ctx context.Context, record *entities.RoundRecord) error {
	playerCards, err := json.Marshal(record.PlayerCards)
	if err != nil {
		return err
	}
	dealerCards, err := json.Marshal(record.DealerCards)
	if err != nil {
		return err
	}

	query := `
		INSERT OR REPLACE INTO round_records (
			id, difficulty, result, bet, win_amount, balance_after,
			player_cards, dealer_cards, player_score, dealer_score, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		record.ID, record.Difficulty, string(record.Result), record.Bet, record.WinAmount,
		record.BalanceAfter, string(playerCards), string(dealerCards),
		record.PlayerScore, record.DealerScore, record.CompletedAt.UTC())
	return err
}

// GetRound retrieves a round by id
func (r *SQLiteRepository) GetRound(ctx context.Context, id string) (*entities.RoundRecord, error) {
	row := r.db.QueryRowContext(ctx, selectRoundColumns+` WHERE id = ?`, id)

	record, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoundNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetRecentRounds retrieves up to limit rounds, newest first
func (r *SQLiteRepository) GetRecentRounds(ctx context.Context, limit int) ([]*entities.RoundRecord, error) {
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}

	rows, err := r.db.QueryContext(ctx,
		selectRoundColumns+` ORDER BY completed_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*entities.RoundRecord, 0)
	for rows.Next() {
		record, err := scanRound(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, record)
	}

	return results, rows.Err()
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRound(s scanner) (*entities.RoundRecord, error) {
	var (
		record      entities.RoundRecord
		result      string
		playerCards string
		dealerCards string
		completedAt time.Time
	)

	err := s.Scan(
		&record.ID, &record.Difficulty, &result, &record.Bet, &record.WinAmount,
		&record.BalanceAfter, &playerCards, &dealerCards,
		&record.PlayerScore, &record.DealerScore, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(playerCards), &record.PlayerCards); err != nil {
		return nil, fmt.Errorf("error decoding player cards for round %s: %w", record.ID, err)
	}
	if err := json.Unmarshal([]byte(dealerCards), &record.DealerCards); err != nil {
		return nil, fmt.Errorf("error decoding dealer cards for round %s: %w", record.ID, err)
	}
	record.Result = entities.Result(result)
	record.CompletedAt = completedAt

	return &record, nil
}
