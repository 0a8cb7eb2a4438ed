package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	_ "github.com/mattn/go-sqlite3"

	"github.com/fadedpez/tucoblackjack/internal/logging"
	"github.com/fadedpez/tucoblackjack/pkg/db/migrations"
)

type cli struct {
	LogLevel string `name:"log-level" env:"LOG_LEVEL" default:"info" help:"debug, info, warn or error."`

	Create  createCmd  `cmd:"" help:"Create a new migration file."`
	Migrate migrateCmd `cmd:"" help:"Apply pending migrations."`
	Status  statusCmd  `cmd:"" help:"List migrations and whether they are applied."`
}

type createCmd struct {
	Dir         string `name:"dir" default:"pkg/db/migrations/sql" help:"Directory to store migrations."`
	Description string `arg:"" help:"What the migration does, e.g. \"add session table\"."`
}

func (c *createCmd) Run(logger *logging.Logger) error {
	path, err := migrations.CreateMigration(c.Dir, c.Description, time.Now())
	if err != nil {
		return fmt.Errorf("error creating migration: %w", err)
	}

	if err := addSQLiteExamples(path); err != nil {
		return err
	}

	logger.Info("Created migration file: %s", path)
	return nil
}

type migrateCmd struct {
	DB  string `name:"db" env:"BLACKJACK_DB" default:"data/tucoblackjack.db" help:"Path to SQLite database."`
	Dir string `name:"dir" help:"Read migrations from this directory instead of the built-in set."`
}

func (c *migrateCmd) Run(logger *logging.Logger) error {
	db, err := openDB(c.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := migrations.NewMigrator(db, source(c.Dir), logger).MigrateUp(context.Background())
	if err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	logger.Info("Applied %d migration(s) to %s", applied, c.DB)
	return nil
}

type statusCmd struct {
	DB  string `name:"db" env:"BLACKJACK_DB" default:"data/tucoblackjack.db" help:"Path to SQLite database."`
	Dir string `name:"dir" help:"Read migrations from this directory instead of the built-in set."`
}

func (c *statusCmd) Run(logger *logging.Logger) error {
	db, err := openDB(c.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	status, err := migrations.NewMigrator(db, source(c.Dir), logger).Status(context.Background())
	if err != nil {
		return fmt.Errorf("error reading migration status: %w", err)
	}

	for _, s := range status {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Printf("%s  %-8s %s\n", s.Version, state, s.Description)
	}
	return nil
}

func main() {
	var app cli
	ctx := kong.Parse(&app,
		kong.Name("migration"),
		kong.Description("Manage the round history database schema."),
		kong.UsageOnError(),
	)

	level, err := logging.ParseLevel(app.LogLevel)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(logging.NewLogger(level)))
}

func openDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	return db, nil
}

// source returns nil for the embedded migrations
func source(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	return os.DirFS(dir)
}

func addSQLiteExamples(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading migration file: %w", err)
	}

	examples := `-- SQLite examples:

-- CREATE TABLE IF NOT EXISTS table_name (
--   id TEXT PRIMARY KEY,
--   value INTEGER DEFAULT 0,
--   created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
-- );

-- ALTER TABLE round_records ADD COLUMN new_column TEXT;

-- CREATE INDEX IF NOT EXISTS idx_round_records_column ON round_records(column_name);

`
	if err := os.WriteFile(path, append(content, examples...), 0644); err != nil {
		return fmt.Errorf("error writing migration file: %w", err)
	}
	return nil
}
