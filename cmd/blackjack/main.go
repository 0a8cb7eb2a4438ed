package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/tucoblackjack/internal/config"
	"github.com/fadedpez/tucoblackjack/internal/console"
	"github.com/fadedpez/tucoblackjack/internal/logging"
	"github.com/fadedpez/tucoblackjack/pkg/repositories/game"
	"github.com/fadedpez/tucoblackjack/pkg/scheduler"
	"github.com/fadedpez/tucoblackjack/pkg/services/blackjack"
	"github.com/fadedpez/tucoblackjack/pkg/services/statistics"
	"github.com/fadedpez/tucoblackjack/pkg/storage"
	"github.com/fadedpez/tucoblackjack/pkg/storage/file"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logging.Default.Error("Failed to load configuration: %v", err)
		os.Exit(2)
	}

	logger := logging.NewLoggerWithFormat(os.Stderr, cfg.Level(), cfg.LogFormat())

	store, err := file.New(&storage.Options{
		Path:         cfg.StorePath,
		SeedDefaults: cfg.SeedDefaults,
	})
	if err != nil {
		logger.LogError(err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := openRepository(ctx, cfg, logger)
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Error closing round history: %v", err)
		}
	}()

	stats := statistics.NewService(store, repo)

	if cfg.Difficulty != "" {
		if err := stats.ApplyDifficulty(cfg.Difficulty); err != nil {
			logger.LogError(err)
			os.Exit(1)
		}
		logger.Info("Difficulty set to %s", cfg.Difficulty)
	}

	if cfg.KeepRounds > 0 {
		maintenance := scheduler.NewHistoryMaintenanceScheduler(stats, cfg.KeepRounds, cfg.PruneEvery, logger.With("component", "history"))
		maintenance.Start(ctx)
		defer maintenance.Stop()
	}

	newGame := func() (*blackjack.Game, error) {
		return blackjack.NewGame(store,
			blackjack.WithRepository(repo),
			blackjack.WithLogger(logger),
		)
	}

	session, err := console.NewSession(os.Stdin, os.Stdout, newGame, stats, store,
		console.WithHistoryLimit(cfg.HistoryLimit),
		console.WithSessionLogger(logger),
	)
	if err != nil {
		logger.LogError(err)
		os.Exit(1)
	}

	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Session ended with error: %v", err)
	}
}

// openRepository builds the configured round history. A backend that fails to
// start falls back to the in-memory repository.
func openRepository(ctx context.Context, cfg *config.Config, logger *logging.Logger) game.Repository {
	switch cfg.Repository {
	case config.RepositorySQLite:
		return openSQLite(cfg, logger)

	case config.RepositoryElasticsearch:
		base := openSQLite(cfg, logger)
		esRepo, err := game.NewElasticsearchRepository(ctx, base, &game.ElasticsearchConfig{
			URL:         cfg.ESURL,
			Username:    cfg.ESUsername,
			Password:    cfg.ESPassword,
			IndexPrefix: cfg.ESIndexPrefix,
		})
		if err != nil {
			logger.Warn("Failed to initialize Elasticsearch repository: %v", err)
			logger.Warn("Round history will not be indexed")
			return base
		}
		logger.Info("Indexing rounds into %s at %s", esRepo.RoundIndex(), cfg.ESURL)
		return esRepo
	}

	logger.Info("Using in-memory round history (data will be lost on exit)")
	return game.NewMemoryRepository()
}

func openSQLite(cfg *config.Config, logger *logging.Logger) game.Repository {
	logger.Debug("Initializing SQLite repository at %s", cfg.DBPath)
	repo, err := game.NewSQLiteRepository(cfg.DBPath, logger.With("component", "sqlite"))
	if err != nil {
		logger.Warn("Failed to initialize SQLite repository: %v", err)
		logger.Warn("Falling back to in-memory repository")
		return game.NewMemoryRepository()
	}
	logger.Info("Recording round history in %s", cfg.DBPath)
	return repo
}
