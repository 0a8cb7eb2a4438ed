package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/fadedpez/tucoblackjack/internal/logging"
)

// Repository types for round history
const (
	RepositoryMemory        = "memory"
	RepositorySQLite        = "sqlite"
	RepositoryElasticsearch = "elasticsearch"
)

// Config holds all configuration for the application
type Config struct {
	// Game settings and statistics document
	StorePath    string `name:"store" env:"BLACKJACK_STORE" default:"data/game_config.json" help:"Path to the JSON settings and statistics file."`
	SeedDefaults bool   `name:"seed-defaults" env:"BLACKJACK_SEED_DEFAULTS" default:"true" negatable:"" help:"Create the settings file with stock values when it is missing."`

	// Round history
	Repository   string        `name:"repository" env:"STORAGE_TYPE" default:"memory" help:"Round history backend: memory, sqlite or elasticsearch."`
	DBPath       string        `name:"db" env:"BLACKJACK_DB" default:"data/tucoblackjack.db" help:"SQLite database for round history."`
	HistoryLimit int           `name:"history-limit" env:"BLACKJACK_HISTORY_LIMIT" default:"10" help:"Rounds shown by the history command."`
	KeepRounds   int           `name:"keep-rounds" env:"BLACKJACK_KEEP_ROUNDS" default:"0" help:"Prune round history to this many rounds (0 keeps everything)."`
	PruneEvery   time.Duration `name:"prune-interval" env:"BLACKJACK_PRUNE_INTERVAL" default:"1h" help:"How often to prune while playing when keep-rounds is set (0 prunes only at startup)."`

	// Elasticsearch
	ESURL         string `name:"es-url" env:"ELASTICSEARCH_URL" default:"http://localhost:9200" help:"Elasticsearch address."`
	ESUsername    string `name:"es-username" env:"ELASTICSEARCH_USERNAME" help:"Elasticsearch user."`
	ESPassword    string `name:"es-password" env:"ELASTICSEARCH_PASSWORD" help:"Elasticsearch password."`
	ESIndexPrefix string `name:"es-index-prefix" env:"ELASTICSEARCH_INDEX_PREFIX" default:"tucoblackjack" help:"Prefix for Elasticsearch index names."`

	// Difficulty preset applied before the first game
	Difficulty string `name:"difficulty" env:"BLACKJACK_DIFFICULTY" help:"Apply a difficulty preset (easy, medium, hard) before starting."`

	// Environment
	LogLevel    string `name:"log-level" env:"LOG_LEVEL" default:"info" help:"debug, info, warn or error."`
	Environment string `name:"environment" env:"ENVIRONMENT" default:"development" help:"development or production."`
}

// Load reads .env (if present), then parses args with environment fallbacks
func Load(args []string, options ...kong.Option) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	options = append([]kong.Option{
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack in the terminal."),
	}, options...)

	parser, err := kong.New(cfg, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	cfg.Repository = strings.ToLower(cfg.Repository)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks the values kong cannot check on its own
func (c *Config) validate() error {
	switch c.Repository {
	case RepositoryMemory, RepositorySQLite, RepositoryElasticsearch:
	default:
		return fmt.Errorf("unknown repository %q: expected memory, sqlite or elasticsearch", c.Repository)
	}
	if c.StorePath == "" {
		return fmt.Errorf("BLACKJACK_STORE is required")
	}
	if c.Repository == RepositorySQLite && c.DBPath == "" {
		return fmt.Errorf("BLACKJACK_DB is required for the sqlite repository")
	}
	if c.Repository == RepositoryElasticsearch && c.ESURL == "" {
		return fmt.Errorf("ELASTICSEARCH_URL is required for the elasticsearch repository")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("history limit must be at least 1")
	}
	if c.KeepRounds < 0 {
		return fmt.Errorf("keep rounds must not be negative")
	}
	if c.PruneEvery < 0 {
		return fmt.Errorf("prune interval must not be negative")
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// LogFormat returns text logs in development and JSON logs in production
func (c *Config) LogFormat() logging.Format {
	if c.IsDevelopment() {
		return logging.FormatText
	}
	return logging.FormatJSON
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
