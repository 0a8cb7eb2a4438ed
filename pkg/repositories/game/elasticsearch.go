package game

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/fadedpez/tucoblackjack/pkg/entities"
)

const roundIndexMapping = `{
	"mappings": {
		"properties": {
			"round_id": { "type": "keyword" },
			"difficulty": { "type": "keyword" },
			"result": { "type": "keyword" },
			"bet": { "type": "long" },
			"winnings": { "type": "long" },
			"balance_after": { "type": "long" },
			"player_cards": { "type": "keyword" },
			"dealer_cards": { "type": "keyword" },
			"player_score": { "type": "integer" },
			"dealer_score": { "type": "integer" },
			"blackjack": { "type": "boolean" },
			"busted": { "type": "boolean" },
			"completed_at": { "type": "date" }
		}
	}
}`

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
}

// DefaultElasticsearchConfig returns a default configuration for Elasticsearch
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:         "http://localhost:9200",
		IndexPrefix: "tucoblackjack",
	}
}

// ElasticsearchRepository indexes every saved round into Elasticsearch for
// analytics. The base repository stays the source of truth for reads.
type ElasticsearchRepository struct {
	baseRepo   Repository
	client     *elasticsearch.Client
	config     *ElasticsearchConfig
	roundIndex string
}

var _ Repository = (*ElasticsearchRepository)(nil)

// NewElasticsearchRepository creates the client and makes sure the round index exists
func NewElasticsearchRepository(ctx context.Context, baseRepo Repository, config *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	if config == nil {
		config = DefaultElasticsearchConfig()
	}
	settings := *config
	config = &settings

	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	if config.IndexPrefix == "" {
		config.IndexPrefix = DefaultElasticsearchConfig().IndexPrefix
	}

	repo := &ElasticsearchRepository{
		baseRepo:   baseRepo,
		client:     client,
		config:     config,
		roundIndex: config.IndexPrefix + "_rounds",
	}

	if err := repo.initIndices(ctx); err != nil {
		return nil, fmt.Errorf("error initializing indices: %w", err)
	}

	return repo, nil
}

// initIndices creates the round index if it doesn't exist
func (r *ElasticsearchRepository) initIndices(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.roundIndex}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if round index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != 404 {
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: r.roundIndex,
		Body:  bytes.NewReader([]byte(roundIndexMapping)),
	}

	res, err = req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating round index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating round index: %s", res.String())
	}
	return nil
}

// SaveRound saves to the base repository, then indexes the round
func (r *ElasticsearchRepository) SaveRound(ctx context.Context, record *entities.RoundRecord) error {
	if err := r.baseRepo.SaveRound(ctx, record); err != nil {
		return fmt.Errorf("error saving round to base repository: %w", err)
	}

	return r.IndexRound(ctx, record)
}

// IndexRound writes the round document, keyed by round id
func (r *ElasticsearchRepository) IndexRound(ctx context.Context, record *entities.RoundRecord) error {
	jsonData, err := json.Marshal(newESRoundDocument(record))
	if err != nil {
		return fmt.Errorf("error marshaling round: %w", err)
	}

	res, err := r.client.Index(
		r.roundIndex,
		bytes.NewReader(jsonData),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithDocumentID(record.ID),
		r.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("error indexing round: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing round: %s", res.String())
	}

	return nil
}

// GetRound reads from the base repository
func (r *ElasticsearchRepository) GetRound(ctx context.Context, id string) (*entities.RoundRecord, error) {
	return r.baseRepo.GetRound(ctx, id)
}

// GetRecentRounds reads from the base repository
func (r *ElasticsearchRepository) GetRecentRounds(ctx context.Context, limit int) ([]*entities.RoundRecord, error) {
	return r.baseRepo.GetRecentRounds(ctx, limit)
}

// CountResults reads from the base repository
func (r *ElasticsearchRepository) CountResults(ctx context.Context) (map[entities.Result]int, error) {
	return r.baseRepo.CountResults(ctx)
}

// PruneRounds prunes the base repository. Indexed documents are kept for analytics.
func (r *ElasticsearchRepository) PruneRounds(ctx context.Context, keep int) (int, error) {
	return r.baseRepo.PruneRounds(ctx, keep)
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}

// GetIndexPrefix returns the configured index prefix
func (r *ElasticsearchRepository) GetIndexPrefix() string {
	return r.config.IndexPrefix
}

// RoundIndex returns the name of the index rounds are written to
func (r *ElasticsearchRepository) RoundIndex() string {
	return r.roundIndex
}
