package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/tucoblackjack/internal/types"
	"github.com/fadedpez/tucoblackjack/pkg/storage"
)

type StorageTestSuite struct {
	suite.Suite
	tempDir string
	storage *Storage
}

func TestStorage(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (s *StorageTestSuite) SetupTest() {
	// Create temp directory for test files
	tempDir, err := os.MkdirTemp("", "config-storage-test")
	s.Require().NoError(err)
	s.tempDir = tempDir

	options := &storage.Options{
		Path:         filepath.Join(tempDir, "game_config.json"),
		SeedDefaults: true,
	}
	store, err := New(options)
	s.Require().NoError(err)
	s.storage = store
}

func (s *StorageTestSuite) TearDownTest() {
	os.RemoveAll(s.tempDir)
}

func (s *StorageTestSuite) readDisk() map[string]interface{} {
	data, err := os.ReadFile(s.storage.Path())
	s.Require().NoError(err)
	doc := make(map[string]interface{})
	s.Require().NoError(json.Unmarshal(data, &doc))
	return doc
}

func (s *StorageTestSuite) TestSeedsDefaultDocument() {
	s.FileExists(s.storage.Path(), "Seeded config should be written to disk")
	s.Equal(10, s.storage.Int(0, "game", "min_bet"))
	s.Equal(1000, s.storage.Int(0, "game", "max_bet"))
	s.Equal(17, s.storage.Int(0, "game", "dealer_stand_value"))
	s.InDelta(1.5, s.storage.Float(0, "game", "blackjack_payout"), 0.0001)
	s.Equal(6, s.storage.Int(0, "difficulty", "hard", "decks"))
	s.Equal("medium", s.storage.String("", "game", "difficulty"))
}

func (s *StorageTestSuite) TestReloadReadsJSONNumbers() {
	// Setup
	s.Require().NoError(s.storage.Set(2500, "stats", "highest_balance"))
	s.Require().NoError(s.storage.Save())

	// Execute
	reloaded, err := New(&storage.Options{Path: s.storage.Path()})

	// Assert
	s.Require().NoError(err)
	s.Equal(2500, reloaded.Int(0, "stats", "highest_balance"))
	s.Equal(1, reloaded.Int(0, "difficulty", "easy", "decks"))
	s.InDelta(1.5, reloaded.Float(0, "game", "blackjack_payout"), 0.0001)
}

func (s *StorageTestSuite) TestGetMissingReturnsDefault() {
	testCases := []struct {
		name string
		keys []string
	}{
		{name: "missing leaf", keys: []string{"game", "nope"}},
		{name: "missing branch", keys: []string{"nope", "min_bet"}},
		{name: "path through a leaf", keys: []string{"game", "min_bet", "deeper"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, ok := s.storage.Get(tc.keys...)
			s.False(ok)
			s.Equal(42, s.storage.Int(42, tc.keys...))
			s.Equal("fallback", s.storage.String("fallback", tc.keys...))
		})
	}
}

func (s *StorageTestSuite) TestWrongTypeReturnsDefault() {
	s.Equal(7, s.storage.Int(7, "game", "title"), "Non-numeric values should yield the default")
	s.Equal("x", s.storage.String("x", "game", "min_bet"), "Non-string values should yield the default")
}

func (s *StorageTestSuite) TestSetCreatesIntermediateObjects() {
	s.Require().NoError(s.storage.Set("yes", "new", "branch", "leaf"))

	value, ok := s.storage.Get("new", "branch", "leaf")
	s.True(ok)
	s.Equal("yes", value)
}

func (s *StorageTestSuite) TestSetThroughLeafFails() {
	err := s.storage.Set(1, "game", "min_bet", "deeper")
	s.ErrorIs(err, storage.ErrNotAMap)

	err = s.storage.Set(1)
	s.ErrorIs(err, storage.ErrKeyNotFound)
}

func (s *StorageTestSuite) TestUpdateStatsFlushesImmediately() {
	// Execute
	s.Require().NoError(s.storage.UpdateStats("wins", 1))
	s.Require().NoError(s.storage.UpdateStats("wins", 2))
	s.Require().NoError(s.storage.UpdateStats("pushes", 1))

	// Assert
	s.Equal(3, s.storage.Int(0, "stats", "wins"))
	s.Equal(1, s.storage.Int(0, "stats", "pushes"), "Unknown stats should start at zero")

	stats := s.readDisk()["stats"].(map[string]interface{})
	s.Equal(float64(3), stats["wins"], "Stat update should be on disk without an explicit Save")
}

func (s *StorageTestSuite) TestMissingFileWithoutSeedIsFatal() {
	_, err := New(&storage.Options{Path: filepath.Join(s.tempDir, "absent.json")})

	s.Error(err)
	s.True(types.IsGameError(err, types.ErrConfigMissing))
}

func (s *StorageTestSuite) TestMalformedFileIsFatal() {
	path := filepath.Join(s.tempDir, "broken.json")
	s.Require().NoError(os.WriteFile(path, []byte(`{"game": `), 0644))

	_, err := New(&storage.Options{Path: path, SeedDefaults: true})

	s.Error(err)
	s.True(types.IsGameError(err, types.ErrConfigInvalid))
}
