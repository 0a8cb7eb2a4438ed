package migrations

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/tucoblackjack/internal/logging"
)

type MigrationsTestSuite struct {
	suite.Suite
	db  *sql.DB
	ctx context.Context
}

func TestMigrationsSuite(t *testing.T) {
	suite.Run(t, new(MigrationsTestSuite))
}

func (s *MigrationsTestSuite) SetupTest() {
	db, err := sql.Open("sqlite3", filepath.Join(s.T().TempDir(), "migrations.db"))
	s.Require().NoError(err)
	s.db = db
	s.ctx = context.Background()
}

func (s *MigrationsTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *MigrationsTestSuite) TestEmbeddedMigrationsApplyOnce() {
	migrator := NewMigrator(s.db, nil, logging.Discard())

	applied, err := migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, applied)

	applied, err = migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)
	s.Zero(applied, "Second run should find nothing pending")

	var count int
	s.Require().NoError(s.db.QueryRow("SELECT COUNT(*) FROM round_records").Scan(&count))
	s.Zero(count)
}

func (s *MigrationsTestSuite) TestLoadMigrationsSortsAndSkipsOtherFiles() {
	source := fstest.MapFS{
		"002_second_step.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"001_first_step.sql":  {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"README.md":           {Data: []byte("notes")},
	}

	migrations, err := NewMigrator(s.db, source, logging.Discard()).LoadMigrations()

	s.Require().NoError(err)
	s.Require().Len(migrations, 2)
	s.Equal("001", migrations[0].Version)
	s.Equal("first step", migrations[0].Description)
	s.Equal("002", migrations[1].Version)
}

func (s *MigrationsTestSuite) TestStatus() {
	source := fstest.MapFS{
		"001_first.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
	}
	migrator := NewMigrator(s.db, source, logging.Discard())
	_, err := migrator.MigrateUp(s.ctx)
	s.Require().NoError(err)

	source["002_second.sql"] = &fstest.MapFile{Data: []byte("CREATE TABLE b (id INTEGER);")}
	status, err := migrator.Status(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(status, 2)
	s.True(status[0].Applied)
	s.False(status[1].Applied)
	s.Equal("second", status[1].Description)
}

func (s *MigrationsTestSuite) TestFailedMigrationIsNotRecorded() {
	source := fstest.MapFS{
		"001_good.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"002_bad.sql":  {Data: []byte("CREATE TABLE (;")},
	}
	migrator := NewMigrator(s.db, source, logging.Discard())

	applied, err := migrator.MigrateUp(s.ctx)

	s.Error(err)
	s.Equal(1, applied)
	versions, err := migrator.GetAppliedMigrations(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]bool{"001": true}, versions)
}

func (s *MigrationsTestSuite) TestInvalidFilename() {
	source := fstest.MapFS{
		"initial.sql": {Data: []byte("SELECT 1;")},
	}

	_, err := NewMigrator(s.db, source, logging.Discard()).LoadMigrations()

	s.ErrorContains(err, "invalid migration filename")
}

func (s *MigrationsTestSuite) TestCreateMigrationNumbersFiles() {
	dir := filepath.Join(s.T().TempDir(), "sql")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first, err := CreateMigration(dir, "add sessions", now)
	s.Require().NoError(err)
	second, err := CreateMigration(dir, "add session index", now)
	s.Require().NoError(err)

	s.Equal(filepath.Join(dir, "001_add_sessions.sql"), first)
	s.Equal(filepath.Join(dir, "002_add_session_index.sql"), second)

	content, err := os.ReadFile(first)
	s.Require().NoError(err)
	s.Contains(string(content), "-- Migration: add sessions")
	s.Contains(string(content), "2026-03-01T12:00:00Z")
}
