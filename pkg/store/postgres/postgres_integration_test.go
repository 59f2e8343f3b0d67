//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"grubdash/pkg/store"
	"grubdash/pkg/store/postgres"
)

type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (n note) RecordID() string { return n.ID }

// RepositoryIntegrationTestSuite runs the repository against a real
// PostgreSQL container.
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *sql.DB
	repo      *postgres.Repository[note]
}

func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sql.Open("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		s.Require().NoError(testcontainers.TerminateContainer(s.container))
	}
}

func (s *RepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS notes")
	s.Require().NoError(err)
	s.repo = postgres.New[note](s.db, "notes")
	s.Require().NoError(s.repo.Migrate(ctx))
}

func (s *RepositoryIntegrationTestSuite) TestCreateAndGet() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Create(ctx, note{ID: "1", Text: "hello"}))

	got, err := s.repo.Get(ctx, "1")
	s.Require().NoError(err)
	s.Equal(note{ID: "1", Text: "hello"}, got)

	s.ErrorIs(s.repo.Create(ctx, note{ID: "1"}), store.ErrConflict)
}

func (s *RepositoryIntegrationTestSuite) TestListKeepsOrderAcrossUpdates() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Seed(ctx, note{ID: "b"}, note{ID: "a"}, note{ID: "c"}))
	s.Require().NoError(s.repo.Update(ctx, note{ID: "b", Text: "changed"}))

	list, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Equal([]note{{ID: "b", Text: "changed"}, {ID: "a"}, {ID: "c"}}, list)
}

func (s *RepositoryIntegrationTestSuite) TestSeedIsIdempotent() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Seed(ctx, note{ID: "a", Text: "x"}))
	s.Require().NoError(s.repo.Seed(ctx, note{ID: "a", Text: "y"}))

	got, err := s.repo.Get(ctx, "a")
	s.Require().NoError(err)
	s.Equal("x", got.Text)
}

func (s *RepositoryIntegrationTestSuite) TestSeedLeavesPopulatedTableAlone() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Seed(ctx, note{ID: "a"}, note{ID: "b"}))
	s.Require().NoError(s.repo.Delete(ctx, "a"))

	s.Require().NoError(s.repo.Seed(ctx, note{ID: "a"}, note{ID: "b"}))

	list, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Equal([]note{{ID: "b"}}, list)
}

func (s *RepositoryIntegrationTestSuite) TestMissingRecords() {
	ctx := context.Background()
	_, err := s.repo.Get(ctx, "nope")
	s.ErrorIs(err, store.ErrNotFound)
	s.ErrorIs(s.repo.Update(ctx, note{ID: "nope"}), store.ErrNotFound)
	s.ErrorIs(s.repo.Delete(ctx, "nope"), store.ErrNotFound)
}

func (s *RepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Create(ctx, note{ID: "1"}))
	s.Require().NoError(s.repo.Delete(ctx, "1"))

	list, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func TestRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}
