// Package testhelpers provides a shared PostgreSQL container for
// repository integration tests.
package testhelpers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// postgresImage is the stock image used for integration tests. The real
// store is owned by an external service, so tests bootstrap the read-model
// schema themselves (bootstrapSchema below).
const postgresImage = "postgres:16-alpine"

// bootstrapSchema mirrors the tables this service reads. It is test-only:
// production schema is owned by the crawler/search services.
const bootstrapSchema = `
CREATE TABLE searches (
    id         UUID PRIMARY KEY,
    user_id    TEXT NOT NULL,
    type       TEXT NOT NULL CHECK (type IN ('domain', 'keyword', 'url')),
    value      TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE saved_searches (
    id         UUID PRIMARY KEY,
    user_id    TEXT NOT NULL,
    name       TEXT NOT NULL,
    search_id  UUID NOT NULL REFERENCES searches(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE serp_history (
    id         BIGSERIAL PRIMARY KEY,
    keyword    TEXT NOT NULL,
    domain     TEXT NOT NULL,
    position   INTEGER,
    url        TEXT NOT NULL DEFAULT '',
    checked_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE wiki_page_analysis (
    slug                TEXT PRIMARY KEY,
    title               TEXT NOT NULL DEFAULT '',
    external_links      JSONB NOT NULL DEFAULT '[]',
    external_link_count INTEGER NOT NULL DEFAULT 0,
    keyword_count       INTEGER NOT NULL DEFAULT 0,
    monthly_captures    INTEGER NOT NULL DEFAULT 0,
    first_capture       TIMESTAMPTZ,
    last_capture        TIMESTAMPTZ,
    captures_by_year    JSONB NOT NULL DEFAULT '{}'
);
`

// TestDB holds a shared test database container and connection pool.
type TestDB struct {
	Container testcontainers.Container
	Pool      *pgxpool.Pool
	ConnStr   string
}

var (
	sharedTestDB     *TestDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

// GetTestDB returns a shared PostgreSQL container for integration tests.
// The container is created once and reused across all tests in the run.
func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})

	if sharedTestDBErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedTestDBErr)
	}

	return sharedTestDB
}

func setupTestDB() (*TestDB, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "seobw_test",
			"POSTGRES_USER":     "seobw",
			"POSTGRES_PASSWORD": "test_password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	connStr := fmt.Sprintf("postgres://seobw:test_password@%s:%s/seobw_test?sslmode=disable",
		host, port.Port())

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if _, err := pool.Exec(ctx, bootstrapSchema); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return &TestDB{
		Container: container,
		Pool:      pool,
		ConnStr:   connStr,
	}, nil
}
