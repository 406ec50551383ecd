//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/phrazzld/precise-api/internal/platform/postgres/migrations"
)

// DatabaseURLEnv names an existing database to use instead of a container.
const DatabaseURLEnv = "PRECISE_TEST_DATABASE_URL"

// Timeout bounds container startup and migrations.
const Timeout = 90 * time.Second

const image = "postgres:16-alpine"

// Open returns a database with every migration applied. The connection and
// any container are released when t finishes. Skipped under -short.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	dbURL := os.Getenv(DatabaseURLEnv)
	if dbURL == "" {
		dbURL = startContainer(ctx, t)
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	require.NoError(t, db.PingContext(ctx), "test database is not reachable")
	require.NoError(t, migrations.Run(ctx, db, "up"), "failed to apply migrations")
	return db
}

func startContainer(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tcpostgres.Run(ctx, image,
		tcpostgres.WithDatabase("precise"),
		tcpostgres.WithUsername("precise"),
		tcpostgres.WithPassword("precise"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return connStr
}
