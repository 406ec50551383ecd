//go:build integration

// Package testdb provides PostgreSQL fixtures for integration tests.
//
// Open returns a migrated database: the one named by PRECISE_TEST_DATABASE_URL
// when set, otherwise a throwaway container. WithTx runs a test body inside a
// transaction that is always rolled back, so tests sharing a database do not
// see each other's rows:
//
//	db := testdb.Open(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    users := postgres.NewPostgresUserStore(tx, nil)
//	    // ...
//	})
//
// Run with: go test -tags=integration ./...
package testdb
