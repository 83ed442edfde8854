package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"roboadvisor/pkg/db"
)

var uniqueCounter int64

func nextSuffix() int64 {
	return atomic.AddInt64(&uniqueCounter, 1)
}

// OpenTestDB creates a fresh single-file database under a temp dir, applies
// the schema and closes it when the test finishes.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.sqlite3")
	database, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.ApplySchema(context.Background(), database))

	t.Cleanup(func() { database.Close() })
	return database
}

// CreateTestPortfolio inserts a minimal valid portfolio row and returns its ID.
func CreateTestPortfolio(t *testing.T, database *sql.DB) int64 {
	t.Helper()

	ctx := context.Background()
	name := fmt.Sprintf("test-portfolio-%d", nextSuffix())
	now := time.Now().UTC()

	var id int64
	err := database.QueryRowContext(ctx,
		"INSERT INTO portfolios (name, description, created_at, updated_at) VALUES (?, ?, ?, ?) RETURNING id",
		name, "seeded by tests", now, now).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestAsset inserts an asset for the given portfolio and returns its ID.
func CreateTestAsset(t *testing.T, database *sql.DB, portfolioID int64) int64 {
	t.Helper()

	ctx := context.Background()
	symbol := fmt.Sprintf("TST%d", nextSuffix())
	now := time.Now().UTC()

	var id int64
	err := database.QueryRowContext(ctx,
		"INSERT INTO assets (portfolio_id, symbol, name, quantity, purchase_price, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id",
		portfolioID, symbol, "Test Holding", "1", "100", now, now).Scan(&id)
	require.NoError(t, err)
	return id
}
