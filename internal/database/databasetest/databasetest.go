// Package databasetest provides a migrated, file-backed SQLite pool for tests.
package databasetest

import (
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/best-before-api/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Config returns a sqlite configuration pointing at a fresh file in t's temp dir
func Config(t testing.TB) database.DatabaseConfig {
	t.Helper()
	return database.DatabaseConfig{
		Driver:     "sqlite",
		Path:       filepath.Join(t.TempDir(), "foods.sqlite"),
		MaxRetries: 1,
	}
}

// NewDB opens a migrated database and closes it when the test ends
func NewDB(t testing.TB) (*gorm.DB, *sqlx.DB) {
	t.Helper()

	cfg := Config(t)
	db, err := database.Setup(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	pool, err := database.NewExecutorPool(db, cfg)
	require.NoError(t, err)
	return db, pool
}
