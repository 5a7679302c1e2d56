// Package testutil provides helpers shared by package tests.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/store"
	"github.com/footprint-tools/cmdtree/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db), "failed to run migrations")
	return db
}

// NewTestStore wraps NewTestDB in a store.Store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// NewDemoStore returns a test store seeded with the demo directory.
func NewDemoStore(t *testing.T) *store.Store {
	t.Helper()
	s := NewTestStore(t)
	seeded, err := s.SeedDemo()
	require.NoError(t, err)
	require.True(t, seeded)
	return s
}
