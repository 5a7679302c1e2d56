package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/store/migrations"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 3)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
	require.Equal(t, "namespaces_sessions", all[0].Description)
}

func TestRun_Idempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, migrations.Run(db))
	v1, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))
	v2, err := migrations.CurrentVersion(db)
	require.NoError(t, err)

	require.Equal(t, v1, v2)
}

func TestPending(t *testing.T) {
	db := openMemory(t)
	all, err := migrations.Load()
	require.NoError(t, err)

	pending, err := migrations.Pending(db)
	require.NoError(t, err)
	require.Len(t, pending, len(all))

	require.NoError(t, migrations.Run(db))

	pending, err = migrations.Pending(db)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestTablesCreated(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	tables := []string{"schema_migrations", "namespaces", "sessions", "session_permissions", "session_hidden", "messages"}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}
}

func TestActiveNameIsUnique(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, migrations.Run(db))

	_, err := db.Exec(`INSERT INTO namespaces (name) VALUES ('lobby')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO sessions (id, name, namespace, active) VALUES ('a', 'Alex', 'lobby', 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO sessions (id, name, namespace, active) VALUES ('b', 'alex', 'lobby', 0)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO sessions (id, name, namespace, active) VALUES ('c', 'ALEX', 'lobby', 1)`)
	require.Error(t, err)
}

func TestMigration_String(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.Equal(t, "01_namespaces_sessions", all[0].String())
}
