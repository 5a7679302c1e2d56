// Package migrations applies the embedded schema of the session directory.
// Files are named NN_description.sql; versions start at 1 and have no gaps.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one embedded schema step.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

func (m Migration) String() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Description)
}

const (
	versionTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version     INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at  TEXT NOT NULL DEFAULT (datetime('now'))
)`
	recordVersion = `INSERT INTO schema_migrations (version, description) VALUES (?, ?)`
	latestVersion = `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`
)

// Load returns every embedded migration sorted by version.
func Load() ([]Migration, error) {
	names, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, err
	}

	all := make([]Migration, 0, len(names))
	for _, name := range names {
		m, err := load(name)
		if err != nil {
			return nil, err
		}
		all = append(all, m)
	}

	slices.SortFunc(all, func(a, b Migration) int { return a.Version - b.Version })
	for i, m := range all {
		if m.Version != i+1 {
			return nil, fmt.Errorf("migration %s: expected version %d", m, i+1)
		}
	}
	return all, nil
}

func load(name string) (Migration, error) {
	base := strings.TrimSuffix(strings.TrimPrefix(name, "sql/"), ".sql")
	num, desc, ok := strings.Cut(base, "_")
	if !ok || desc == "" {
		return Migration{}, fmt.Errorf("migration %s: expected NN_description.sql", name)
	}
	version, err := strconv.Atoi(num)
	if err != nil {
		return Migration{}, fmt.Errorf("migration %s: bad version: %w", name, err)
	}

	body, err := sqlFiles.ReadFile(name)
	if err != nil {
		return Migration{}, err
	}
	return Migration{Version: version, Description: desc, SQL: string(body)}, nil
}

// Run applies every pending migration, each in its own transaction.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}
	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m, err)
		}
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(m.SQL); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(recordVersion, m.Version, m.Description); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// CurrentVersion returns the highest applied version, or 0 on a fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(versionTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}
	var version int
	if err := db.QueryRow(latestVersion).Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Pending returns the migrations newer than CurrentVersion.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(m Migration) bool { return m.Version <= current }), nil
}
