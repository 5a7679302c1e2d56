// Package store keeps the session directory in SQLite: namespaces, sessions,
// their permissions, visibility rules and mailboxes.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/store/migrations"
)

const memoryPath = ":memory:"

// Store is the SQLite-backed session directory. It implements
// domain.SessionDirectory and domain.NamespaceDirectory.
type Store struct {
	db     *sql.DB
	path   string
	logger domain.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for query failures.
func WithLogger(l domain.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New opens the database at path, creating its directory, and runs any
// pending migrations.
func New(path string, opts ...Option) (*Store, error) {
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := NewWithDB(db, opts...)
	s.path = path
	s.logger.Debug("opened %s", path)
	return s, nil
}

// NewWithDB wraps an already migrated connection.
func NewWithDB(db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db, logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// configureSQLite enables foreign keys and WAL. An in-memory database lives
// in a single connection, so the pool is pinned to one.
func configureSQLite(db *sql.DB, path string) error {
	if path == memoryPath {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	if path != memoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DB returns the underlying connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database path, empty for NewWithDB stores.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions restricts the database and its WAL/SHM files to the owner.
func setDBPermissions(path string) {
	if path == memoryPath {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

var (
	_ domain.SessionDirectory   = (*Store)(nil)
	_ domain.NamespaceDirectory = (*Store)(nil)
)
