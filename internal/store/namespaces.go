package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// NamespaceRecord is a row of the namespaces table.
type NamespaceRecord struct {
	name        string
	description string
}

func (n NamespaceRecord) Name() string        { return n.name }
func (n NamespaceRecord) Description() string { return n.description }

var _ domain.Namespace = NamespaceRecord{}

// ErrNamespaceExists is returned by CreateNamespace for a taken name.
var ErrNamespaceExists = errors.New("namespace already exists")

// CreateNamespace adds a namespace. Names are compared exactly.
func (s *Store) CreateNamespace(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("invalid namespace name %q", name)
	}

	res, err := s.db.Exec(
		`INSERT INTO namespaces (name, description) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`,
		name, description,
	)
	if err != nil {
		return fmt.Errorf("create namespace %s: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s: %w", name, ErrNamespaceExists)
	}
	return nil
}

// Namespaces returns every namespace ordered by name.
func (s *Store) Namespaces() []domain.Namespace {
	rows, err := s.db.Query(`SELECT name, description FROM namespaces ORDER BY name COLLATE NOCASE, name`)
	if err != nil {
		s.logger.Error("list namespaces: %v", err)
		return nil
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Namespace
	for rows.Next() {
		var n NamespaceRecord
		if err := rows.Scan(&n.name, &n.description); err != nil {
			s.logger.Error("scan namespace: %v", err)
			return nil
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		s.logger.Error("list namespaces: %v", err)
	}
	return out
}

// NamespaceByName looks up a namespace by its exact name.
func (s *Store) NamespaceByName(name string) (domain.Namespace, bool) {
	var n NamespaceRecord
	err := s.db.QueryRow(
		`SELECT name, description FROM namespaces WHERE name = ?`, name,
	).Scan(&n.name, &n.description)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("namespace %s: %v", name, err)
		}
		return nil, false
	}
	return n, true
}

// CountSessions returns how many active sessions are in the namespace.
func (s *Store) CountSessions(namespace string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM sessions WHERE namespace = ? AND active = 1`, namespace,
	).Scan(&n)
	return n, err
}
