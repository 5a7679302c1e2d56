package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

var (
	// ErrSessionNotFound is returned when an id matches no session row.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNameTaken is returned when activating a session whose name is
	// already used by another active session.
	ErrNameTaken = errors.New("an active session already uses this name")
)

// Session is a session row bound to its store. Name, namespace and the
// active flag are a snapshot taken at lookup time; permissions, visibility
// and the mailbox are read live.
type Session struct {
	store     *Store
	id        uuid.UUID
	name      string
	namespace string
	active    bool
	lastSeen  time.Time
}

func (s *Session) ID() uuid.UUID       { return s.id }
func (s *Session) Name() string        { return s.name }
func (s *Session) Active() bool        { return s.active }
func (s *Session) Namespace() string   { return s.namespace }
func (s *Session) LastSeen() time.Time { return s.lastSeen }

// HasPermission matches exact grants, "*" and "prefix.*" wildcards.
func (s *Session) HasPermission(permission string) bool {
	perms, err := s.store.Permissions(s.id)
	if err != nil {
		s.store.logger.Error("permissions of %s: %v", s.name, err)
		return false
	}
	for _, p := range perms {
		if permissionMatches(p, permission) {
			return true
		}
	}
	return false
}

func permissionMatches(granted, wanted string) bool {
	switch {
	case granted == wanted, granted == "*":
		return true
	case strings.HasSuffix(granted, ".*"):
		return strings.HasPrefix(wanted, strings.TrimSuffix(granted, "*"))
	default:
		return false
	}
}

// SendMessage appends message to the session's mailbox.
func (s *Session) SendMessage(message string) {
	if err := s.store.Deliver(s.id, message); err != nil {
		s.store.logger.Error("deliver to %s: %v", s.name, err)
	}
}

// CanSee is false when this session has hidden other.
func (s *Session) CanSee(other domain.Session) bool {
	if other == nil {
		return false
	}
	var hidden int
	err := s.store.db.QueryRow(
		`SELECT COUNT(*) FROM session_hidden WHERE observer_id = ? AND hidden_id = ?`,
		s.id.String(), other.ID().String(),
	).Scan(&hidden)
	if err != nil {
		s.store.logger.Error("visibility %s -> %s: %v", s.name, other.Name(), err)
		return true
	}
	return hidden == 0
}

var _ domain.Session = (*Session)(nil)

// CreateSession adds a session with a fresh random id.
func (s *Store) CreateSession(name, namespace string, active bool) (*Session, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return nil, fmt.Errorf("invalid session name %q", name)
	}

	id := uuid.New()
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, name, namespace, active, last_seen) VALUES (?, ?, ?, ?, ?)`,
		id.String(), name, namespace, boolToInt(active), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("create session %s: %w", name, translate(err))
	}

	s.logger.Info("created session %s (%s) in %s", name, id, namespace)
	return s.sessionByQuery(`WHERE id = ?`, id.String())
}

// SetActive marks a session as connected or disconnected.
func (s *Store) SetActive(id uuid.UUID, active bool) error {
	res, err := s.db.Exec(
		`UPDATE sessions SET active = ?, last_seen = ? WHERE id = ?`,
		boolToInt(active), time.Now().UTC().Format(time.RFC3339), id.String(),
	)
	if err != nil {
		return translate(err)
	}
	return requireRow(res)
}

// MoveSession moves a session to another namespace.
func (s *Store) MoveSession(id uuid.UUID, namespace string) error {
	if _, ok := s.NamespaceByName(namespace); !ok {
		return fmt.Errorf("unknown namespace %q", namespace)
	}
	res, err := s.db.Exec(`UPDATE sessions SET namespace = ? WHERE id = ?`, namespace, id.String())
	if err != nil {
		return translate(err)
	}
	return requireRow(res)
}

// Grant gives a session a permission tag. Granting twice is a no-op.
func (s *Store) Grant(id uuid.UUID, permission string) error {
	_, err := s.db.Exec(
		`INSERT INTO session_permissions (session_id, permission) VALUES (?, ?)
		 ON CONFLICT(session_id, permission) DO NOTHING`,
		id.String(), permission,
	)
	return translate(err)
}

// Revoke removes a permission tag.
func (s *Store) Revoke(id uuid.UUID, permission string) error {
	_, err := s.db.Exec(
		`DELETE FROM session_permissions WHERE session_id = ? AND permission = ?`,
		id.String(), permission,
	)
	return err
}

// Permissions lists the tags granted to a session, sorted.
func (s *Store) Permissions(id uuid.UUID) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT permission FROM session_permissions WHERE session_id = ? ORDER BY permission`,
		id.String(),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var perms []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

// Hide stops observer from seeing hidden in completions.
func (s *Store) Hide(observer, hidden uuid.UUID) error {
	if observer == hidden {
		return errors.New("a session cannot hide itself")
	}
	_, err := s.db.Exec(
		`INSERT INTO session_hidden (observer_id, hidden_id) VALUES (?, ?)
		 ON CONFLICT(observer_id, hidden_id) DO NOTHING`,
		observer.String(), hidden.String(),
	)
	return translate(err)
}

// Unhide reverses Hide. It reports whether a rule was removed.
func (s *Store) Unhide(observer, hidden uuid.UUID) (bool, error) {
	res, err := s.db.Exec(
		`DELETE FROM session_hidden WHERE observer_id = ? AND hidden_id = ?`,
		observer.String(), hidden.String(),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// SessionByName returns the active session with the given name, compared
// case-insensitively.
func (s *Store) SessionByName(name string) (domain.Session, bool) {
	sess, err := s.sessionByQuery(`WHERE name = ? AND active = 1`, name)
	if err != nil {
		return nil, false
	}
	return sess, true
}

// SessionByID returns the active session with the given id.
func (s *Store) SessionByID(id uuid.UUID) (domain.Session, bool) {
	sess, err := s.sessionByQuery(`WHERE id = ? AND active = 1`, id.String())
	if err != nil {
		return nil, false
	}
	return sess, true
}

// KnownSessionByID returns any session with the given id.
func (s *Store) KnownSessionByID(id uuid.UUID) (domain.KnownSession, bool) {
	sess, err := s.sessionByQuery(`WHERE id = ?`, id.String())
	if err != nil {
		return nil, false
	}
	return sess, true
}

// Lookup returns the session row for id regardless of state.
func (s *Store) Lookup(id uuid.UUID) (*Session, error) {
	return s.sessionByQuery(`WHERE id = ?`, id.String())
}

// ActiveSessions returns every active session ordered by name.
func (s *Store) ActiveSessions() []domain.Session {
	list, err := s.ListSessions(ListFilter{ActiveOnly: true})
	if err != nil {
		s.logger.Error("active sessions: %v", err)
		return nil
	}
	out := make([]domain.Session, len(list))
	for i, sess := range list {
		out[i] = sess
	}
	return out
}

// ListFilter narrows ListSessions.
type ListFilter struct {
	ActiveOnly bool
	Namespace  string
}

// ListSessions returns sessions ordered case-insensitively by name.
func (s *Store) ListSessions(filter ListFilter) ([]*Session, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.ActiveOnly {
		clauses = append(clauses, "active = 1")
	}
	if filter.Namespace != "" {
		clauses = append(clauses, "namespace = ?")
		args = append(args, filter.Namespace)
	}

	query := sessionColumns
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY name, id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*Session
	for rows.Next() {
		sess, err := s.scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

const sessionColumns = `SELECT id, name, namespace, active, last_seen FROM sessions`

func (s *Store) sessionByQuery(where string, args ...any) (*Session, error) {
	row := s.db.QueryRow(sessionColumns+" "+where, args...)
	sess, err := s.scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		s.logger.Error("session lookup: %v", err)
	}
	return sess, err
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanSession(row scanner) (*Session, error) {
	var (
		sess   = &Session{store: s}
		id     string
		active int
		seen   string
	)
	if err := row.Scan(&id, &sess.name, &sess.namespace, &active, &seen); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("session id %q: %w", id, err)
	}
	sess.id = parsed
	sess.active = active != 0
	sess.lastSeen, _ = time.Parse(time.RFC3339, seen)
	return sess, nil
}

// translate maps SQLite constraint failures onto the package errors.
func translate(err error) error {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return err
	}
	switch se.ExtendedCode {
	case sqlite3.ErrConstraintUnique:
		return ErrNameTaken
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: unknown session or namespace", err)
	}
	return err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
