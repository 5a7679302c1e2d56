package dispatchers

import (
	"strings"

	"github.com/google/uuid"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// recordingSender is a console-like sender that remembers every message.
type recordingSender struct {
	name     string
	all      bool
	perms    map[string]bool
	messages []string
}

func newConsole() *recordingSender {
	return &recordingSender{name: "console", all: true}
}

func (s *recordingSender) Name() string { return s.name }

func (s *recordingSender) HasPermission(p string) bool {
	return s.all || s.perms[p]
}

func (s *recordingSender) SendMessage(m string) {
	s.messages = append(s.messages, m)
}

// fakeSession is a player-kind sender.
type fakeSession struct {
	recordingSender
	id        uuid.UUID
	active    bool
	namespace string
	hidden    map[string]bool
}

func newSession(name string, active bool) *fakeSession {
	return &fakeSession{
		recordingSender: recordingSender{name: name, all: true},
		id:              uuid.New(),
		active:          active,
		namespace:       "lobby",
	}
}

func (s *fakeSession) ID() uuid.UUID     { return s.id }
func (s *fakeSession) Active() bool      { return s.active }
func (s *fakeSession) Namespace() string { return s.namespace }

func (s *fakeSession) CanSee(other domain.Session) bool {
	return !s.hidden[other.Name()]
}

type fakeNamespace struct {
	name string
}

func (n fakeNamespace) Name() string        { return n.name }
func (n fakeNamespace) Description() string { return "" }

// fakeDirectory serves both session and namespace lookups from memory.
type fakeDirectory struct {
	sessions   []*fakeSession
	namespaces []string
}

func (d *fakeDirectory) SessionByName(name string) (domain.Session, bool) {
	for _, s := range d.sessions {
		if s.active && strings.EqualFold(s.name, name) {
			return s, true
		}
	}
	return nil, false
}

func (d *fakeDirectory) SessionByID(id uuid.UUID) (domain.Session, bool) {
	for _, s := range d.sessions {
		if s.active && s.id == id {
			return s, true
		}
	}
	return nil, false
}

func (d *fakeDirectory) KnownSessionByID(id uuid.UUID) (domain.KnownSession, bool) {
	for _, s := range d.sessions {
		if s.id == id {
			return s, true
		}
	}
	return nil, false
}

func (d *fakeDirectory) ActiveSessions() []domain.Session {
	var out []domain.Session
	for _, s := range d.sessions {
		if s.active {
			out = append(out, s)
		}
	}
	return out
}

func (d *fakeDirectory) Namespaces() []domain.Namespace {
	out := make([]domain.Namespace, len(d.namespaces))
	for i, name := range d.namespaces {
		out[i] = fakeNamespace{name: name}
	}
	return out
}

func (d *fakeDirectory) NamespaceByName(name string) (domain.Namespace, bool) {
	for _, ns := range d.namespaces {
		if ns == name {
			return fakeNamespace{name: ns}, true
		}
	}
	return nil, false
}

// newTestHost returns a host with one active session named OverMighty.
func newTestHost() (*domain.Host, *fakeDirectory) {
	dir := &fakeDirectory{
		sessions:   []*fakeSession{newSession("OverMighty", true)},
		namespaces: []string{"lobby", "Nether", "arena"},
	}
	return &domain.Host{Sessions: dir, Namespaces: dir}, dir
}

// capture returns a handler that stores its arguments in *dst.
func capture(dst *[]any) HandlerFunc {
	return func(_ domain.Sender, args []any) error {
		*dst = args
		return nil
	}
}
