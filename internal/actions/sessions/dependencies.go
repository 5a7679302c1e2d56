// Package sessions implements the session, whoami, login and logout commands.
package sessions

import (
	"github.com/google/uuid"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/store"
)

// Directory is the part of the store these commands use.
type Directory interface {
	ListSessions(filter store.ListFilter) ([]*store.Session, error)
	Lookup(id uuid.UUID) (*store.Session, error)
	Permissions(id uuid.UUID) ([]string, error)
	Hide(observer, hidden uuid.UUID) error
	Unhide(observer, hidden uuid.UUID) (bool, error)
}

type Deps struct {
	Directory Directory

	// Login switches the terminal to the given session; nil logs out.
	// It is nil outside the interactive shell.
	Login func(domain.Session) error
}

var _ Directory = (*store.Store)(nil)
