// Package namespaces implements the ns command group.
package namespaces

import (
	"github.com/google/uuid"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/store"
)

// Directory is the part of the store these commands use.
type Directory interface {
	Namespaces() []domain.Namespace
	CountSessions(namespace string) (int, error)
	ListSessions(filter store.ListFilter) ([]*store.Session, error)
	MoveSession(id uuid.UUID, namespace string) error
	CreateNamespace(name, description string) error
}

type Deps struct {
	Directory Directory
}

var _ Directory = (*store.Store)(nil)
