// Package messaging implements msg and inbox.
package messaging

import (
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/cmdtree/internal/store"
)

// Mailbox is the part of the store these commands use.
type Mailbox interface {
	Inbox(recipient uuid.UUID, unreadOnly bool) ([]store.Message, error)
	MarkRead(recipient uuid.UUID) (int64, error)
}

type Deps struct {
	Mailbox Mailbox
	Now     func() time.Time
}

var _ Mailbox = (*store.Store)(nil)
