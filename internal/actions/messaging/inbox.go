package messaging

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/format"
)

// Inbox handles `inbox [all=false]`: it shows unread messages, or the whole
// mailbox, and marks everything read.
func Inbox(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		self := sender.(domain.Session)
		all := args[0].(bool)

		msgs, err := deps.Mailbox.Inbox(self.ID(), !all)
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			sender.SendMessage("Your inbox is empty.")
			return nil
		}

		now := time.Now
		if deps.Now != nil {
			now = deps.Now
		}

		lines := make([]string, len(msgs))
		for i, m := range msgs {
			lines[i] = fmt.Sprintf("  %-8s %s", format.Age(now(), m.CreatedAt), m.Body)
		}
		sender.SendMessage(strings.Join(lines, "\n"))

		_, err = deps.Mailbox.MarkRead(self.ID())
		return err
	}
}
