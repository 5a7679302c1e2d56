package sessions

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/store"
)

// List handles `session list [namespace]`.
func List(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		filter := store.ListFilter{ActiveOnly: true}
		if ns, ok := args[0].(domain.Namespace); ok {
			filter.Namespace = ns.Name()
		}

		all, err := deps.Directory.ListSessions(filter)
		if err != nil {
			return err
		}

		viewer, _ := sender.(domain.Session)
		var lines []string
		for _, sess := range all {
			if viewer != nil && !viewer.CanSee(sess) {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %-16s %s", sess.Name(), sess.Namespace()))
		}

		if len(lines) == 0 {
			sender.SendMessage("No active sessions.")
			return nil
		}
		sender.SendMessage(fmt.Sprintf("%d active session(s):\n%s", len(lines), strings.Join(lines, "\n")))
		return nil
	}
}
