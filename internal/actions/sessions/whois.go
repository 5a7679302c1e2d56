package sessions

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/format"
)

// Whois handles `session whois <session>`. Inactive sessions are accepted by id.
func Whois(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		known := args[0].(domain.KnownSession)

		sess, err := deps.Directory.Lookup(known.ID())
		if err != nil {
			return err
		}
		perms, err := deps.Directory.Permissions(sess.ID())
		if err != nil {
			return err
		}

		state := "online"
		if !sess.Active() {
			state = "offline since " + format.DateTime(sess.LastSeen().Local())
		}

		granted := "none"
		if len(perms) > 0 {
			granted = strings.Join(perms, ", ")
		}

		sender.SendMessage(fmt.Sprintf(
			"%s\n  id:          %s\n  state:       %s\n  namespace:   %s\n  permissions: %s",
			sess.Name(), sess.ID(), state, sess.Namespace(), granted,
		))
		return nil
	}
}

// Whoami handles `whoami`.
func Whoami(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, _ []any) error {
		sess, ok := sender.(domain.Session)
		if !ok {
			sender.SendMessage(fmt.Sprintf("You are %s (all permissions).", sender.Name()))
			return nil
		}
		sender.SendMessage(fmt.Sprintf("You are %s in %s (%s).", sess.Name(), sess.Namespace(), sess.ID()))
		return nil
	}
}
