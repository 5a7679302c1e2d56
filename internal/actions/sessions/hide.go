package sessions

import (
	"fmt"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Hide handles `session hide <session>`. The caller stops seeing the target
// in listings and completions.
func Hide(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		self := sender.(domain.Session)
		target := args[0].(domain.Session)

		if self.ID() == target.ID() {
			sender.SendMessage("You cannot hide yourself.")
			return nil
		}
		if err := deps.Directory.Hide(self.ID(), target.ID()); err != nil {
			return err
		}
		sender.SendMessage(fmt.Sprintf("%s is now hidden from you.", target.Name()))
		return nil
	}
}

// Unhide handles `session unhide <session>`.
func Unhide(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		self := sender.(domain.Session)
		target := args[0].(domain.KnownSession)

		removed, err := deps.Directory.Unhide(self.ID(), target.ID())
		if err != nil {
			return err
		}
		if !removed {
			sender.SendMessage(fmt.Sprintf("%s was not hidden.", target.Name()))
			return nil
		}
		sender.SendMessage(fmt.Sprintf("%s is visible again.", target.Name()))
		return nil
	}
}
