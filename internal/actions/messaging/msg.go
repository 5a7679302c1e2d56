package messaging

import (
	"fmt"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Msg handles `msg <session> <message...>`.
func Msg(_ Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		target := args[0].(domain.Session)
		text := args[1].(string)

		if self, ok := sender.(domain.Session); ok && self.ID() == target.ID() {
			sender.SendMessage("You mutter to yourself: " + text)
			return nil
		}

		target.SendMessage(fmt.Sprintf("[%s -> you] %s", sender.Name(), text))
		sender.SendMessage(fmt.Sprintf("[you -> %s] %s", target.Name(), text))
		return nil
	}
}
