package sessions

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// ErrNoShell is returned by login and logout outside the interactive shell.
var ErrNoShell = errors.New("login is only available in the interactive shell")

// Login handles `login <session>`.
func Login(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		if deps.Login == nil {
			return ErrNoShell
		}
		target := args[0].(domain.Session)
		if err := deps.Login(target); err != nil {
			return err
		}
		sender.SendMessage(fmt.Sprintf("Logged in as %s.", target.Name()))
		return nil
	}
}

// Logout handles `logout`, returning the terminal to the console.
func Logout(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, _ []any) error {
		if deps.Login == nil {
			return ErrNoShell
		}
		if _, ok := sender.(domain.Session); !ok {
			sender.SendMessage("You are not logged in.")
			return nil
		}
		if err := deps.Login(nil); err != nil {
			return err
		}
		sender.SendMessage(fmt.Sprintf("Logged out of %s.", sender.Name()))
		return nil
	}
}
