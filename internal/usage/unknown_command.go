package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when no registered root answers to an alias.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("'%s' is not a known command.", command)
	if len(suggestions) > 0 {
		msg += " Did you mean: " + strings.Join(suggestions, ", ") + "?"
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
