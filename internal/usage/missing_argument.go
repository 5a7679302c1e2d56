package usage

import "fmt"

// MissingArguments is returned when fewer tokens than required were supplied.
func MissingArguments(command string, got, want int) *Error {
	return &Error{
		Kind:    ErrMissingArguments,
		Message: fmt.Sprintf("%s: expected at least %d argument(s), got %d", command, want, got),
	}
}

// Unresolvable is returned when a token fails type-specific parsing.
func Unresolvable(command, param, value string) *Error {
	return &Error{
		Kind:    ErrUnresolvableArgument,
		Message: fmt.Sprintf("%s: invalid value '%s' for argument '%s'", command, value, param),
	}
}

// SenderKind is returned when a command needs a session but got another sender.
func SenderKind(command string) *Error {
	return &Error{
		Kind:    ErrSenderKind,
		Message: fmt.Sprintf("%s: only sessions can run this command", command),
	}
}

// PermissionDenied is returned when the sender lacks a permission tag.
func PermissionDenied(command, permission string) *Error {
	return &Error{
		Kind:    ErrPermissionDenied,
		Message: fmt.Sprintf("%s: missing permission %s", command, permission),
	}
}
