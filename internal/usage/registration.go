package usage

import "fmt"

// UnboundArgumentType is returned when a parameter's type has no registry
// entry. command may be empty when the lookup is not tied to a command.
func UnboundArgumentType(command, typeName string) *Error {
	msg := fmt.Sprintf("no argument type bound to %s", typeName)
	if command != "" {
		msg = fmt.Sprintf("command '%s': %s", command, msg)
	}
	return &Error{
		Kind:    ErrUnboundArgumentType,
		Message: msg,
	}
}

// InvalidDescriptor is returned when a parameter list violates the ordering rules.
func InvalidDescriptor(command, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidDescriptor,
		Message: fmt.Sprintf("command '%s': %s", command, reason),
	}
}

// RegistrySealed is returned when an argument type is registered after the
// first command registration.
func RegistrySealed(typeName string) *Error {
	return &Error{
		Kind:    ErrRegistrySealed,
		Message: fmt.Sprintf("cannot register argument type %s: registry is sealed", typeName),
	}
}

// HandlerFault wraps an error raised by a command handler itself.
func HandlerFault(command string, cause error) *Error {
	return &Error{
		Kind:    ErrHandlerFault,
		Message: fmt.Sprintf("unhandled error executing command '%s': %v", command, cause),
		Err:     cause,
	}
}

// InvalidConfigKey is returned for keys not declared in domain.ConfigKeys.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("'%s' is not a valid config key", key),
	}
}
