package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrUnboundArgumentType
	ErrMissingArguments
	ErrUnresolvableArgument
	ErrSenderKind
	ErrPermissionDenied
	ErrHandlerFault
	ErrInvalidDescriptor
	ErrRegistrySealed
	ErrInvalidConfigKey
)

// Sentinels for errors.Is. Every *Error unwraps to the sentinel of its kind
// when it carries no underlying cause of its own.
var (
	ErrUnboundType     = errors.New("unbound argument type")
	ErrMissing         = errors.New("missing required arguments")
	ErrUnresolvable    = errors.New("unresolvable argument")
	ErrNotPlayer       = errors.New("sender is not a player")
	ErrNoPermission    = errors.New("permission denied")
	ErrFault           = errors.New("handler fault")
	ErrNoSuchCommand   = errors.New("unknown command")
	ErrBadDescriptor   = errors.New("invalid parameter descriptor")
	ErrSealed          = errors.New("argument type registry is sealed")
	ErrBadConfigKey    = errors.New("invalid config key")
	errUnknownSentinel = errors.New("usage error")
)

var sentinels = map[ErrorKind]error{
	ErrUnknown:              errUnknownSentinel,
	ErrUnknownCommand:       ErrNoSuchCommand,
	ErrUnboundArgumentType:  ErrUnboundType,
	ErrMissingArguments:     ErrMissing,
	ErrUnresolvableArgument: ErrUnresolvable,
	ErrSenderKind:           ErrNotPlayer,
	ErrPermissionDenied:     ErrNoPermission,
	ErrHandlerFault:         ErrFault,
	ErrInvalidDescriptor:    ErrBadDescriptor,
	ErrRegistrySealed:       ErrSealed,
	ErrInvalidConfigKey:     ErrBadConfigKey,
}

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Unbound argument type
//	  - Handler fault
//	  - Invalid descriptor
//	  - Sealed registry
//	  - Invalid config key
//
//	Exit 2: User input errors
//	  - Missing arguments
//	  - Unresolvable argument
//	  - Sender kind mismatch
//	  - Permission denied
var exitCodes = map[ErrorKind]int{
	ErrUnknown:              1,
	ErrUnknownCommand:       1,
	ErrUnboundArgumentType:  1,
	ErrMissingArguments:     2,
	ErrUnresolvableArgument: 2,
	ErrSenderKind:           2,
	ErrPermissionDenied:     2,
	ErrHandlerFault:         1,
	ErrInvalidDescriptor:    1,
	ErrRegistrySealed:       1,
	ErrInvalidConfigKey:     1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	Err      error
	ExitCode int // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, or the sentinel for the error's kind.
func (e *Error) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return sentinels[e.Kind]
}

// Is reports whether target is the sentinel of this error's kind, so that
// errors carrying a cause still match their kind.
func (e *Error) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// KindOf returns the kind of the first *Error in err's chain, or ErrUnknown.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
