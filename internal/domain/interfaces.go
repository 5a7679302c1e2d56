package domain

import (
	"io"

	"github.com/google/uuid"
)

// Sender is the invocation context of a command: whoever typed it.
type Sender interface {
	// Name returns the display name of the sender.
	Name() string

	// HasPermission reports whether the sender holds the given permission tag.
	HasPermission(permission string) bool

	// SendMessage delivers a line of feedback to the sender.
	SendMessage(message string)
}

// KnownSession is a session the host has seen, whether or not it is
// currently active.
type KnownSession interface {
	ID() uuid.UUID
	Name() string
	Active() bool
}

// Session is a player-kind sender: an active user connected to the host.
// Commands flagged player-only accept nothing else.
type Session interface {
	Sender
	KnownSession

	// Namespace returns the name of the namespace the session is in.
	Namespace() string

	// CanSee reports whether this session is allowed to see other.
	CanSee(other Session) bool
}

// Namespace is a named partition of the host, such as a world or channel.
type Namespace interface {
	Name() string
	Description() string
}

// SessionDirectory looks up sessions known to the host.
type SessionDirectory interface {
	// SessionByName returns the active session with the given name,
	// compared case-insensitively.
	SessionByName(name string) (Session, bool)

	// SessionByID returns the active session with the given id.
	SessionByID(id uuid.UUID) (Session, bool)

	// KnownSessionByID returns any session with the given id, active or not.
	KnownSessionByID(id uuid.UUID) (KnownSession, bool)

	// ActiveSessions returns every currently active session.
	ActiveSessions() []Session
}

// NamespaceDirectory enumerates the namespaces the host exposes.
type NamespaceDirectory interface {
	Namespaces() []Namespace
	NamespaceByName(name string) (Namespace, bool)
}

// Host is the explicit context threaded through the dispatcher and into
// every resolver and completer.
type Host struct {
	Sessions   SessionDirectory
	Namespaces NamespaceDirectory
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Host   *Host
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}
