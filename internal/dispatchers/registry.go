package dispatchers

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/footprint-tools/cmdtree/internal/usage"
)

// ArgumentType binds a semantic value type to how it is parsed and suggested.
// ErrorMessage, when set, is sent instead of the usage line on a parse
// failure; "{value}" is replaced with the offending token.
type ArgumentType struct {
	Resolver     Resolver
	Completer    Completer
	ErrorMessage string
}

// TypeOf returns the registry key for T. It works for interface types too.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Registry maps value types to argument types. Types can be added or
// overridden until the first command is registered with a Dispatcher;
// after that the registry is sealed.
type Registry struct {
	mu     sync.RWMutex
	types  map[reflect.Type]*ArgumentType
	sealed bool
}

// NewRegistry returns a registry seeded with the built-in types.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[reflect.Type]*ArgumentType)}
	registerBuiltins(r)
	return r
}

// Register binds t to a resolver and completer. A nil completer suggests
// nothing. Registering an existing type replaces it.
func (r *Registry) Register(t reflect.Type, resolver Resolver, completer Completer, errorMessage string) error {
	if t == nil {
		return fmt.Errorf("register argument type: nil type")
	}
	if resolver == nil {
		return fmt.Errorf("register argument type %s: nil resolver", t)
	}
	if completer == nil {
		completer = noCompletions
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return usage.RegistrySealed(t.String())
	}
	r.types[t] = &ArgumentType{Resolver: resolver, Completer: completer, ErrorMessage: errorMessage}
	return nil
}

// SetErrorMessage replaces the error message of an already bound type.
func (r *Registry) SetErrorMessage(t reflect.Type, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return usage.RegistrySealed(t.String())
	}
	at, ok := r.types[t]
	if !ok {
		return usage.UnboundArgumentType("", t.String())
	}
	copied := *at
	copied.ErrorMessage = message
	r.types[t] = &copied
	return nil
}

// Lookup returns the argument type bound to t.
func (r *Registry) Lookup(t reflect.Type) (*ArgumentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if at, ok := r.types[t]; ok {
		return at, nil
	}
	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	return nil, usage.UnboundArgumentType("", name)
}

// Sealed reports whether the registry still accepts registrations.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

func (r *Registry) seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}
