package dispatchers

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// registerBuiltins seeds r with the types every dispatcher understands.
func registerBuiltins(r *Registry) {
	builtin := func(t reflect.Type, resolver Resolver, completer Completer) {
		// r is fresh and unsealed, so Register cannot fail here.
		_ = r.Register(t, resolver, completer, "")
	}

	builtin(TypeOf[int8](), intResolver[int8](8), nil)
	builtin(TypeOf[int16](), intResolver[int16](16), nil)
	builtin(TypeOf[int32](), intResolver[int32](32), nil)
	builtin(TypeOf[int64](), intResolver[int64](64), nil)
	builtin(TypeOf[int](), intResolver[int](strconv.IntSize), nil)
	builtin(TypeOf[float32](), floatResolver[float32](32), nil)
	builtin(TypeOf[float64](), floatResolver[float64](64), nil)
	builtin(TypeOf[bool](), ResolverFunc(resolveBool), CompleterFunc(completeBool))
	builtin(TypeOf[string](), ResolverFunc(resolveString), SessionCompleter{})
	builtin(TypeOf[domain.Session](), ResolverFunc(resolveSession), SessionCompleter{})
	builtin(TypeOf[domain.KnownSession](), ResolverFunc(resolveKnownSession), SessionCompleter{})
	builtin(TypeOf[domain.Namespace](), ResolverFunc(resolveNamespace), CompleterFunc(completeNamespace))
}

type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

func intResolver[T signedInt](bits int) ResolverFunc {
	return func(arg Argument) (any, bool) {
		n, err := strconv.ParseInt(arg.Value, 10, bits)
		if err != nil {
			return nil, false
		}
		return T(n), true
	}
}

func floatResolver[T ~float32 | ~float64](bits int) ResolverFunc {
	return func(arg Argument) (any, bool) {
		f, err := strconv.ParseFloat(arg.Value, bits)
		if err != nil {
			return nil, false
		}
		return T(f), true
	}
}

func resolveString(arg Argument) (any, bool) {
	return arg.Value, true
}

func resolveBool(arg Argument) (any, bool) {
	switch {
	case strings.EqualFold(arg.Value, "true"):
		return true, true
	case strings.EqualFold(arg.Value, "false"):
		return false, true
	default:
		return nil, false
	}
}

func completeBool(arg Argument) []string {
	out := []string{}
	for _, literal := range []string{"true", "false"} {
		if hasPrefixFold(literal, arg.Value) {
			out = append(out, literal)
		}
	}
	return out
}

// ParseSessionID accepts the canonical 36 character form of an RFC 4122
// version 3 or 4 UUID.
func ParseSessionID(value string) (uuid.UUID, bool) {
	if len(value) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	if id.Variant() != uuid.RFC4122 {
		return uuid.Nil, false
	}
	if v := id.Version(); v != 3 && v != 4 {
		return uuid.Nil, false
	}
	return id, true
}

func resolveSession(arg Argument) (any, bool) {
	if arg.Host == nil || arg.Host.Sessions == nil {
		return nil, false
	}
	var (
		s  domain.Session
		ok bool
	)
	if id, isID := ParseSessionID(arg.Value); isID {
		s, ok = arg.Host.Sessions.SessionByID(id)
	} else {
		s, ok = arg.Host.Sessions.SessionByName(arg.Value)
	}
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}

// resolveKnownSession accepts ids of inactive sessions but names of active
// ones only.
func resolveKnownSession(arg Argument) (any, bool) {
	if arg.Host == nil || arg.Host.Sessions == nil {
		return nil, false
	}
	if id, isID := ParseSessionID(arg.Value); isID {
		ks, ok := arg.Host.Sessions.KnownSessionByID(id)
		if !ok || ks == nil {
			return nil, false
		}
		return ks, true
	}
	s, ok := arg.Host.Sessions.SessionByName(arg.Value)
	if !ok || s == nil {
		return nil, false
	}
	return domain.KnownSession(s), true
}

func resolveNamespace(arg Argument) (any, bool) {
	if arg.Host == nil || arg.Host.Namespaces == nil {
		return nil, false
	}
	ns, ok := arg.Host.Namespaces.NamespaceByName(arg.Value)
	if !ok || ns == nil {
		return nil, false
	}
	return ns, true
}

func completeNamespace(arg Argument) []string {
	out := []string{}
	if arg.Host == nil || arg.Host.Namespaces == nil {
		return out
	}
	for _, ns := range arg.Host.Namespaces.Namespaces() {
		if hasPrefixFold(ns.Name(), arg.Value) {
			out = append(out, ns.Name())
		}
	}
	sortFold(out)
	return out
}

// SessionCompleter suggests the names of active sessions. When the sender is
// itself a session, only sessions it can see are offered. The dispatcher
// recognises this completer so it can be switched off globally.
type SessionCompleter struct{}

func (SessionCompleter) Complete(arg Argument) []string {
	out := []string{}
	if arg.Host == nil || arg.Host.Sessions == nil {
		return out
	}
	observer, restricted := arg.Sender.(domain.Session)
	for _, s := range arg.Host.Sessions.ActiveSessions() {
		if !hasPrefixFold(s.Name(), arg.Value) {
			continue
		}
		if restricted && !observer.CanSee(s) {
			continue
		}
		out = append(out, s.Name())
	}
	sortFold(out)
	return out
}

// IsSessionCompleter reports whether c is the built-in session completer.
func IsSessionCompleter(c Completer) bool {
	switch c.(type) {
	case SessionCompleter, *SessionCompleter:
		return true
	default:
		return false
	}
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

// sortFold orders case-insensitively, breaking ties bytewise so the result
// is deterministic.
func sortFold(list []string) {
	sort.Slice(list, func(i, j int) bool {
		li, lj := strings.ToLower(list[i]), strings.ToLower(list[j])
		if li != lj {
			return li < lj
		}
		return list[i] < list[j]
	})
}
