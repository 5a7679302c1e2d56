package dispatchers

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

func resolveWith(t *testing.T, r *Registry, typ reflect.Type, value string, host *domain.Host) (any, bool) {
	t.Helper()
	at, err := r.Lookup(typ)
	require.NoError(t, err)
	return at.Resolver.Resolve(Argument{Value: value, Host: host})
}

func TestBuiltins_Numbers(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name  string
		typ   reflect.Type
		value string
		want  any
		ok    bool
	}{
		{"int8", TypeOf[int8](), "127", int8(127), true},
		{"int8 overflow", TypeOf[int8](), "128", nil, false},
		{"int16", TypeOf[int16](), "-32768", int16(-32768), true},
		{"int16 overflow", TypeOf[int16](), "40000", nil, false},
		{"int32", TypeOf[int32](), "+42", int32(42), true},
		{"int64", TypeOf[int64](), "9223372036854775807", int64(9223372036854775807), true},
		{"int64 overflow", TypeOf[int64](), "9223372036854775808", nil, false},
		{"int", TypeOf[int](), "-5", -5, true},
		{"int garbage", TypeOf[int](), "5x", nil, false},
		{"int float text", TypeOf[int](), "1.5", nil, false},
		{"float32", TypeOf[float32](), "1.5", float32(1.5), true},
		{"float64", TypeOf[float64](), "-2.25", -2.25, true},
		{"float64 exponent", TypeOf[float64](), "1e3", 1000.0, true},
		{"float garbage", TypeOf[float64](), "abc", nil, false},
		{"empty int", TypeOf[int](), "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveWith(t, r, tt.typ, tt.value, nil)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltins_Bool(t *testing.T) {
	r := NewRegistry()

	for value, want := range map[string]bool{"true": true, "TRUE": true, "False": false, "false": false} {
		got, ok := resolveWith(t, r, TypeOf[bool](), value, nil)
		require.True(t, ok, value)
		require.Equal(t, want, got)
	}
	for _, value := range []string{"", "yes", "1", "t", "truee"} {
		_, ok := resolveWith(t, r, TypeOf[bool](), value, nil)
		require.False(t, ok, value)
	}

	at, err := r.Lookup(TypeOf[bool]())
	require.NoError(t, err)
	complete := func(v string) []string { return at.Completer.Complete(Argument{Value: v}) }
	require.Equal(t, []string{"true", "false"}, complete(""))
	require.Equal(t, []string{"true"}, complete("T"))
	require.Equal(t, []string{"false"}, complete("fal"))
	require.Equal(t, []string{}, complete("x"))
	require.Equal(t, []string{}, complete("truex"))
}

func TestBuiltins_String(t *testing.T) {
	r := NewRegistry()
	got, ok := resolveWith(t, r, TypeOf[string](), "Hello", nil)
	require.True(t, ok)
	require.Equal(t, "Hello", got)

	at, err := r.Lookup(TypeOf[string]())
	require.NoError(t, err)
	require.True(t, IsSessionCompleter(at.Completer))
}

func TestParseSessionID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"version 4", "0f8fad5b-d9cb-469f-a165-70867728950e", true},
		{"version 4 upper case", "0F8FAD5B-D9CB-469F-A165-70867728950E", true},
		{"version 3", "a3bb189e-8bf9-3888-9912-ace4e6543002", true},
		{"version 1", "c232ab00-9414-11ec-b3c8-9f6bdeced846", false},
		{"version 5", "886313e1-3b8a-5372-9b90-0c9aee199e5d", false},
		{"wrong variant", "0f8fad5b-d9cb-469f-c165-70867728950e", false},
		{"no hyphens", "0f8fad5bd9cb469fa16570867728950e", false},
		{"braced", "{0f8fad5b-d9cb-469f-a165-70867728950e}", false},
		{"urn", "urn:uuid:0f8fad5b-d9cb-469f-a165-70867728950e", false},
		{"name", "OverMighty", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseSessionID(tt.value)
			require.Equal(t, tt.ok, ok)
		})
	}
}

func TestBuiltins_Session(t *testing.T) {
	host, dir := newTestHost()
	offline := newSession("Ghost", false)
	dir.sessions = append(dir.sessions, offline)
	online := dir.sessions[0]
	r := NewRegistry()

	got, ok := resolveWith(t, r, TypeOf[domain.Session](), "overmighty", host)
	require.True(t, ok)
	require.Same(t, online, got)

	got, ok = resolveWith(t, r, TypeOf[domain.Session](), online.ID().String(), host)
	require.True(t, ok)
	require.Same(t, online, got)

	_, ok = resolveWith(t, r, TypeOf[domain.Session](), "Ghost", host)
	require.False(t, ok)

	_, ok = resolveWith(t, r, TypeOf[domain.Session](), offline.ID().String(), host)
	require.False(t, ok)

	_, ok = resolveWith(t, r, TypeOf[domain.Session](), "OverMighty", nil)
	require.False(t, ok)
}

func TestBuiltins_KnownSession(t *testing.T) {
	host, dir := newTestHost()
	offline := newSession("Ghost", false)
	dir.sessions = append(dir.sessions, offline)
	r := NewRegistry()

	got, ok := resolveWith(t, r, TypeOf[domain.KnownSession](), strings.ToUpper(offline.ID().String()), host)
	require.True(t, ok)
	require.Equal(t, "Ghost", got.(domain.KnownSession).Name())

	got, ok = resolveWith(t, r, TypeOf[domain.KnownSession](), "OVERMIGHTY", host)
	require.True(t, ok)
	require.True(t, got.(domain.KnownSession).Active())

	_, ok = resolveWith(t, r, TypeOf[domain.KnownSession](), "Ghost", host)
	require.False(t, ok)

	_, ok = resolveWith(t, r, TypeOf[domain.KnownSession](), uuid.NewString(), host)
	require.False(t, ok)
}

func TestBuiltins_Namespace(t *testing.T) {
	host, _ := newTestHost()
	r := NewRegistry()

	got, ok := resolveWith(t, r, TypeOf[domain.Namespace](), "Nether", host)
	require.True(t, ok)
	require.Equal(t, "Nether", got.(domain.Namespace).Name())

	_, ok = resolveWith(t, r, TypeOf[domain.Namespace](), "nether", host)
	require.False(t, ok)
}

func TestRegistry_RegisterAndOverride(t *testing.T) {
	type color string
	r := NewRegistry()

	_, err := r.Lookup(TypeOf[color]())
	require.ErrorIs(t, err, usage.ErrUnboundType)
	require.Equal(t, usage.ErrUnboundArgumentType, usage.KindOf(err))

	resolver := ResolverFunc(func(arg Argument) (any, bool) {
		switch arg.Value {
		case "red", "green":
			return color(arg.Value), true
		}
		return nil, false
	})
	require.NoError(t, r.Register(TypeOf[color](), resolver, nil, "'{value}' is not a color"))

	at, err := r.Lookup(TypeOf[color]())
	require.NoError(t, err)
	require.Equal(t, "'{value}' is not a color", at.ErrorMessage)
	require.Equal(t, []string{}, at.Completer.Complete(Argument{}))

	// Overriding a built-in replaces it.
	require.NoError(t, r.Register(TypeOf[bool](), resolver, nil, ""))
	at, err = r.Lookup(TypeOf[bool]())
	require.NoError(t, err)
	_, ok := at.Resolver.Resolve(Argument{Value: "true"})
	require.False(t, ok)
}

func TestRegistry_RejectsInvalidRegistrations(t *testing.T) {
	r := NewRegistry()
	require.Error(t, r.Register(nil, ResolverFunc(resolveString), nil, ""))
	require.Error(t, r.Register(TypeOf[string](), nil, nil, ""))
	require.ErrorIs(t, r.SetErrorMessage(TypeOf[uint8](), "x"), usage.ErrUnboundType)
}

func TestRegistry_Sealed(t *testing.T) {
	r := NewRegistry()
	require.False(t, r.Sealed())
	r.seal()
	require.True(t, r.Sealed())
	require.ErrorIs(t, r.Register(TypeOf[uint](), ResolverFunc(resolveString), nil, ""), usage.ErrSealed)
	require.ErrorIs(t, r.SetErrorMessage(TypeOf[bool](), "x"), usage.ErrSealed)

	_, err := r.Lookup(TypeOf[bool]())
	require.NoError(t, err)
}

func TestCompleterFunc_NeverNil(t *testing.T) {
	c := CompleterFunc(func(Argument) []string { return nil })
	require.NotNil(t, c.Complete(Argument{}))
	require.False(t, IsSessionCompleter(c))
	require.True(t, IsSessionCompleter(&SessionCompleter{}))
}
