package dispatchers

import "github.com/footprint-tools/cmdtree/internal/domain"

// Argument is the input to a single resolve or complete step. It lives only
// for the duration of that step.
type Argument struct {
	Param  ParamSpec
	Value  string
	Sender domain.Sender
	Host   *domain.Host
}

// Resolver turns a raw token into a typed value. ok is false when the token
// cannot be parsed as the parameter's type.
type Resolver interface {
	Resolve(arg Argument) (value any, ok bool)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(arg Argument) (any, bool)

func (f ResolverFunc) Resolve(arg Argument) (any, bool) {
	return f(arg)
}

// Completer suggests values for a partially typed token. Implementations
// return an empty slice rather than nil when nothing applies.
type Completer interface {
	Complete(arg Argument) []string
}

// CompleterFunc adapts a plain function to Completer.
type CompleterFunc func(arg Argument) []string

func (f CompleterFunc) Complete(arg Argument) []string {
	if out := f(arg); out != nil {
		return out
	}
	return []string{}
}

// noCompletions is bound to types registered without a completer.
var noCompletions = CompleterFunc(func(Argument) []string { return []string{} })
