package dispatchers

import (
	"fmt"
	"reflect"

	"github.com/footprint-tools/cmdtree/internal/usage"
)

// Policy controls how a parameter consumes tokens.
type Policy int

const (
	PolicyRequired Policy = iota
	PolicyOptional
	PolicyDefaulted
	PolicyRest
	PolicyVariadic
)

func (p Policy) String() string {
	switch p {
	case PolicyRequired:
		return "required"
	case PolicyOptional:
		return "optional"
	case PolicyDefaulted:
		return "defaulted"
	case PolicyRest:
		return "rest"
	case PolicyVariadic:
		return "variadic"
	default:
		return "unknown"
	}
}

// ParamSpec describes one positional handler parameter. For variadic
// parameters Type is the element type; the handler receives a slice of it.
type ParamSpec struct {
	Name        string
	Type        reflect.Type
	Policy      Policy
	Default     string
	Description string
}

// Required declares a parameter that must be supplied.
func Required(name string, t reflect.Type) ParamSpec {
	return ParamSpec{Name: name, Type: t, Policy: PolicyRequired}
}

// Optional declares a parameter that resolves to nil when no token is left.
func Optional(name string, t reflect.Type) ParamSpec {
	return ParamSpec{Name: name, Type: t, Policy: PolicyOptional}
}

// Defaulted declares a parameter that resolves def when no token is left.
func Defaulted(name string, t reflect.Type, def string) ParamSpec {
	return ParamSpec{Name: name, Type: t, Policy: PolicyDefaulted, Default: def}
}

// Rest declares a final string parameter that joins every remaining token.
func Rest(name string) ParamSpec {
	return ParamSpec{Name: name, Type: TypeOf[string](), Policy: PolicyRest}
}

// Variadic declares a final parameter that resolves every remaining token
// as an element of type elem.
func Variadic(name string, elem reflect.Type) ParamSpec {
	return ParamSpec{Name: name, Type: elem, Policy: PolicyVariadic}
}

// Describe returns a copy of p with the given help text.
func (p ParamSpec) Describe(text string) ParamSpec {
	p.Description = text
	return p
}

// placeholder renders the parameter for generated usage lines.
func (p ParamSpec) placeholder() string {
	switch p.Policy {
	case PolicyOptional:
		return "[" + p.Name + "]"
	case PolicyDefaulted:
		return "[" + p.Name + "=" + p.Default + "]"
	case PolicyRest, PolicyVariadic:
		return "<" + p.Name + "...>"
	default:
		return "<" + p.Name + ">"
	}
}

// validateParams enforces the ordering rules: every required parameter comes
// first, and a rest or variadic parameter may only appear last.
func validateParams(command string, params []ParamSpec) error {
	seenOptional := false
	for i, p := range params {
		if p.Type == nil {
			return usage.InvalidDescriptor(command, fmt.Sprintf("parameter %q has no type", p.Name))
		}
		last := i == len(params)-1
		switch p.Policy {
		case PolicyRequired:
			if seenOptional {
				return usage.InvalidDescriptor(command,
					fmt.Sprintf("required parameter %q follows an optional one", p.Name))
			}
		case PolicyOptional, PolicyDefaulted:
			seenOptional = true
		case PolicyRest:
			if !last {
				return usage.InvalidDescriptor(command, fmt.Sprintf("rest parameter %q must be last", p.Name))
			}
			if p.Type.Kind() != reflect.String {
				return usage.InvalidDescriptor(command, fmt.Sprintf("rest parameter %q must be a string", p.Name))
			}
		case PolicyVariadic:
			if !last {
				return usage.InvalidDescriptor(command, fmt.Sprintf("variadic parameter %q must be last", p.Name))
			}
			if p.Type.Kind() == reflect.Slice || p.Type.Kind() == reflect.Array {
				return usage.InvalidDescriptor(command,
					fmt.Sprintf("variadic parameter %q must declare its element type", p.Name))
			}
		default:
			return usage.InvalidDescriptor(command, fmt.Sprintf("parameter %q has unknown policy %d", p.Name, p.Policy))
		}
	}
	return nil
}

// requiredArgCount counts the leading parameters that need a token. Rest and
// variadic parameters need at least one unless an optional or defaulted
// parameter comes before them.
func requiredArgCount(params []ParamSpec) int {
	n := 0
	for _, p := range params {
		if p.Policy == PolicyOptional || p.Policy == PolicyDefaulted {
			break
		}
		n++
	}
	return n
}
