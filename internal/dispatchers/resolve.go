package dispatchers

import (
	"reflect"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// tokenQueue is the front-removable queue the resolver consumes.
type tokenQueue struct {
	tokens []string
}

func newTokenQueue(tokens []string) *tokenQueue {
	return &tokenQueue{tokens: append([]string(nil), tokens...)}
}

func (q *tokenQueue) empty() bool { return len(q.tokens) == 0 }
func (q *tokenQueue) len() int    { return len(q.tokens) }
func (q *tokenQueue) peek() string {
	return q.tokens[0]
}

func (q *tokenQueue) pop() string {
	tok := q.tokens[0]
	q.tokens = q.tokens[1:]
	return tok
}

func (q *tokenQueue) push(tok string) {
	q.tokens = append([]string{tok}, q.tokens...)
}

func (q *tokenQueue) drain() []string {
	rest := q.tokens
	q.tokens = nil
	return rest
}

// resolveArgs turns tokens into one value per parameter of node. On failure
// the sender has been sent an error or usage message and ok is false.
func (d *Dispatcher) resolveArgs(node *DispatchNode, sender domain.Sender, alias string, tokens []string) ([]any, bool) {
	q := newTokenQueue(tokens)
	args := make([]any, len(node.Params))

	for i, p := range node.Params {
		if q.empty() {
			switch p.Policy {
			case PolicyOptional:
				// Everything from here on stays nil.
				return args, true
			case PolicyDefaulted:
				q.push(p.Default)
			case PolicyRest, PolicyVariadic:
				// Only reachable behind a defaulted parameter; they resolve empty.
			default:
				d.sendUsage(sender, node, alias)
				return nil, false
			}
		}

		at, err := d.registry.Lookup(p.Type)
		if err != nil {
			d.logger.Error("%s: %v", alias, err)
			d.sendUsage(sender, node, alias)
			return nil, false
		}

		var ok bool
		switch p.Policy {
		case PolicyVariadic:
			args[i], ok = d.resolveVariadic(node, p, at, q, sender, alias)
		case PolicyRest:
			args[i] = restValue(p.Type, strings.Join(q.drain(), " "))
			ok = true
		default:
			args[i], ok = d.resolveOne(node, p, at, q, sender, alias)
		}
		if !ok {
			return nil, false
		}
	}
	return args, true
}

// resolveOne resolves the front token and pops it on success.
func (d *Dispatcher) resolveOne(node *DispatchNode, p ParamSpec, at *ArgumentType, q *tokenQueue,
	sender domain.Sender, alias string) (any, bool) {
	raw := q.peek()
	value, ok := d.resolveToken(p, at, raw, sender)
	if !ok {
		d.sendResolveFailure(sender, node, alias, at, raw)
		return nil, false
	}
	q.pop()
	return value, true
}

// resolveVariadic resolves every remaining token into a slice of p.Type. A
// single failure discards the whole slice.
func (d *Dispatcher) resolveVariadic(node *DispatchNode, p ParamSpec, at *ArgumentType, q *tokenQueue,
	sender domain.Sender, alias string) (any, bool) {
	values := reflect.MakeSlice(reflect.SliceOf(p.Type), q.len(), q.len())
	for i := 0; !q.empty(); i++ {
		raw := q.peek()
		value, ok := d.resolveToken(p, at, raw, sender)
		if !ok {
			d.sendResolveFailure(sender, node, alias, at, raw)
			return nil, false
		}
		values.Index(i).Set(reflect.ValueOf(value))
		q.pop()
	}
	return values.Interface(), true
}

// resolveToken runs the resolver and checks that the value fits the
// declared type, so handlers can type-assert without guarding.
func (d *Dispatcher) resolveToken(p ParamSpec, at *ArgumentType, raw string, sender domain.Sender) (any, bool) {
	value, ok := at.Resolver.Resolve(Argument{Param: p, Value: raw, Sender: sender, Host: d.host})
	if !ok || value == nil {
		return nil, false
	}
	if !reflect.TypeOf(value).AssignableTo(p.Type) {
		d.logger.Warn("resolver for %s returned %T", p.Type, value)
		return nil, false
	}
	return value, true
}

func (d *Dispatcher) sendResolveFailure(sender domain.Sender, node *DispatchNode, alias string, at *ArgumentType, raw string) {
	d.logger.Debug("%s: could not resolve %q", alias, raw)
	if at.ErrorMessage != "" {
		sender.SendMessage(strings.ReplaceAll(at.ErrorMessage, "{value}", raw))
		return
	}
	d.sendUsage(sender, node, alias)
}

// restValue converts the joined tokens to the parameter's string type.
func restValue(t reflect.Type, joined string) any {
	if t == reflect.TypeOf("") {
		return joined
	}
	return reflect.ValueOf(joined).Convert(t).Interface()
}
