package dispatchers

import (
	"regexp"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

var spaceRun = regexp.MustCompile(` +`)

// Complete suggests values for the last token in tokens, which may be empty.
// It never changes dispatcher state and never returns nil.
func (d *Dispatcher) Complete(sender domain.Sender, alias string, tokens []string) []string {
	root, ok := d.Lookup(alias)
	if !ok {
		return []string{}
	}
	if len(tokens) == 0 {
		tokens = []string{""}
	}
	return d.complete(root, sender, tokens)
}

// CompleteLine completes a raw input buffer such as "msg Al". Runs of spaces
// separate tokens and a trailing space starts a new, empty token. A buffer
// without a space completes the root aliases the sender may use.
func (d *Dispatcher) CompleteLine(sender domain.Sender, buffer string) []string {
	buffer = strings.TrimPrefix(buffer, "/")
	if !strings.Contains(buffer, " ") {
		return d.completeRoots(sender, buffer)
	}
	parts := spaceRun.Split(buffer, -1)
	return d.Complete(sender, parts[0], parts[1:])
}

func (d *Dispatcher) completeRoots(sender domain.Sender, prefix string) []string {
	out := []string{}
	for _, alias := range d.Roots() {
		if !hasPrefixFold(alias, prefix) {
			continue
		}
		root, _ := d.Lookup(alias)
		if root.Permission != "" && sender != nil && !sender.HasPermission(root.Permission) {
			continue
		}
		out = append(out, alias)
	}
	sortFold(out)
	return out
}

func (d *Dispatcher) complete(node *DispatchNode, sender domain.Sender, tokens []string) []string {
	if len(node.Children) > 0 {
		if len(tokens) > 1 {
			child, ok := node.Children[tokens[0]]
			if !ok {
				return []string{}
			}
			return d.complete(child, sender, tokens[1:])
		}
		return completeChildren(node, tokens[0])
	}
	return d.completeParam(node, sender, tokens)
}

// completeChildren lists child names and aliases starting with prefix.
func completeChildren(node *DispatchNode, prefix string) []string {
	out := []string{}
	for key := range node.Children {
		if hasPrefixFold(key, prefix) {
			out = append(out, key)
		}
	}
	sortFold(out)
	return out
}

// completeParam maps the token count to the parameter being typed: n tokens
// target parameter n-1. Extra tokens only keep completing a trailing rest or
// variadic parameter.
func (d *Dispatcher) completeParam(node *DispatchNode, sender domain.Sender, tokens []string) []string {
	if len(node.Params) == 0 {
		return []string{}
	}

	n := len(tokens)
	var p ParamSpec
	if n > len(node.Params) {
		p = node.Params[len(node.Params)-1]
		if p.Policy != PolicyVariadic && p.Policy != PolicyRest {
			return []string{}
		}
	} else {
		p = node.Params[n-1]
	}

	at, err := d.registry.Lookup(p.Type)
	if err != nil {
		return []string{}
	}
	if IsSessionCompleter(at.Completer) && !d.SessionCompleterEnabled() {
		return []string{}
	}

	out := at.Completer.Complete(Argument{Param: p, Value: tokens[n-1], Sender: sender, Host: d.host})
	if out == nil {
		return []string{}
	}
	return out
}
