// Package help implements the help command and the Topic argument type it
// takes.
package help

import (
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Topic is a registered root command named by the user.
type Topic struct {
	Alias string
	Node  *dispatchers.DispatchNode
}

// RegisterTopicType binds Topic in d's registry. Resolution and completion
// read d's roots at call time, so this must run before the first Register
// but works for roots registered afterwards.
func RegisterTopicType(d *dispatchers.Dispatcher) error {
	resolve := func(arg dispatchers.Argument) (any, bool) {
		node, ok := d.Lookup(arg.Value)
		if !ok {
			return nil, false
		}
		return Topic{Alias: arg.Value, Node: node}, true
	}

	complete := func(arg dispatchers.Argument) []string {
		var out []string
		for _, alias := range d.Roots() {
			node, _ := d.Lookup(alias)
			if node.Permission != "" && !arg.Sender.HasPermission(node.Permission) {
				continue
			}
			if strings.HasPrefix(alias, strings.ToLower(arg.Value)) {
				out = append(out, alias)
			}
		}
		return out
	}

	return d.Registry().Register(dispatchers.TypeOf[Topic](),
		dispatchers.ResolverFunc(resolve),
		dispatchers.CompleterFunc(complete),
		"No command named '{value}'. Type 'help' for a list.",
	)
}

type Deps struct {
	Dispatcher *dispatchers.Dispatcher
}

// Help handles `help [command]`.
func Help(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		topic, ok := args[0].(Topic)
		if !ok {
			sender.SendMessage(strings.TrimRight(deps.Dispatcher.Overview(), "\n"))
			return nil
		}
		sender.SendMessage(strings.TrimRight(dispatchers.HelpText(topic.Node, topic.Alias), "\n"))
		return nil
	}
}
