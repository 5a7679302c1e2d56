package dispatchers

import (
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// HandlerFunc runs a command. args holds one value per declared parameter,
// in order; absent optional parameters are nil and variadic parameters are
// typed slices.
type HandlerFunc func(sender domain.Sender, args []any) error

// DispatchNode is one command or subcommand. Children is keyed by every name
// and alias of each child, so several keys may share one node.
type DispatchNode struct {
	Name        string
	Aliases     []string
	Summary     string
	Usage       string
	Description string
	Permission  string
	PlayerOnly  bool
	Params      []ParamSpec
	Handler     HandlerFunc
	Category    CommandCategory
	Children    map[string]*DispatchNode

	parent       *DispatchNode
	requiredArgs int
}

// Parent returns the node this one was attached to, or nil for a root.
func (n *DispatchNode) Parent() *DispatchNode {
	return n.parent
}

// Path returns the names from the root down to n.
func (n *DispatchNode) Path() []string {
	if n.parent == nil {
		return []string{n.Name}
	}
	return append(n.parent.Path(), n.Name)
}

// RequiredArgs is the minimum number of tokens the handler needs.
func (n *DispatchNode) RequiredArgs() int {
	return n.requiredArgs
}

// Keys returns the name followed by every alias.
func (n *DispatchNode) Keys() []string {
	return append([]string{n.Name}, n.Aliases...)
}

// UsageFor renders the usage line for the alias the caller typed.
func (n *DispatchNode) UsageFor(alias string) string {
	return strings.ReplaceAll(n.Usage, "<command>", alias)
}

// UniqueChildren returns each child once, in no particular order.
func (n *DispatchNode) UniqueChildren() []*DispatchNode {
	seen := make(map[*DispatchNode]bool, len(n.Children))
	out := make([]*DispatchNode, 0, len(n.Children))
	for _, child := range n.Children {
		if seen[child] {
			continue
		}
		seen[child] = true
		out = append(out, child)
	}
	return out
}

// generatedUsage builds "<command> sub <a> [b]" from the parameter list.
func (n *DispatchNode) generatedUsage() string {
	parts := []string{"<command>"}
	if n.Handler == nil && len(n.Children) > 0 {
		parts = append(parts, "<subcommand>")
	}
	for _, p := range n.Params {
		parts = append(parts, p.placeholder())
	}
	return strings.Join(parts, " ")
}
