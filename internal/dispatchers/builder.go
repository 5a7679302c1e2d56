package dispatchers

import (
	"fmt"
	"slices"

	"github.com/footprint-tools/cmdtree/internal/usage"
)

// CommandSpec describes a node. With a nil Parent the node is a root.
type CommandSpec struct {
	Name        string
	Aliases     []string
	Parent      *DispatchNode
	Summary     string
	Usage       string
	Description string
	Permission  string
	PlayerOnly  bool
	Params      []ParamSpec
	Handler     HandlerFunc
	Category    CommandCategory
}

type RootSpec struct {
	Name        string
	Aliases     []string
	Summary     string
	Usage       string
	Description string
	Permission  string
	Category    CommandCategory
}

type GroupSpec struct {
	Name       string
	Aliases    []string
	Parent     *DispatchNode
	Summary    string
	Usage      string
	Permission string
	PlayerOnly bool
}

// NewNode validates spec and builds its node, attaching it to spec.Parent
// when one is given. When Usage is empty one is generated from Params.
func NewNode(spec CommandSpec) (*DispatchNode, error) {
	if spec.Name == "" {
		return nil, usage.InvalidDescriptor("", "command has no name")
	}
	if len(spec.Params) > 0 && spec.Handler == nil {
		return nil, usage.InvalidDescriptor(spec.Name, "parameters declared without a handler")
	}
	if err := validateParams(spec.Name, spec.Params); err != nil {
		return nil, err
	}

	node := &DispatchNode{
		Name:         spec.Name,
		Aliases:      slices.Clone(spec.Aliases),
		Summary:      spec.Summary,
		Usage:        spec.Usage,
		Description:  spec.Description,
		Permission:   spec.Permission,
		PlayerOnly:   spec.PlayerOnly,
		Params:       slices.Clone(spec.Params),
		Handler:      spec.Handler,
		Category:     spec.Category,
		Children:     make(map[string]*DispatchNode),
		requiredArgs: requiredArgCount(spec.Params),
	}
	if node.Usage == "" && spec.Handler != nil {
		node.Usage = node.generatedUsage()
	}

	if spec.Parent != nil {
		if err := AddSubcommand(spec.Parent, node); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// AddSubcommand attaches child under its name and every alias. A child can
// only ever have one parent.
func AddSubcommand(parent, child *DispatchNode) error {
	if parent == nil || child == nil {
		return fmt.Errorf("add subcommand: nil node")
	}
	if child.parent != nil && child.parent != parent {
		return usage.InvalidDescriptor(child.Name,
			fmt.Sprintf("already attached to '%s'", child.parent.Name))
	}
	for p := parent; p != nil; p = p.parent {
		if p == child {
			return usage.InvalidDescriptor(child.Name, "cannot be its own ancestor")
		}
	}
	for _, key := range child.Keys() {
		if existing, ok := parent.Children[key]; ok && existing != child {
			return usage.InvalidDescriptor(parent.Name,
				fmt.Sprintf("subcommand alias '%s' is already taken by '%s'", key, existing.Name))
		}
	}

	child.parent = parent
	if parent.Children == nil {
		parent.Children = make(map[string]*DispatchNode)
	}
	for _, key := range child.Keys() {
		parent.Children[key] = child
	}
	if parent.Usage == "" && parent.Handler == nil {
		parent.Usage = "<command> <subcommand>"
	}
	return nil
}

// Root builds a router node with no handler of its own.
func Root(spec RootSpec) *DispatchNode {
	return must(NewNode(CommandSpec{
		Name:        spec.Name,
		Aliases:     spec.Aliases,
		Summary:     spec.Summary,
		Usage:       spec.Usage,
		Description: spec.Description,
		Permission:  spec.Permission,
		Category:    spec.Category,
	}))
}

// Group builds a router node under spec.Parent.
func Group(spec GroupSpec) *DispatchNode {
	return must(NewNode(CommandSpec{
		Name:       spec.Name,
		Aliases:    spec.Aliases,
		Parent:     spec.Parent,
		Summary:    spec.Summary,
		Usage:      spec.Usage,
		Permission: spec.Permission,
		PlayerOnly: spec.PlayerOnly,
	}))
}

// Command builds a node with a handler. Like the other builders it panics on
// an invalid descriptor; use NewNode to get the error instead.
func Command(spec CommandSpec) *DispatchNode {
	return must(NewNode(spec))
}

func must(node *DispatchNode, err error) *DispatchNode {
	if err != nil {
		panic(err)
	}
	return node
}
