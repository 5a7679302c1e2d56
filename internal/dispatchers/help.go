package dispatchers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(line string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(line)
	for i, c := range line {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(line[:cmdEnd])
	rest := ""
	if cmdEnd < len(line) {
		rest = line[cmdEnd:]
	}

	if cmd == "" {
		return style.Muted(rest)
	}
	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

// Overview renders the list of registered commands grouped by category.
func (d *Dispatcher) Overview() string {
	var out strings.Builder

	grouped := make(map[CommandCategory][]*DispatchNode)
	for _, root := range d.RootNodes() {
		grouped[root.Category] = append(grouped[root.Category], root)
	}

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}
		out.WriteString(style.Header(cat.String()))
		out.WriteString("\n")
		for _, cmd := range cmds {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", cmd.Name)), cmd.Summary)
		}
		out.WriteString("\n")
	}

	out.WriteString("See 'help <command>' for detailed help on a specific command.\n")
	return out.String()
}

// HelpText renders detailed help for node as typed through alias.
func HelpText(node *DispatchNode, alias string) string {
	var out strings.Builder

	out.WriteString(strings.Join(node.Path(), " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	if node.Usage != "" {
		out.WriteString(style.Header("USAGE"))
		out.WriteString("\n   ")
		out.WriteString(formatUsage(node.UsageFor(alias)))
		out.WriteString("\n\n")
	}

	if node.Description != "" {
		out.WriteString(node.Description)
		out.WriteString("\n\n")
	}

	if len(node.Aliases) > 0 {
		fmt.Fprintf(&out, "%s\n   %s\n\n", style.Header("ALIASES"), strings.Join(node.Aliases, ", "))
	}

	if children := node.UniqueChildren(); len(children) > 0 {
		out.WriteString(style.Header("COMMANDS"))
		out.WriteString("\n")
		sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if len(node.Params) > 0 {
		out.WriteString(style.Header("ARGUMENTS"))
		out.WriteString("\n")
		for _, p := range node.Params {
			desc := p.Description
			if p.Policy != PolicyRequired {
				desc = strings.TrimSpace(desc + " " + style.Muted("("+p.Policy.String()+")"))
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", p.placeholder())), desc)
		}
		out.WriteString("\n")
	}

	var notes []string
	if node.PlayerOnly {
		notes = append(notes, "only sessions can run this command")
	}
	if node.Permission != "" {
		notes = append(notes, "requires permission "+node.Permission)
	}
	if len(notes) > 0 {
		out.WriteString(style.Muted(strings.Join(notes, "; ")))
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n") + "\n"
}

// Resolve walks path from the registered roots, matching child keys exactly.
func (d *Dispatcher) Resolve(path []string) (*DispatchNode, bool) {
	if len(path) == 0 {
		return nil, false
	}
	node, ok := d.Lookup(path[0])
	if !ok {
		return nil, false
	}
	for _, key := range path[1:] {
		child, ok := node.Children[key]
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}
