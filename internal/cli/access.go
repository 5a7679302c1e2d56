package cli

import (
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

// CheckAccess walks fields through d's tree the way Execute does and reports
// why sender would be turned away. The dispatcher itself stays silent on a
// missing permission; front ends call this first so the user gets a reason
// and the process a non-zero exit code.
//
// It returns nil when the command would run or when the root is unknown.
func CheckAccess(d *dispatchers.Dispatcher, sender domain.Sender, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	node, ok := d.Lookup(fields[0])
	if !ok {
		return nil
	}

	path := []string{fields[0]}
	rest := fields[1:]
	for {
		if node.PlayerOnly {
			if _, ok := sender.(domain.Session); !ok {
				return usage.SenderKind(strings.Join(path, " "))
			}
		}
		if node.Permission != "" && !sender.HasPermission(node.Permission) {
			return usage.PermissionDenied(strings.Join(path, " "), node.Permission)
		}
		if len(rest) == 0 {
			return nil
		}
		child, ok := node.Children[rest[0]]
		if !ok {
			return nil
		}
		path = append(path, rest[0])
		node, rest = child, rest[1:]
	}
}
