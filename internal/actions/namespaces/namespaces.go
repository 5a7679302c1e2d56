package namespaces

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/store"
)

// List handles `ns list`.
func List(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, _ []any) error {
		all := deps.Directory.Namespaces()
		if len(all) == 0 {
			sender.SendMessage("No namespaces.")
			return nil
		}

		lines := make([]string, 0, len(all))
		for _, ns := range all {
			n, err := deps.Directory.CountSessions(ns.Name())
			if err != nil {
				return err
			}
			lines = append(lines, fmt.Sprintf("  %-12s %3d online  %s", ns.Name(), n, ns.Description()))
		}
		sender.SendMessage(strings.Join(lines, "\n"))
		return nil
	}
}

// Info handles `ns info <namespace>`.
func Info(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		ns := args[0].(domain.Namespace)

		members, err := deps.Directory.ListSessions(store.ListFilter{ActiveOnly: true, Namespace: ns.Name()})
		if err != nil {
			return err
		}

		names := make([]string, len(members))
		for i, m := range members {
			names[i] = m.Name()
		}
		online := "nobody"
		if len(names) > 0 {
			online = strings.Join(names, ", ")
		}

		desc := ns.Description()
		if desc == "" {
			desc = "(no description)"
		}
		sender.SendMessage(fmt.Sprintf("%s: %s\n  online: %s", ns.Name(), desc, online))
		return nil
	}
}

// Move handles `ns move <session> <namespace>`.
func Move(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		target := args[0].(domain.Session)
		ns := args[1].(domain.Namespace)

		if target.Namespace() == ns.Name() {
			sender.SendMessage(fmt.Sprintf("%s is already in %s.", target.Name(), ns.Name()))
			return nil
		}
		if err := deps.Directory.MoveSession(target.ID(), ns.Name()); err != nil {
			return err
		}

		target.SendMessage(fmt.Sprintf("%s moved you to %s.", sender.Name(), ns.Name()))
		sender.SendMessage(fmt.Sprintf("Moved %s from %s to %s.", target.Name(), target.Namespace(), ns.Name()))
		return nil
	}
}

// Create handles `ns create <name> <description...>`.
func Create(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		name := args[0].(string)
		desc := args[1].(string)

		err := deps.Directory.CreateNamespace(name, desc)
		if errors.Is(err, store.ErrNamespaceExists) {
			sender.SendMessage(fmt.Sprintf("Namespace %s already exists.", name))
			return nil
		}
		if err != nil {
			return err
		}
		sender.SendMessage(fmt.Sprintf("Created namespace %s.", name))
		return nil
	}
}
