// Package cli assembles the cmdtree command set on top of the dispatch
// engine: the command tree, the terminal senders and the global flags.
package cli

import (
	"fmt"
	"reflect"

	configcmd "github.com/footprint-tools/cmdtree/internal/actions/config"
	"github.com/footprint-tools/cmdtree/internal/actions/help"
	"github.com/footprint-tools/cmdtree/internal/actions/messaging"
	"github.com/footprint-tools/cmdtree/internal/actions/namespaces"
	"github.com/footprint-tools/cmdtree/internal/actions/sessions"
	"github.com/footprint-tools/cmdtree/internal/actions/utilities"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/store"
)

// Permission tags checked by the tree.
const (
	PermNamespaceMove   = "cmdtree.ns.move"
	PermNamespaceCreate = "cmdtree.ns.create"
	PermConfig          = "cmdtree.config"
)

// Env carries what the handlers need.
type Env struct {
	Store      *store.Store
	Config     domain.ConfigProvider
	Dispatcher *dispatchers.Dispatcher

	// Login is nil outside the interactive shell.
	Login func(domain.Session) error

	// Intn overrides the dice source; nil means math/rand.
	Intn func(n int) int
}

// Install binds the cmdtree argument types and registers every root
// command with env.Dispatcher.
func Install(env Env) error {
	d := env.Dispatcher
	if err := configcmd.RegisterKeyType(d.Registry()); err != nil {
		return fmt.Errorf("bind config key type: %w", err)
	}
	if err := help.RegisterTopicType(d); err != nil {
		return fmt.Errorf("bind help topic type: %w", err)
	}
	messages := map[reflect.Type]string{
		dispatchers.TypeOf[domain.Session]():      "'{value}' is not an active session.",
		dispatchers.TypeOf[domain.KnownSession](): "No session named '{value}' is known.",
		dispatchers.TypeOf[domain.Namespace]():    "There is no namespace called '{value}'.",
		dispatchers.TypeOf[int]():                 "'{value}' is not a whole number.",
		dispatchers.TypeOf[int64]():               "'{value}' is not a whole number.",
		dispatchers.TypeOf[bool]():                "'{value}' is neither true nor false.",
	}
	for t, msg := range messages {
		if err := d.Registry().SetErrorMessage(t, msg); err != nil {
			return fmt.Errorf("set error message for %s: %w", t, err)
		}
	}

	for _, root := range BuildTree(env) {
		if err := d.Register(root); err != nil {
			return err
		}
	}
	return nil
}

// BuildTree returns the root commands.
func BuildTree(env Env) []*dispatchers.DispatchNode {
	sessionDeps := sessions.Deps{Directory: env.Store, Login: env.Login}
	messagingDeps := messaging.Deps{Mailbox: env.Store}
	nsDeps := namespaces.Deps{Directory: env.Store}
	configDeps := configcmd.Deps{
		Provider: env.Config,
		Apply:    func(key, value string) { ApplyPolicy(env.Dispatcher, key, value) },
	}
	utilDeps := utilities.DefaultDeps()
	if env.Intn != nil {
		utilDeps.Intn = env.Intn
	}

	var roots []*dispatchers.DispatchNode

	roots = append(roots,
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     "msg",
			Aliases:  []string{"tell", "w"},
			Summary:  "Send a private message",
			Params:   []dispatchers.ParamSpec{sessionArg, dispatchers.Rest("message").Describe("the text to send")},
			Handler:  messaging.Msg(messagingDeps),
			Category: dispatchers.CategoryMessaging,
		}),
		dispatchers.Command(dispatchers.CommandSpec{
			Name:        "inbox",
			Summary:     "Read your messages",
			Description: "Shows unread messages and marks them read. Pass 'true' to show the whole mailbox.",
			PlayerOnly:  true,
			Params: []dispatchers.ParamSpec{
				dispatchers.Defaulted("all", dispatchers.TypeOf[bool](), "false").Describe("include messages already read"),
			},
			Handler:  messaging.Inbox(messagingDeps),
			Category: dispatchers.CategoryMessaging,
		}),
	)

	session := dispatchers.Root(dispatchers.RootSpec{
		Name:     "session",
		Aliases:  []string{"s"},
		Summary:  "Inspect sessions",
		Category: dispatchers.CategorySessions,
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "list",
		Aliases: []string{"ls"},
		Parent:  session,
		Summary: "List active sessions",
		Usage:   "session <command> [namespace]",
		Params: []dispatchers.ParamSpec{
			dispatchers.Optional("namespace", dispatchers.TypeOf[domain.Namespace]()).Describe("only list this namespace"),
		},
		Handler: sessions.List(sessionDeps),
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "whois",
		Parent:  session,
		Summary: "Show details about a session",
		Usage:   "session <command> <session>",
		Params:  []dispatchers.ParamSpec{knownSessionArg},
		Handler: sessions.Whois(sessionDeps),
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:       "hide",
		Parent:     session,
		Summary:    "Stop seeing a session in listings and completions",
		Usage:      "session <command> <session>",
		PlayerOnly: true,
		Params:     []dispatchers.ParamSpec{sessionArg},
		Handler:    sessions.Hide(sessionDeps),
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:       "unhide",
		Parent:     session,
		Summary:    "See a hidden session again",
		Usage:      "session <command> <session>",
		PlayerOnly: true,
		Params:     []dispatchers.ParamSpec{knownSessionArg},
		Handler:    sessions.Unhide(sessionDeps),
	})

	roots = append(roots,
		session,
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     "whoami",
			Summary:  "Show who you are acting as",
			Handler:  sessions.Whoami(sessionDeps),
			Category: dispatchers.CategorySessions,
		}),
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     "login",
			Summary:  "Act as a session in this shell",
			Params:   []dispatchers.ParamSpec{sessionArg},
			Handler:  sessions.Login(sessionDeps),
			Category: dispatchers.CategorySessions,
		}),
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     "logout",
			Summary:  "Return to the console",
			Handler:  sessions.Logout(sessionDeps),
			Category: dispatchers.CategorySessions,
		}),
	)

	ns := dispatchers.Root(dispatchers.RootSpec{
		Name:     "ns",
		Aliases:  []string{"namespace"},
		Summary:  "Manage namespaces",
		Category: dispatchers.CategoryNamespaces,
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "list",
		Aliases: []string{"ls"},
		Parent:  ns,
		Summary: "List namespaces with their population",
		Handler: namespaces.List(nsDeps),
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "info",
		Parent:  ns,
		Summary: "Describe a namespace",
		Usage:   "ns <command> <namespace>",
		Params:  []dispatchers.ParamSpec{namespaceArg},
		Handler: namespaces.Info(nsDeps),
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:       "move",
		Parent:     ns,
		Summary:    "Move a session to another namespace",
		Usage:      "ns <command> <session> <namespace>",
		Permission: PermNamespaceMove,
		Params:     []dispatchers.ParamSpec{sessionArg, namespaceArg},
		Handler:    namespaces.Move(nsDeps),
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:       "create",
		Parent:     ns,
		Summary:    "Create a namespace",
		Usage:      "ns <command> <name> <description...>",
		Permission: PermNamespaceCreate,
		Params: []dispatchers.ParamSpec{
			dispatchers.Required("name", dispatchers.TypeOf[string]()).Describe("a single word"),
			dispatchers.Rest("description"),
		},
		Handler: namespaces.Create(nsDeps),
	})
	roots = append(roots, ns)

	roots = append(roots,
		dispatchers.Command(dispatchers.CommandSpec{
			Name:    "roll",
			Aliases: []string{"dice"},
			Summary: "Roll dice",
			Params: []dispatchers.ParamSpec{
				dispatchers.Defaulted("count", dispatchers.TypeOf[int](), "1").Describe("how many dice"),
				dispatchers.Defaulted("sides", dispatchers.TypeOf[int](), "6").Describe("faces per die"),
			},
			Handler:  utilities.Roll(utilDeps),
			Category: dispatchers.CategoryUtilities,
		}),
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     "sum",
			Summary:  "Add whole numbers",
			Params:   []dispatchers.ParamSpec{dispatchers.Variadic("numbers", dispatchers.TypeOf[int64]())},
			Handler:  utilities.Sum(utilDeps),
			Category: dispatchers.CategoryUtilities,
		}),
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     "vote",
			Summary:  "Count true/false ballots",
			Params:   []dispatchers.ParamSpec{dispatchers.Variadic("ballots", dispatchers.TypeOf[bool]())},
			Handler:  utilities.Vote(utilDeps),
			Category: dispatchers.CategoryUtilities,
		}),
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     "help",
			Aliases:  []string{"?"},
			Summary:  "Show help for a command",
			Params:   []dispatchers.ParamSpec{topicArg},
			Handler:  help.Help(help.Deps{Dispatcher: env.Dispatcher}),
			Category: dispatchers.CategoryUtilities,
		}),
	)

	cfg := dispatchers.Root(dispatchers.RootSpec{
		Name:     "config",
		Summary:  "Read and change settings",
		Category: dispatchers.CategoryConfig,
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "get",
		Parent:  cfg,
		Summary: "Print a setting",
		Usage:   "config <command> <key>",
		Params:  []dispatchers.ParamSpec{configKeyArg},
		Handler: configcmd.Get(configDeps),
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "list",
		Parent:  cfg,
		Summary: "Print every setting",
		Handler: configcmd.List(configDeps),
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:       "set",
		Parent:     cfg,
		Summary:    "Change a setting",
		Usage:      "config <command> <key> <value...>",
		Permission: PermConfig,
		Params:     []dispatchers.ParamSpec{configKeyArg, dispatchers.Rest("value")},
		Handler:    configcmd.Set(configDeps),
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:       "unset",
		Parent:     cfg,
		Summary:    "Restore a setting's default",
		Usage:      "config <command> <key>",
		Permission: PermConfig,
		Params:     []dispatchers.ParamSpec{configKeyArg},
		Handler:    configcmd.Unset(configDeps),
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:       "completer",
		Parent:     cfg,
		Summary:    "Turn session name completion on or off",
		Usage:      "config <command> <true|false>",
		Permission: PermConfig,
		Params:     []dispatchers.ParamSpec{dispatchers.Required("enabled", dispatchers.TypeOf[bool]())},
		Handler:    configcmd.Completer(configDeps),
	})
	roots = append(roots, cfg)

	return roots
}
