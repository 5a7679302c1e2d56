package dispatchers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newHelpDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	d := New(nil)

	session := Root(RootSpec{Name: "session", Summary: "Inspect sessions", Category: CategorySessions})
	Command(CommandSpec{Name: "list", Aliases: []string{"ls"}, Parent: session, Summary: "List sessions", Handler: capture(new([]any))})
	Command(CommandSpec{
		Name:       "hide",
		Parent:     session,
		Summary:    "Hide a session",
		PlayerOnly: true,
		Permission: "cmdtree.hide",
		Params:     []ParamSpec{Required("target", TypeOf[string]()).Describe("session to hide")},
		Handler:    capture(new([]any)),
	})
	require.NoError(t, d.Register(session))

	require.NoError(t, d.Register(Command(CommandSpec{
		Name:     "roll",
		Summary:  "Roll dice",
		Category: CategoryUtilities,
		Params:   []ParamSpec{Defaulted("count", TypeOf[int](), "1")},
		Handler:  capture(new([]any)),
	})))
	return d
}

func TestOverview(t *testing.T) {
	d := newHelpDispatcher(t)
	out := d.Overview()

	require.Contains(t, out, "inspect sessions")
	require.Contains(t, out, "utilities")
	require.Contains(t, out, "session")
	require.Contains(t, out, "Roll dice")
	require.NotContains(t, out, "manage namespaces")
	require.Less(t, strings.Index(out, "inspect sessions"), strings.Index(out, "utilities"))
}

func TestHelpText(t *testing.T) {
	d := newHelpDispatcher(t)

	node, ok := d.Resolve([]string{"session"})
	require.True(t, ok)
	out := HelpText(node, "session")
	require.Contains(t, out, "session - Inspect sessions")
	require.Contains(t, out, "COMMANDS")
	require.Contains(t, out, "hide")
	require.Contains(t, out, "List sessions")

	node, ok = d.Resolve([]string{"session", "hide"})
	require.True(t, ok)
	out = HelpText(node, "hide")
	require.Contains(t, out, "session hide - Hide a session")
	require.Contains(t, out, "hide <target>")
	require.Contains(t, out, "session to hide")
	require.Contains(t, out, "only sessions can run this command")
	require.Contains(t, out, "requires permission cmdtree.hide")

	node, ok = d.Resolve([]string{"roll"})
	require.True(t, ok)
	out = HelpText(node, "roll")
	require.Contains(t, out, "[count=1]")
	require.Contains(t, out, "(defaulted)")
}

func TestResolve(t *testing.T) {
	d := newHelpDispatcher(t)

	node, ok := d.Resolve([]string{"session", "ls"})
	require.True(t, ok)
	require.Equal(t, "list", node.Name)

	_, ok = d.Resolve([]string{"session", "nope"})
	require.False(t, ok)
	_, ok = d.Resolve(nil)
	require.False(t, ok)
	_, ok = d.Resolve([]string{"missing"})
	require.False(t, ok)
}

func TestFormatUsage(t *testing.T) {
	// Styling is off in tests, so the text comes back unchanged.
	require.Equal(t, "roll [count=1]", formatUsage("roll [count=1]"))
	require.Equal(t, "whoami", formatUsage("whoami"))
}
