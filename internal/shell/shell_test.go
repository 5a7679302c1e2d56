package shell

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdtree/internal/cli"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/store"
	"github.com/footprint-tools/cmdtree/internal/testutil"
)

type memConfig map[string]string

func (c memConfig) Get(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

func (c memConfig) GetAll() (map[string]string, error) { return c, nil }

func (c memConfig) Set(key, value string) error {
	c[key] = value
	return nil
}

func (c memConfig) Unset(key string) error {
	delete(c, key)
	return nil
}

func newTestShell(t *testing.T) (*Shell, *store.Store, *bytes.Buffer) {
	t.Helper()

	s := testutil.NewDemoStore(t)
	d := dispatchers.New(&domain.Host{Sessions: s, Namespaces: s})
	out := &bytes.Buffer{}
	sh := New(d, s, out, WithSessions(s), WithPrompt("$ "))

	require.NoError(t, cli.Install(cli.Env{
		Store:      s,
		Config:     memConfig{},
		Dispatcher: d,
		Login:      sh.Login,
		Intn:       func(int) int { return 0 },
	}))
	return sh, s, out
}

func TestExec_Exit(t *testing.T) {
	sh, _, _ := newTestShell(t)
	require.True(t, sh.Exec("exit"))
	require.True(t, sh.Exec("  QUIT now"))
	require.False(t, sh.Exec(""))
	require.False(t, sh.Exec("roll"))
}

func TestExec_ConsoleFeedback(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"roll", "You rolled a 1 (d6).\n"},
		{"inbox", "This command can only be run by players.\n"},
		{"rol", "'rol' is not a known command."},
		{"sum 2 x", "'x' is not a whole number.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			sh, _, out := newTestShell(t)
			require.False(t, sh.Exec(tt.line))
			require.Contains(t, out.String(), tt.want)
		})
	}
}

func TestLoginLogout(t *testing.T) {
	sh, _, out := newTestShell(t)
	require.Equal(t, "console$ ", sh.Prompt())

	sh.Exec("login alex")
	require.Contains(t, out.String(), "Logged in as Alex.")
	require.Equal(t, "Alex$ ", sh.Prompt())

	sess, ok := sh.Sender().(domain.Session)
	require.True(t, ok)
	require.Equal(t, "Alex", sess.Name())

	out.Reset()
	sh.Exec("whoami")
	require.Contains(t, out.String(), "You are Alex in lobby")

	out.Reset()
	sh.Exec("logout")
	require.Equal(t, "console$ ", sh.Prompt())
	_, isSession := sh.Sender().(domain.Session)
	require.False(t, isSession)
}

func TestLogin_InactiveSession(t *testing.T) {
	sh, s, _ := newTestShell(t)

	sessions, err := s.ListSessions(store.ListFilter{})
	require.NoError(t, err)
	var steve *store.Session
	for _, sess := range sessions {
		if sess.Name() == "Steve" {
			steve = sess
		}
	}
	require.NotNil(t, steve)
	require.Error(t, sh.Login(steve))
}

func TestMailboxDrainedAfterCommand(t *testing.T) {
	sh, _, out := newTestShell(t)

	sh.Exec("msg Alex welcome back")
	out.Reset()

	sh.Exec("login Alex")
	require.Equal(t, "Logged in as Alex.\n[console -> you] welcome back\n", out.String())

	out.Reset()
	sh.Exec("roll")
	require.Equal(t, "You rolled a 1 (d6).\n", out.String())
}

func TestPermissionDeniedIsReported(t *testing.T) {
	sh, s, out := newTestShell(t)

	sh.Exec("login Notch")
	out.Reset()
	sh.Exec("ns move Alex arena")
	require.Equal(t, "ns move: missing permission cmdtree.ns.move\n", out.String())

	alex, ok := s.SessionByName("Alex")
	require.True(t, ok)
	require.Equal(t, "lobby", alex.Namespace())
}

func TestSessionGoesAway(t *testing.T) {
	sh, s, out := newTestShell(t)

	sh.Exec("login Notch")
	notch, ok := s.SessionByName("Notch")
	require.True(t, ok)
	require.NoError(t, s.SetActive(notch.ID(), false))

	out.Reset()
	sh.Exec("roll")
	require.Contains(t, out.String(), "Notch is no longer active")
	require.Equal(t, "console$ ", sh.Prompt())
}

func TestPlayerSeesMoves(t *testing.T) {
	sh, _, out := newTestShell(t)

	sh.Exec("login Notch")
	sh.Exec("logout")
	sh.Exec("ns move Notch nether")
	sh.Exec("login Notch")
	out.Reset()

	sh.Exec("whoami")
	require.Contains(t, out.String(), "You are Notch in nether")
}

func TestComplete(t *testing.T) {
	sh, _, _ := newTestShell(t)

	require.Equal(t, []string{"Alex"}, sh.Complete("msg a"))
	require.Equal(t, []string{"roll"}, sh.Complete("ro"))

	sh.Exec("login Alex")
	sh.Exec("session hide Notch")
	require.Empty(t, sh.Complete("msg n"))
}

func TestLineCompleter(t *testing.T) {
	sh, _, _ := newTestShell(t)
	c := lineCompleter{shell: sh}

	tests := []struct {
		line       string
		wantTail   []string
		wantLength int
	}{
		{"ro", []string{"ll "}, 2},
		{"session l", []string{"ist ", "s "}, 1},
		{"msg Al", []string{"ex "}, 2},
		{"msg al", nil, 2},
		{"vote ", []string{"true ", "false "}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, length := c.Do([]rune(tt.line), len([]rune(tt.line)))
			var tails []string
			for _, r := range got {
				tails = append(tails, string(r))
			}
			require.Equal(t, tt.wantTail, tails)
			require.Equal(t, tt.wantLength, length)
		})
	}
}
