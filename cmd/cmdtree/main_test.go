package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("CMDTREE_DATA_DIR", "")
}

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--db=:memory:"}, args...), strings.NewReader(""), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_OneShot(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"sum", []string{"sum", "1", "-2", "40"}, 0, "Sum of 3 number(s): 39", ""},
		{"missing args", []string{"sum"}, 2, "Usage: sum <numbers...>", ""},
		{"bad token", []string{"vote", "yes"}, 2, "'yes' is neither true nor false.", ""},
		{"unknown command", []string{"rol"}, 1, "", "'rol' is not a known command."},
		{"player only", []string{"inbox"}, 2, "", "This command can only be run by players."},
		{"as session", []string{"--as=alex", "whoami"}, 0, "You are Alex in lobby", ""},
		{"permission denied", []string{"--as=Notch", "ns", "move", "Alex", "arena"}, 2, "", "missing permission cmdtree.ns.move"},
		{"unknown --as", []string{"--as=Herobrine", "whoami"}, 2, "", "'Herobrine' is not an active session."},
		{"login needs the shell", []string{"login", "Alex"}, 1, "", "login is only available in the interactive shell"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			code, stdout, stderr := runArgs(t, tt.args...)
			require.Equal(t, tt.wantCode, code, "stdout=%q stderr=%q", stdout, stderr)
			require.Contains(t, stdout, tt.wantStdout)
			require.Contains(t, stderr, tt.wantStderr)
		})
	}
}

func TestRun_Complete(t *testing.T) {
	isolate(t)

	code, stdout, _ := runArgs(t, "__complete", "msg", "a")
	require.Equal(t, 0, code)
	require.Equal(t, "Alex\n", stdout)

	code, stdout, _ = runArgs(t, "__complete", "session", "")
	require.Equal(t, 0, code)
	require.Equal(t, "hide\nlist\nls\nunhide\nwhois\n", stdout)

	code, stdout, _ = runArgs(t, "--as=Alex", "__complete", "ns", "m")
	require.Equal(t, 0, code)
	require.Equal(t, "move\n", stdout)
}

func TestRun_Completions(t *testing.T) {
	isolate(t)

	code, stdout, _ := runArgs(t, "completions", "zsh")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "#compdef")
	require.Contains(t, stdout, "__complete")
	require.Contains(t, stdout, "roll:Roll dice")

	code, _, stderr := runArgs(t, "completions", "pwsh")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "unsupported shell")
}

func TestRun_Help(t *testing.T) {
	isolate(t)

	code, stdout, _ := runArgs(t, "--help")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Flags:")
	require.Contains(t, stdout, "--as=<session>")
	require.Contains(t, stdout, "msg")
}

func TestRun_ConfigPersists(t *testing.T) {
	isolate(t)

	code, stdout, _ := runArgs(t, "config", "set", "usage_prefix", "Try:")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, `usage_prefix set to "Try:".`)

	code, stdout, _ = runArgs(t, "sum")
	require.Equal(t, 2, code)
	require.Contains(t, stdout, "Try:sum <numbers...>")
}

func TestRun_PlayerOnlyMessageFromConfig(t *testing.T) {
	isolate(t)

	code, _, _ := runArgs(t, "config", "set", "player_only_message", "Log", "in", "first.")
	require.Equal(t, 0, code)

	code, _, stderr := runArgs(t, "inbox")
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "Log in first.")
	require.NotContains(t, stderr, "only sessions can run this command")
}
