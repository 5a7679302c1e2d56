package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFlags []string
		wantRest  []string
	}{
		{"none", []string{"sum", "1"}, []string{}, []string{"sum", "1"}},
		{"leading", []string{"--plain", "--as=Alex", "inbox"}, []string{"--plain", "--as=Alex"}, []string{"inbox"}},
		{"negative numbers stay", []string{"sum", "-1", "--2"}, []string{}, []string{"sum", "-1", "--2"}},
		{"short help", []string{"-h"}, []string{"-h"}, []string{}},
		{"bare dashes end flags", []string{"--", "roll"}, []string{}, []string{"--", "roll"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, rest := SplitArgs(tt.args)
			require.ElementsMatch(t, tt.wantFlags, flags.Raw())
			require.ElementsMatch(t, tt.wantRest, rest)
		})
	}
}

func TestFlags_Values(t *testing.T) {
	flags, _ := SplitArgs([]string{"--as=Alex", "--db=/tmp/x.db", "--no-color"})

	require.Equal(t, "Alex", flags.String("--as", ""))
	require.Equal(t, "/tmp/x.db", flags.String("--db", ""))
	require.Equal(t, "fallback", flags.String("--missing", "fallback"))
	require.True(t, flags.Has("--no-color"))
	require.True(t, flags.Has("--help", "--no-color"))
	require.False(t, flags.Has("--plain"))
}

func TestFlagsHelp(t *testing.T) {
	help := FlagsHelp()
	require.Contains(t, help, "--as=<session>")
	require.Contains(t, help, "--help, -h")
}
