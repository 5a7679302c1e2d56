package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"session", "session", 0},
		{"roll", "rolls", 1},
		{"inbox", "inbx", 1},
		{"namespace", "namespce", 1},
		{"login", "loggin", 1},
		{"session", "sesison", 2},
		{"config", "cnofig", 2},
		{"whoami", "xyz123", 6},
		{"", "inbox", 5},
		{"vote", "", 4},
		{"", "", 0},
		{"VOTE", "vote", 0},
		{"café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein(tt.a, tt.b))
			require.Equal(t, tt.want, levenshtein(tt.b, tt.a))
		})
	}
}

func TestFindSimilarNames(t *testing.T) {
	roots := []string{"roll", "session", "config", "whoami", "inbox", "login", "vote", "msg", "sum", "help"}

	tests := []struct {
		name       string
		input      string
		maxResults int
		want       []string
	}{
		{"dropped letter", "rol", 3, []string{"roll"}},
		{"swapped letters", "lgoin", 3, []string{"login"}},
		{"longer typo", "sesion", 3, []string{"session"}},
		{"two letter input", "sm", 3, []string{"sum"}},
		{"ties sort by name", "hepl", 3, []string{"help", "roll"}},
		{"nothing close", "xyz123456", 3, []string{}},
		{"zero results asked", "sesion", 0, []string{}},
		{"exact match is not a suggestion", "session", 3, []string{}},
		{"single letters stay quiet", "x", 3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindSimilarNames(tt.input, roots, tt.maxResults))
		})
	}
}

func TestFindSimilarNames_SortedByDistance(t *testing.T) {
	names := []string{"version", "sessions", "session"}

	require.Equal(t, []string{"session", "sessions", "version"}, FindSimilarNames("sesion", names, 3))
	require.Equal(t, []string{"session"}, FindSimilarNames("sesion", names, 1))
}

func TestFindSimilarNames_Aliases(t *testing.T) {
	require.Equal(t, []string{"tell"}, FindSimilarNames("tel", []string{"msg", "tell", "w"}, 3))
}
