package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty input",
			lines: []string{},
			want:  map[string]string{},
		},
		{
			name:  "single key-value",
			lines: []string{"key=value"},
			want:  map[string]string{"key": "value"},
		},
		{
			name:  "ignores blank and comment lines",
			lines: []string{"# header", "", "key1=value1", "   ", "  # indented", "key2=value2"},
			want:  map[string]string{"key1": "value1", "key2": "value2"},
		},
		{
			name:  "trims whitespace around key and value",
			lines: []string{"  key1  =  value1  ", "key2=  value2"},
			want:  map[string]string{"key1": "value1", "key2": "value2"},
		},
		{
			name:  "equals sign in value",
			lines: []string{"equation=x=y+z", "base64=SGVsbG8="},
			want:  map[string]string{"equation": "x=y+z", "base64": "SGVsbG8="},
		},
		{
			name:  "quoted value keeps inner whitespace",
			lines: []string{`usage_prefix="Usage: "`, `prompt="> "`},
			want:  map[string]string{"usage_prefix": "Usage: ", "prompt": "> "},
		},
		{
			name:  "inline comment is dropped",
			lines: []string{"log_level=debug # noisy"},
			want:  map[string]string{"log_level": "debug"},
		},
		{
			name:  "hash without leading space is part of the value",
			lines: []string{"special=!@#$%"},
			want:  map[string]string{"special": "!@#$%"},
		},
		{
			name:  "hash inside quotes is part of the value",
			lines: []string{`prompt="cmd # > "`},
			want:  map[string]string{"prompt": "cmd # > "},
		},
		{
			name:  "empty value is valid",
			lines: []string{"key="},
			want:  map[string]string{"key": ""},
		},
		{
			name:  "BOM is stripped from first line",
			lines: []string{"\uFEFFkey1=value1", "key2=value2"},
			want:  map[string]string{"key1": "value1", "key2": "value2"},
		},
		{
			name:  "duplicate keys - last one wins",
			lines: []string{"key=value1", "key=value2"},
			want:  map[string]string{"key": "value2"},
		},
		{
			name:    "line without equals sign",
			lines:   []string{"key1=value1", "invalid_line"},
			wantErr: true,
		},
		{
			name:    "empty key",
			lines:   []string{"=value"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestQuote_RoundTrips(t *testing.T) {
	for _, value := range []string{"plain", "Usage: ", "> ", " lead", "a # b", `"quoted"`, ""} {
		t.Run(value, func(t *testing.T) {
			got, err := Parse([]string{"k=" + quote(value)})
			require.NoError(t, err)
			require.Equal(t, value, got["k"])
		})
	}
}
