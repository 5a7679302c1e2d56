package config

import (
	"fmt"
	"strconv"
	"strings"
)

const bom = "\uFEFF"

// Parse reads key=value lines into a map. Blank lines and lines starting
// with # are skipped. Values wrapped in double quotes keep their inner
// whitespace; everything else is trimmed. The last occurrence of a key wins.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string, len(lines))

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: missing '='", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = unquote(stripInlineComment(strings.TrimSpace(value)))
	}

	return cfg, nil
}

// stripInlineComment drops a trailing " # comment" that sits outside quotes.
func stripInlineComment(value string) string {
	inQuotes := false
	for i, r := range value {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == '#' && !inQuotes && i > 0 && (value[i-1] == ' ' || value[i-1] == '\t'):
			return strings.TrimSpace(value[:i])
		}
	}
	return value
}

func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		if s, err := strconv.Unquote(value); err == nil {
			return s
		}
		return value[1 : len(value)-1]
	}
	return value
}

// quote wraps values that would not survive Parse unchanged.
func quote(value string) string {
	if value != strings.TrimSpace(value) || strings.Contains(value, " #") || strings.HasPrefix(value, "\"") {
		return strconv.Quote(value)
	}
	return value
}
