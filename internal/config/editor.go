package config

import "strings"

// Set replaces the value of key in lines, keeping any inline comment, or
// appends a new line. It reports whether an existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	value = quote(value)

	for i, line := range lines {
		k, rest, ok := splitEntry(line)
		if !ok || k != key {
			continue
		}

		if idx := strings.Index(rest, " #"); idx >= 0 {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(rest[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset drops every line assigning key.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, _, ok := splitEntry(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

func splitEntry(line string) (key, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	key, rest, ok = strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), rest, true
}
