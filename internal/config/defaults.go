package config

import (
	"strconv"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/paths"
)

// Defaults holds the in-code default for every declared key. Values that
// depend on the environment are computed on each call.
var Defaults = buildDefaults()

func buildDefaults() map[string]func() string {
	defaults := make(map[string]func() string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		value := key.Default
		defaults[key.Name] = func() string { return value }
	}
	defaults["db_path"] = paths.DatabasePath
	return defaults
}

func defaultFor(key string) (string, bool) {
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	return "", false
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err != nil {
		return defaultFor(key)
	}

	cfg, err := Parse(lines)
	if err != nil {
		return defaultFor(key)
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}
	return defaultFor(key)
}

// GetBool reads key as a boolean. Unparseable values fall back to the
// key's default.
func GetBool(key string) bool {
	value, _ := Get(key)
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	def, _ := defaultFor(key)
	b, _ := strconv.ParseBool(def)
	return b
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}
	return result, nil
}
