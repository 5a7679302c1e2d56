package cli

import (
	"strconv"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// policyKeys are the config keys that feed the dispatcher.
var policyKeys = []string{"usage_prefix", "player_only_message", "session_completer"}

// ApplyPolicy copies a dispatch-related config value into d. Other keys are
// ignored.
func ApplyPolicy(d *dispatchers.Dispatcher, key, value string) {
	switch key {
	case "usage_prefix":
		d.SetUsagePrefix(value)
	case "player_only_message":
		d.SetPlayerOnlyMessage(value)
	case "session_completer":
		if enabled, err := strconv.ParseBool(value); err == nil {
			d.SetSessionCompleterEnabled(enabled)
		}
	}
}

// LoadPolicy applies every dispatch key found in cfg.
func LoadPolicy(d *dispatchers.Dispatcher, cfg domain.ConfigProvider) {
	for _, key := range policyKeys {
		if value, ok := cfg.Get(key); ok {
			ApplyPolicy(d, key, value)
		}
	}
}
