package config

import (
	"sort"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Key is a declared, visible configuration key.
type Key string

// KeyErrorMessage is shown when a token is not a config key.
const KeyErrorMessage = "'{value}' is not a config key. Try 'config list'."

// RegisterKeyType binds Key in r.
func RegisterKeyType(r *dispatchers.Registry) error {
	return r.Register(dispatchers.TypeOf[Key](),
		dispatchers.ResolverFunc(resolveKey),
		dispatchers.CompleterFunc(completeKey),
		KeyErrorMessage,
	)
}

func resolveKey(arg dispatchers.Argument) (any, bool) {
	key, ok := domain.GetConfigKey(arg.Value)
	if !ok || key.Hidden {
		return nil, false
	}
	return Key(key.Name), true
}

func completeKey(arg dispatchers.Argument) []string {
	var out []string
	for _, name := range domain.ConfigKeyNames() {
		if strings.HasPrefix(name, strings.ToLower(arg.Value)) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
