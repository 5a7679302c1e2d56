// Package config implements the config command group.
package config

import "github.com/footprint-tools/cmdtree/internal/domain"

type Deps struct {
	Provider domain.ConfigProvider

	// Apply pushes a changed value into the running process, for keys that
	// affect dispatch. It may be nil.
	Apply func(key, value string)
}

func (d Deps) apply(key, value string) {
	if d.Apply != nil {
		d.Apply(key, value)
	}
}
