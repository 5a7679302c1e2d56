package config

import (
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

// Provider implements domain.ConfigProvider over ~/.cmdtreerc. Writes are
// limited to declared keys and serialised through WithLock.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		lines, _ = Set(lines, key, value)
		return WriteLines(lines)
	})
}

func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		lines, _ = Unset(lines, key)
		return WriteLines(lines)
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
