package config

import (
	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/paths"
)

// computed holds defaults that depend on the environment.
var computed = map[string]func() string{
	"history_path": paths.HistoryDBPath,
}

// DefaultValue returns the documented default of key.
func DefaultValue(key string) (string, bool) {
	if fn, ok := computed[key]; ok {
		return fn(), true
	}
	k, ok := domain.GetConfigKey(key)
	return k.Default, ok
}

// Defaults returns the default of every documented key.
func Defaults() map[string]string {
	all := make(map[string]string, len(domain.ConfigKeys))
	for _, k := range domain.ConfigKeys {
		all[k.Name], _ = DefaultValue(k.Name)
	}
	return all
}
