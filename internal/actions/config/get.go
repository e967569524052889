package config

import (
	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/usage"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

func newGetSpec(key *string) *argspec.Spec {
	return argspec.NewBuilder("Print the value of a setting, or its default").
		Line("<key:cstr>", "Setting name, see 'argspec config list'", argspec.String(key)).
		MustBuild()
}

// GetSpec describes the config get command.
func GetSpec() *argspec.Spec { return newGetSpec(new(string)) }

func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

func get(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	var key string
	if _, done, err := parse(newGetSpec(&key), "argspec config get", args, deps); done || err != nil {
		return err
	}

	if !knownKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}
