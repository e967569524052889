package config

import (
	"github.com/footprint-tools/argspec/internal/config"
	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/usage"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

const unsetFlagAll argspec.Flag = 0

func newUnsetSpec(key *string) *argspec.Spec {
	return argspec.NewBuilder("Remove a setting so its default applies again").
		Line("[<key:cstr>]", "Setting name", argspec.String(key)).
		Line("-all^", "Remove every setting", unsetFlagAll).
		MustBuild()
}

// UnsetSpec describes the config unset command.
func UnsetSpec() *argspec.Spec { return newUnsetSpec(new(string)) }

func Unset(args []string, flags *dispatchers.ParsedFlags) error {
	return unset(args, flags, DefaultDeps())
}

func unset(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	var key string
	ss, done, err := parse(newUnsetSpec(&key), "argspec config unset", args, deps)
	if done || err != nil {
		return err
	}

	if ss.Flag(unsetFlagAll) {
		if key != "" {
			return usage.InvalidFlag("-all does not take a key")
		}

		if err := deps.Update(func(config.Lines) (config.Lines, error) { return config.Lines{}, nil }); err != nil {
			return err
		}

		_, _ = deps.Println("all config entries removed")
		return nil
	}

	if key == "" {
		return usage.MissingArgument("key")
	}

	err = deps.Update(func(lines config.Lines) (config.Lines, error) {
		lines, removed := lines.Unset(key)
		if !removed {
			return nil, usage.InvalidConfigKey(key)
		}
		return lines, nil
	})
	if err != nil {
		return err
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
