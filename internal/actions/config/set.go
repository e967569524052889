package config

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/argspec/internal/config"
	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/usage"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

func newSetSpec(key, value *string) *argspec.Spec {
	return argspec.NewBuilder("Store a setting in ~/.argspecrc").
		Line("<key:cstr> <value:cstr>", "Setting name and its new value", argspec.String(key), argspec.String(value)).
		MustBuild()
}

// SetSpec describes the config set command.
func SetSpec() *argspec.Spec { return newSetSpec(new(string), new(string)) }

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return set(args, flags, DefaultDeps())
}

func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	var key, value string
	if _, done, err := parse(newSetSpec(&key, &value), "argspec config set", args, deps); done || err != nil {
		return err
	}

	if !knownKey(key) {
		return usage.InvalidConfigKey(key)
	}
	if err := validateValue(key, value); err != nil {
		return &usage.Error{
			Kind:    usage.ErrInvalidArgument,
			Message: fmt.Sprintf("argspec: config set: %v", err),
		}
	}

	var updated bool
	err := deps.Update(func(lines config.Lines) (config.Lines, error) {
		var err error
		lines, updated, err = lines.Set(key, value)
		return lines, err
	})
	if errors.Is(err, config.ErrUnknownKey) {
		return usage.InvalidConfigKey(key)
	}
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}

	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}
