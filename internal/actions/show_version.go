package actions

import (
	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

// VersionSpec describes the version command, which takes no arguments.
func VersionSpec() *argspec.Spec {
	return argspec.NewBuilder("Print the argspec version").MustBuild()
}

func ShowVersion(a *domain.Application) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return showVersion(args, flags, newDeps(a))
	}
}

func showVersion(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	if _, done, err := parseArgs(VersionSpec(), "argspec version", args, deps); done || err != nil {
		return err
	}
	_, _ = deps.Printf("argspec version %v\n", deps.Version())
	return nil
}
