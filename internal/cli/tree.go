package cli

import (
	"github.com/footprint-tools/argspec/internal/actions"
	configactions "github.com/footprint-tools/argspec/internal/actions/config"
	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/domain"
)

// BuildTree assembles the command tree with actions bound to a.
func BuildTree(a *domain.Application) *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "argspec",
		Summary: "Compile declarative argument specs and match command lines against them",
		Usage:   "argspec <command> [args]",
		Flags:   RootFlags,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "check",
		Parent:  root,
		Summary: "Match arguments against a spec file",
		Usage:   "argspec check [options] <spec-file> -- <args>...",
		Description: "The spec file holds a name, a description, enums and grammar lines:\n\n" +
			"    name: greet\n" +
			"    lines:\n" +
			"      - spec: \"<name:string> [<times:int>]\"\n" +
			"        doc: Who to greet",
		Spec:     actions.CheckSpec,
		Action:   actions.Check(a),
		Category: dispatchers.CategorySpecFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "help",
		Parent:   root,
		Summary:  "Show help for a command or a spec file",
		Usage:    "argspec help [<command> | <spec-file>] [-format <type>] [-i]",
		Spec:     actions.HelpSpec,
		Action:   actions.Help(a, root),
		Category: dispatchers.CategorySpecFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "demo",
		Parent:   root,
		Summary:  "Parse arguments with a built-in example spec",
		Usage:    "argspec demo <name> [<dst>] [options]",
		Spec:     actions.DemoSpec,
		Action:   actions.Demo(a),
		Category: dispatchers.CategoryExamples,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "history",
		Parent:   root,
		Summary:  "List recorded check runs",
		Usage:    "argspec history [-limit <n>] [-spec <path>] [-outcome <outcome>] [-since <date>] [-clear]",
		Spec:     actions.HistorySpec,
		Action:   actions.History(a),
		Category: dispatchers.CategoryHistory,
	})

	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "argspec config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Print a setting",
		Usage:    "argspec config get <key>",
		Spec:     configactions.GetSpec,
		Action:   configactions.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Store a setting",
		Usage:    "argspec config set <key> <value>",
		Spec:     configactions.SetSpec,
		Action:   configactions.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Remove a setting",
		Usage:    "argspec config unset <key> | -all",
		Spec:     configactions.UnsetSpec,
		Action:   configactions.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List settings",
		Usage:    "argspec config list [-json]",
		Spec:     configactions.ListSpec,
		Action:   configactions.List,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "version",
		Parent:  root,
		Summary: "Show argspec version",
		Usage:   "argspec version",
		Spec:    actions.VersionSpec,
		Action:  actions.ShowVersion(a),
	})

	return root
}
