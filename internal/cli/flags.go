package cli

import (
	"strings"

	"github.com/footprint-tools/argspec/internal/dispatchers"
)

var RootFlags = []dispatchers.FlagDescriptor{
	{
		Names:       []string{"--help"},
		Description: "Show help",
		Scope:       dispatchers.FlagScopeGlobal,
	},
	{
		Names:       []string{"--version"},
		Description: "Show version",
		Scope:       dispatchers.FlagScopeGlobal,
	},
	{
		Names:       []string{"--no-color"},
		Description: "Disable colored output",
		Scope:       dispatchers.FlagScopeGlobal,
	},
	{
		Names:       []string{"--no-pager"},
		Description: "Do not use pager for output",
		Scope:       dispatchers.FlagScopeGlobal,
	},
	{
		Names:       []string{"--pager"},
		ValueHint:   "<cmd>",
		Description: "Use specified pager for this command",
		Scope:       dispatchers.FlagScopeGlobal,
	},
	{
		Names:       []string{"--quiet"},
		Description: "Suppress confirmation messages",
		Scope:       dispatchers.FlagScopeGlobal,
	},
}

// SplitGlobalFlags separates the root flags from the rest of args. Only
// double-dash flags named in RootFlags are taken; everything else, and
// everything after "--", is left for the command, which parses its own
// arguments.
func SplitGlobalFlags(args []string) (globals, rest []string) {
	for i, a := range args {
		if a == "--" {
			rest = append(rest, args[i:]...)
			break
		}
		if isGlobalFlag(a) {
			globals = append(globals, a)
			continue
		}
		rest = append(rest, a)
	}
	return globals, rest
}

func isGlobalFlag(arg string) bool {
	if !strings.HasPrefix(arg, "--") {
		return false
	}
	name, _, _ := strings.Cut(arg, "=")
	for _, f := range RootFlags {
		for _, n := range f.Names {
			if n == name {
				return true
			}
		}
	}
	return false
}
