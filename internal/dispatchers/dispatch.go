package dispatchers

import (
	"strings"

	"github.com/footprint-tools/argspec/internal/usage"
)

const defaultSuggestionsCount = 3

// Dispatch walks tokens down the command tree. The first token that is not
// a child name ends the walk; it and everything after it become Args for
// the command's Action.
func Dispatch(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error) {
	current := root
	pathLen := 0

	for _, tok := range tokens {
		child, ok := current.Children[tok]
		if !ok {
			break
		}
		current = child
		pathLen++
	}

	args := tokens[pathLen:]

	if hasHelpFlag(flags) {
		return Resolution{
			Node:    current,
			Flags:   flags,
			Execute: HelpAction(current, root),
		}, nil
	}

	if current.Action != nil {
		return Resolution{
			Node:    current,
			Args:    args,
			Flags:   flags,
			Execute: current.Action,
		}, nil
	}

	// a group: anything left over is a mistyped subcommand
	if len(args) > 0 {
		tok := args[0]
		if strings.HasPrefix(tok, "-") {
			return Resolution{}, usage.InvalidFlag(tok)
		}
		suggestions := FindSimilarCommands(tok, current, defaultSuggestionsCount)
		cmdPath := joinPath(append(append([]string{}, current.Path[1:]...), tok))
		return Resolution{}, usage.UnknownCommand(cmdPath, suggestions...)
	}

	// No command specified: show help but exit with code 1 (like git)
	exitCode := 0
	if current == root {
		exitCode = 1
	}
	return Resolution{
		Node:     current,
		Flags:    flags,
		Execute:  HelpAction(current, root),
		ExitCode: exitCode,
	}, nil
}

func hasHelpFlag(flags *ParsedFlags) bool {
	return flags.Has("--help")
}

// Resolve returns the node at path below root, or nil.
func Resolve(root *DispatchNode, path []string) *DispatchNode {
	current := root

	for _, p := range path {
		child, ok := current.Children[p]
		if !ok {
			return nil
		}
		current = child
	}

	return current
}
