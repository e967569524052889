package actions

import (
	"strings"

	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/ui/style"
	"github.com/footprint-tools/argspec/internal/usage"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

const maxOptionSuggestions = 3

// parseArgs matches a command's own arguments against spec. When help was
// asked for it is paged and done is true. A bare invocation of a command
// with required arguments shows the help and fails.
func parseArgs(spec *argspec.Spec, command string, args []string, deps actionDependencies) (ss *argspec.Session, done bool, err error) {
	ss, err = spec.Parse(append([]string{command}, args...))
	if err == nil {
		return ss, false, nil
	}

	if argspec.IsHelp(err) {
		deps.Pager(spec.HelpStyled(command, argspec.HelpFull, style.NewStyler()))
		if len(args) == 0 {
			return ss, true, usage.Silent(usage.ErrMissingArgument)
		}
		return ss, true, nil
	}

	deps.logger().Debug("%s: parse failed: %v", command, err)
	return ss, true, usage.FromParse(command, err, optionSuggestions(spec, args)...)
}

// optionSuggestions returns options of spec resembling the first unknown
// option in args.
func optionSuggestions(spec *argspec.Spec, args []string) []string {
	for _, a := range args {
		if !argspec.IsOption(a) {
			continue
		}
		name := strings.TrimLeft(a, "-")
		if name == "" {
			continue
		}
		if _, ok := spec.Option(name); ok {
			continue
		}
		return dispatchers.Suggest(strings.ToLower(name), spec.OptionNames(), maxOptionSuggestions)
	}
	return nil
}

// splitAtTerminator splits args at the first "--".
func splitAtTerminator(args []string) (own, rest []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}
