package actions

import (
	"os"
	"strings"

	"github.com/footprint-tools/argspec/internal/actions/browse"
	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/specfile"
	"github.com/footprint-tools/argspec/internal/ui/style"
	"github.com/footprint-tools/argspec/internal/usage"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

const (
	helpFlagFormat argspec.Flag = iota
	helpFlagInteractive
)

type helpOptions struct {
	target string
	sub    string
	format int
}

func newHelpSpec(o *helpOptions) *argspec.Spec {
	return argspec.NewBuilder("Show help for a command or for a spec file").
		Enum("helpType", argspec.HelpTypes...).
		Line("[<topic:cstr> [<sub:cstr>]]", "A command such as 'config set', or a spec file",
			argspec.String(&o.target), argspec.String(&o.sub)).
		Line("-format^ <helpType>", "Help format, defaults to the help_format setting",
			helpFlagFormat, argspec.Enum(&o.format)).
		Line("-i^", "Browse the help interactively", helpFlagInteractive).
		MustBuild()
}

// HelpSpec describes the help command's own arguments.
func HelpSpec() *argspec.Spec { return newHelpSpec(&helpOptions{}) }

// Help returns the help command for the tree under root.
func Help(a *domain.Application, root *dispatchers.DispatchNode) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return help(args, flags, root, newDeps(a))
	}
}

func help(args []string, _ *dispatchers.ParsedFlags, root *dispatchers.DispatchNode, deps actionDependencies) error {
	if len(args) == 0 {
		deps.Pager(dispatchers.HelpText(root, root))
		return nil
	}

	var o helpOptions
	ss, done, err := parseArgs(newHelpSpec(&o), "argspec help", args, deps)
	if done || err != nil {
		return err
	}

	format, err := argspec.ParseHelpType(deps.configString("help_format"))
	if err != nil {
		deps.logger().Warn("help: %v, using full", err)
	}
	if ss.Flag(helpFlagFormat) {
		format = argspec.HelpType(o.format)
	}
	interactive := ss.Flag(helpFlagInteractive)

	if o.target == "" {
		deps.Pager(dispatchers.HelpText(root, root))
		return nil
	}

	path := []string{o.target}
	if o.sub != "" {
		path = append(path, o.sub)
	}

	if node := dispatchers.Resolve(root, path); node != nil {
		return commandHelp(node, root, format, ss.Flag(helpFlagFormat), interactive, deps)
	}

	if isSpecFile(o.target) {
		return specFileHelp(o.target, format, interactive, deps)
	}

	joined := strings.Join(path, " ")
	return usage.UnknownCommand(joined,
		dispatchers.Suggest(joined, dispatchers.CollectAllCommands(root, ""), maxOptionSuggestions)...)
}

func commandHelp(node, root *dispatchers.DispatchNode, format argspec.HelpType, explicit, interactive bool, deps actionDependencies) error {
	if node.Spec == nil {
		deps.Pager(dispatchers.HelpText(node, root))
		return nil
	}

	command := strings.Join(node.Path, " ")
	if interactive {
		return browseSpec(node.Spec(), command, deps)
	}
	if explicit {
		deps.Pager(node.Spec().HelpStyled(command, format, style.NewStyler()))
		return nil
	}
	deps.Pager(dispatchers.HelpText(node, root))
	return nil
}

func specFileHelp(path string, format argspec.HelpType, interactive bool, deps actionDependencies) error {
	doc, err := deps.LoadSpec(path)
	if err != nil {
		return usage.InvalidSpec(path, err)
	}
	prog, err := specfile.Compile(doc)
	if err != nil {
		return usage.InvalidSpec(path, err)
	}

	if interactive {
		return browseSpec(prog.Spec(), prog.Name, deps)
	}

	text := prog.Spec().HelpStyled(prog.Name, format, style.NewStyler())
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	deps.Pager(text)
	return nil
}

// browseSpec opens the interactive browser, or pages its plain rendering
// when stdout is not a terminal.
func browseSpec(spec *argspec.Spec, command string, deps actionDependencies) error {
	if !deps.IsTerminal() {
		deps.Pager(browse.Render(spec, command))
		return nil
	}
	return deps.Browse(spec, command)
}

func isSpecFile(target string) bool {
	if _, err := specfile.FormatOf(target); err == nil {
		return true
	}
	info, err := os.Stat(target)
	return err == nil && !info.IsDir()
}
