package actions

import (
	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/specfile"
	"github.com/footprint-tools/argspec/internal/usage"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

const (
	checkFlagFormat argspec.Flag = iota
	checkFlagRecord
)

type checkOptions struct {
	path   string
	format int
	name   string
}

func newCheckSpec(o *checkOptions) *argspec.Spec {
	return argspec.NewBuilder("Match an argument list against a spec file and report what was parsed").
		EnumTokens("outputFormat", specfile.OutputFormats...).
		Line("<spec:cstr>", "Spec file to load (.yaml, .yml, .json or .toml).\n"+
			"Arguments after '--' are matched against it.",
			argspec.String(&o.path)).
		Line("-format^ <outputFormat>", "Report format, defaults to the output_format setting",
			checkFlagFormat, argspec.Enum(&o.format)).
		Line("-record^", "Record the run in the check history", checkFlagRecord).
		Line("-name <cmd:string>", "Command name used in messages, defaults to the spec's name",
			argspec.String(&o.name)).
		MustBuild()
}

// CheckSpec describes the check command's own arguments.
func CheckSpec() *argspec.Spec { return newCheckSpec(&checkOptions{}) }

// Check returns the check command bound to a.
func Check(a *domain.Application) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return check(args, flags, newDeps(a))
	}
}

func check(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	own, rest := splitAtTerminator(args)

	var o checkOptions
	ss, done, err := parseArgs(newCheckSpec(&o), "argspec check", own, deps)
	if done || err != nil {
		return err
	}

	doc, err := deps.LoadSpec(o.path)
	if err != nil {
		return usage.InvalidSpec(o.path, err)
	}
	if o.name != "" {
		doc.Name = o.name
	}

	prog, err := specfile.Compile(doc)
	if err != nil {
		return usage.InvalidSpec(o.path, err)
	}

	format := specfile.OutputFormat(o.format)
	if !ss.Flag(checkFlagFormat) {
		format, err = specfile.ParseOutputFormat(deps.configString("output_format"))
		if err != nil {
			deps.logger().Warn("check: %v, using text", err)
		}
	}

	res := prog.Run(rest)
	deps.logger().Debug("check: %s %v -> %s", prog.Name, rest, res.Outcome)

	if err := specfile.Write(deps.Stdout, res, format); err != nil {
		return err
	}

	if ss.Flag(checkFlagRecord) || deps.configBool("record_history") {
		rec := domain.CheckRecord{
			SpecPath:  o.path,
			Command:   res.Command,
			Args:      rest,
			Outcome:   res.Outcome,
			ErrorKind: res.ErrorKind,
			Flags:     res.Mask,
			Timestamp: deps.Now(),
		}
		if res.Outcome == domain.OutcomeError {
			rec.Message = res.Message
		}
		if err := deps.History.Insert(rec); err != nil {
			return usage.History(err)
		}
	}

	if res.Outcome == domain.OutcomeError {
		return usage.Silent(usage.ErrInvalidArgument)
	}
	return nil
}
