package actions

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/format"
	"github.com/footprint-tools/argspec/internal/usage"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

const defaultHistoryLimit = 20

const (
	historyFlagOutcome argspec.Flag = iota
	historyFlagClear
)

var outcomes = []domain.Outcome{domain.OutcomeOK, domain.OutcomeHelp, domain.OutcomeError}

type historyOptions struct {
	limit    int
	specPath string
	outcome  int
	since    string
}

func newHistorySpec(o *historyOptions) *argspec.Spec {
	tokens := make([]string, len(outcomes))
	for i, oc := range outcomes {
		tokens[i] = string(oc)
	}

	return argspec.NewBuilder("List recorded check runs, newest first").
		EnumTokens("outcome", tokens...).
		Line("-limit <n:int>", fmt.Sprintf("Show at most n runs, 0 for all (default %d)", defaultHistoryLimit),
			argspec.Int(&o.limit)).
		Line("-spec <path:cstr>", "Only runs of this spec file", argspec.String(&o.specPath)).
		Line("-outcome^ <outcome>", "Only runs with this outcome", historyFlagOutcome, argspec.Enum(&o.outcome)).
		Line("-since <date:cstr>", "Only runs on or after date (YYYY-MM-DD)", argspec.String(&o.since)).
		Line("-clear^", "Delete every recorded run", historyFlagClear).
		MustBuild()
}

// HistorySpec describes the history command's arguments.
func HistorySpec() *argspec.Spec { return newHistorySpec(&historyOptions{}) }

// History returns the history command bound to a.
func History(a *domain.Application) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return showHistory(args, flags, newDeps(a))
	}
}

func showHistory(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	o := historyOptions{limit: defaultHistoryLimit}
	ss, done, err := parseArgs(newHistorySpec(&o), "argspec history", args, deps)
	if done || err != nil {
		return err
	}

	if ss.Flag(historyFlagClear) {
		n, err := deps.History.Clear()
		if err != nil {
			return usage.History(err)
		}
		_, _ = deps.Printf("removed %d recorded %s\n", n, plural(n, "run", "runs"))
		return nil
	}

	if o.limit < 0 {
		return usage.InvalidFlag(fmt.Sprintf("-limit %d", o.limit))
	}

	filter := domain.CheckFilter{SpecPath: o.specPath, Limit: o.limit}
	if ss.Flag(historyFlagOutcome) {
		filter.Outcome = outcomes[o.outcome]
	}
	if o.since != "" {
		since, err := time.ParseInLocation("2006-01-02", o.since, time.Local)
		if err != nil {
			return usage.InvalidFlag(fmt.Sprintf("-since %s", o.since))
		}
		filter.Since = &since
	}

	records, err := deps.History.List(filter)
	if err != nil {
		return usage.History(err)
	}

	if len(records) == 0 {
		_, _ = deps.Printf("no recorded runs\n")
		return nil
	}

	deps.Pager(formatHistory(records, format.NewLayout(deps.Config), deps.Styler))
	return nil
}

func formatHistory(records []domain.CheckRecord, layout format.Layout, st domain.Styler) string {
	var b strings.Builder

	for _, r := range records {
		outcome := fmt.Sprintf("%-5s", r.Outcome)
		switch r.Outcome {
		case domain.OutcomeOK:
			outcome = st.Success(outcome)
		case domain.OutcomeError:
			outcome = st.Error(outcome)
		default:
			outcome = st.Info(outcome)
		}

		line := strings.TrimSpace(r.Command + " " + strings.Join(r.Args, " "))
		fmt.Fprintf(&b, "%s  %s  %s\n", st.Muted(layout.Full(r.Timestamp.Local())), outcome, line)

		if r.SpecPath != "" {
			fmt.Fprintf(&b, "    %s\n", st.Muted(r.SpecPath))
		}
		if r.Message != "" {
			fmt.Fprintf(&b, "    %s\n", r.Message)
		}
	}
	return b.String()
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
