package config

import (
	"github.com/footprint-tools/argspec/internal/ui/style"
	"github.com/footprint-tools/argspec/internal/usage"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

// parse matches args against spec. When help was shown done is true.
func parse(spec *argspec.Spec, command string, args []string, deps Deps) (ss *argspec.Session, done bool, err error) {
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
	return ss, true, usage.FromParse(command, err)
}
