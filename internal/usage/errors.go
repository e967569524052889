package usage

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/argspec/pkg/argspec"
)

const prefix = "argspec: "

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf(prefix+"invalid flag '%s'", flag),
	}
}

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf(prefix+"missing required argument '%s'", arg),
	}
}

// UnknownCommand lists up to a few similar commands after the message.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf(prefix+"'%s' is not an argspec command. See 'argspec --help'.", command)
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg + didYouMean("command", suggestions),
	}
}

// InvalidConfigKey is returned for keys outside the known configuration.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf(prefix+"invalid config key '%s'. See 'argspec config list'.", key),
	}
}

// FailedConfigPath is returned when the config file location is unusable.
func FailedConfigPath(err error) *Error {
	return &Error{
		Kind:    ErrFailedConfigPath,
		Message: fmt.Sprintf(prefix+"cannot resolve config file: %v", err),
	}
}

// InvalidSpec wraps a spec file that failed to load or compile.
func InvalidSpec(path string, err error) *Error {
	return &Error{
		Kind:    ErrInvalidSpec,
		Message: fmt.Sprintf(prefix+"%s: %v", path, err),
	}
}

// History wraps a history database failure.
func History(err error) *Error {
	return &Error{
		Kind:    ErrHistory,
		Message: fmt.Sprintf(prefix+"history: %v", err),
	}
}

// FromParse converts an argspec parse error for command into a usage error.
// Help requests become ErrHelp carrying the rendered help. Suggestions are
// appended to unknown option errors.
func FromParse(command string, err error, suggestions ...string) *Error {
	if err == nil {
		return nil
	}

	kind := argspec.KindOf(err)
	switch {
	case kind == argspec.ErrHelpRequested:
		return &Error{Kind: ErrHelp, Message: err.Error()}
	case kind.Construction():
		return &Error{Kind: ErrInvalidSpec, Message: fmt.Sprintf(prefix+"%s: bad argument spec: %v", command, err)}
	}

	msg := fmt.Sprintf(prefix+"%s: %v", command, err)
	if kind == argspec.ErrUnknownOption {
		msg += didYouMean("option", suggestions)
		return &Error{Kind: ErrInvalidFlag, Message: msg}
	}
	return &Error{Kind: ErrInvalidArgument, Message: msg}
}

func didYouMean(what string, suggestions []string) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("\n\nThe most similar %s is\n\t%s", what, suggestions[0])
	}
	return fmt.Sprintf("\n\nThe most similar %ss are\n\t%s", what, strings.Join(suggestions, "\n\t"))
}
