package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrHelp
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidArgument
	ErrInvalidSpec
	ErrInvalidConfigKey
	ErrFailedConfigPath
	ErrHistory
)

// Exit codes:
//
//	Exit 0: Help was requested
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Spec file that fails to load or compile
//	  - Invalid config key
//	  - Failed config path
//	  - History database errors
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Arguments rejected by a spec
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrHelp:             0,
	ErrInvalidFlag:      2,
	ErrMissingArgument:  2,
	ErrUnknownCommand:   1,
	ErrInvalidArgument:  2,
	ErrInvalidSpec:      1,
	ErrInvalidConfigKey: 1,
	ErrFailedConfigPath: 1,
	ErrHistory:          1,
}

// Error represents a user-facing usage error with semantic type information.
// An empty Message means the failure was already reported and only the exit
// code matters.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the Kind's code when non-zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Silent returns an error that carries only the exit code of kind.
func Silent(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}

var _ error = (*Error)(nil)
