package argspec

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors returned by Builder.Build and Session.Parse.
type ErrorKind int

const (
	ErrNone ErrorKind = iota

	// Parse-time kinds.
	ErrHelpRequested
	ErrNotEnoughArgs
	ErrTooManyArgs
	ErrBadSpec
	ErrUnknownOption
	ErrBadEnum
	ErrGarbage

	// Construction-time kinds.
	ErrUnbalancedBrackets
	ErrEllipsis
	ErrUnknownType
	ErrOptionalGroup
	ErrBinding
	ErrFlagRange
)

var kindNames = map[ErrorKind]string{
	ErrNone:               "no error",
	ErrHelpRequested:      "help requested",
	ErrNotEnoughArgs:      "not enough arguments",
	ErrTooManyArgs:        "too many arguments",
	ErrBadSpec:            "bad argument spec",
	ErrUnknownOption:      "unknown option",
	ErrBadEnum:            "bad enum",
	ErrGarbage:            "garbage at end of number",
	ErrUnbalancedBrackets: "unbalanced brackets",
	ErrEllipsis:           "unexpected ellipsis",
	ErrUnknownType:        "unknown argument type",
	ErrOptionalGroup:      "optional arguments must be trailing",
	ErrBinding:            "binding mismatch",
	ErrFlagRange:          "flag index out of range",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Construction reports whether k is raised while building a Spec.
func (k ErrorKind) Construction() bool {
	return k >= ErrUnbalancedBrackets
}

// Error carries the kind of failure and a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is matches another *Error of the same kind, so callers can write
// errors.Is(err, &argspec.Error{Kind: argspec.ErrGarbage}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the ErrorKind of err, ErrNone for nil and ErrBadSpec for
// errors that did not originate in this package.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrBadSpec
}

// IsHelp reports whether err is a help request rather than a failure.
func IsHelp(err error) bool {
	return KindOf(err) == ErrHelpRequested
}

var _ error = (*Error)(nil)
