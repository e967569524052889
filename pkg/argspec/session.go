package argspec

// Session holds the state of one parse against a Spec: the presence flags,
// the last message and the help marker. A Spec may back many sessions; a
// Session is not safe for concurrent use.
type Session struct {
	spec    *Spec
	command string
	flags   uint32
	message string
	help    bool
}

// NewSession returns an empty session for s.
func (s *Spec) NewSession() *Session {
	return &Session{spec: s}
}

// Parse matches argv against s in a fresh session. argv[0] is the command
// name. The session is returned even on error so callers can read the
// message and flags.
func (s *Spec) Parse(argv []string) (*Session, error) {
	ss := s.NewSession()
	return ss, ss.Parse(argv)
}

// Parse resets the session and matches argv against its spec, writing
// converted values through the bound targets. It returns the first error;
// already written targets are left as they are.
func (ss *Session) Parse(argv []string) error {
	ss.flags = 0
	ss.message = ""
	ss.help = false
	ss.command = ""

	if len(argv) > 0 {
		ss.command = argv[0]
		argv = argv[1:]
	}

	if err := ss.match(argv); err != nil {
		ss.message = err.Message
		return err
	}
	return nil
}

// Spec returns the spec this session parses against.
func (ss *Session) Spec() *Spec { return ss.spec }

// Command returns argv[0] of the last parse.
func (ss *Session) Command() string { return ss.command }

// Flag reports whether presence bit f was set by the last parse.
func (ss *Session) Flag(f Flag) bool {
	if f < 0 || f >= MaxFlags {
		return false
	}
	return ss.flags&(1<<uint(f)) != 0
}

// SetFlag sets presence bit f, letting callers fold their own defaults into
// the same mask.
func (ss *Session) SetFlag(f Flag) {
	if f >= 0 && f < MaxFlags {
		ss.flags |= 1 << uint(f)
	}
}

// Flags returns the whole presence bitmask.
func (ss *Session) Flags() uint32 { return ss.flags }

// Message returns the error message or help text from the last parse.
func (ss *Session) Message() string { return ss.message }

// HelpRequested reports whether -h was seen, or help was implied by an
// empty argument list.
func (ss *Session) HelpRequested() bool { return ss.help }

// Help renders help for the spec using the command name of the last parse.
func (ss *Session) Help(t HelpType) string {
	return ss.spec.Help(ss.command, t)
}

func (ss *Session) setFlag(f int) {
	if f >= 0 {
		ss.flags |= 1 << uint(f)
	}
}
