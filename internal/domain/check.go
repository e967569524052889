package domain

import "time"

// Outcome classifies how a check run ended.
type Outcome string

const (
	OutcomeOK    Outcome = "ok"
	OutcomeHelp  Outcome = "help"
	OutcomeError Outcome = "error"
)

// IsValid reports whether o is one of the known outcomes.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeOK, OutcomeHelp, OutcomeError:
		return true
	}
	return false
}

// CheckRecord is one recorded run of a spec file against an argument list.
type CheckRecord struct {
	ID        string
	SpecPath  string
	Command   string
	Args      []string
	Outcome   Outcome
	ErrorKind string // empty unless Outcome is OutcomeError
	Message   string
	Flags     uint32
	Timestamp time.Time
}

// CheckFilter defines criteria for listing check records.
type CheckFilter struct {
	SpecPath string
	Outcome  Outcome
	Since    *time.Time
	Limit    int
}
