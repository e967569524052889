package dispatchers

import "github.com/footprint-tools/argspec/pkg/argspec"

type CommandFunc func(args []string, flags *ParsedFlags) error

type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedFlags
	Execute  CommandFunc
	ExitCode int // non-zero when a successful Execute should still fail the process
}

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

// DispatchNode is one command or command group. Commands describe their
// arguments with an argspec.Spec; groups have neither Spec nor Action.
type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Usage       string
	Description string
	Flags       []FlagDescriptor
	Spec        func() *argspec.Spec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}

// CommandPath is the node path without the program name, e.g. "config set".
func (n *DispatchNode) CommandPath() string {
	if len(n.Path) <= 1 {
		return ""
	}
	return joinPath(n.Path[1:])
}
