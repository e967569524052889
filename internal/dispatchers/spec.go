package dispatchers

import "github.com/footprint-tools/argspec/pkg/argspec"

type RootSpec struct {
	Name    string
	Summary string
	Usage   string
	Flags   []FlagDescriptor
}

type GroupSpec struct {
	Name    string
	Parent  *DispatchNode
	Summary string
	Usage   string
}

type CommandSpec struct {
	Name        string
	Parent      *DispatchNode
	Summary     string
	Usage       string
	Description string
	Spec        func() *argspec.Spec
	Action      CommandFunc
	Category    CommandCategory
}
