package dispatchers

import "strings"

func NewNode(
	name string,
	parent *DispatchNode,
	summary string,
	usage string,
	action CommandFunc,
) *DispatchNode {

	node := &DispatchNode{
		Name:     name,
		Summary:  summary,
		Usage:    usage,
		Action:   action,
		Children: make(map[string]*DispatchNode),
	}

	if parent == nil {
		node.Path = []string{name}
	} else {
		node.Path = append(append([]string{}, parent.Path...), name)
		parent.Children[name] = node
	}

	return node
}

func Root(spec RootSpec) *DispatchNode {
	node := NewNode(spec.Name, nil, spec.Summary, spec.Usage, nil)
	node.Flags = spec.Flags
	return node
}

func Group(spec GroupSpec) *DispatchNode {
	return NewNode(spec.Name, spec.Parent, spec.Summary, spec.Usage, nil)
}

func Command(spec CommandSpec) *DispatchNode {
	node := NewNode(spec.Name, spec.Parent, spec.Summary, spec.Usage, spec.Action)
	node.Description = spec.Description
	node.Spec = spec.Spec
	node.Category = spec.Category
	return node
}

func joinPath(path []string) string {
	return strings.Join(path, " ")
}
