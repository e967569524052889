package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/argspec/internal/ui"
	"github.com/footprint-tools/argspec/internal/ui/style"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	// spec files
	"check": 1,
	"help":  2,
	// config commands
	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	// Find where the command ends (first [ or <)
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' || c == '-' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
		return
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

// sortCommands orders nodes by commandDisplayOrder, then alphabetically.
func sortCommands(cmds []*DispatchNode) {
	sort.Slice(cmds, func(i, j int) bool {
		nameI := cmds[i].CommandPath()
		nameJ := cmds[j].CommandPath()
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		if hasI && hasJ && orderI != orderJ {
			return orderI < orderJ
		}
		if hasI != hasJ {
			return hasI
		}
		return nameI < nameJ
	})
}

// HelpAction pages the help text of node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		ui.Pager(HelpText(node, root))
		return nil
	}
}

// HelpText renders help for node: the command list for the root and for
// groups, the argument spec's help for commands.
func HelpText(node *DispatchNode, root *DispatchNode) string {
	var out bytes.Buffer
	program := root.Name

	switch {
	case node == root:
		fmt.Fprintf(&out, "%s - %s\n\n", program, node.Summary)
		out.WriteString(style.Header("USAGE") + "\n   ")
		out.WriteString(formatUsage(node.Usage))
		out.WriteString("\n\n")

		var leaves []*DispatchNode
		for _, child := range root.Children {
			collectLeafCommands(child, &leaves)
		}

		grouped := make(map[CommandCategory][]*DispatchNode)
		for _, cmd := range leaves {
			grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
		}

		for _, cat := range categoryOrder {
			cmds := grouped[cat]
			if len(cmds) == 0 {
				continue
			}

			out.WriteString(style.Header(cat.String()) + "\n")
			sortCommands(cmds)
			for _, cmd := range cmds {
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", cmd.CommandPath())), cmd.Summary)
			}
			out.WriteString("\n")
		}

		writeFlags(&out, node.Flags)

		fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", program)
		fmt.Fprintf(&out, "See '%s help <spec-file>' to render the help of a spec file.\n", program)

	case node.Spec != nil:
		spec := node.Spec()
		out.WriteString(spec.HelpStyled(joinPath(node.Path), argspec.HelpFull, style.NewStyler()))
		if node.Description != "" {
			out.WriteString("\n" + node.Description + "\n")
		}
		out.WriteString("\n")
		fmt.Fprintf(&out, "See '%s help' for the list of commands.\n", program)

	default:
		out.WriteString(joinPath(node.Path))
		if node.Summary != "" {
			out.WriteString(" - ")
			out.WriteString(node.Summary)
		}
		out.WriteString("\n\n")

		if node.Usage != "" {
			out.WriteString(style.Header("USAGE") + "\n   ")
			out.WriteString(formatUsage(node.Usage))
			out.WriteString("\n\n")
		}

		if node.Description != "" {
			out.WriteString(node.Description)
			out.WriteString("\n\n")
		}

		if len(node.Children) > 0 {
			out.WriteString(style.Header("COMMANDS") + "\n")

			children := make([]*DispatchNode, 0, len(node.Children))
			for _, child := range node.Children {
				children = append(children, child)
			}
			sortCommands(children)

			for _, child := range children {
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
			}
			out.WriteString("\n")
		}

		fmt.Fprintf(&out, "See '%s help <command>' to read about a specific command.\n", program)
	}

	return out.String()
}

func writeFlags(out *bytes.Buffer, flags []FlagDescriptor) {
	if len(flags) == 0 {
		return
	}
	out.WriteString(style.Header("FLAGS") + "\n")
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name = name + "=" + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}
	out.WriteString("\n")
}
