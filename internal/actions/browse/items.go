package browse

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/argspec/pkg/argspec"
)

// item is one sidebar entry. Category headers are not selectable.
type item struct {
	title    string
	category bool
	summary  string
	detail   string
}

// buildItems lists the spec as USAGE, OPTIONS and TYPES sections.
func buildItems(spec *argspec.Spec, command string) []item {
	items := []item{
		{title: "USAGE", category: true},
		{
			title:   command,
			summary: firstLine(spec.Description()),
			detail:  usageDetail(spec, command),
		},
	}

	if opts := spec.Options(); len(opts) > 0 {
		items = append(items, item{title: "OPTIONS", category: true})
		for _, o := range opts {
			items = append(items, item{
				title:   "-" + o.Name,
				summary: firstLine(o.Description),
				detail:  optionDetail(spec, o),
			})
		}
	}

	if enums := spec.Enums(); len(enums) > 0 {
		items = append(items, item{title: "TYPES", category: true})
		for _, e := range enums {
			items = append(items, item{
				title:   e.Name,
				summary: fmt.Sprintf("%d values", len(e.Values)),
				detail:  enumDetail(e),
			})
		}
	}

	return items
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func usageDetail(spec *argspec.Spec, command string) string {
	var b strings.Builder

	b.WriteString(spec.Description() + "\n\n")
	b.WriteString("USAGE\n")
	b.WriteString("   " + command)
	if len(spec.Options()) > 0 {
		b.WriteString(" [options]")
	}
	if args := groupArgs(spec, spec.Main().Slots); args != "" {
		b.WriteString(" " + args)
	}
	b.WriteString("\n\n")

	if d := spec.Main().Description; d != "" {
		b.WriteString(d + "\n\n")
	}

	writeSlots(&b, spec, spec.Main().Slots)
	return b.String()
}

func optionDetail(spec *argspec.Spec, o argspec.Option) string {
	var b strings.Builder

	b.WriteString("-" + o.Name)
	if args := groupArgs(spec, o.Slots); args != "" {
		b.WriteString(" " + args)
	}
	b.WriteString("\n\n")

	if o.Description != "" {
		b.WriteString(o.Description + "\n\n")
	}
	if o.Flag != argspec.NoFlag {
		fmt.Fprintf(&b, "Sets flag %d when given.\n\n", o.Flag)
	}

	writeSlots(&b, spec, o.Slots)
	return b.String()
}

func enumDetail(e argspec.EnumSpec) string {
	var b strings.Builder

	b.WriteString(e.Name + "\n\nVALUES\n")
	for _, v := range e.Values {
		fmt.Fprintf(&b, "   %-12s %d\n", v.Token, v.Value)
	}
	b.WriteString("\nTokens match without regard to case.\n")
	return b.String()
}

// groupArgs renders slots the way help does: optional ones bracketed.
func groupArgs(spec *argspec.Spec, slots []argspec.Slot) string {
	var parts []string
	open := 0
	for _, s := range slots {
		p := "<" + slotLabel(spec, s) + ">"
		if s.Type.Array == argspec.ArrayList {
			p += " ..."
		}
		if !s.Required {
			p = "[" + p
			open++
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ") + strings.Repeat("]", open)
}

func slotLabel(spec *argspec.Spec, s argspec.Slot) string {
	if s.Name == "" {
		return spec.TypeName(s.Type)
	}
	return s.Name + ":" + spec.TypeName(s.Type)
}

func writeSlots(b *strings.Builder, spec *argspec.Spec, slots []argspec.Slot) {
	if len(slots) == 0 {
		return
	}

	b.WriteString("ARGUMENTS\n")
	for i, s := range slots {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}

		var notes []string
		if s.Required {
			notes = append(notes, "required")
		} else {
			notes = append(notes, "optional")
		}
		switch s.Type.Array {
		case argspec.ArrayList:
			notes = append(notes, "repeats until the next option")
		case argspec.ArraySplit:
			notes = append(notes, "one quoted, space-separated argument")
		}
		if s.Flag != argspec.NoFlag {
			notes = append(notes, fmt.Sprintf("sets flag %d", s.Flag))
		}

		fmt.Fprintf(b, "   %-12s %-10s %s\n", name, spec.TypeName(s.Type), strings.Join(notes, ", "))
	}
}
