package argspec

import (
	"fmt"
	"strings"
)

// HelpType selects a help presentation.
type HelpType int

const (
	HelpBrief HelpType = iota
	HelpFull
	HelpHTML
	HelpMarkdown
)

// HelpTypes lists the presentations as enum values, for specs that accept a
// help format argument such as "-h [<helpType>]".
var HelpTypes = []EnumValue{
	{Token: "brief", Value: int(HelpBrief)},
	{Token: "full", Value: int(HelpFull)},
	{Token: "html", Value: int(HelpHTML)},
	{Token: "markdown", Value: int(HelpMarkdown)},
}

func (t HelpType) String() string {
	for _, v := range HelpTypes {
		if v.Value == int(t) {
			return v.Token
		}
	}
	return fmt.Sprintf("HelpType(%d)", int(t))
}

// ParseHelpType accepts the HelpTypes tokens plus "text" and "md".
func ParseHelpType(s string) (HelpType, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return HelpFull, nil
	case "md":
		return HelpMarkdown, nil
	}
	e := EnumSpec{Name: "helpType", Values: HelpTypes}
	v, err := e.parse(s)
	if err != nil {
		return HelpFull, err
	}
	return HelpType(v), nil
}

// Styler colors the plain-text help. Other formats ignore it.
type Styler interface {
	Header(text string) string
	Info(text string) string
	Muted(text string) string
}

type plain struct{}

func (plain) Header(s string) string { return s }
func (plain) Info(s string) string   { return s }
func (plain) Muted(s string) string  { return s }

// Help renders help for s as invoked by command.
func (s *Spec) Help(command string, t HelpType) string {
	return s.HelpStyled(command, t, plain{})
}

// HelpStyled is Help with styled headings, names and descriptions.
func (s *Spec) HelpStyled(command string, t HelpType, st Styler) string {
	if st == nil || t == HelpHTML || t == HelpMarkdown {
		st = plain{}
	}
	h := &helpWriter{spec: s, kind: t, st: st}

	switch t {
	case HelpBrief:
		return fmt.Sprintf("%s, %s", command, s.description)
	case HelpHTML:
		h.html(command)
	case HelpMarkdown:
		h.markdown(command)
	default:
		h.kind = HelpFull
		h.text(command)
	}
	return h.b.String()
}

type helpWriter struct {
	spec *Spec
	kind HelpType
	st   Styler
	b    strings.Builder
}

func (h *helpWriter) printf(format string, args ...any) {
	fmt.Fprintf(&h.b, format, args...)
}

func (h *helpWriter) text(command string) {
	s := h.spec
	h.printf("%s\n\n%s\n    %s ", s.description, h.st.Header("Usage:"), h.st.Info(command))
	if len(s.options) > 0 {
		h.b.WriteString("[options] ")
	}
	h.args(s.main.Slots)
	h.doc("        ", s.main.Description)

	if len(s.options) > 0 {
		h.printf("\n%s\n", h.st.Header("Options:"))
		for _, o := range s.options {
			h.printf("    %s ", h.st.Info("-"+o.Name))
			h.args(o.Slots)
			h.doc("        ", o.Description)
		}
	}

	if len(s.enums) > 0 {
		h.b.WriteString("\n" + h.st.Header("Types:"))
		h.enums("    ")
	}
}

func (h *helpWriter) markdown(command string) {
	s := h.spec
	h.printf("%s\n\n### Usage\n> **%s** ", s.description, command)
	if len(s.options) > 0 {
		h.b.WriteString("[*options*] ")
	}
	h.args(s.main.Slots)
	h.printf(">>  %s\n", s.main.Description)

	if len(s.options) > 0 {
		h.b.WriteString("\n### Options\n\n")
		for _, o := range s.options {
			h.printf("> **-%s** ", o.Name)
			h.args(o.Slots)
			h.printf(">>  %s\n\n", o.Description)
		}
	}

	if len(s.enums) > 0 {
		h.b.WriteString("\n### Types\n")
		h.enums("> ")
	}
}

func (h *helpWriter) html(command string) {
	s := h.spec
	h.printf("<tr><td><a name=\"%s\"></a>", command)
	h.printf("<p>%s</p>\n\n", s.description)
	h.b.WriteString("<p><h3>Usage</h3></p>\n")
	h.printf("<b>%s</b> ", command)
	if len(s.options) > 0 {
		h.b.WriteString("[options] ")
	}
	h.args(s.main.Slots)
	h.b.WriteString("<br><blockquote><p>")
	h.doc("", s.main.Description)
	h.b.WriteString("</blockquote>\n")

	if len(s.options) > 0 {
		h.b.WriteString("<p><h3>Options</h3></p>\n")
		for _, o := range s.options {
			h.printf("<b>-%s</b> ", o.Name)
			h.args(o.Slots)
			h.b.WriteString("<br><blockquote>")
			h.doc("", o.Description)
			h.b.WriteString("</blockquote>")
		}
	}

	if len(s.enums) > 0 {
		h.b.WriteString("\n<p><h3>Types</h3></p>")
		h.enums("")
	}
	h.b.WriteString("</td></tr>")
}

// args writes a group's usage, e.g. "<name:string> [<dst:string> [<n:int>]]".
func (h *helpWriter) args(slots []Slot) {
	openArg, closeArg := "<", ">"
	switch h.kind {
	case HelpHTML:
		openArg, closeArg = "&lt;", "&gt;"
		h.b.WriteString("<i>")
	case HelpMarkdown:
		openArg, closeArg = "", "_"
	}

	clauses := 0
	for i, slot := range slots {
		if i != 0 {
			h.b.WriteByte(' ')
		}
		if !slot.Required {
			h.b.WriteByte(openBracketChar)
			clauses++
		}
		h.b.WriteString(openArg)
		if slot.Name != "" {
			h.b.WriteString(slot.Name + ":")
		}
		if h.kind == HelpMarkdown {
			h.b.WriteByte('_')
		}
		h.b.WriteString(h.spec.TypeName(slot.Type))
		h.b.WriteString(closeArg)
		if slot.Type.Array == ArrayList {
			h.b.WriteString(" " + ellipsisToken)
		}
	}
	h.b.WriteString(strings.Repeat(string(closeBracketChar), clauses))

	if h.kind == HelpHTML {
		h.b.WriteString("</i>")
	}
	h.b.WriteByte('\n')
}

// doc writes each line of a description behind leader.
func (h *helpWriter) doc(leader, text string) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			h.b.WriteByte('\n')
			continue
		}
		h.b.WriteString(leader + h.st.Muted(line) + "\n")
	}
}

func (h *helpWriter) enums(leader string) {
	for _, e := range h.spec.enums {
		switch h.kind {
		case HelpHTML:
			h.printf("<p><b>%s</b></p><blockquote><i>", e.Name)
		case HelpMarkdown:
			h.printf("\n%s**%s**\n\n", leader, e.Name)
		default:
			h.printf("\n%s%s:\n", leader, h.st.Info(e.Name))
		}

		for _, v := range e.Values {
			switch h.kind {
			case HelpHTML:
				h.printf("%s</br>\n", v.Token)
			case HelpMarkdown:
				h.printf("%s- %s\n", leader, v.Token)
			default:
				h.printf("%s   %s\n", leader, v.Token)
			}
		}

		if h.kind == HelpHTML {
			h.b.WriteString("</i></blockquote>")
		}
	}
}
