package specfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

// Program is a compiled document: a spec plus the storage its targets
// write to. A Program is not safe for concurrent Run calls.
type Program struct {
	Name  string
	spec  *argspec.Spec
	slots []*slot
	flags []string // flag index -> name
}

type slot struct {
	name string
	typ  argspec.ValueType
	v    any
}

// marker is one "^" found while scanning a line.
type marker struct {
	option bool // marks the option itself, not an argument
	arg    int  // index of the marked argument within the line
}

// shape is what scanLine learns about a grammar line without compiling it.
type shape struct {
	option  string
	args    int
	markers []marker
}

// scanLine walks the tokens the same way the argspec builder does, so that
// bindings can be generated in the order the builder consumes them.
func scanLine(grammar string) shape {
	var sh shape

	tokens := strings.Fields(grammar)
	if len(tokens) > 0 && argspec.IsOption(tokens[0]) {
		tok := tokens[0]
		tokens = tokens[1:]
		if strings.HasSuffix(tok, "^") {
			sh.markers = append(sh.markers, marker{option: true})
			tok = strings.TrimSuffix(tok, "^")
		}
		sh.option = strings.TrimPrefix(strings.TrimPrefix(tok, "-"), "-")
	}

	for _, tok := range tokens {
		tok = strings.TrimPrefix(tok, "[")
		tok = strings.TrimRight(tok, "]")
		if tok == "" || tok == "..." {
			continue
		}
		if strings.HasSuffix(tok, "^") {
			sh.markers = append(sh.markers, marker{arg: sh.args})
		}
		sh.args++
	}
	return sh
}

// Compile builds the document into a Program. Every argument is bound to an
// argspec.Any target and every "^" gets the next flag index.
func Compile(doc *Document) (*Program, error) {
	b := argspec.NewBuilder(doc.Description)

	for _, e := range doc.Enums {
		switch {
		case e.Builtin == "help":
			b.Enum(e.Name, argspec.HelpTypes...)
		case len(e.Values) > 0:
			values := make([]argspec.EnumValue, len(e.Values))
			for i, v := range e.Values {
				values[i] = argspec.EnumValue{Token: v.Token, Value: v.Value}
			}
			b.Enum(e.Name, values...)
		default:
			b.EnumTokens(e.Name, e.Tokens...)
		}
	}

	p := &Program{Name: doc.Name}
	shapes := make([]shape, len(doc.Lines))
	lineSlots := make([][]*slot, len(doc.Lines))

	for i, line := range doc.Lines {
		sh := scanLine(line.Spec)
		shapes[i] = sh

		var bindings []argspec.Binding
		mi := 0
		if mi < len(sh.markers) && sh.markers[mi].option {
			bindings = append(bindings, argspec.Flag(len(p.flags)+mi))
			mi++
		}
		for a := 0; a < sh.args; a++ {
			s := &slot{}
			lineSlots[i] = append(lineSlots[i], s)
			bindings = append(bindings, argspec.Any(&s.v))
			if mi < len(sh.markers) && sh.markers[mi].arg == a && !sh.markers[mi].option {
				bindings = append(bindings, argspec.Flag(len(p.flags)+mi))
				mi++
			}
		}

		if len(line.Flags) > len(sh.markers) {
			return nil, fmt.Errorf("specfile: line %d names %d flags but has %d '^' markers",
				i+1, len(line.Flags), len(sh.markers))
		}
		for range sh.markers {
			p.flags = append(p.flags, "")
		}

		b.Line(line.Spec, line.Doc, bindings...)
	}

	spec, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("specfile: compile %s: %w", doc.Name, err)
	}
	p.spec = spec

	p.nameSlots(doc, shapes, lineSlots)
	return p, nil
}

// nameSlots fills in slot names and types from the built spec, and names
// flags that the document left unnamed.
func (p *Program) nameSlots(doc *Document, shapes []shape, lineSlots [][]*slot) {
	mainSlots := p.spec.Main().Slots
	options := p.spec.Options()
	mainPos, optPos := 0, 0
	flag := 0

	for i, sh := range shapes {
		var group []argspec.Slot
		prefix := ""
		if sh.option != "" {
			opt := options[optPos]
			optPos++
			group = opt.Slots
			prefix = "-" + opt.Name
		} else {
			group = mainSlots[mainPos : mainPos+sh.args]
			mainPos += sh.args
		}

		for j, s := range lineSlots[i] {
			s.typ = group[j].Type
			switch {
			case prefix == "":
				s.name = group[j].Name
				if s.name == "" {
					s.name = "arg" + strconv.Itoa(mainPos-sh.args+j+1)
				}
			case len(group) == 1:
				s.name = prefix
			case group[j].Name != "":
				s.name = prefix + "." + group[j].Name
			default:
				s.name = prefix + "." + strconv.Itoa(j+1)
			}
			p.slots = append(p.slots, s)
		}

		for k, m := range sh.markers {
			name := ""
			if k < len(doc.Lines[i].Flags) {
				name = doc.Lines[i].Flags[k]
			}
			if name == "" {
				if m.option {
					name = prefix
				} else {
					name = lineSlots[i][m.arg].name
				}
			}
			p.flags[flag] = strings.TrimPrefix(name, "-")
			flag++
		}
	}
}

// Spec returns the compiled spec.
func (p *Program) Spec() *argspec.Spec { return p.spec }

// FlagNames returns flag names indexed by flag number.
func (p *Program) FlagNames() []string { return p.flags }

// Run parses argv (without the command name) and reports what matched.
// Values from a previous Run are cleared first.
func (p *Program) Run(argv []string) *Result {
	for _, s := range p.slots {
		s.v = nil
	}

	ss, err := p.spec.Parse(append([]string{p.Name}, argv...))

	r := &Result{
		Command: p.Name,
		Args:    argv,
		Mask:    ss.Flags(),
		Help:    ss.HelpRequested(),
		err:     err,
	}

	for i, name := range p.flags {
		if ss.Flag(argspec.Flag(i)) {
			r.Flags = append(r.Flags, name)
		}
	}

	for _, s := range p.slots {
		if s.v == nil {
			continue
		}
		r.Values = append(r.Values, Value{Name: s.name, Type: p.spec.TypeName(s.typ), Value: p.display(s)})
	}

	switch {
	case argspec.IsHelp(err):
		r.Outcome = domain.OutcomeHelp
		r.Message = ss.Message()
	case err != nil:
		r.Outcome = domain.OutcomeError
		r.ErrorKind = argspec.KindOf(err).String()
		r.Message = ss.Message()
	case r.Help:
		r.Outcome = domain.OutcomeHelp
		r.Message = p.spec.Help(p.Name, p.helpType(r))
	default:
		r.Outcome = domain.OutcomeOK
	}
	return r
}

// helpType honors a "-h [<helpType>]" style option bound to the builtin
// help enum.
func (p *Program) helpType(r *Result) argspec.HelpType {
	for _, v := range r.Values {
		if v.Name != "-h" && v.Name != "-help" {
			continue
		}
		if tok, ok := v.Value.(string); ok {
			if t, err := argspec.ParseHelpType(tok); err == nil {
				return t
			}
		}
	}
	return argspec.HelpFull
}

// display converts enum indices back to their tokens.
func (p *Program) display(s *slot) any {
	if s.typ.Kind != argspec.KindEnum {
		return s.v
	}
	e := p.spec.Enums()[s.typ.Enum]

	switch v := s.v.(type) {
	case int:
		if tok, ok := e.Token(v); ok {
			return tok
		}
	case []int:
		toks := make([]string, len(v))
		for i, n := range v {
			toks[i], _ = e.Token(n)
		}
		return toks
	}
	return s.v
}
