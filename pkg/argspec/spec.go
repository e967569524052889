// Package argspec compiles a compact argument grammar into a command
// specification and matches argument vectors against it.
//
// A specification is built line by line. Each line either describes the
// positional arguments or, when it starts with an option marker, a named
// option and its own arguments:
//
//	var (
//		name string
//		dst  = "/dev/null"
//		size = 100
//		pos  [3]float32
//	)
//
//	b := argspec.NewBuilder("Provides an example")
//	b.Line("<name:string> [<dst:cstr>^]", "Name and optional destination",
//		argspec.String(&name), argspec.String(&dst), argspec.Flag(FlagHaveDest))
//	b.Line("-size^ %d", "Set image size", argspec.Flag(FlagSize), argspec.Int(&size))
//	b.Line("-pos <vec3>", "Set position", argspec.Vec3(&pos))
//	spec, err := b.Build()
//
//	session, err := spec.Parse(os.Args)
//	if argspec.IsHelp(err) {
//		fmt.Println(session.Message())
//	}
//
// Square brackets make trailing arguments optional, "..." after an argument
// makes it consume every following token up to the next option, a "[]"
// suffix on a type splits a single quoted token into elements, and "^"
// after an option name or argument sets a presence flag when it is seen.
package argspec

import "strings"

// Slot is one typed argument position in a group.
type Slot struct {
	Type     ValueType
	Name     string
	Required bool
	Flag     int

	target Target
}

// Group is an ordered list of slots with a description.
type Group struct {
	Slots       []Slot
	Description string
}

// Option is a named group introduced on the command line by -name or --name.
type Option struct {
	Group
	Name string
	Flag int
}

// Spec is a compiled command specification. It is immutable once built and
// may be shared; per-parse state lives in Session.
type Spec struct {
	description string
	main        Group
	options     []Option
	enums       []EnumSpec
}

// Description returns the command description given to NewBuilder.
func (s *Spec) Description() string { return s.description }

// Main returns a copy of the positional argument group.
func (s *Spec) Main() Group { return s.main.clone() }

// Options returns a copy of the declared options in declaration order.
func (s *Spec) Options() []Option {
	out := make([]Option, len(s.options))
	for i, o := range s.options {
		out[i] = o.clone()
	}
	return out
}

// Enums returns a copy of the declared enums in declaration order.
func (s *Spec) Enums() []EnumSpec {
	out := make([]EnumSpec, len(s.enums))
	for i, e := range s.enums {
		out[i] = e.clone()
	}
	return out
}

// Option finds a declared option by name, case-insensitively, and returns
// a copy of it.
func (s *Spec) Option(name string) (*Option, bool) {
	o := s.option(name)
	if o == nil {
		return nil, false
	}
	c := o.clone()
	return &c, true
}

// option is Option without the copy, for the matcher.
func (s *Spec) option(name string) *Option {
	for i := range s.options {
		if strings.EqualFold(s.options[i].Name, name) {
			return &s.options[i]
		}
	}
	return nil
}

// Enum finds a declared enum by name, case-insensitively, and returns a
// copy of it.
func (s *Spec) Enum(name string) (*EnumSpec, bool) {
	for i := range s.enums {
		if strings.EqualFold(s.enums[i].Name, name) {
			c := s.enums[i].clone()
			return &c, true
		}
	}
	return nil, false
}

func (g Group) clone() Group {
	g.Slots = append([]Slot(nil), g.Slots...)
	return g
}

func (o Option) clone() Option {
	o.Group = o.Group.clone()
	return o
}

func (e EnumSpec) clone() EnumSpec {
	e.Values = append([]EnumValue(nil), e.Values...)
	return e
}

// TypeName returns the help display name of a slot's type.
func (s *Spec) TypeName(t ValueType) string {
	return t.Name(s.enums)
}

// OptionNames returns every option name, used for suggestions.
func (s *Spec) OptionNames() []string {
	names := make([]string, len(s.options))
	for i, o := range s.options {
		names[i] = o.Name
	}
	return names
}
