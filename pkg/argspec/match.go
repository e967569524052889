package argspec

import "strings"

// cursor walks the argument vector. In split mode the tokens come from one
// whitespace-split argument and are never treated as option markers.
type cursor struct {
	args  []string
	pos   int
	split bool
}

func (c *cursor) done() bool { return c.pos >= len(c.args) }

func (c *cursor) next() string {
	tok := c.args[c.pos]
	c.pos++
	return tok
}

func (c *cursor) atOption() bool {
	return !c.split && !c.done() && IsOption(c.args[c.pos])
}

func (ss *Session) match(args []string) *Error {
	spec := ss.spec
	main := spec.main.Slots

	if len(args) == 0 && len(main) > 0 {
		ss.help = true
		return newError(ErrHelpRequested, "%s", spec.Help(ss.command, HelpFull))
	}

	c := &cursor{args: args}
	i := 0

	for !c.done() {
		if c.atOption() {
			if err := ss.parseOption(c); err != nil {
				if err.Kind == ErrHelpRequested {
					err.Message = spec.Help(ss.command, HelpFull)
				}
				return err
			}
			continue
		}

		if i >= len(main) {
			return newError(ErrTooManyArgs, "Too many main arguments (expecting at most %d)", len(main))
		}
		if err := ss.parseArgument(main[i], c); err != nil {
			return err
		}
		i++
	}

	if ss.help {
		return nil
	}
	if n := missing(main, i); n > 0 {
		return newError(ErrNotEnoughArgs, "Not enough main arguments: expecting at least %d more", n)
	}
	return nil
}

// missing counts the run of required slots starting at the first unfilled
// one, or 0 if that slot is optional.
func missing(slots []Slot, filled int) int {
	n := 0
	for i := filled; i < len(slots) && slots[i].Required; i++ {
		n++
	}
	return n
}

func (ss *Session) parseOption(c *cursor) *Error {
	name := c.next()[1:]
	if name[0] == optionChar {
		name = name[1:]
		if name == "" {
			return nil
		}
	}

	if strings.EqualFold(name, "h") {
		ss.help = true
	}

	opt := ss.spec.option(name)
	if opt == nil {
		if ss.help {
			return newError(ErrHelpRequested, "help requested")
		}
		return newError(ErrUnknownOption, "Unknown option '%s'", name)
	}

	ss.setFlag(opt.Flag)

	if err := ss.parseOptionArgs(opt.Slots, c); err != nil {
		err.Message += " in -" + name
		return err
	}
	return nil
}

func (ss *Session) parseOptionArgs(slots []Slot, c *cursor) *Error {
	i := 0
	for i < len(slots) && !c.done() && !c.atOption() {
		if err := ss.parseArgument(slots[i], c); err != nil {
			return err
		}
		i++
	}

	if n := missing(slots, i); n > 0 {
		return newError(ErrNotEnoughArgs, "Not enough arguments: expecting at least %d more", n)
	}
	return nil
}

func (ss *Session) parseArgument(slot Slot, c *cursor) *Error {
	ss.setFlag(slot.Flag)

	vt := slot.Type
	switch vt.Array {
	case ArrayList:
		slot.target.clear(vt.Kind)
		for !c.done() && !c.atOption() {
			v, err := ss.convert(vt, c)
			if err != nil {
				return err
			}
			slot.target.add(vt.Kind, v)
		}
		return nil

	case ArraySplit:
		sub := &cursor{args: strings.Fields(c.next()), split: true}
		slot.target.clear(vt.Kind)
		for !sub.done() {
			v, err := ss.convert(vt, sub)
			if err != nil {
				return err
			}
			slot.target.add(vt.Kind, v)
		}
		return nil
	}

	v, err := ss.convert(vt, c)
	if err != nil {
		return err
	}
	slot.target.set(vt.Kind, v)
	return nil
}

// convert consumes the tokens for one element of type vt.
func (ss *Session) convert(vt ValueType, c *cursor) (value, *Error) {
	var v value
	var err *Error

	switch vt.Kind {
	case KindBool:
		v.b, err = parseBool(c.next())
	case KindInt:
		v.i, err = parseInt(c.next())
	case KindFloat:
		v.f, err = parseFloat(c.next(), 32)
	case KindDouble:
		v.f, err = parseFloat(c.next(), 64)
	case KindString, KindCString:
		v.s = c.next()
	case KindVec2, KindVec3, KindVec4:
		v.vec, err = parseVec(vt.Kind.VecLen(), c)
	case KindEnum:
		if vt.Enum < 0 || vt.Enum >= len(ss.spec.enums) {
			return v, newError(ErrBadSpec, "Unknown enum index %d", vt.Enum)
		}
		v.i, err = ss.spec.enums[vt.Enum].parse(c.next())
	default:
		return v, newError(ErrBadSpec, "Unknown arg type %d", int(vt.Kind))
	}
	return v, err
}
