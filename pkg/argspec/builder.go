package argspec

import (
	"fmt"
	"strings"
)

const (
	openBracketChar  = '['
	closeBracketChar = ']'
	setFlagChar      = '^'
	optionChar       = '-'
	ellipsisToken    = "..."
)

// Builder compiles grammar lines into a Spec. Builder methods record the
// first error and keep going where that is safe; after a fatal error
// (unbalanced brackets, ellipsis misuse, binding mismatch) further calls are
// ignored and Build returns what was compiled so far.
type Builder struct {
	spec   *Spec
	err    *Error
	halted bool

	// depth of the most recent optional slot in the main group, which
	// spans lines
	mainOptDepth int
}

// NewBuilder starts a specification with the given command description.
func NewBuilder(description string) *Builder {
	return &Builder{spec: &Spec{description: description}}
}

// Enum declares an enum usable as an argument type in later lines.
func (b *Builder) Enum(name string, values ...EnumValue) *Builder {
	if b.halted {
		return b
	}
	b.spec.enums = append(b.spec.enums, EnumSpec{
		Name:   name,
		Values: append([]EnumValue(nil), values...),
	})
	return b
}

// EnumTokens declares an enum whose values are the token positions 0..n-1.
func (b *Builder) EnumTokens(name string, tokens ...string) *Builder {
	values := make([]EnumValue, len(tokens))
	for i, t := range tokens {
		values[i] = EnumValue{Token: t, Value: i}
	}
	return b.Enum(name, values...)
}

// Line adds one grammar line. bindings supply, in order, the flag for a
// "^" on the option name, then for each argument its Target followed by its
// Flag when the argument carries "^".
func (b *Builder) Line(grammar, description string, bindings ...Binding) *Builder {
	if b.halted {
		return b
	}
	if err := b.line(grammar, description, bindings); err != nil {
		b.fail(err)
	}
	return b
}

// Err returns the first error recorded so far.
func (b *Builder) Err() error {
	if b.err == nil {
		return nil
	}
	return b.err
}

// Build returns the compiled spec and the first error recorded, if any.
// The spec is usable even when the error is ErrUnknownType; slots of an
// unknown type fail with ErrBadSpec if a parse reaches them.
func (b *Builder) Build() (*Spec, error) {
	return b.spec, b.Err()
}

// MustBuild is Build for specs fixed at compile time; it panics on error.
func (b *Builder) MustBuild() *Spec {
	spec, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("argspec: %v", err))
	}
	return spec
}

// fail records err. Fatal kinds take precedence over an earlier
// ErrUnknownType and stop the builder.
func (b *Builder) fail(err *Error) {
	fatal := err.Kind != ErrUnknownType
	if b.err == nil || (fatal && b.err.Kind == ErrUnknownType) {
		b.err = err
	}
	if fatal {
		b.halted = true
	}
}

// IsOption reports whether s looks like -name or --name. A dash followed by
// a digit is a negative number, not an option.
func IsOption(s string) bool {
	if len(s) < 2 || s[0] != optionChar {
		return false
	}
	c := s[1]
	return c == optionChar || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// optionName strips up to two leading dashes.
func optionName(s string) string {
	s = strings.TrimPrefix(s, "-")
	return strings.TrimPrefix(s, "-")
}

type bindingStream struct {
	items []Binding
	pos   int
	line  string
}

func (bs *bindingStream) target(token string) (Target, *Error) {
	if bs.pos >= len(bs.items) {
		return Target{}, newError(ErrBinding, "Missing target for '%s' in '%s'", token, bs.line)
	}
	item := bs.items[bs.pos]
	bs.pos++
	t, ok := item.(Target)
	if !ok {
		return Target{}, newError(ErrBinding, "Expected a target for '%s' in '%s', got %T", token, bs.line, item)
	}
	return t, nil
}

func (bs *bindingStream) flag(token string) (int, *Error) {
	if bs.pos >= len(bs.items) {
		return NoFlag, newError(ErrBinding, "Missing flag for '%s' in '%s'", token, bs.line)
	}
	item := bs.items[bs.pos]
	bs.pos++
	f, ok := item.(Flag)
	if !ok {
		return NoFlag, newError(ErrBinding, "Expected a flag for '%s' in '%s', got %T", token, bs.line, item)
	}
	if f < 0 || f >= MaxFlags {
		return NoFlag, newError(ErrFlagRange, "Flag %d for '%s' is outside 0..%d", int(f), token, MaxFlags-1)
	}
	return int(f), nil
}

func (b *Builder) line(grammar, description string, bindings []Binding) *Error {
	tokens := strings.Fields(grammar)
	bs := &bindingStream{items: bindings, line: grammar}

	var (
		option   *Option
		group    = &b.spec.main
		optDepth = &b.mainOptDepth
		local    int
	)

	if len(tokens) > 0 && IsOption(tokens[0]) {
		tok := tokens[0]
		tokens = tokens[1:]

		option = &Option{Flag: NoFlag}
		if tok[len(tok)-1] == setFlagChar {
			tok = tok[:len(tok)-1]
			f, err := bs.flag(tok)
			if err != nil {
				return err
			}
			option.Flag = f
		}
		option.Name = optionName(tok)
		group = &option.Group
		optDepth = &local
	}

	first := len(group.Slots)
	depth, prevDepth := 0, 0

	for i, tok := range tokens {
		if tok[0] == openBracketChar {
			depth++
			tok = tok[1:]
		}

		required := depth == prevDepth
		slotDepth := depth

		for tok != "" && tok[len(tok)-1] == closeBracketChar {
			depth--
			tok = tok[:len(tok)-1]
		}

		if tok == "" {
			continue
		}

		if tok == ellipsisToken {
			if len(group.Slots) == first {
				return newError(ErrEllipsis, "'%s' with no preceding argument in '%s'", ellipsisToken, grammar)
			}
			if i != len(tokens)-1 {
				return newError(ErrEllipsis, "'%s' must be the last token in '%s'", ellipsisToken, grammar)
			}
			last := &group.Slots[len(group.Slots)-1]
			if last.Type.Array != ArrayNone {
				return newError(ErrEllipsis, "'%s' applied to an array argument in '%s'", ellipsisToken, grammar)
			}
			last.Type.Array = ArrayList
			continue
		}

		if required && slotDepth < *optDepth {
			return newError(ErrOptionalGroup, "Required argument '%s' follows an optional one in '%s'", tok, grammar)
		}
		if !required {
			*optDepth = slotDepth
		}

		target, err := bs.target(tok)
		if err != nil {
			return err
		}

		slot := Slot{Required: required, Flag: NoFlag, target: target}

		if tok[len(tok)-1] == setFlagChar {
			tok = tok[:len(tok)-1]
			f, err := bs.flag(tok)
			if err != nil {
				return err
			}
			slot.Flag = f
		}

		name, vt, perr := parsePlaceholder(tok, b.spec.enums)
		if perr != nil {
			// keep the slot so later bindings stay aligned
			b.fail(newError(ErrUnknownType, "%v in '%s'", perr, grammar))
		}
		slot.Name = name
		slot.Type = vt

		group.Slots = append(group.Slots, slot)
		prevDepth = depth
	}

	if depth != 0 {
		return newError(ErrUnbalancedBrackets, "Unbalanced brackets in '%s'", grammar)
	}

	if bs.pos != len(bs.items) {
		return newError(ErrBinding, "%d unused bindings for '%s'", len(bs.items)-bs.pos, grammar)
	}

	for _, slot := range group.Slots[first:] {
		if slot.Type.Kind == KindInvalid {
			continue
		}
		if !slot.target.accepts(slot.Type) {
			return newError(ErrBinding, "Target %s cannot hold <%s> in '%s'",
				slot.target.describe(), b.spec.TypeName(slot.Type), grammar)
		}
	}

	if option != nil {
		option.Description = description
		b.spec.options = append(b.spec.options, *option)
		return nil
	}

	if group.Description != "" {
		group.Description += "\n"
	}
	group.Description += description
	return nil
}
