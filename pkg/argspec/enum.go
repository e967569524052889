package argspec

import "strings"

// EnumValue is one symbolic token and the integer it stands for.
type EnumValue struct {
	Token string
	Value int
}

// EnumSpec is a named, ordered token table usable as an argument type.
type EnumSpec struct {
	Name   string
	Values []EnumValue
}

// Lookup finds token case-insensitively.
func (e EnumSpec) Lookup(token string) (int, bool) {
	for _, v := range e.Values {
		if strings.EqualFold(v.Token, token) {
			return v.Value, true
		}
	}
	return 0, false
}

// Token returns the first token declared for value.
func (e EnumSpec) Token(value int) (string, bool) {
	for _, v := range e.Values {
		if v.Value == value {
			return v.Token, true
		}
	}
	return "", false
}

// Tokens returns the tokens in declaration order.
func (e EnumSpec) Tokens() []string {
	tokens := make([]string, len(e.Values))
	for i, v := range e.Values {
		tokens[i] = v.Token
	}
	return tokens
}

func (e EnumSpec) parse(token string) (int, *Error) {
	if v, ok := e.Lookup(token); ok {
		return v, nil
	}
	return 0, newError(ErrBadEnum, "Unknown enum '%s' of type %s", token, e.Name)
}
