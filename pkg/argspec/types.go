package argspec

import "strings"

// Kind is the base value kind of an argument slot.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindDouble
	KindCString
	KindString
	KindVec2
	KindVec3
	KindVec4
	KindEnum
)

// ArrayKind selects how a slot repeats.
type ArrayKind uint8

const (
	// ArrayNone is a single value.
	ArrayNone ArrayKind = iota
	// ArraySplit takes one token and splits it on whitespace, e.g. "1 2 3".
	ArraySplit
	// ArrayList takes successive tokens up to the next option or the end.
	ArrayList
)

// ValueType is the resolved type of a slot. Enum indexes Spec.Enums when
// Kind is KindEnum.
type ValueType struct {
	Kind  Kind
	Enum  int
	Array ArrayKind
}

// VecLen returns the component count for vector kinds and 0 otherwise.
func (k Kind) VecLen() int {
	switch k {
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	}
	return 0
}

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindCString, KindString:
		return "string"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindEnum:
		return "enum"
	}
	return "invalid"
}

// Name returns the display name of t as used in help: the base type name
// (or enum name), with "[]" appended for split arrays.
func (t ValueType) Name(enums []EnumSpec) string {
	name := t.Kind.String()
	if t.Kind == KindEnum {
		name = "unknown"
		if t.Enum >= 0 && t.Enum < len(enums) {
			name = enums[t.Enum].Name
		}
	}
	if t.Array == ArraySplit {
		name += "[]"
	}
	return name
}

const (
	beginArgChar = '<'
	endArgChar   = '>'
	argSepChar   = ':'
	formatChar   = '%'
	arraySuffix  = "[]"
)

var shorthandKinds = map[byte]Kind{
	'f': KindFloat,
	'g': KindFloat,
	'F': KindDouble,
	'G': KindDouble,
	'd': KindInt,
	'b': KindBool,
	's': KindCString,
}

var typeNames = map[string]Kind{
	"bool":    KindBool,
	"int":     KindInt,
	"float":   KindFloat,
	"double":  KindDouble,
	"string":  KindString,
	"cstr":    KindCString,
	"cstring": KindCString,
	"v2":      KindVec2,
	"vec2":    KindVec2,
	"vector2": KindVec2,
	"v3":      KindVec3,
	"vec3":    KindVec3,
	"vector3": KindVec3,
	"v4":      KindVec4,
	"vec4":    KindVec4,
	"vector4": KindVec4,
}

// ResolveType maps a type name such as "int", "vec3", "cstr[]" or a declared
// enum name to its ValueType. Names are case-insensitive.
func ResolveType(name string, enums []EnumSpec) (ValueType, error) {
	var t ValueType

	base := name
	if len(base) > len(arraySuffix) && strings.HasSuffix(base, arraySuffix) {
		base = strings.TrimSuffix(base, arraySuffix)
		t.Array = ArraySplit
	}

	if kind, ok := typeNames[strings.ToLower(base)]; ok {
		t.Kind = kind
		return t, nil
	}

	for i := range enums {
		if strings.EqualFold(enums[i].Name, base) {
			t.Kind = KindEnum
			t.Enum = i
			return t, nil
		}
	}

	return ValueType{}, newError(ErrUnknownType, "Unknown argument type '%s'", name)
}

// parsePlaceholder splits an argument token (brackets and flag marker
// already stripped) into its display name and resolved type. Accepted
// forms are "%d", "<int>", "<count:int>", "count:int" and "int".
func parsePlaceholder(token string, enums []EnumSpec) (string, ValueType, error) {
	if token == "" {
		return "", ValueType{}, newError(ErrUnknownType, "Empty argument type")
	}

	if len(token) > 1 && token[0] == formatChar {
		kind, ok := shorthandKinds[token[1]]
		if !ok || len(token) > 2 {
			return "", ValueType{}, newError(ErrUnknownType, "Unknown argument type '%s'", token)
		}
		return "", ValueType{Kind: kind}, nil
	}

	typeStr := token
	if len(typeStr) >= 2 && typeStr[0] == beginArgChar && typeStr[len(typeStr)-1] == endArgChar {
		typeStr = typeStr[1 : len(typeStr)-1]
	}

	var name string
	if i := strings.IndexByte(typeStr, argSepChar); i >= 0 {
		name = typeStr[:i]
		typeStr = typeStr[i+1:]
	}

	t, err := ResolveType(typeStr, enums)
	return name, t, err
}
