package argspec

import "fmt"

// Binding is one entry of the stream passed to Builder.Line: either a Target
// for an argument placeholder or a Flag for a "^" marker.
type Binding interface {
	binding()
}

// Flag is the index of a presence bit, in [0, MaxFlags).
type Flag int

func (Flag) binding() {}

// NoFlag marks a slot or option that sets no presence bit.
const NoFlag = -1

// MaxFlags is the width of the presence bitmask.
const MaxFlags = 32

// Target is a typed handle to caller-owned storage. The engine writes
// through it but never allocates or retains anything behind it beyond the
// lifetime of the Spec it was bound into.
type Target struct {
	ptr any
}

func (Target) binding() {}

// Bool through Vec4 bind a single-value slot to *p. The slot's grammar type
// must convert to the pointed-to type; Line reports a binding error
// otherwise. Int also accepts enum slots.
func Bool(p *bool) Target       { return Target{ptr: p} }
func Int(p *int) Target         { return Target{ptr: p} }
func Float(p *float32) Target   { return Target{ptr: p} }
func Double(p *float64) Target  { return Target{ptr: p} }
func String(p *string) Target   { return Target{ptr: p} }
func Vec2(p *[2]float32) Target { return Target{ptr: p} }
func Vec3(p *[3]float32) Target { return Target{ptr: p} }
func Vec4(p *[4]float32) Target { return Target{ptr: p} }

// Enum binds an enum slot to the matched token's value.
func Enum(p *int) Target { return Target{ptr: enumPtr{p}} }

// Bools through Vec4s bind an array slot ("type[]" or "...") to *p. Each
// match replaces the slice.
func Bools(p *[]bool) Target       { return Target{ptr: p} }
func Ints(p *[]int) Target         { return Target{ptr: p} }
func Floats(p *[]float32) Target   { return Target{ptr: p} }
func Doubles(p *[]float64) Target  { return Target{ptr: p} }
func Strings(p *[]string) Target   { return Target{ptr: p} }
func Vec2s(p *[][2]float32) Target { return Target{ptr: p} }
func Vec3s(p *[][3]float32) Target { return Target{ptr: p} }
func Vec4s(p *[][4]float32) Target { return Target{ptr: p} }

// Enums binds an enum array slot to the matched values.
func Enums(p *[]int) Target { return Target{ptr: enumsPtr{p}} }

// Any stores the natural Go value for whatever the slot resolves to: bool,
// int, float32, float64, string, [N]float32 or an enum's int, and slices of
// those for array slots.
func Any(p *any) Target { return Target{ptr: p} }

// Discard accepts any slot and drops the parsed value.
func Discard() Target { return Target{} }

type enumPtr struct{ p *int }
type enumsPtr struct{ p *[]int }

// value is one converted scalar or vector element.
type value struct {
	b   bool
	i   int
	f   float64
	s   string
	vec [4]float32
}

func (t Target) accepts(vt ValueType) bool {
	if t.ptr == nil {
		return true
	}
	if _, ok := t.ptr.(*any); ok {
		return true
	}
	if vt.Array != ArrayNone {
		return t.acceptsElems(vt.Kind)
	}
	switch t.ptr.(type) {
	case *bool:
		return vt.Kind == KindBool
	case *int:
		return vt.Kind == KindInt || vt.Kind == KindEnum
	case enumPtr:
		return vt.Kind == KindEnum
	case *float32, *float64:
		return vt.Kind == KindFloat || vt.Kind == KindDouble
	case *string:
		return vt.Kind == KindString || vt.Kind == KindCString
	case *[2]float32:
		return vt.Kind == KindVec2
	case *[3]float32:
		return vt.Kind == KindVec3
	case *[4]float32:
		return vt.Kind == KindVec4
	}
	return false
}

func (t Target) acceptsElems(k Kind) bool {
	switch t.ptr.(type) {
	case *[]bool:
		return k == KindBool
	case *[]int:
		return k == KindInt || k == KindEnum
	case enumsPtr:
		return k == KindEnum
	case *[]float32, *[]float64:
		return k == KindFloat || k == KindDouble
	case *[]string:
		return k == KindString || k == KindCString
	case *[][2]float32:
		return k == KindVec2
	case *[][3]float32:
		return k == KindVec3
	case *[][4]float32:
		return k == KindVec4
	}
	return false
}

// describe names the Go type behind t for binding errors.
func (t Target) describe() string {
	switch t.ptr.(type) {
	case nil:
		return "discard"
	case enumPtr:
		return "*int (enum)"
	case enumsPtr:
		return "*[]int (enum)"
	case *any:
		return "*any"
	}
	return fmt.Sprintf("%T", t.ptr)
}

func natural(k Kind, v value) any {
	switch k {
	case KindBool:
		return v.b
	case KindInt, KindEnum:
		return v.i
	case KindFloat:
		return float32(v.f)
	case KindDouble:
		return v.f
	case KindString, KindCString:
		return v.s
	case KindVec2:
		return [2]float32{v.vec[0], v.vec[1]}
	case KindVec3:
		return [3]float32{v.vec[0], v.vec[1], v.vec[2]}
	case KindVec4:
		return v.vec
	}
	return nil
}

func emptySlice(k Kind) any {
	switch k {
	case KindBool:
		return []bool{}
	case KindInt, KindEnum:
		return []int{}
	case KindFloat:
		return []float32{}
	case KindDouble:
		return []float64{}
	case KindString, KindCString:
		return []string{}
	case KindVec2:
		return [][2]float32{}
	case KindVec3:
		return [][3]float32{}
	case KindVec4:
		return [][4]float32{}
	}
	return []any{}
}

// set writes a single value for a non-array slot.
func (t Target) set(k Kind, v value) {
	switch p := t.ptr.(type) {
	case *bool:
		*p = v.b
	case *int:
		*p = v.i
	case enumPtr:
		*p.p = v.i
	case *float32:
		*p = float32(v.f)
	case *float64:
		*p = v.f
	case *string:
		*p = v.s
	case *[2]float32:
		copy(p[:], v.vec[:2])
	case *[3]float32:
		copy(p[:], v.vec[:3])
	case *[4]float32:
		*p = v.vec
	case *any:
		*p = natural(k, v)
	}
}

// clear empties the sequence behind an array target.
func (t Target) clear(k Kind) {
	switch p := t.ptr.(type) {
	case *[]bool:
		*p = (*p)[:0]
	case *[]int:
		*p = (*p)[:0]
	case enumsPtr:
		*p.p = (*p.p)[:0]
	case *[]float32:
		*p = (*p)[:0]
	case *[]float64:
		*p = (*p)[:0]
	case *[]string:
		*p = (*p)[:0]
	case *[][2]float32:
		*p = (*p)[:0]
	case *[][3]float32:
		*p = (*p)[:0]
	case *[][4]float32:
		*p = (*p)[:0]
	case *any:
		*p = emptySlice(k)
	}
}

// add appends one element to an array target.
func (t Target) add(k Kind, v value) {
	switch p := t.ptr.(type) {
	case *[]bool:
		*p = append(*p, v.b)
	case *[]int:
		*p = append(*p, v.i)
	case enumsPtr:
		*p.p = append(*p.p, v.i)
	case *[]float32:
		*p = append(*p, float32(v.f))
	case *[]float64:
		*p = append(*p, v.f)
	case *[]string:
		*p = append(*p, v.s)
	case *[][2]float32:
		*p = append(*p, [2]float32{v.vec[0], v.vec[1]})
	case *[][3]float32:
		*p = append(*p, [3]float32{v.vec[0], v.vec[1], v.vec[2]})
	case *[][4]float32:
		*p = append(*p, v.vec)
	case *any:
		*p = appendAny(*p, k, v)
	}
}

func appendAny(cur any, k Kind, v value) any {
	switch s := cur.(type) {
	case []bool:
		return append(s, v.b)
	case []int:
		return append(s, v.i)
	case []float32:
		return append(s, float32(v.f))
	case []float64:
		return append(s, v.f)
	case []string:
		return append(s, v.s)
	case [][2]float32:
		return append(s, [2]float32{v.vec[0], v.vec[1]})
	case [][3]float32:
		return append(s, [3]float32{v.vec[0], v.vec[1], v.vec[2]})
	case [][4]float32:
		return append(s, v.vec)
	case []any:
		return append(s, natural(k, v))
	}
	return appendAny(emptySlice(k), k, v)
}
