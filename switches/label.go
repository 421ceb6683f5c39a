package switches

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/npillmayer/bootstraps/maybe"
)

// ErrConfiguration is wrapped by every error reported at construction time.
var ErrConfiguration = errors.New("switches: invalid configuration")

// Label is a case label of a dispatch table. Labels are one of TypeLabel,
// StringLabel, IntLabel, EnumLabel or ValueLabel.
type Label interface {
	fmt.Stringer
	// compile checks the label and turns it into a match function.
	compile() (matchFunc, error)
}

// matchFunc tests a non-nil target with dynamic type tt.
type matchFunc func(target any, tt reflect.Type) bool

func never(any, reflect.Type) bool {
	return false
}

// --- Type labels -----------------------------------------------------------

// TypeLabel matches targets whose dynamic type is assignable to a type.
// For interface types this means targets implementing the interface.
type TypeLabel struct {
	typ reflect.Type
}

// Type is a type test for T.
func Type[T any]() TypeLabel {
	return TypeLabel{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeOf is a type test for t.
func TypeOf(t reflect.Type) TypeLabel {
	return TypeLabel{typ: t}
}

func (l TypeLabel) String() string {
	return fmt.Sprintf("type %v", l.typ)
}

func (l TypeLabel) compile() (matchFunc, error) {
	if l.typ == nil {
		return nil, fmt.Errorf("%w: type label without a type", ErrConfiguration)
	}
	return func(_ any, tt reflect.Type) bool {
		return tt.AssignableTo(l.typ)
	}, nil
}

// --- Constant labels -------------------------------------------------------

// StringLabel matches targets of type string with an equal value.
type StringLabel string

func (l StringLabel) String() string {
	return fmt.Sprintf("string %q", string(l))
}

func (l StringLabel) compile() (matchFunc, error) {
	return func(target any, _ reflect.Type) bool {
		s, ok := target.(string)
		return ok && s == string(l)
	}, nil
}

// IntLabel matches numeric targets of any integer or floating point type
// whose integer value equals the label. Floating point values are truncated
// towards zero. As runes are int32, characters match by their code point.
type IntLabel int

func (l IntLabel) String() string {
	return fmt.Sprintf("int %d", int(l))
}

func (l IntLabel) compile() (matchFunc, error) {
	return func(target any, _ reflect.Type) bool {
		n, ok := intValue(target)
		return ok && n == int64(l)
	}, nil
}

// intValue extracts the integer value of a numeric target. Unsigned values
// beyond the int64 range, NaNs and infinite floats have none.
func intValue(target any) (int64, bool) {
	v := reflect.ValueOf(target)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		return int64(u), u <= math.MaxInt64
	case reflect.Float32, reflect.Float64:
		f := math.Trunc(v.Float())
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

// ValueLabel matches targets equal to a comparable constant, by Go's ==.
// Targets of a different dynamic type never match.
type ValueLabel struct {
	v any
}

// Value is a constant label for v, which must be comparable.
func Value(v any) ValueLabel {
	return ValueLabel{v: v}
}

func (l ValueLabel) String() string {
	return fmt.Sprintf("value %#v", l.v)
}

func (l ValueLabel) compile() (matchFunc, error) {
	if l.v == nil {
		return nil, fmt.Errorf("%w: nil constant label", ErrConfiguration)
	}
	if !reflect.TypeOf(l.v).Comparable() {
		return nil, fmt.Errorf("%w: constant label of uncomparable type %T", ErrConfiguration, l.v)
	}
	return func(target any, _ reflect.Type) bool {
		return safeEqual(l.v, target)
	}, nil
}

// safeEqual is ==, reporting false where == would panic on uncomparable
// dynamic values nested in interfaces.
func safeEqual(x, y any) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			eq = false
		}
	}()
	return x == y
}

// --- Enum labels -----------------------------------------------------------

// enumType is the type-erased view of an Enum.
type enumType interface {
	declared() bool
	Type() reflect.Type
	lookup(name string) (any, bool)
}

// EnumLabel matches a named constant of an enum-like type. The name is
// resolved when the dispatch table is built; unresolvable names never match.
type EnumLabel struct {
	enum enumType
	name string
}

// EnumRef is a label for the constant of enum called name.
func EnumRef[E EnumConstant](enum *Enum[E], name string) EnumLabel {
	return EnumLabel{enum: enum, name: name}
}

func (l EnumLabel) String() string {
	if l.enum == nil || !l.enum.declared() {
		return fmt.Sprintf("enum ?.%s", l.name)
	}
	return fmt.Sprintf("enum %v.%s", l.enum.Type(), l.name)
}

func (l EnumLabel) compile() (matchFunc, error) {
	if l.enum == nil || !l.enum.declared() {
		return nil, fmt.Errorf("%w: enum label %q without enum", ErrConfiguration, l.name)
	}
	c, ok := l.enum.lookup(l.name)
	var constant any
	switch m := maybe.Lookup(c, ok).Match(); m {
	case m.Just(&constant):
		return func(target any, _ reflect.Type) bool {
			return safeEqual(target, constant)
		}, nil
	case m.Nothing():
		tracer().Infof("enum constant %s does not exist, label will never match", l)
	}
	return never, nil
}

// --- Raw label values ------------------------------------------------------

// Labels converts raw label values to labels:
//
//     reflect.Type  →  TypeLabel
//     string        →  StringLabel
//     int           →  IntLabel
//     Label         →  itself
//     comparable    →  ValueLabel
//
// nil and uncomparable values are configuration errors.
func Labels(values ...any) ([]Label, error) {
	labels := make([]Label, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
			return nil, fmt.Errorf("%w: label #%d is nil", ErrConfiguration, i)
		case Label:
			labels[i] = x
		case reflect.Type:
			labels[i] = TypeOf(x)
		case string:
			labels[i] = StringLabel(x)
		case int:
			labels[i] = IntLabel(x)
		default:
			if !reflect.TypeOf(v).Comparable() {
				return nil, fmt.Errorf("%w: label #%d of uncomparable type %T", ErrConfiguration, i, v)
			}
			labels[i] = Value(v)
		}
	}
	return labels, nil
}
