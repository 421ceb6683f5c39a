package objmethods

import (
	"fmt"
	"math"
	"reflect"
	"unicode/utf16"

	"github.com/mitchellh/hashstructure/v2"
)

// Equaler is implemented by component types which define their own equality.
type Equaler interface {
	Equals(other any) bool
}

// Hasher is implemented by component types which define their own hash.
// Types implementing Equaler should implement Hasher consistently.
type Hasher interface {
	HashCode() int32
}

// componentOps bundles the per-component functions selected for a static
// component type.
type componentOps struct {
	equal  func(x, y any) bool
	hash   func(x any) int32
	render func(x any) string
}

var (
	equalerType = reflect.TypeOf((*Equaler)(nil)).Elem()
	hasherType  = reflect.TypeOf((*Hasher)(nil)).Elem()
)

// opsFor selects comparator, hasher and renderer for components of type t.
// All values handed to the returned functions have static type t, boxed
// into any. Types with their own equality or hash are treated structurally,
// whatever their kind.
func opsFor(t reflect.Type) componentOps {
	if t.Implements(equalerType) || t.Implements(hasherType) {
		return componentOps{
			equal:  structuralEqual,
			hash:   structuralHash,
			render: render,
		}
	}
	return kindOps(t)
}

// kindOps selects comparator, hasher and renderer from the kind of t.
func kindOps(t reflect.Type) componentOps {
	ops := componentOps{render: render}
	switch t.Kind() {
	case reflect.Bool:
		ops.equal, ops.hash = valueEqual, func(x any) int32 {
			return boolHash(reflect.ValueOf(x).Bool())
		}
	case reflect.Int8, reflect.Int16, reflect.Int32:
		ops.equal, ops.hash = valueEqual, func(x any) int32 {
			return int32(reflect.ValueOf(x).Int())
		}
	case reflect.Int, reflect.Int64:
		ops.equal, ops.hash = valueEqual, func(x any) int32 {
			return longHash(reflect.ValueOf(x).Int())
		}
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		ops.equal, ops.hash = valueEqual, func(x any) int32 {
			return int32(uint32(reflect.ValueOf(x).Uint()))
		}
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		ops.equal, ops.hash = valueEqual, func(x any) int32 {
			return longHash(int64(reflect.ValueOf(x).Uint()))
		}
	case reflect.Float32:
		ops.equal = func(x, y any) bool {
			return float32Bits(reflect.ValueOf(x).Float()) == float32Bits(reflect.ValueOf(y).Float())
		}
		ops.hash = func(x any) int32 {
			return int32(float32Bits(reflect.ValueOf(x).Float()))
		}
	case reflect.Float64:
		ops.equal = func(x, y any) bool {
			return float64Bits(reflect.ValueOf(x).Float()) == float64Bits(reflect.ValueOf(y).Float())
		}
		ops.hash = func(x any) int32 {
			return longHash(int64(float64Bits(reflect.ValueOf(x).Float())))
		}
	case reflect.Complex64, reflect.Complex128:
		ops.equal = func(x, y any) bool {
			cx, cy := reflect.ValueOf(x).Complex(), reflect.ValueOf(y).Complex()
			return float64Bits(real(cx)) == float64Bits(real(cy)) &&
				float64Bits(imag(cx)) == float64Bits(imag(cy))
		}
		ops.hash = func(x any) int32 {
			c := reflect.ValueOf(x).Complex()
			return 31*longHash(int64(float64Bits(real(c)))) + longHash(int64(float64Bits(imag(c))))
		}
	case reflect.String:
		ops.equal, ops.hash = valueEqual, func(x any) int32 {
			return stringHash(reflect.ValueOf(x).String())
		}
	default:
		ops.equal, ops.hash = structuralEqual, structuralHash
	}
	return ops
}

// valueEqual is == on operands of identical, comparable static type.
func valueEqual(x, y any) bool {
	return x == y
}

// float32Bits returns the bit pattern of f as a float32, with every NaN
// collapsed to the canonical quiet NaN. Comparing these patterns yields
// total-order equality.
func float32Bits(f float64) uint32 {
	if math.IsNaN(f) {
		return 0x7fc00000
	}
	return math.Float32bits(float32(f))
}

// float64Bits is float32Bits for 64-bit floats.
func float64Bits(f float64) uint64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	return math.Float64bits(f)
}

func boolHash(b bool) int32 {
	if b {
		return 1231
	}
	return 1237
}

func longHash(v int64) int32 {
	return int32(v ^ int64(uint64(v)>>32))
}

// stringHash is the 31-polynomial over the UTF-16 code units of s.
func stringHash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(u)
	}
	return h
}

// isNil reports whether x is nil or a typed nil of a nillable kind.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// structuralEqual is a null-safe structural equality for reference-like
// components. Floating point values, at any depth, compare by total order.
func structuralEqual(x, y any) bool {
	xnil, ynil := isNil(x), isNil(y)
	if xnil || ynil {
		return xnil && ynil
	}
	if e, ok := x.(Equaler); ok {
		return e.Equals(y)
	}
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Type() != vy.Type() {
		return false
	}
	if !isComposite(vx.Kind()) {
		return kindOps(vx.Type()).equal(x, y)
	}
	return deepEqual(vx, vy, make(map[visit]bool))
}

// isComposite is true for kinds kindOps treats structurally.
func isComposite(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Struct, reflect.Array, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// structuralHash is a null-safe structural hash for reference-like
// components, consistent with structuralEqual. Values of an unhashable
// shape, cyclic or too deeply nested ones hash to 0.
func structuralHash(x any) (h int32) {
	if isNil(x) {
		return 0
	}
	if hasher, ok := x.(Hasher); ok {
		return hasher.HashCode()
	}
	// dynamic values of interface-typed components may well be primitive
	v := reflect.ValueOf(x)
	if !isComposite(v.Kind()) {
		return kindOps(v.Type()).hash(x)
	}
	if !bounded(v, 0, make(map[visit]bool)) {
		return 0
	}
	defer func() {
		if r := recover(); r != nil {
			h = 0
		}
	}()
	sum, err := hashstructure.Hash(canonical(v).Interface(), hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return longHash(int64(sum))
}

// render returns the canonical string form of a component value.
func render(x any) string {
	if isNil(x) {
		return "null"
	}
	return fmt.Sprint(x)
}
