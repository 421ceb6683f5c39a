package objmethods

import (
	"math"
	"reflect"
)

// visit identifies a pair of references under comparison, breaking cycles.
type visit struct {
	x, y uintptr
	typ  reflect.Type
}

// deepEqual is reflect.DeepEqual with total-order equality on floating
// point leaves: NaNs are equal to each other, +0 and -0 are distinct.
// As with DeepEqual, nil and empty slices or maps differ, and funcs are
// equal only if both are nil.
func deepEqual(x, y reflect.Value, seen map[visit]bool) bool {
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}
	switch x.Kind() {
	case reflect.Bool:
		return x.Bool() == y.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return x.Int() == y.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return x.Uint() == y.Uint()
	case reflect.String:
		return x.String() == y.String()
	case reflect.Float32:
		return float32Bits(x.Float()) == float32Bits(y.Float())
	case reflect.Float64:
		return float64Bits(x.Float()) == float64Bits(y.Float())
	case reflect.Complex64, reflect.Complex128:
		cx, cy := x.Complex(), y.Complex()
		return float64Bits(real(cx)) == float64Bits(real(cy)) &&
			float64Bits(imag(cx)) == float64Bits(imag(cy))
	case reflect.Chan, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	case reflect.Func:
		return x.IsNil() && y.IsNil()
	case reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() == y.IsNil()
		}
		return deepEqual(x.Elem(), y.Elem(), seen)
	case reflect.Array:
		for i := 0; i < x.Len(); i++ {
			if !deepEqual(x.Index(i), y.Index(i), seen) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < x.NumField(); i++ {
			if !deepEqual(x.Field(i), y.Field(i), seen) {
				return false
			}
		}
		return true
	}
	// pointer, slice, map
	if x.IsNil() || y.IsNil() {
		return x.IsNil() == y.IsNil()
	}
	if x.Kind() == reflect.Slice && x.Len() != y.Len() {
		return false
	}
	if x.Pointer() == y.Pointer() {
		return true
	}
	v := visit{x.Pointer(), y.Pointer(), x.Type()}
	if seen[v] {
		return true
	}
	seen[v] = true
	switch x.Kind() {
	case reflect.Pointer:
		return deepEqual(x.Elem(), y.Elem(), seen)
	case reflect.Slice:
		for i := 0; i < x.Len(); i++ {
			if !deepEqual(x.Index(i), y.Index(i), seen) {
				return false
			}
		}
		return true
	}
	if x.Len() != y.Len() {
		return false
	}
	iter := x.MapRange()
	for iter.Next() {
		yv := y.MapIndex(iter.Key())
		if !yv.IsValid() || !deepEqual(iter.Value(), yv, seen) {
			return false
		}
	}
	return true
}

// maxCanonicalDepth bounds the nesting of values handed to the structural
// hash.
const maxCanonicalDepth = 32

// bounded reports whether v nests at most maxCanonicalDepth levels deep and
// holds no reference cycle. path holds the references currently entered.
func bounded(v reflect.Value, depth int, path map[visit]bool) bool {
	if depth > maxCanonicalDepth {
		return false
	}
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil() || bounded(v.Elem(), depth+1, path)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !bounded(v.Index(i), depth+1, path) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !bounded(v.Field(i), depth+1, path) {
				return false
			}
		}
		return true
	case reflect.Pointer, reflect.Slice, reflect.Map:
		if v.IsNil() {
			return true
		}
	default:
		return true
	}
	ref := visit{x: v.Pointer(), typ: v.Type()}
	if path[ref] {
		return false
	}
	path[ref] = true
	defer delete(path, ref)
	switch v.Kind() {
	case reflect.Pointer:
		return bounded(v.Elem(), depth+1, path)
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if !bounded(v.Index(i), depth+1, path) {
				return false
			}
		}
		return true
	}
	iter := v.MapRange()
	for iter.Next() {
		if !bounded(iter.Key(), depth+1, path) || !bounded(iter.Value(), depth+1, path) {
			return false
		}
	}
	return true
}

// canonical returns a copy of v with every NaN replaced by the canonical
// quiet NaN, such that values equal under deepEqual have equal structural
// hashes. Unexported struct fields are copied as they are. v must be bounded.
func canonical(v reflect.Value) reflect.Value {
	t := v.Type()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		if !math.IsNaN(v.Float()) {
			return v
		}
		c := reflect.New(t).Elem()
		c.SetFloat(math.Float64frombits(float64Bits(v.Float())))
		return c
	case reflect.Complex64, reflect.Complex128:
		z := v.Complex()
		c := reflect.New(t).Elem()
		c.SetComplex(complex(
			math.Float64frombits(float64Bits(real(z))),
			math.Float64frombits(float64Bits(imag(z)))))
		return c
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		c := reflect.New(t.Elem())
		c.Elem().Set(canonical(v.Elem()))
		return c
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		c := reflect.New(t).Elem()
		c.Set(canonical(v.Elem()))
		return c
	case reflect.Struct:
		c := reflect.New(t).Elem()
		c.Set(v)
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				c.Field(i).Set(canonical(v.Field(i)))
			}
		}
		return c
	case reflect.Array:
		c := reflect.New(t).Elem()
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(canonical(v.Index(i)))
		}
		return c
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeSlice(t, v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(canonical(v.Index(i)))
		}
		return c
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		c := reflect.MakeMapWithSize(t, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			c.SetMapIndex(canonical(iter.Key()), canonical(iter.Value()))
		}
		return c
	}
	return v
}
