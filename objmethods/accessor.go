package objmethods

import (
	"fmt"
	"reflect"
	"strings"
)

// Accessor reads one component of a receiver of type R. Accessors are
// immutable and know the static type of their component, which determines
// how component values are compared, hashed and rendered.
//
// The zero Accessor is unbound; construction of methods will reject it.
type Accessor[R any] struct {
	typ reflect.Type
	get func(R) any
	ops componentOps
}

// Of binds a typed getter as an accessor for components of type C.
func Of[R, C any](get func(R) C) Accessor[R] {
	if get == nil {
		return Accessor[R]{}
	}
	return newAccessor(typeOf[C](), func(r R) any {
		return get(r)
	})
}

func newAccessor[R any](t reflect.Type, get func(R) any) Accessor[R] {
	return Accessor[R]{
		typ: t,
		get: get,
		ops: opsFor(t),
	}
}

// Type returns the static type of the component, or nil for an unbound accessor.
func (acc Accessor[R]) Type() reflect.Type {
	return acc.typ
}

func (acc Accessor[R]) bound() bool {
	return acc.get != nil
}

// Fields derives accessors from the exported fields of a struct type R, or
// of the struct R points to, in declaration order. It returns the accessors
// together with the matching ';'-separated list of field names, ready to be
// passed to Synthesize or Bootstrap.
func Fields[R any]() ([]Accessor[R], string, error) {
	rt := typeOf[R]()
	st, ptr := rt, false
	if st.Kind() == reflect.Pointer {
		st, ptr = st.Elem(), true
	}
	if st.Kind() != reflect.Struct {
		return nil, "", fmt.Errorf("%w: cannot derive fields of non-struct type %v", ErrConfiguration, rt)
	}
	var accs []Accessor[R]
	var names []string
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() {
			continue
		}
		index := i
		accs = append(accs, newAccessor(f.Type, func(r R) any {
			v := reflect.ValueOf(&r).Elem()
			if ptr {
				v = v.Elem()
			}
			return v.Field(index).Interface()
		}))
		names = append(names, f.Name)
	}
	tracer().Debugf("derived %d accessors from fields of %v", len(accs), rt)
	return accs, strings.Join(names, ";"), nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
