package switches

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/bootstraps/maybe"
)

// EnumConstant is the constraint for enum-like types: comparable values
// which know their constant name, as generated by the stringer tool.
type EnumConstant interface {
	comparable
	String() string
}

// Enum is the registry of the live constants of an enum-like type E.
// An Enum is immutable once declared.
type Enum[E EnumConstant] struct {
	typ       reflect.Type
	constants []E
	byName    map[string]E
}

// DeclareEnum registers the constants of E. Constant names are taken from
// String() and must be unique.
//
//     colors, err := switches.DeclareEnum(Red, Green, Blue)
//
func DeclareEnum[E EnumConstant](constants ...E) (*Enum[E], error) {
	enum := &Enum[E]{
		typ:       reflect.TypeOf((*E)(nil)).Elem(),
		constants: append([]E(nil), constants...),
		byName:    make(map[string]E, len(constants)),
	}
	for _, c := range constants {
		name := c.String()
		if _, dup := enum.byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate constant %s.%s", ErrConfiguration, enum.typ, name)
		}
		enum.byName[name] = c
	}
	tracer().Debugf("declared enum %v with %d constants", enum.typ, len(constants))
	return enum, nil
}

// Type returns the enum's Go type.
func (enum *Enum[E]) Type() reflect.Type {
	return enum.typ
}

// Constants returns the constants of enum in order of declaration.
func (enum *Enum[E]) Constants() []E {
	return append([]E(nil), enum.constants...)
}

// ValueOf resolves a constant by name.
func (enum *Enum[E]) ValueOf(name string) maybe.Maybe[E] {
	c, ok := enum.byName[name]
	return maybe.Lookup(c, ok)
}

func (enum *Enum[E]) declared() bool {
	return enum != nil
}

func (enum *Enum[E]) lookup(name string) (any, bool) {
	c, ok := enum.byName[name]
	return c, ok
}
