package objmethods

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/bootstraps"
	tp "github.com/xlab/treeprint"
)

// ErrConfiguration is wrapped by every error reported at construction time.
var ErrConfiguration = errors.New("objmethods: invalid configuration")

// Operation names understood by Bootstrap.
const (
	OpEquals   = "equals"
	OpHashCode = "hashCode"
	OpToString = "toString"
)

// Methods is a bundle of synthesized Equals, HashCode and String functions
// for receivers of type R. A Methods value is immutable and safe for
// concurrent use.
type Methods[R any] struct {
	name   string
	names  []string
	types  []reflect.Type
	equals func(a, b any) bool
	hash   func(a any) int32
	str    func(a any) string
}

// Option is a type to help configuring synthesized methods at creation time.
type Option func(settings) settings

type settings struct {
	simpleName string
}

// SimpleName overrides the receiver name String uses, which defaults to
// the simple name of R's type (type arguments and pointer stripped).
//
//     m, err := objmethods.Synthesize[*node]("key", accs, SimpleName("Node"))
//
func SimpleName(name string) Option {
	return func(s settings) settings {
		s.simpleName = name
		return s
	}
}

// Synthesize builds Equals, HashCode and String for receivers of type R from
// an ordered list of accessors. names is a ';'-separated list of component
// names, one per accessor, used by String.
func Synthesize[R any](names string, accessors []Accessor[R], opts ...Option) (Methods[R], error) {
	if err := checkAccessors(accessors); err != nil {
		return Methods[R]{}, err
	}
	compNames, err := splitNames(names, len(accessors))
	if err != nil {
		return Methods[R]{}, err
	}
	s := settings{simpleName: simpleName(typeOf[R]())}
	for _, option := range opts {
		s = option(s)
	}
	m := Methods[R]{
		name:   s.simpleName,
		names:  compNames,
		equals: makeEquals(accessors),
		hash:   makeHashCode(accessors),
		str:    makeToString(s.simpleName, compNames, accessors),
	}
	for _, acc := range accessors {
		m.types = append(m.types, acc.typ)
	}
	tracer().Debugf("synthesized methods for %s:\n%s", m.name, m.Describe())
	return m, nil
}

// Bootstrap synthesizes a single operation, selected by name:
//
//     "equals"    →  func(a, b any) bool
//     "hashCode"  →  func(a any) int32
//     "toString"  →  func(a any) string
//
// names is consulted for "toString" only. An unknown operation name is a
// configuration error.
func Bootstrap[R any](op string, names string, accessors ...Accessor[R]) (any, error) {
	if err := checkAccessors(accessors); err != nil {
		return nil, err
	}
	switch op {
	case OpEquals:
		return makeEquals(accessors), nil
	case OpHashCode:
		return makeHashCode(accessors), nil
	case OpToString:
		compNames, err := splitNames(names, len(accessors))
		if err != nil {
			return nil, err
		}
		return makeToString(simpleName(typeOf[R]()), compNames, accessors), nil
	}
	return nil, fmt.Errorf("%w: illegal operation name %q", ErrConfiguration, op)
}

// Equals is true if a and b are identical, or if both are non-nil receivers
// of type R with equal components. It is false for operands of other types.
func (m Methods[R]) Equals(a, b any) bool {
	return m.equals(a, b)
}

// HashCode folds the hashes of a's components, in accessor order. Operands
// not of type R, and nil receivers, hash to 0.
func (m Methods[R]) HashCode(a any) int32 {
	return m.hash(a)
}

// String renders a as Name[c1=v1, c2=v2, …].
func (m Methods[R]) String(a any) string {
	return m.str(a)
}

// Describe returns a tree dump of the receiver and its components.
func (m Methods[R]) Describe() string {
	root := tp.New()
	root.SetValue(m.name)
	for i, name := range m.names {
		root.AddNode(fmt.Sprintf("%s: %v", name, m.types[i]))
	}
	return root.String()
}

// --- Synthesis -------------------------------------------------------------

func makeEquals[R any](accessors []Accessor[R]) func(a, b any) bool {
	eqs := make([]func(R, R) bool, len(accessors))
	for i, acc := range accessors {
		eqs[i] = bootstraps.Compose2(acc.get, acc.ops.equal)
	}
	allEqual := bootstraps.All(eqs)
	identical := identityOf[R]()
	return func(a, b any) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		ra, ok := a.(R)
		if !ok {
			return false
		}
		rb, ok := b.(R)
		if !ok {
			return false
		}
		if identical(ra, rb) {
			return true
		}
		if isNil(a) || isNil(b) {
			return false
		}
		return allEqual(ra, rb)
	}
}

func makeHashCode[R any](accessors []Accessor[R]) func(a any) int32 {
	hashers := make([]func(R) int32, len(accessors))
	for i, acc := range accessors {
		hashers[i] = bootstraps.Compose(acc.get, acc.ops.hash)
	}
	fold := bootstraps.FoldLeft(hashers, 0, func(acc, h int32) int32 {
		return acc*31 + h
	})
	return func(a any) int32 {
		r, ok := a.(R)
		if !ok || isNil(a) {
			return 0
		}
		return fold(r)
	}
}

func makeToString[R any](name string, names []string, accessors []Accessor[R]) func(a any) string {
	renderers := make([]func(R) string, len(accessors))
	for i, acc := range accessors {
		renderers[i] = bootstraps.Compose(acc.get, acc.ops.render)
	}
	return func(a any) string {
		if isNil(a) {
			return "null"
		}
		r, ok := a.(R)
		if !ok {
			return fmt.Sprintf("%v", a)
		}
		var b strings.Builder
		b.WriteString(name)
		b.WriteByte('[')
		for i, rnd := range renderers {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(names[i])
			b.WriteByte('=')
			b.WriteString(rnd(r))
		}
		b.WriteByte(']')
		return b.String()
	}
}

// identityOf returns a test for reference identity of receivers. Only
// receivers of a pointer-like kind have an identity; for all others the
// test is always false.
func identityOf[R any]() func(a, b R) bool {
	switch typeOf[R]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return func(a, b R) bool {
			return reflect.ValueOf(&a).Elem().Pointer() == reflect.ValueOf(&b).Elem().Pointer()
		}
	}
	return func(a, b R) bool { return false }
}

// --- Validation ------------------------------------------------------------

func checkAccessors[R any](accessors []Accessor[R]) error {
	for i, acc := range accessors {
		if !acc.bound() {
			return fmt.Errorf("%w: accessor #%d for %v is unbound", ErrConfiguration, i, typeOf[R]())
		}
	}
	return nil
}

func splitNames(names string, n int) ([]string, error) {
	var parts []string
	if names != "" {
		parts = strings.Split(names, ";")
	}
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %d component names for %d accessors", ErrConfiguration, len(parts), n)
	}
	for i, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: component name #%d is empty", ErrConfiguration, i)
		}
	}
	return parts, nil
}

// simpleName strips pointers, package path and type arguments off t.
func simpleName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	return name
}
