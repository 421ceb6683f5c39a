package switches

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/bootstraps/maybe"
	tp "github.com/xlab/treeprint"
)

// EnumTable is an immutable dispatch table over the constants of an
// enum-like type E.
type EnumTable[E EnumConstant] struct {
	enum   *Enum[E]
	labels []enumLabel[E]
}

// enumLabel is either a type test for E or a constant, resolved at
// construction time. Unresolved constants are Nothing and never match.
type enumLabel[E EnumConstant] struct {
	name     string
	isType   bool
	constant maybe.Maybe[E]
}

func (l enumLabel[E]) String() string {
	if l.isType {
		return "type " + l.name
	}
	if !l.constant.IsJust() {
		return l.name + " (unresolved)"
	}
	return l.name
}

// EnumSwitch builds a dispatch table over the constants of enum. Labels
// are either constant names (string or StringLabel) or the enum's own type
// (a reflect.Type or TypeLabel). Names are resolved here, once; a name
// without a live constant never matches. Labels of any other kind, or type
// labels for other types, are configuration errors.
func EnumSwitch[E EnumConstant](enum *Enum[E], labels ...any) (*EnumTable[E], error) {
	if !enum.declared() {
		return nil, fmt.Errorf("%w: enum switch without enum", ErrConfiguration)
	}
	t := &EnumTable[E]{
		enum:   enum,
		labels: make([]enumLabel[E], len(labels)),
	}
	for i, l := range labels {
		switch x := l.(type) {
		case string:
			t.labels[i] = t.resolve(x)
		case StringLabel:
			t.labels[i] = t.resolve(string(x))
		case reflect.Type:
			if err := t.checkType(i, x); err != nil {
				return nil, err
			}
			t.labels[i] = enumLabel[E]{name: x.String(), isType: true}
		case TypeLabel:
			if err := t.checkType(i, x.typ); err != nil {
				return nil, err
			}
			t.labels[i] = enumLabel[E]{name: x.typ.String(), isType: true}
		case nil:
			return nil, fmt.Errorf("%w: enum label #%d is nil", ErrConfiguration, i)
		default:
			return nil, fmt.Errorf("%w: enum label #%d of illegal type %T", ErrConfiguration, i, l)
		}
	}
	tracer().Debugf("enum switch:\n%s", t)
	return t, nil
}

func (t *EnumTable[E]) resolve(name string) enumLabel[E] {
	c := t.enum.ValueOf(name)
	if !c.IsJust() {
		tracer().Infof("enum constant %v.%s does not exist, label will never match", t.enum.typ, name)
	}
	return enumLabel[E]{name: name, constant: c}
}

func (t *EnumTable[E]) checkType(i int, typ reflect.Type) error {
	if typ != t.enum.typ {
		return fmt.Errorf("%w: enum label #%d is type %v, must be %v", ErrConfiguration, i, typ, t.enum.typ)
	}
	return nil
}

// Match returns the index of the first label at or after restart matching
// target, or Len() if none matches. A nil target yields -1. Targets not of
// type E match no label.
func (t *EnumTable[E]) Match(target any, restart int) int {
	if isNil(target) {
		return -1
	}
	e, ok := target.(E)
	if !ok {
		return len(t.labels)
	}
	return t.MatchConstant(e, restart)
}

// MatchConstant is Match for a statically typed target.
func (t *EnumTable[E]) MatchConstant(e E, restart int) int {
	if isNil(e) {
		return -1
	}
	if restart < 0 {
		restart = 0
	}
	for i := restart; i < len(t.labels); i++ {
		l := t.labels[i]
		if l.isType {
			return i
		}
		if c, ok := l.constant.Get(); ok && safeEqual(c, e) {
			return i
		}
	}
	return len(t.labels)
}

// Len is the number of labels.
func (t *EnumTable[E]) Len() int {
	return len(t.labels)
}

// Enum returns the enum the table dispatches over.
func (t *EnumTable[E]) Enum() *Enum[E] {
	return t.enum
}

func (t *EnumTable[E]) String() string {
	root := tp.New()
	root.SetValue(fmt.Sprintf("enum switch %v (%d labels)", t.enum.typ, len(t.labels)))
	for i, l := range t.labels {
		root.AddNode(fmt.Sprintf("#%d %s", i, l))
	}
	return root.String()
}
