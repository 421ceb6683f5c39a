/*
Package maybe implements an optional value: either Just a value or Nothing.

Within this module Maybe models the outcome of resolving a name once, at
construction time: a resolved constant is Just(c), an unresolvable name is
Nothing. Clients pattern-match on the outcome:

    var c Color
    switch m := r.Match(); m {
    case m.Just(&c):
        // use c
    case m.Nothing():
        // no such constant
    }

*/
package maybe

// Maybe is an immutable optional value.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsJust() bool
	Get() (T, bool)
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value for T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Lookup lifts the comma-ok idiom: Just(x) if ok, Nothing otherwise.
//
//     c, ok := constants[name]; m := maybe.Lookup(c, ok)
//
func Lookup[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Match(). Exactly one of its methods returns the
// matcher itself, the other one returns nil, making them usable as
// switch cases.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
