/*
Package objmethods synthesizes structural Equals, HashCode and String
behaviour for value-like types from an ordered list of component accessors.

A client describes a receiver type R by the accessors of its components:

    type Point struct { X, Y float64; Label string }

    m, err := objmethods.Synthesize("x;y;label", []objmethods.Accessor[Point]{
        objmethods.Of(func(p Point) float64 { return p.X }),
        objmethods.Of(func(p Point) float64 { return p.Y }),
        objmethods.Of(func(p Point) string  { return p.Label }),
    })
    m.Equals(p, q)    // component-wise, floats compared by total order
    m.HashCode(p)     // ((0*31 + h(x))*31 + h(y))*31 + h(label)
    m.String(p)       // "Point[x=1, y=2, label=origin]"

Each accessor selects its comparator, hasher and renderer once, from the
static kind of its component type. The synthesized closures are chains of
these per-component functions, folded in accessor order; nothing is
re-inspected at call time.

Floating point components compare by their canonical bit patterns: two NaNs
are equal, +0 and -0 are not. Reference-like components (pointers,
interfaces, slices, maps, structs, …) compare null-safe and structurally,
honouring Equaler and Hasher if the component implements them.

Configuration errors (unknown operation names, name/accessor count mismatch,
unbound accessors) are reported at construction time and wrap
ErrConfiguration. Synthesized functions never fail: operands of a
foreign type are unequal, hash to 0 and are rendered with fmt.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package objmethods

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bootstraps.objmethods'.
func tracer() tracing.Trace {
	return tracing.Select("bootstraps.objmethods")
}
