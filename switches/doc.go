/*
Package switches implements multi-way dispatch: given an ordered list of case
labels and a runtime value, find the index of the first label matching the
value.

A general dispatch table is built once from labels of several flavours:

    table, err := switches.TypeSwitch(
        switches.Type[*Circle](),     // type test, 0
        switches.StringLabel("foo"),  // string constant, 1
        switches.IntLabel(42),        // integer constant, 2
    )
    table.Match(&Circle{}, 0)   // 0
    table.Match("foo", 0)       // 1
    table.Match(int64(42), 0)   // 2, integer labels match any numeric type
    table.Match(3.5, 0)         // 3 == table.Len(), no match
    table.Match(nil, 0)         // -1

The second argument of Match is a restart index: scanning starts there, which
lets a caller resume matching past a previously matched label, e.g. when the
guard of a case turned out false.

Enum tables dispatch over the constants of an enum-like type, declared
with DeclareEnum. String labels of an enum table are resolved to live
constants once, at construction time. A name not resolving to any constant
yields a label which never matches; this is accepted rather than reported, as
constants may legitimately disappear between writing the labels and building
the table.

Malformed labels are rejected at construction time with an error wrapping
ErrConfiguration. Constructed tables are immutable, never fail in Match, and
are safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package switches

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bootstraps.switches'.
func tracer() tracing.Trace {
	return tracing.Select("bootstraps.switches")
}
