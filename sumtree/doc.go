/*
Package sumtree provides a persistent B+ sum-tree over the values of a monoid.

A Tree stores a sequence of values of type T. Every node caches the monoid
sum of the values below it, which makes prefix and range sums O(log n), and
insertion uses path-copy semantics: a modified tree shares all untouched nodes
with its predecessor, which stays valid.

The monoid is not required to be commutative; sums are always formed left to
right in sequence order. Exact monoids (structure.Monoid) are combined with
Operate, approximate ones with Approx.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sumtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'alga.sumtree'
func tracer() tracing.Trace {
	return tracing.Select("alga.sumtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
