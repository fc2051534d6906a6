/*
Package structure provides capabilities for associative algebraic structures
with identity, parameterized by an operation tag from package ops.

# Capabilities

Go does not allow methods on predeclared types, so a capability is not
implemented by a value type itself. It is implemented by a witness: a
zero-sized (or otherwise stateless) value carrying the operations of one
(type, tag) pair. IntAdditive[uint32] is the witness for uint32 under addition,
IntMultiplicative[uint32] is the witness for uint32 under multiplication.

Every capability contains the method Op() O. A witness returns exactly one tag
type from Op, therefore it satisfies the capabilities of that tag only and a
generic algorithm requiring Monoid[T, ops.Additive] will not compile with a
multiplicative witness:

	Identity[T, O]         Op() O, Id() T
	SemigroupApprox[T, O]  Op() O, Approx(T, T) T, ApproxEq(T, T) bool
	Semigroup[T, O]        SemigroupApprox + Operate(T, T) T, Eq(T, T) bool
	MonoidApprox[T, O]     SemigroupApprox + Identity
	Monoid[T, O]           MonoidApprox + Semigroup

Monoid embeds MonoidApprox, so an exact monoid is usable wherever an approximate
one is asked for.

# Laws

The laws of a capability are free functions generic over the capability, e.g.
PropOperatingIdentityIsNoop. They are pure boolean predicates intended to be
driven by a property-based test harness (see package lawcheck); nothing in this
package validates laws on a production path.

# Registration

The eight fixed-width integer types are registered under both tags at package
initialization (see primitives.go). The registry is read-only afterwards.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package structure

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'alga.structure'
func tracer() tracing.Trace {
	return tracing.Select("alga.structure")
}
