/*
Package alga classifies numeric types by the algebraic structures they form,
and provides generic algorithms over those structures.

# Structures

A generic algorithm should ask for the laws it depends on, not for a concrete
numeric type. Folding a list needs an associative operation and an identity,
i.e. a monoid; it does not care whether it adds uint8s or multiplies int64s.
Package structure offers the capabilities (Semigroup, Monoid and their
approximate variants), package ops the tags telling apart the additive and the
multiplicative role of one and the same type.

	m := structure.IntMultiplicative[uint32]{}
	x := alga.Fold[uint32, ops.Multiplicative](m, 2, 3, 7)   // 42

The laws themselves are boolean predicates (see structure.PropOperatingIdentityIsNoop)
and are checked by package lawcheck, not on a production path.

_________________________________________________________________________

From the Wikipedia article on monoids:

In abstract algebra, a monoid is a set equipped with an associative binary
operation and an identity element. […] Monoids are semigroups with identity.
Such algebraic structures occur in several branches of mathematics. […]
In computer science and computer programming, the set of strings built from a
given set of characters is a free monoid. […] The fact that a monoid operation
is associative means that a fold can be done in parallel, or split up into
arbitrary chunks.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package alga

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global equations tracer.
func tracer() tracing.Trace {
	return gtrace.EquationsTracer
}
