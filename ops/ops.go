/*
Package ops defines the operation tags used to classify a value type under
more than one algebraic role.

A tag is a zero-sized type carrying no state. It is used purely as a type
parameter: the same concrete type (say, uint32) may be a monoid under Additive
and, independently, a monoid under Multiplicative. Capabilities in package
structure mention the tag in their method sets, so the compiler keeps the two
roles apart.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ops

// Op is the constraint satisfied by every operation tag.
//
// Implementations must be zero-sized and comparable; the methods only report
// metadata and must work on the zero value.
type Op interface {
	comparable
	Symbol() string // operator symbol, e.g. "+"
	Name() string   // lower-case name, e.g. "additive"
}

// Additive tags the additive role of a type.
type Additive struct{}

// Symbol returns "+".
func (Additive) Symbol() string { return "+" }

// Name returns "additive".
func (Additive) Name() string { return "additive" }

func (Additive) String() string { return "Additive" }

// Multiplicative tags the multiplicative role of a type.
type Multiplicative struct{}

// Symbol returns "×".
func (Multiplicative) Symbol() string { return "×" }

// Name returns "multiplicative".
func (Multiplicative) Name() string { return "multiplicative" }

func (Multiplicative) String() string { return "Multiplicative" }

// NameOf returns the name of tag O.
func NameOf[O Op]() string {
	var o O
	return o.Name()
}

// SymbolOf returns the operator symbol of tag O.
func SymbolOf[O Op]() string {
	var o O
	return o.Symbol()
}
