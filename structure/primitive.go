package structure

import (
	"github.com/npillmayer/alga/approx"
	"github.com/npillmayer/alga/ops"
)

// Integer is a constraint for the fixed-width integer types which are monoids
// under both addition and multiplication.
//
// Arithmetic wraps on overflow, which keeps both operations associative and
// total.
type Integer interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64
}

// Float is a constraint for floating point types. Floats are only approximate
// monoids: rounding breaks exact associativity.
type Float interface {
	~float32 | ~float64
}

// --- Integers --------------------------------------------------------------

// IntAdditive is the witness for an integer type under addition, with
// identity 0.
type IntAdditive[T Integer] struct{}

// Op returns the additive tag.
func (IntAdditive[T]) Op() ops.Additive { return ops.Additive{} }

// Id returns 0.
func (IntAdditive[T]) Id() T { return 0 }

// Operate returns a+b.
func (IntAdditive[T]) Operate(a, b T) T { return a + b }

// Approx returns a+b; integer addition is exact.
func (IntAdditive[T]) Approx(a, b T) T { return a + b }

// Eq compares a and b.
func (IntAdditive[T]) Eq(a, b T) bool { return a == b }

// ApproxEq compares a and b exactly.
func (IntAdditive[T]) ApproxEq(a, b T) bool { return a == b }

// IntMultiplicative is the witness for an integer type under multiplication,
// with identity 1.
type IntMultiplicative[T Integer] struct{}

// Op returns the multiplicative tag.
func (IntMultiplicative[T]) Op() ops.Multiplicative { return ops.Multiplicative{} }

// Id returns 1.
func (IntMultiplicative[T]) Id() T { return 1 }

// Operate returns a*b.
func (IntMultiplicative[T]) Operate(a, b T) T { return a * b }

// Approx returns a*b; integer multiplication is exact.
func (IntMultiplicative[T]) Approx(a, b T) T { return a * b }

// Eq compares a and b.
func (IntMultiplicative[T]) Eq(a, b T) bool { return a == b }

// ApproxEq compares a and b exactly.
func (IntMultiplicative[T]) ApproxEq(a, b T) bool { return a == b }

// --- Floats ----------------------------------------------------------------

// FloatAdditive is the approximate witness for a float type under addition.
// A zero Tolerance selects approx.ForType[T]().
type FloatAdditive[T Float] struct {
	Tolerance approx.Tolerance
}

// Op returns the additive tag.
func (FloatAdditive[T]) Op() ops.Additive { return ops.Additive{} }

// Id returns 0.
func (FloatAdditive[T]) Id() T { return 0 }

// Approx returns a+b, rounded to T.
func (FloatAdditive[T]) Approx(a, b T) T { return a + b }

// ApproxEq compares a and b within the witness' tolerance.
func (f FloatAdditive[T]) ApproxEq(a, b T) bool {
	return approx.Equal(a, b, f.Tolerance.Or(approx.ForType[T]()))
}

// FloatMultiplicative is the approximate witness for a float type under
// multiplication. A zero Tolerance selects approx.ForType[T]().
type FloatMultiplicative[T Float] struct {
	Tolerance approx.Tolerance
}

// Op returns the multiplicative tag.
func (FloatMultiplicative[T]) Op() ops.Multiplicative { return ops.Multiplicative{} }

// Id returns 1.
func (FloatMultiplicative[T]) Id() T { return 1 }

// Approx returns a*b, rounded to T.
func (FloatMultiplicative[T]) Approx(a, b T) T { return a * b }

// ApproxEq compares a and b within the witness' tolerance.
func (f FloatMultiplicative[T]) ApproxEq(a, b T) bool {
	return approx.Equal(a, b, f.Tolerance.Or(approx.ForType[T]()))
}
