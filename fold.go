package alga

import (
	"iter"

	"github.com/npillmayer/alga/ops"
	"github.com/npillmayer/alga/structure"
)

// Fold combines xs from left to right with the operation of m. Folding an
// empty list returns the identity.
func Fold[T any, O ops.Op](m structure.Monoid[T, O], xs ...T) T {
	acc := m.Id()
	for _, x := range xs {
		acc = m.Operate(acc, x)
	}
	return acc
}

// FoldApprox is Fold for approximate monoids.
func FoldApprox[T any, O ops.Op](m structure.MonoidApprox[T, O], xs ...T) T {
	acc := m.Id()
	for _, x := range xs {
		acc = m.Approx(acc, x)
	}
	return acc
}

// FoldSeq folds the values of seq.
func FoldSeq[T any, O ops.Op](m structure.Monoid[T, O], seq iter.Seq[T]) T {
	acc := m.Id()
	for x := range seq {
		acc = m.Operate(acc, x)
	}
	return acc
}

// Power combines n copies of a, using O(log n) operations. Power(m, a, 0) is
// the identity.
//
// Repeated squaring relies on associativity only, so it is valid for every
// Monoid.
func Power[T any, O ops.Op](m structure.Monoid[T, O], a T, n uint) T {
	tracer().Debugf("power %s^%d by squaring", ops.SymbolOf[O](), n)
	result, base := m.Id(), a
	for n > 0 {
		if n&1 == 1 {
			result = m.Operate(result, base)
		}
		base = m.Operate(base, base)
		n >>= 1
	}
	return result
}

// Sum adds up xs, wrapping on overflow.
func Sum[T structure.Integer](xs ...T) T {
	return Fold[T, ops.Additive](structure.IntAdditive[T]{}, xs...)
}

// Product multiplies xs, wrapping on overflow.
func Product[T structure.Integer](xs ...T) T {
	return Fold[T, ops.Multiplicative](structure.IntMultiplicative[T]{}, xs...)
}
