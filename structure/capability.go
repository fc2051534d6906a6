package structure

import "github.com/npillmayer/alga/ops"

// Eq is the exact-equality collaborator.
type Eq[T any] interface {
	Eq(a, b T) bool
}

// ApproxEq is the tolerance-based equality collaborator. Which tolerance is
// used is up to the implementation.
type ApproxEq[T any] interface {
	ApproxEq(a, b T) bool
}

// Identity provides the identity element of T for the operation tagged O.
type Identity[T any, O ops.Op] interface {
	Op() O
	Id() T
}

// SemigroupApprox is an approximately associative operation on T:
//
//	(a ∘ b) ∘ c ≈ a ∘ (b ∘ c)    ∀ a, b, c ∈ T
type SemigroupApprox[T any, O ops.Op] interface {
	ApproxEq[T]
	Op() O
	Approx(a, b T) T
}

// Semigroup is an associative operation on T:
//
//	(a ∘ b) ∘ c = a ∘ (b ∘ c)    ∀ a, b, c ∈ T
//
// Every Semigroup is a SemigroupApprox.
type Semigroup[T any, O ops.Op] interface {
	SemigroupApprox[T, O]
	Eq[T]
	Operate(a, b T) T
}

// Id returns the identity element of m.
func Id[T any, O ops.Op](m Identity[T, O]) T {
	return m.Id()
}

// PropIsAssociativeApprox checks whether the operation of m is approximately
// associative for the given arguments.
func PropIsAssociativeApprox[T any, O ops.Op](m SemigroupApprox[T, O], a, b, c T) bool {
	return m.ApproxEq(m.Approx(m.Approx(a, b), c), m.Approx(a, m.Approx(b, c)))
}

// PropIsAssociative checks whether the operation of m is associative for the
// given arguments.
func PropIsAssociative[T any, O ops.Op](m Semigroup[T, O], a, b, c T) bool {
	return m.Eq(m.Operate(m.Operate(a, b), c), m.Operate(a, m.Operate(b, c)))
}
