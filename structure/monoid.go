package structure

import "github.com/npillmayer/alga/ops"

// MonoidApprox is equipped with an approximately associative operator and a
// corresponding identity e:
//
//	a ∘ e ≈ a    ∀ a ∈ T
//	e ∘ a ≈ a    ∀ a ∈ T
type MonoidApprox[T any, O ops.Op] interface {
	SemigroupApprox[T, O]
	Identity[T, O]
}

// Monoid is equipped with an associative operator and a corresponding
// identity e:
//
//	a ∘ e = a    ∀ a ∈ T
//	e ∘ a = a    ∀ a ∈ T
//
// A Monoid is a MonoidApprox as well.
type Monoid[T any, O ops.Op] interface {
	MonoidApprox[T, O]
	Semigroup[T, O]
}

// PropOperatingIdentityIsNoopApprox checks whether operating with the identity
// is approximately a no-op for a, on either side.
func PropOperatingIdentityIsNoopApprox[T any, O ops.Op](m MonoidApprox[T, O], a T) bool {
	e := m.Id()
	return m.ApproxEq(m.Approx(a, e), a) && m.ApproxEq(m.Approx(e, a), a)
}

// PropOperatingIdentityIsNoop checks whether operating with the identity is a
// no-op for a, on either side.
func PropOperatingIdentityIsNoop[T any, O ops.Op](m Monoid[T, O], a T) bool {
	e := m.Id()
	return m.Eq(m.Operate(a, e), a) && m.Eq(m.Operate(e, a), a)
}
