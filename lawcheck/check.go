package lawcheck

import (
	"context"
	"fmt"
	"math/rand"
	"reflect"

	"github.com/npillmayer/alga/approx"
	"github.com/npillmayer/alga/ops"
	"github.com/npillmayer/alga/structure"
)

// Names of the laws checked.
const (
	LawIdentity            = "identity (exact)"
	LawIdentityApprox      = "identity (approx)"
	LawAssociativity       = "associativity (exact)"
	LawAssociativityApprox = "associativity (approx)"
)

// Finding is the outcome of checking one law of one structure.
type Finding struct {
	Structure      string // e.g. "Monoid<additive>(uint32)"
	Symbol         string // operator symbol of the tag
	Law            string
	Samples        int    // number of samples tried
	Passed         bool
	Counterexample string // first violating arguments, if any
}

// Check bundles the laws of one (type, tag) pair.
type Check struct {
	Registration structure.Registration
	laws         []law
}

type law struct {
	name string
	// holds draws arity samples and evaluates the law on them. It returns the
	// rendered arguments on violation.
	holds func(r *rand.Rand) (bool, string)
}

// Laws lists the names of the laws in c.
func (c Check) Laws() []string {
	names := make([]string, len(c.laws))
	for i, l := range c.laws {
		names[i] = l.name
	}
	return names
}

// run checks every law of c with the given number of samples.
func (c Check) run(ctx context.Context, r *rand.Rand, samples int) ([]Finding, error) {
	findings := make([]Finding, 0, len(c.laws))
	for _, l := range c.laws {
		f := Finding{
			Structure: c.Registration.String(),
			Symbol:    c.Registration.Symbol,
			Law:       l.name,
			Passed:    true,
		}
		for i := 0; i < samples; i++ {
			if i%64 == 0 {
				if err := ctx.Err(); err != nil {
					return findings, err
				}
			}
			f.Samples++
			if ok, args := l.holds(r); !ok {
				f.Passed, f.Counterexample = false, args
				break
			}
		}
		findings = append(findings, f)
	}
	return findings, nil
}

func registrationOf[T any, O ops.Op](exact bool) structure.Registration {
	return structure.Registration{
		TypeName: reflect.TypeFor[T]().String(),
		Tag:      ops.NameOf[O](),
		Symbol:   ops.SymbolOf[O](),
		Exact:    exact,
	}
}

// MonoidCheck checks the exact and the approximate laws of m. Checking the
// approximate laws, too, asserts that exact correctness implies approximate
// correctness.
func MonoidCheck[T any, O ops.Op](m structure.Monoid[T, O], s Sampler[T]) Check {
	check := MonoidApproxCheck[T, O](m, s)
	check.Registration.Exact = true
	check.laws = append([]law{
		{name: LawIdentity, holds: func(r *rand.Rand) (bool, string) {
			a := s.Sample(r)
			return structure.PropOperatingIdentityIsNoop[T, O](m, a), fmt.Sprintf("a=%v", a)
		}},
		{name: LawAssociativity, holds: func(r *rand.Rand) (bool, string) {
			a, b, c := s.Sample(r), s.Sample(r), s.Sample(r)
			return structure.PropIsAssociative[T, O](m, a, b, c), fmt.Sprintf("a=%v b=%v c=%v", a, b, c)
		}},
	}, check.laws...)
	return check
}

// MonoidApproxCheck checks the approximate laws of m.
func MonoidApproxCheck[T any, O ops.Op](m structure.MonoidApprox[T, O], s Sampler[T]) Check {
	return Check{
		Registration: registrationOf[T, O](false),
		laws: []law{
			{name: LawIdentityApprox, holds: func(r *rand.Rand) (bool, string) {
				a := s.Sample(r)
				return structure.PropOperatingIdentityIsNoopApprox[T, O](m, a), fmt.Sprintf("a=%v", a)
			}},
			{name: LawAssociativityApprox, holds: func(r *rand.Rand) (bool, string) {
				a, b, c := s.Sample(r), s.Sample(r), s.Sample(r)
				return structure.PropIsAssociativeApprox[T, O](m, a, b, c), fmt.Sprintf("a=%v b=%v c=%v", a, b, c)
			}},
		},
	}
}

// RegisteredChecks returns checks for (T, O) built from the structure
// registry. An exact registration yields a MonoidCheck.
func RegisteredChecks[T any, O ops.Op](s Sampler[T]) (Check, bool) {
	if m, ok := structure.LookupMonoid[T, O](); ok {
		return MonoidCheck[T, O](m, s), true
	}
	if m, ok := structure.LookupMonoidApprox[T, O](); ok {
		return MonoidApproxCheck[T, O](m, s), true
	}
	return Check{}, false
}

// PrimitiveChecks returns the checks for all registered primitive types,
// under both tags. A non-zero tol replaces the default tolerance of the
// float witnesses.
func PrimitiveChecks(tol approx.Tolerance) []Check {
	var checks []Check
	checks = append(checks, integerChecks[uint8]()...)
	checks = append(checks, integerChecks[uint16]()...)
	checks = append(checks, integerChecks[uint32]()...)
	checks = append(checks, integerChecks[uint64]()...)
	checks = append(checks, integerChecks[int8]()...)
	checks = append(checks, integerChecks[int16]()...)
	checks = append(checks, integerChecks[int32]()...)
	checks = append(checks, integerChecks[int64]()...)
	checks = append(checks, floatChecks[float32](tol)...)
	checks = append(checks, floatChecks[float64](tol)...)
	return checks
}

func integerChecks[T structure.Integer]() []Check {
	var checks []Check
	if c, ok := RegisteredChecks[T, ops.Additive](IntegerSampler[T]{}); ok {
		checks = append(checks, c)
	}
	if c, ok := RegisteredChecks[T, ops.Multiplicative](IntegerSampler[T]{}); ok {
		checks = append(checks, c)
	}
	return checks
}

// floatChecks samples positive values only, which keeps cancellation out of
// the associativity checks.
func floatChecks[T structure.Float](tol approx.Tolerance) []Check {
	s := FloatSampler[T]{Min: 0, Max: 1000}
	if tol.IsZero() {
		var checks []Check
		if c, ok := RegisteredChecks[T, ops.Additive](s); ok {
			checks = append(checks, c)
		}
		if c, ok := RegisteredChecks[T, ops.Multiplicative](s); ok {
			checks = append(checks, c)
		}
		return checks
	}
	return []Check{
		MonoidApproxCheck[T, ops.Additive](structure.FloatAdditive[T]{Tolerance: tol}, s),
		MonoidApproxCheck[T, ops.Multiplicative](structure.FloatMultiplicative[T]{Tolerance: tol}, s),
	}
}
