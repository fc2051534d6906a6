/*
Package approx provides tolerance-based equality for floating point values.

Approximate laws in package structure are stated in terms of an
approximate-equality collaborator. For the float witnesses that collaborator is
a Tolerance value carried by the witness itself, so callers choose the slack per
witness and fall back to per-type defaults otherwise.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package approx

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ErrInvalidTolerance signals a tolerance with negative or NaN bounds.
var ErrInvalidTolerance = errors.New("approx: invalid tolerance")

// Float is a constraint for floating point types.
type Float interface {
	~float32 | ~float64
}

// Tolerance bounds the difference under which two values count as equal.
//
// Two values are approximately equal if any of the bounds is met. A zero
// bound is never met, except for exact equality.
type Tolerance struct {
	Abs  float64 `env:"ABS"`  // absolute difference
	Rel  float64 `env:"REL"`  // difference relative to the larger magnitude
	ULPs uint64  `env:"ULPS"` // units in the last place
}

var (
	// DefaultTolerance32 is used for float32-based types.
	DefaultTolerance32 = Tolerance{Abs: 1e-6, Rel: 1e-5, ULPs: 4}
	// DefaultTolerance64 is used for float64-based types.
	DefaultTolerance64 = Tolerance{Abs: 1e-12, Rel: 1e-9, ULPs: 4}
)

// ForType returns the default tolerance for T.
func ForType[T Float]() Tolerance {
	if is32[T]() {
		return DefaultTolerance32
	}
	return DefaultTolerance64
}

// IsZero reports whether no bound is set.
func (tol Tolerance) IsZero() bool {
	return tol == Tolerance{}
}

// Validate checks that all bounds are non-negative numbers.
func (tol Tolerance) Validate() error {
	if math.IsNaN(tol.Abs) || tol.Abs < 0 {
		return fmt.Errorf("%w: abs=%v", ErrInvalidTolerance, tol.Abs)
	}
	if math.IsNaN(tol.Rel) || tol.Rel < 0 {
		return fmt.Errorf("%w: rel=%v", ErrInvalidTolerance, tol.Rel)
	}
	return nil
}

// Or returns tol, or dflt if tol is the zero tolerance.
func (tol Tolerance) Or(dflt Tolerance) Tolerance {
	if tol.IsZero() {
		return dflt
	}
	return tol
}

// Equal reports whether a and b are equal within tol.
//
// NaN is never equal to anything. Infinities are equal only to themselves.
func Equal[T Float](a, b T, tol Tolerance) bool {
	if a == b {
		return true
	}
	x, y := float64(a), float64(b)
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	diff := math.Abs(x - y)
	if diff <= tol.Abs {
		return true
	}
	if diff <= tol.Rel*math.Max(math.Abs(x), math.Abs(y)) {
		return true
	}
	if tol.ULPs == 0 {
		return false
	}
	var d uint64
	if is32[T]() {
		d = ulps32(float32(a), float32(b))
	} else {
		d = ulps64(x, y)
	}
	return d <= tol.ULPs
}

// ULPs returns the distance between a and b in units in the last place of T.
func ULPs[T Float](a, b T) uint64 {
	if is32[T]() {
		return ulps32(float32(a), float32(b))
	}
	return ulps64(float64(a), float64(b))
}

// is32 reports whether T is based on float32.
func is32[T Float]() bool {
	return reflect.TypeFor[T]().Kind() == reflect.Float32
}

// ulps64 maps the IEEE bit patterns onto a monotonic integer line and
// measures the distance there.
func ulps64(a, b float64) uint64 {
	x, y := ordered64(a), ordered64(b)
	if x >= y {
		return uint64(x) - uint64(y)
	}
	return uint64(y) - uint64(x)
}

func ordered64(f float64) int64 {
	b := int64(math.Float64bits(f))
	if b < 0 {
		b = math.MinInt64 - b
	}
	return b
}

func ulps32(a, b float32) uint64 {
	x, y := ordered32(a), ordered32(b)
	if x >= y {
		return uint64(x - y)
	}
	return uint64(y - x)
}

func ordered32(f float32) int64 {
	b := int32(math.Float32bits(f))
	if b < 0 {
		b = math.MinInt32 - b
	}
	return int64(b)
}
