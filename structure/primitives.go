package structure

import "github.com/npillmayer/alga/ops"

// Compile-time registration checks, one line per registered (type, tag).
// A witness lacking part of its capability fails to build here.
var (
	_ Monoid[uint8, ops.Additive]               = IntAdditive[uint8]{}
	_ Monoid[uint8, ops.Multiplicative]         = IntMultiplicative[uint8]{}
	_ Monoid[uint16, ops.Additive]              = IntAdditive[uint16]{}
	_ Monoid[uint16, ops.Multiplicative]        = IntMultiplicative[uint16]{}
	_ Monoid[uint32, ops.Additive]              = IntAdditive[uint32]{}
	_ Monoid[uint32, ops.Multiplicative]        = IntMultiplicative[uint32]{}
	_ Monoid[uint64, ops.Additive]              = IntAdditive[uint64]{}
	_ Monoid[uint64, ops.Multiplicative]        = IntMultiplicative[uint64]{}
	_ Monoid[int8, ops.Additive]                = IntAdditive[int8]{}
	_ Monoid[int8, ops.Multiplicative]          = IntMultiplicative[int8]{}
	_ Monoid[int16, ops.Additive]               = IntAdditive[int16]{}
	_ Monoid[int16, ops.Multiplicative]         = IntMultiplicative[int16]{}
	_ Monoid[int32, ops.Additive]               = IntAdditive[int32]{}
	_ Monoid[int32, ops.Multiplicative]         = IntMultiplicative[int32]{}
	_ Monoid[int64, ops.Additive]               = IntAdditive[int64]{}
	_ Monoid[int64, ops.Multiplicative]         = IntMultiplicative[int64]{}
	_ MonoidApprox[float32, ops.Additive]       = FloatAdditive[float32]{}
	_ MonoidApprox[float32, ops.Multiplicative] = FloatMultiplicative[float32]{}
	_ MonoidApprox[float64, ops.Additive]       = FloatAdditive[float64]{}
	_ MonoidApprox[float64, ops.Multiplicative] = FloatMultiplicative[float64]{}
)

func init() {
	registerPrimitives()
}

// registerPrimitives lists the primitive types of the hierarchy. Adding a type
// is one line; each line registers both tags.
func registerPrimitives() {
	registerInteger[uint8]()
	registerInteger[uint16]()
	registerInteger[uint32]()
	registerInteger[uint64]()
	registerInteger[int8]()
	registerInteger[int16]()
	registerInteger[int32]()
	registerInteger[int64]()
	registerFloat[float32]()
	registerFloat[float64]()
}

func registerInteger[T Integer]() {
	mustRegister(Register[T, ops.Additive](IntAdditive[T]{}))
	mustRegister(Register[T, ops.Multiplicative](IntMultiplicative[T]{}))
}

func registerFloat[T Float]() {
	mustRegister(Register[T, ops.Additive](FloatAdditive[T]{}))
	mustRegister(Register[T, ops.Multiplicative](FloatMultiplicative[T]{}))
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}
