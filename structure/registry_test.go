package structure

import (
	"errors"
	"testing"

	"github.com/npillmayer/alga/ops"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var primitiveNames = map[string]bool{
	"uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"int8": true, "int16": true, "int32": true, "int64": true,
	"float32": true, "float64": true,
}

func TestPrimitivesAreRegistered(t *testing.T) {
	var exact, approxOnly int
	for _, r := range Registrations() {
		if !primitiveNames[r.TypeName] {
			continue
		}
		if r.Exact {
			exact++
		} else {
			approxOnly++
		}
	}
	if exact != 16 {
		t.Errorf("expected 16 exact registrations, got %d", exact)
	}
	if approxOnly != 4 {
		t.Errorf("expected 4 approximate-only registrations, got %d", approxOnly)
	}
}

func TestRegistrationsAreOrdered(t *testing.T) {
	list := Registrations()
	for i := 1; i < len(list); i++ {
		a, b := list[i-1], list[i]
		if a.TypeName > b.TypeName || (a.TypeName == b.TypeName && a.Tag >= b.Tag) {
			t.Fatalf("registrations not ordered at %d: %s, %s", i, a, b)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := LookupMonoid[int8, ops.Multiplicative](); !ok {
		t.Fatalf("expected int8 to be a multiplicative monoid")
	}
	if _, ok := LookupMonoid[float64, ops.Additive](); ok {
		t.Fatalf("expected float64 not to be an exact monoid")
	}
	m, ok := LookupMonoidApprox[float64, ops.Additive]()
	if !ok {
		t.Fatalf("expected float64 to be an approximate additive monoid")
	}
	if !PropOperatingIdentityIsNoopApprox(m, 3.25) {
		t.Fatalf("expected approximate identity law for registered float64 witness")
	}
	if _, ok := LookupMonoidApprox[int, ops.Additive](); ok {
		t.Fatalf("expected plain int not to be registered")
	}
}

func TestMustLookupPanicsForUnregistered(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNotRegistered) {
			t.Fatalf("expected panic with ErrNotRegistered, got %v", r)
		}
	}()
	MustLookupMonoid[uint, ops.Additive]()
}

type meters int32

func TestRegisterCustomType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "alga.structure")
	defer teardown()
	//
	reg := newRegistry()
	if err := registerIn[meters, ops.Additive](reg, IntAdditive[meters]{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := lookupExactIn[meters, ops.Additive](reg)
	if !ok || m.Operate(3, 4) != 7 {
		t.Fatalf("expected meters to be an additive monoid")
	}
	if _, ok := lookupExactIn[meters, ops.Multiplicative](reg); ok {
		t.Fatalf("expected meters to be registered under addition only")
	}
	err := registerIn[meters, ops.Additive](reg, IntAdditive[meters]{})
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
	}
	if err := registerIn[meters, ops.Multiplicative](reg, nil); !errors.Is(err, ErrNilCapability) {
		t.Fatalf("expected ErrNilCapability, got %v", err)
	}
	if list := reg.list(); len(list) != 1 || list[0].String() != "Monoid<additive>(structure.meters)" {
		t.Fatalf("unexpected registrations %v", list)
	}
	if _, ok := LookupMonoidApprox[meters, ops.Additive](); ok {
		t.Fatalf("expected local registration not to leak into the package registry")
	}
}

func TestRegisterRejectsNil(t *testing.T) {
	if err := Register[meters, ops.Multiplicative](nil); !errors.Is(err, ErrNilCapability) {
		t.Fatalf("expected ErrNilCapability, got %v", err)
	}
}

func TestDuplicatePrimitiveRegistrationFails(t *testing.T) {
	err := Register[uint32, ops.Additive](IntAdditive[uint32]{})
	if !errors.Is(err, ErrDuplicateRegistration) {
		t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
	}
}

func TestRegistrationString(t *testing.T) {
	r := Registration{TypeName: "uint32", Tag: "additive", Symbol: "+", Exact: true}
	if s := r.String(); s != "Monoid<additive>(uint32)" {
		t.Fatalf("unexpected registration string %q", s)
	}
	r.Exact = false
	if s := r.String(); s != "MonoidApprox<additive>(uint32)" {
		t.Fatalf("unexpected registration string %q", s)
	}
}
