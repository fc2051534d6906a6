package ops

import (
	"testing"
	"unsafe"
)

func TestTagsAreZeroSized(t *testing.T) {
	if s := unsafe.Sizeof(Additive{}); s != 0 {
		t.Fatalf("expected Additive to be zero-sized, got %d", s)
	}
	if s := unsafe.Sizeof(Multiplicative{}); s != 0 {
		t.Fatalf("expected Multiplicative to be zero-sized, got %d", s)
	}
}

func TestTagMetadata(t *testing.T) {
	if n := NameOf[Additive](); n != "additive" {
		t.Fatalf("unexpected additive name %q", n)
	}
	if n := NameOf[Multiplicative](); n != "multiplicative" {
		t.Fatalf("unexpected multiplicative name %q", n)
	}
	if s := SymbolOf[Additive](); s != "+" {
		t.Fatalf("unexpected additive symbol %q", s)
	}
	if s := SymbolOf[Multiplicative](); s != "×" {
		t.Fatalf("unexpected multiplicative symbol %q", s)
	}
}

func TestTagsAreDistinctTypes(t *testing.T) {
	var a, m any = Additive{}, Multiplicative{}
	if a == m {
		t.Fatalf("expected tags of different types to compare unequal")
	}
	if (Additive{}) != (Additive{}) {
		t.Fatalf("expected all Additive values to be equal")
	}
}
