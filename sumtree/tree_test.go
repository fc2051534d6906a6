package sumtree

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/alga/ops"
	"github.com/npillmayer/alga/structure"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func additiveConfig() Config[int64, ops.Additive] {
	return Config[int64, ops.Additive]{Monoid: structure.IntAdditive[int64]{}}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int64, ops.Additive]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing monoid, got %v", err)
	}
	_, err = New(Config[int64, ops.Additive]{Monoid: structure.IntAdditive[int64]{}, Degree: 2})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for small degree, got %v", err)
	}
}

func TestEmptyTreeSummaryIsIdentity(t *testing.T) {
	add, err := New(additiveConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if add.Summary() != 0 || add.Len() != 0 || add.Height() != 0 {
		t.Fatalf("unexpected empty tree state sum=%d len=%d height=%d", add.Summary(), add.Len(), add.Height())
	}
	mul, err := New(Config[int64, ops.Multiplicative]{Monoid: structure.IntMultiplicative[int64]{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mul.Summary() != 1 {
		t.Fatalf("expected empty product tree to sum to 1, got %d", mul.Summary())
	}
	if err := add.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
}

func TestNilTreeIsEmpty(t *testing.T) {
	var tree *Tree[int64, ops.Multiplicative]
	if tree.Summary() != 0 || tree.Len() != 0 || tree.Height() != 0 || !tree.IsEmpty() {
		t.Fatalf("expected nil tree to behave as empty with zero summary")
	}
	if _, err := tree.RangeSummary(0, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds for nil tree, got %v", err)
	}
}

func TestInsertAtBuildsTreeAndPreservesOriginal(t *testing.T) {
	base, err := New(additiveConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t1, err := base.InsertAt(0, 1, 2, 3)
	if err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	t2, err := t1.InsertAt(1, 10)
	if err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	if base.Len() != 0 {
		t.Fatalf("base tree changed unexpectedly")
	}
	if got := t1.Items(); len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("t1 mismatch: %v", got)
	}
	if got := t2.Items(); len(got) != 4 || got[1] != 10 {
		t.Fatalf("t2 mismatch: %v", got)
	}
	if t1.Summary() != 6 || t2.Summary() != 16 {
		t.Fatalf("unexpected summaries %d, %d", t1.Summary(), t2.Summary())
	}
	if _, err := t2.InsertAt(5, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestInsertAtRootSplitAndPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "alga.sumtree")
	defer teardown()
	//
	tree, err := New(Config[int64, ops.Additive]{Monoid: structure.IntAdditive[int64]{}, Degree: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := int64(0); i < 200; i++ {
		tree, err = tree.Append(i)
		if err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}
	if tree.Height() < 3 {
		t.Fatalf("expected height >= 3 after propagated splits, got %d", tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if tree.Summary() != 199*200/2 {
		t.Fatalf("unexpected sum %d", tree.Summary())
	}
	for i := 0; i < 200; i++ {
		v, err := tree.At(i)
		if err != nil || v != int64(i) {
			t.Fatalf("unexpected item at %d: %d (%v)", i, v, err)
		}
	}
}

// lastWins is a non-commutative monoid: the last non-zero value wins.
type lastWins struct{}

func (lastWins) Op() ops.Additive { return ops.Additive{} }
func (lastWins) Id() int          { return 0 }
func (lastWins) Operate(a, b int) int {
	if b == 0 {
		return a
	}
	return b
}
func (w lastWins) Approx(a, b int) int { return w.Operate(a, b) }
func (lastWins) Eq(a, b int) bool      { return a == b }
func (lastWins) ApproxEq(a, b int) bool {
	return a == b
}

func TestRangeSummaryKeepsOrder(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i + 1
	}
	tree, err := FromSlice(Config[int, ops.Additive]{Monoid: lastWins{}, Degree: 5}, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	for _, r := range [][2]int{{0, 100}, {3, 47}, {10, 11}, {99, 100}} {
		s, err := tree.RangeSummary(r[0], r[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != r[1] {
			t.Fatalf("expected last item %d of range %v, got %d", r[1], r, s)
		}
	}
	if s, _ := tree.RangeSummary(7, 7); s != 0 {
		t.Fatalf("expected identity for empty range, got %d", s)
	}
	if _, err := tree.RangeSummary(5, 4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestPrefixSummaryMatchesLinearFold(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	model := make([]int64, 0, 300)
	tree, err := New(Config[int64, ops.Additive]{Monoid: structure.IntAdditive[int64]{}, Degree: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 300; i++ {
		v := r.Int63n(1000) - 500
		at := r.Intn(len(model) + 1)
		tree, err = tree.InsertAt(at, v)
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		model = append(model[:at], append([]int64{v}, model[at:]...)...)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	var acc int64
	for n := 0; n <= len(model); n++ {
		p, err := tree.PrefixSummary(n)
		if err != nil {
			t.Fatalf("PrefixSummary(%d) failed: %v", n, err)
		}
		if p != acc {
			t.Fatalf("prefix %d mismatch: got %d want %d", n, p, acc)
		}
		if n < len(model) {
			acc += model[n]
		}
	}
}

func TestApproximateMonoidTree(t *testing.T) {
	items := []float64{0.1, 0.2, 0.3, 0.4}
	m := structure.FloatAdditive[float64]{}
	tree, err := FromSlice(Config[float64, ops.Additive]{Monoid: m}, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.ApproxEq(tree.Summary(), 1.0) {
		t.Fatalf("expected summary ≈ 1.0, got %v", tree.Summary())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestForEachItemStopsEarly(t *testing.T) {
	tree, err := FromSlice(additiveConfig(), []int64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var seen []int64
	tree.ForEachItem(func(item int64) bool {
		seen = append(seen, item)
		return item < 3
	})
	if len(seen) != 3 {
		t.Fatalf("expected iteration to stop after 3 items, got %v", seen)
	}
}
