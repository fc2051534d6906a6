package sumtree

import (
	"fmt"
	"iter"

	"github.com/npillmayer/alga/ops"
	"github.com/npillmayer/alga/structure"
)

// Tree is a persistent B+ sum-tree over values of T, summed by a monoid for
// the operation tagged O.
type Tree[T any, O ops.Op] struct {
	cfg     Config[T, O]
	combine func(a, b T) T
	equal   func(a, b T) bool
	root    treeNode[T]
	height  int // 0 means empty tree
}

// New creates an empty tree with validated configuration.
func New[T any, O ops.Op](cfg Config[T, O]) (*Tree[T, O], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T, O]{cfg: cfg, combine: cfg.Monoid.Approx, equal: cfg.Monoid.ApproxEq}
	if exact, ok := cfg.Monoid.(structure.Monoid[T, O]); ok {
		t.combine, t.equal = exact.Operate, exact.Eq
	}
	return t, nil
}

// FromSlice creates a tree holding items, built bottom-up.
func FromSlice[T any, O ops.Op](cfg Config[T, O], items []T) (*Tree[T, O], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return t, nil
	}
	degree := t.cfg.Degree
	level := make([]treeNode[T], 0, len(items)/degree+1)
	for from := 0; from < len(items); from += degree {
		level = append(level, t.makeLeaf(items[from:min(from+degree, len(items))]))
	}
	t.height = 1
	for len(level) > 1 {
		parents := make([]treeNode[T], 0, len(level)/degree+1)
		for from := 0; from < len(level); from += degree {
			parents = append(parents, t.makeInternal(level[from:min(from+degree, len(level))]...))
		}
		level = parents
		t.height++
	}
	t.root = level[0]
	tracer().Debugf("built sum-tree of %d items, height %d", len(items), t.height)
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T, O]) Config() Config[T, O] {
	return t.cfg
}

// Clone returns a shallow clone of the tree root container. Nodes are shared.
func (t *Tree[T, O]) Clone() *Tree[T, O] {
	if t == nil {
		return nil
	}
	cloned := *t
	return &cloned
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T, O]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree.
func (t *Tree[T, O]) Len() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.size()
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[T, O]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Summary returns the sum of all items, or the identity for an empty tree.
// A nil tree has no monoid and returns the zero value of T.
func (t *Tree[T, O]) Summary() T {
	if t == nil {
		var zero T
		return zero
	}
	if t.root == nil {
		return t.cfg.Monoid.Id()
	}
	return t.root.Summary()
}

// At returns the item at index.
func (t *Tree[T, O]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	n := t.root
	for !n.isLeaf() {
		inner := n.(*innerNode[T])
		slot, local := locateChild(inner, index)
		n, index = inner.children[slot], local
	}
	return n.(*leafNode[T]).items[index], nil
}

// InsertAt inserts items at an item index and returns a new tree.
func (t *Tree[T, O]) InsertAt(index int, items ...T) (*Tree[T, O], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	if len(items) == 0 {
		return t, nil
	}
	cloned := t.Clone()
	for i, item := range items {
		cloned.insertOneAt(index+i, item)
	}
	return cloned, nil
}

// Append appends items and returns a new tree.
func (t *Tree[T, O]) Append(items ...T) (*Tree[T, O], error) {
	return t.InsertAt(t.Len(), items...)
}

// PrefixSummary returns the sum of the first n items.
func (t *Tree[T, O]) PrefixSummary(n int) (T, error) {
	return t.RangeSummary(0, n)
}

// RangeSummary returns the sum of the items in [i, j).
func (t *Tree[T, O]) RangeSummary(i, j int) (T, error) {
	if t == nil || i < 0 || j < i || j > t.Len() {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	acc := t.cfg.Monoid.Id()
	if i == j {
		return acc, nil
	}
	return t.rangeNode(t.root, i, j, acc), nil
}

// rangeNode adds the items of n in [i, j) to acc. Children completely inside
// the range contribute their cached summary.
func (t *Tree[T, O]) rangeNode(n treeNode[T], i, j int, acc T) T {
	if i <= 0 && j >= n.size() {
		return t.combine(acc, n.Summary())
	}
	if n.isLeaf() {
		for _, item := range n.(*leafNode[T]).items[max(i, 0):min(j, n.size())] {
			acc = t.combine(acc, item)
		}
		return acc
	}
	offset := 0
	for _, child := range n.(*innerNode[T]).children {
		size := child.size()
		if offset+size > i && offset < j {
			acc = t.rangeNode(child, i-offset, j-offset, acc)
		}
		offset += size
		if offset >= j {
			break
		}
	}
	return acc
}

// ForEachItem walks items in order. Iteration stops early if fn returns false.
func (t *Tree[T, O]) ForEachItem(fn func(item T) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	forEachItemNode(t.root, fn)
}

func forEachItemNode[T any](n treeNode[T], fn func(item T) bool) bool {
	if n.isLeaf() {
		for _, item := range n.(*leafNode[T]).items {
			if !fn(item) {
				return false
			}
		}
		return true
	}
	for _, child := range n.(*innerNode[T]).children {
		if !forEachItemNode(child, fn) {
			return false
		}
	}
	return true
}

// All returns an iterator over the items in order.
func (t *Tree[T, O]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEachItem(yield)
	}
}

// Items returns all items in order.
func (t *Tree[T, O]) Items() []T {
	items := make([]T, 0, t.Len())
	t.ForEachItem(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// --- Insertion -------------------------------------------------------------

// insertOneAt inserts one item in place. Callers use a private clone to
// preserve persistence; nodes themselves are never mutated.
func (t *Tree[T, O]) insertOneAt(index int, item T) {
	if t.root == nil {
		t.root = t.makeLeaf([]T{item})
		t.height = 1
		return
	}
	updated, promoted := t.insertRecursive(t.root, t.height, index, item)
	if promoted != nil {
		tracer().Debugf("root split, height %d -> %d", t.height, t.height+1)
		t.root = t.makeInternal(updated, promoted)
		t.height++
		return
	}
	t.root = updated
}

// insertRecursive inserts one item into subtree n and returns the rebuilt
// subtree. The promoted sibling is non-nil only when the subtree split.
func (t *Tree[T, O]) insertRecursive(n treeNode[T], height, index int, item T) (treeNode[T], treeNode[T]) {
	assert(n != nil, "insertRecursive called with nil node")
	assert(height > 0, "insertRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[T])
		assert(ok, "insertRecursive expected leaf at height 1")
		items := insertAt(leaf.items, index, item)
		if len(items) <= t.cfg.Degree {
			return t.makeLeaf(items), nil
		}
		mid := len(items) / 2
		return t.makeLeaf(items[:mid]), t.makeLeaf(items[mid:])
	}
	inner, ok := n.(*innerNode[T])
	assert(ok, "insertRecursive expected internal node")
	slot, local := locateChildForInsert(inner, index)
	updated, promoted := t.insertRecursive(inner.children[slot], height-1, local, item)
	children := append([]treeNode[T](nil), inner.children...)
	children[slot] = updated
	if promoted != nil {
		children = insertAt(children, slot+1, promoted)
	}
	if len(children) <= t.cfg.Degree {
		return t.makeInternal(children...), nil
	}
	mid := len(children) / 2
	return t.makeInternal(children[:mid]...), t.makeInternal(children[mid:]...)
}

// locateChildForInsert maps a subtree item index to child slot and local
// index. Boundary indices land in the left child.
func locateChildForInsert[T any](inner *innerNode[T], index int) (slot int, local int) {
	remaining := index
	for i, child := range inner.children {
		if remaining <= child.size() {
			return i, remaining
		}
		remaining -= child.size()
	}
	assert(false, "locateChildForInsert index exceeded subtree item count")
	return 0, 0
}

// locateChild maps a subtree item index to the child owning it.
func locateChild[T any](inner *innerNode[T], index int) (slot int, local int) {
	remaining := index
	for i, child := range inner.children {
		if remaining < child.size() {
			return i, remaining
		}
		remaining -= child.size()
	}
	assert(false, "locateChild index exceeded subtree item count")
	return 0, 0
}
