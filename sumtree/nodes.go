package sumtree

type treeNode[T any] interface {
	isLeaf() bool
	Summary() T
	size() int // number of items below this node
}

type leafNode[T any] struct {
	summary T
	items   []T
}

func (l *leafNode[T]) isLeaf() bool { return true }
func (l *leafNode[T]) Summary() T   { return l.summary }
func (l *leafNode[T]) size() int    { return len(l.items) }

type innerNode[T any] struct {
	summary  T
	count    int
	children []treeNode[T]
}

func (n *innerNode[T]) isLeaf() bool { return false }
func (n *innerNode[T]) Summary() T   { return n.summary }
func (n *innerNode[T]) size() int    { return n.count }

// makeLeaf creates a leaf holding a copy of items and computes its summary.
func (t *Tree[T, O]) makeLeaf(items []T) *leafNode[T] {
	leaf := &leafNode[T]{items: append([]T(nil), items...)}
	leaf.summary = t.cfg.Monoid.Id()
	for _, item := range leaf.items {
		leaf.summary = t.combine(leaf.summary, item)
	}
	return leaf
}

// makeInternal creates an inner node for children and computes its summary
// from child summaries.
func (t *Tree[T, O]) makeInternal(children ...treeNode[T]) *innerNode[T] {
	inner := &innerNode[T]{children: append([]treeNode[T](nil), children...)}
	inner.summary = t.cfg.Monoid.Id()
	for _, child := range inner.children {
		inner.summary = t.combine(inner.summary, child.Summary())
		inner.count += child.size()
	}
	return inner
}

func insertAt[E any](src []E, idx int, values ...E) []E {
	out := make([]E, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	return append(out, src[idx:]...)
}
