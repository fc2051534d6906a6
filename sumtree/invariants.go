package sumtree

import "fmt"

// Check validates structural tree invariants and cached summaries.
//
// Summaries are compared with the monoid's own equality; for approximate
// monoids this is the tolerance-based one.
func (t *Tree[T, O]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height=0", ErrInvariant)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvariant)
	}
	_, height, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, t.height)
	}
	return nil
}

func (t *Tree[T, O]) checkNode(n treeNode[T]) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	sum := t.cfg.Monoid.Id()
	if n.isLeaf() {
		leaf := n.(*leafNode[T])
		if len(leaf.items) == 0 || len(leaf.items) > t.cfg.Degree {
			return 0, 0, fmt.Errorf("%w: leaf holds %d items", ErrInvariant, len(leaf.items))
		}
		for _, item := range leaf.items {
			sum = t.combine(sum, item)
		}
		if !t.equal(sum, leaf.summary) {
			return 0, 0, fmt.Errorf("%w: stale leaf summary", ErrInvariant)
		}
		return len(leaf.items), 1, nil
	}
	inner := n.(*innerNode[T])
	if len(inner.children) == 0 || len(inner.children) > t.cfg.Degree {
		return 0, 0, fmt.Errorf("%w: inner node has %d children", ErrInvariant, len(inner.children))
	}
	var childHeight int
	for i, child := range inner.children {
		cItems, cHeight, cErr := t.checkNode(child)
		if cErr != nil {
			return 0, 0, cErr
		}
		items += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariant)
		}
		sum = t.combine(sum, child.Summary())
	}
	if items != inner.count {
		return 0, 0, fmt.Errorf("%w: cached size %d, counted %d", ErrInvariant, inner.count, items)
	}
	if !t.equal(sum, inner.summary) {
		return 0, 0, fmt.Errorf("%w: stale inner summary", ErrInvariant)
	}
	return items, childHeight + 1, nil
}
