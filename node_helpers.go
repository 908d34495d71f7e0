package bvec

import "slices"

// makeLeaf materializes a new leaf holding a copy of items. Storage is sized
// for one transient overflow element before a split.
func (t *Vec[T]) makeLeaf(items []T) *leafNode[T] {
	capacity := max(t.cfg.LeafCap+1, len(items))
	leaf := &leafNode[T]{items: make([]T, len(items), capacity)}
	copy(leaf.items, items)
	return leaf
}

// makeInner materializes a new internal node and computes its size counters
// from its children.
func (t *Vec[T]) makeInner(children ...treeNode[T]) *innerNode[T] {
	capacity := max(t.cfg.Fanout+1, len(children))
	inner := &innerNode[T]{
		children: make([]treeNode[T], len(children), capacity),
		sizes:    make([]int, len(children), capacity),
	}
	copy(inner.children, children)
	for i, child := range inner.children {
		assert(child != nil, "makeInner called with nil child")
		inner.sizes[i] = child.size()
		inner.total += inner.sizes[i]
	}
	return inner
}

func (t *Vec[T]) recomputeInnerSize(inner *innerNode[T]) {
	inner.total = 0
	for _, s := range inner.sizes {
		inner.total += s
	}
}

func (t *Vec[T]) insertChildAt(inner *innerNode[T], idx int, child treeNode[T]) {
	assert(idx >= 0 && idx <= len(inner.children), "insertChildAt index out of range")
	inner.children = slices.Insert(inner.children, idx, child)
	inner.sizes = slices.Insert(inner.sizes, idx, child.size())
	t.recomputeInnerSize(inner)
}

func (t *Vec[T]) removeChildAt(inner *innerNode[T], idx int) treeNode[T] {
	assert(idx >= 0 && idx < len(inner.children), "removeChildAt index out of range")
	child := inner.children[idx]
	inner.children = slices.Delete(inner.children, idx, idx+1)
	inner.sizes = slices.Delete(inner.sizes, idx, idx+1)
	t.recomputeInnerSize(inner)
	return child
}

func (t *Vec[T]) leafOverflow(leaf *leafNode[T]) bool {
	return len(leaf.items) > t.cfg.LeafCap
}

func (t *Vec[T]) innerOverflow(inner *innerNode[T]) bool {
	return len(inner.children) > t.cfg.Fanout
}

// underflow reports whether a non-root node holds fewer entries than its
// lower occupancy bound.
func (t *Vec[T]) underflow(n treeNode[T]) bool {
	if n.isLeaf() {
		return len(n.(*leafNode[T]).items) < t.cfg.MinLeafItems()
	}
	return len(n.(*innerNode[T]).children) < t.cfg.MinChildren()
}

// splitLeaf moves the upper half of an overflowing leaf into a new right
// sibling and returns that sibling.
func (t *Vec[T]) splitLeaf(leaf *leafNode[T]) *leafNode[T] {
	n := len(leaf.items)
	assert(n > t.cfg.LeafCap, "splitLeaf called on leaf without overflow")
	mid := n / 2
	right := t.makeLeaf(leaf.items[mid:])
	clear(leaf.items[mid:])
	leaf.items = leaf.items[:mid]
	assert(len(leaf.items) >= t.cfg.MinLeafItems() && len(right.items) >= t.cfg.MinLeafItems(),
		"splitLeaf violates leaf occupancy bounds")
	return right
}

// splitInner moves the upper half of an overflowing internal node into a new
// right sibling and returns that sibling.
func (t *Vec[T]) splitInner(inner *innerNode[T]) *innerNode[T] {
	n := len(inner.children)
	assert(n > t.cfg.Fanout, "splitInner called on node without overflow")
	mid := n / 2
	right := t.makeInner(inner.children[mid:]...)
	clear(inner.children[mid:])
	inner.children = inner.children[:mid]
	inner.sizes = inner.sizes[:mid]
	t.recomputeInnerSize(inner)
	assert(len(inner.children) >= t.cfg.MinChildren() && len(right.children) >= t.cfg.MinChildren(),
		"splitInner violates internal occupancy bounds")
	return right
}
