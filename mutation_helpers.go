package bvec

import "slices"

// rebalanceChild repairs occupancy of the underflowing child at slot.
func (t *Vec[T]) rebalanceChild(parent *innerNode[T], slot int) {
	assert(slot >= 0 && slot < len(parent.children), "rebalanceChild slot out of range")
	var resolved bool
	if parent.children[slot].isLeaf() {
		resolved = t.rebalanceLeafChild(parent, slot)
	} else {
		resolved = t.rebalanceInnerChild(parent, slot)
	}
	assert(resolved, "rebalanceChild found no sibling to borrow from or merge with")
}

// applyRebalancePolicy centralizes sibling operation order after delete:
// borrow-left, borrow-right, merge-left, merge-right.
func (t *Vec[T]) applyRebalancePolicy(
	parent *innerNode[T], slot int,
	borrowLeft func() bool,
	borrowRight func() bool,
	mergeLeft func() bool,
	mergeRight func() bool,
) bool {
	hasLeft := slot > 0
	hasRight := slot+1 < len(parent.children)
	if hasLeft && borrowLeft() {
		return true
	}
	if hasRight && borrowRight() {
		return true
	}
	if hasLeft && mergeLeft() {
		return true
	}
	if hasRight && mergeRight() {
		return true
	}
	return false
}

func (t *Vec[T]) rebalanceLeafChild(parent *innerNode[T], slot int) bool {
	child := parent.children[slot].(*leafNode[T])
	minItems := t.cfg.MinLeafItems()
	return t.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left := parent.children[slot-1].(*leafNode[T])
			if len(left.items) <= minItems {
				return false
			}
			last := len(left.items) - 1
			child.items = slices.Insert(child.items, 0, left.items[last])
			left.items = slices.Delete(left.items, last, last+1)
			parent.sizes[slot-1]--
			parent.sizes[slot]++
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*leafNode[T])
			if len(right.items) <= minItems {
				return false
			}
			child.items = append(child.items, right.items[0])
			right.items = slices.Delete(right.items, 0, 1)
			parent.sizes[slot+1]--
			parent.sizes[slot]++
			return true
		},
		func() bool {
			left := parent.children[slot-1].(*leafNode[T])
			left.items = append(left.items, child.items...)
			parent.sizes[slot-1] = len(left.items)
			t.removeChildAt(parent, slot)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*leafNode[T])
			child.items = append(child.items, right.items...)
			parent.sizes[slot] = len(child.items)
			t.removeChildAt(parent, slot+1)
			return true
		},
	)
}

// rebalanceInnerChild applies borrow/merge to an underfull internal child.
// Child pointers move between siblings together with their size counters.
func (t *Vec[T]) rebalanceInnerChild(parent *innerNode[T], slot int) bool {
	child := parent.children[slot].(*innerNode[T])
	minChildren := t.cfg.MinChildren()
	return t.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left := parent.children[slot-1].(*innerNode[T])
			if len(left.children) <= minChildren {
				return false
			}
			borrowed := t.removeChildAt(left, len(left.children)-1)
			t.insertChildAt(child, 0, borrowed)
			parent.sizes[slot-1] = left.total
			parent.sizes[slot] = child.total
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*innerNode[T])
			if len(right.children) <= minChildren {
				return false
			}
			borrowed := t.removeChildAt(right, 0)
			t.insertChildAt(child, len(child.children), borrowed)
			parent.sizes[slot+1] = right.total
			parent.sizes[slot] = child.total
			return true
		},
		func() bool {
			left := parent.children[slot-1].(*innerNode[T])
			t.absorbChildren(left, child)
			parent.sizes[slot-1] = left.total
			t.removeChildAt(parent, slot)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*innerNode[T])
			t.absorbChildren(child, right)
			parent.sizes[slot] = child.total
			t.removeChildAt(parent, slot+1)
			return true
		},
	)
}

// absorbChildren appends all children of src to dst.
func (t *Vec[T]) absorbChildren(dst, src *innerNode[T]) {
	dst.children = append(dst.children, src.children...)
	dst.sizes = append(dst.sizes, src.sizes...)
	t.recomputeInnerSize(dst)
}
