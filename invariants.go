package bvec

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Check validates the structural invariants of the tree:
// occupancy bounds of every node, uniform leaf depth, cached size counters,
// and the cached length. Violations wrap ErrInvariantViolated and name the
// failing node by its child-slot path from the root.
//
// Check is meant for tests and diagnostics; it visits every node.
func (t *Vec[T]) Check() error {
	if t == nil {
		return errors.Wrap(ErrInvariantViolated, "nil vector")
	}
	if t.root == nil {
		if t.height != 0 || t.length != 0 {
			return errors.Wrapf(ErrInvariantViolated,
				"empty tree must have height 0 and length 0, has %d/%d", t.height, t.length)
		}
		return nil
	}
	if t.height <= 0 {
		return errors.Wrapf(ErrInvariantViolated, "non-empty tree has height %d", t.height)
	}
	items, height, err := t.checkNode(t.root, true, "root")
	if err != nil {
		return err
	}
	if height != t.height {
		return errors.Wrapf(ErrInvariantViolated, "height mismatch (%d != %d)", height, t.height)
	}
	if items != t.length {
		return errors.Wrapf(ErrInvariantViolated, "length mismatch (%d != %d)", items, t.length)
	}
	return nil
}

func (t *Vec[T]) checkNode(n treeNode[T], isRoot bool, at string) (items int, height int, err error) {
	if n == nil {
		return 0, 0, errors.Wrapf(ErrInvariantViolated, "nil node at %s", at)
	}
	if n.isLeaf() {
		leaf := n.(*leafNode[T])
		count := len(leaf.items)
		if count > t.cfg.LeafCap {
			return 0, 0, errors.Wrapf(ErrInvariantViolated,
				"leaf %s holds %d elements, capacity is %d", at, count, t.cfg.LeafCap)
		}
		if isRoot && count == 0 {
			return 0, 0, errors.Wrap(ErrInvariantViolated, "root leaf is empty")
		}
		if !isRoot && count < t.cfg.MinLeafItems() {
			return 0, 0, errors.Wrapf(ErrInvariantViolated,
				"leaf %s holds %d elements, minimum is %d", at, count, t.cfg.MinLeafItems())
		}
		return count, 1, nil
	}
	inner := n.(*innerNode[T])
	count := len(inner.children)
	if len(inner.sizes) != count {
		return 0, 0, errors.Wrapf(ErrInvariantViolated,
			"node %s has %d children but %d size counters", at, count, len(inner.sizes))
	}
	if count > t.cfg.Fanout {
		return 0, 0, errors.Wrapf(ErrInvariantViolated,
			"node %s has %d children, fanout is %d", at, count, t.cfg.Fanout)
	}
	if isRoot && count < 2 {
		return 0, 0, errors.Wrapf(ErrInvariantViolated, "internal root has %d children", count)
	}
	if !isRoot && count < t.cfg.MinChildren() {
		return 0, 0, errors.Wrapf(ErrInvariantViolated,
			"node %s has %d children, minimum is %d", at, count, t.cfg.MinChildren())
	}
	var childHeight int
	for i, child := range inner.children {
		cItems, cHeight, cErr := t.checkNode(child, false, fmt.Sprintf("%s/%d", at, i))
		if cErr != nil {
			return 0, 0, cErr
		}
		if inner.sizes[i] != cItems {
			return 0, 0, errors.Wrapf(ErrInvariantViolated,
				"node %s caches size %d for child %d, which holds %d", at, inner.sizes[i], i, cItems)
		}
		items += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, errors.Wrapf(ErrInvariantViolated, "node %s has non-uniform subtree heights", at)
		}
	}
	if inner.total != items {
		return 0, 0, errors.Wrapf(ErrInvariantViolated,
			"node %s caches total %d, subtree holds %d", at, inner.total, items)
	}
	return items, childHeight + 1, nil
}
