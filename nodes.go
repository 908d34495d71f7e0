package bvec

type treeNode[T any] interface {
	isLeaf() bool
	// size is the number of elements in the subtree.
	size() int
}

type leafNode[T any] struct {
	items []T
}

func (l *leafNode[T]) isLeaf() bool { return true }
func (l *leafNode[T]) size() int    { return len(l.items) }

type innerNode[T any] struct {
	children []treeNode[T]
	// sizes[i] caches children[i].size(); total is their sum.
	sizes []int
	total int
}

func (n *innerNode[T]) isLeaf() bool { return false }
func (n *innerNode[T]) size() int    { return n.total }

// locate maps a subtree element index to a child slot and the index local
// to that child.
//
// With inclusive set, an index on a seam between two children lands at the
// end of the left child, and index == total is routed into the last child.
// This is the routing for insert positions. Otherwise every index is owned by
// exactly one child.
func (n *innerNode[T]) locate(index int, inclusive bool) (slot, local int) {
	assert(len(n.children) > 0, "locate called on inner node without children")
	for i, s := range n.sizes {
		if index < s || (inclusive && index == s) {
			return i, index
		}
		index -= s
	}
	assert(false, "locate index exceeded subtree size")
	return 0, 0
}
