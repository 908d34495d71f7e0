package bvec

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Vec is a sequence of elements of type T stored in a B+ tree.
//
// The zero value is an empty vector using DefaultConfig.
type Vec[T any] struct {
	cfg     Config
	root    treeNode[T]
	height  int // 0 means empty, 1 means a leaf root
	length  int
	cursor  *CursorMut[T] // open cursor holding the exclusive borrow, if any
	readers int           // running iterations; they block mutation
}

// New creates an empty vector with the default configuration.
func New[T any]() *Vec[T] {
	return &Vec[T]{cfg: DefaultConfig()}
}

// NewWithConfig creates an empty vector with a validated configuration.
// Zero fields of cfg take their default values.
func NewWithConfig[T any](cfg Config) (*Vec[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Vec[T]{cfg: cfg.normalized()}, nil
}

// Config returns the effective configuration of the vector.
func (t *Vec[T]) Config() Config {
	if t == nil {
		return DefaultConfig()
	}
	return t.cfg.normalized()
}

// Len returns the number of elements. It is O(1) and allowed while a cursor
// is open.
func (t *Vec[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// IsEmpty reports whether the vector has no elements.
func (t *Vec[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Vec[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Clear removes all elements.
func (t *Vec[T]) Clear() error {
	if err := t.checkWrite(); err != nil {
		return err
	}
	t.root, t.height, t.length = nil, 0, 0
	return nil
}

// Insert inserts item before the element at index. Inserting at index Len()
// appends.
func (t *Vec[T]) Insert(index int, item T) error {
	if err := t.checkWrite(); err != nil {
		return err
	}
	if index < 0 || index > t.length {
		return outOfBounds(index, t.length)
	}
	var p treePath[T]
	t.ensureRoot()
	t.descend(index, true, &p)
	t.insertAtPath(&p, item)
	return nil
}

// Remove removes and returns the element at index.
func (t *Vec[T]) Remove(index int) (T, error) {
	var zero T
	if err := t.checkWrite(); err != nil {
		return zero, err
	}
	if index < 0 || index >= t.length {
		return zero, outOfBounds(index, t.length)
	}
	var p treePath[T]
	t.descend(index, false, &p)
	item, _ := t.removeAtPath(&p)
	return item, nil
}

// PushBack appends item. It panics if a cursor is open.
func (t *Vec[T]) PushBack(item T) {
	t.mustWrite("PushBack")
	_ = t.Insert(t.length, item)
}

// PushFront prepends item. It panics if a cursor is open.
func (t *Vec[T]) PushFront(item T) {
	t.mustWrite("PushFront")
	_ = t.Insert(0, item)
}

// PopBack removes and returns the last element, if any.
func (t *Vec[T]) PopBack() (T, bool) {
	t.mustWrite("PopBack")
	if t.length == 0 {
		var zero T
		return zero, false
	}
	item, err := t.Remove(t.length - 1)
	return item, err == nil
}

// PopFront removes and returns the first element, if any.
func (t *Vec[T]) PopFront() (T, bool) {
	t.mustWrite("PopFront")
	if t.length == 0 {
		var zero T
		return zero, false
	}
	item, err := t.Remove(0)
	return item, err == nil
}

// checkRead guards read access: reading is excluded only by an open cursor.
func (t *Vec[T]) checkRead() error {
	if t == nil {
		return errors.Wrap(ErrInvalidConfig, "nil vector")
	}
	if t.cursor != nil {
		return ErrBorrowed
	}
	return nil
}

// checkWrite guards mutation and mutable access: excluded by an open cursor
// and by running iterations.
func (t *Vec[T]) checkWrite() error {
	if err := t.checkRead(); err != nil {
		return err
	}
	if t.readers > 0 {
		return errors.Wrap(ErrBorrowed, "vector is being iterated")
	}
	return nil
}

func (t *Vec[T]) mustRead(op string) {
	if err := t.checkRead(); err != nil {
		panic(errors.Wrapf(err, "bvec.%s", op))
	}
}

func (t *Vec[T]) mustWrite(op string) {
	if err := t.checkWrite(); err != nil {
		panic(errors.Wrapf(err, "bvec.%s", op))
	}
}

// ensureRoot gives an empty tree a root leaf to insert into.
func (t *Vec[T]) ensureRoot() {
	if t.root != nil {
		return
	}
	t.cfg = t.cfg.normalized()
	t.root = t.makeLeaf(nil)
	t.height = 1
}

// pathFrame is one step of a root-to-leaf path: an internal node and the
// child slot taken from it.
type pathFrame[T any] struct {
	node *innerNode[T]
	slot int
}

// treePath addresses an element position: the internal frames from the root
// downwards, the leaf, and the position inside the leaf.
type treePath[T any] struct {
	frames []pathFrame[T]
	leaf   *leafNode[T]
	pos    int
}

// descend fills p with the path to index. With inclusive set, seams route to
// the end of the left subtree (see innerNode.locate).
func (t *Vec[T]) descend(index int, inclusive bool, p *treePath[T]) {
	assert(t.root != nil, "descend called on empty tree")
	if p.frames == nil {
		p.frames = make([]pathFrame[T], 0, t.height)
	}
	p.frames = p.frames[:0]
	n := t.root
	for h := t.height; h > 1; h-- {
		inner := n.(*innerNode[T])
		slot, local := inner.locate(index, inclusive)
		p.frames = append(p.frames, pathFrame[T]{node: inner, slot: slot})
		n = inner.children[slot]
		index = local
	}
	p.leaf = n.(*leafNode[T])
	p.pos = index
}

// insertAtPath inserts item at the position addressed by p.
//
// Size counters along the path are adjusted first. If the leaf overflows, it
// is split and the new sibling is promoted into the parent frame, which may
// overflow in turn; a split of the root grows the tree by one level.
// Returns whether any node was split. If not, p still addresses the inserted
// element.
func (t *Vec[T]) insertAtPath(p *treePath[T], item T) (split bool) {
	p.leaf.items = slices.Insert(p.leaf.items, p.pos, item)
	t.length++
	for _, f := range p.frames {
		f.node.sizes[f.slot]++
		f.node.total++
	}
	if !t.leafOverflow(p.leaf) {
		return false
	}
	var promoted treeNode[T] = t.splitLeaf(p.leaf)
	for i := len(p.frames) - 1; i >= 0 && promoted != nil; i-- {
		f := p.frames[i]
		f.node.sizes[f.slot] = f.node.children[f.slot].size()
		t.insertChildAt(f.node, f.slot+1, promoted)
		promoted = nil
		if t.innerOverflow(f.node) {
			promoted = t.splitInner(f.node)
		}
	}
	if promoted != nil {
		t.root = t.makeInner(t.root, promoted)
		t.height++
		tracer().Debugf("bvec: root split, height now %d", t.height)
	}
	return true
}

// removeAtPath removes the element addressed by p.
//
// Occupancy is repaired bottom-up along the path: an underflowing child is
// rebalanced with its siblings, which may leave its parent underflowing. The
// root is normalized afterwards. Returns whether any node was restructured.
func (t *Vec[T]) removeAtPath(p *treePath[T]) (item T, restructured bool) {
	assert(p.pos >= 0 && p.pos < len(p.leaf.items), "removeAtPath position out of range")
	item = p.leaf.items[p.pos]
	p.leaf.items = slices.Delete(p.leaf.items, p.pos, p.pos+1)
	t.length--
	for _, f := range p.frames {
		f.node.sizes[f.slot]--
		f.node.total--
	}
	for i := len(p.frames) - 1; i >= 0; i-- {
		f := p.frames[i]
		if !t.underflow(f.node.children[f.slot]) {
			break
		}
		t.rebalanceChild(f.node, f.slot)
		restructured = true
	}
	if t.normalizeRoot() {
		restructured = true
	}
	return item, restructured
}

// normalizeRoot applies the root rules after a removal: an empty root leaf
// empties the tree, and an internal root with a single child is collapsed,
// repeatedly.
func (t *Vec[T]) normalizeRoot() (changed bool) {
	for t.root != nil {
		if leaf, ok := t.root.(*leafNode[T]); ok {
			if len(leaf.items) == 0 {
				t.root, t.height = nil, 0
				return true
			}
			return changed
		}
		inner := t.root.(*innerNode[T])
		if len(inner.children) != 1 {
			return changed
		}
		t.root = inner.children[0]
		t.height--
		changed = true
		tracer().Debugf("bvec: root collapsed, height now %d", t.height)
	}
	return changed
}
