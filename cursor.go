package bvec

import "github.com/cockroachdb/errors"

// CursorMut is a mutable position in a vector.
//
// A cursor designates an offset in 0…Len(). Offset Len() is the
// end-of-sequence position, where Current reports no element; it is the same
// position as "just past the last element".
//
// The cursor caches the path from the root to the leaf of its position,
// together with the slot taken at every internal node (an iterator stack).
// Stepping within a leaf is O(1); crossing into a neighbouring leaf ascends
// the cached path only as far as needed and descends again. Structural changes
// (splits, merges, borrows, root changes) invalidate the cached path, which is
// re-derived from the root before the next positional operation.
//
// A cursor holds the exclusive borrow of its vector from CursorAt until
// Close. Cursors are handled by pointer and must not be copied.
type CursorMut[T any] struct {
	noCopy noCopy

	vec   *Vec[T]
	path  treePath[T]
	index int
	valid bool // path reflects the current tree shape
}

// CursorAt opens a cursor at index, which may be Len() for the
// end-of-sequence position. The vector stays borrowed until the cursor is
// closed.
func (t *Vec[T]) CursorAt(index int) (*CursorMut[T], error) {
	if err := t.checkWrite(); err != nil {
		return nil, err
	}
	if index < 0 || index > t.length {
		return nil, outOfBounds(index, t.length)
	}
	c := &CursorMut[T]{vec: t, index: index}
	t.cursor = c
	c.resync()
	return c, nil
}

// WithCursor opens a cursor at index, calls fn with it and closes the cursor
// when fn returns or panics.
func (t *Vec[T]) WithCursor(index int, fn func(c *CursorMut[T]) error) error {
	c, err := t.CursorAt(index)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

// Close releases the vector's borrow. Any later operation on c fails with
// ErrCursorClosed. Close is idempotent.
func (c *CursorMut[T]) Close() {
	if c == nil || c.vec == nil {
		return
	}
	if c.vec.cursor == c {
		c.vec.cursor = nil
	}
	c.vec = nil
	c.path = treePath[T]{}
	c.valid = false
}

// Index returns the cursor's offset.
func (c *CursorMut[T]) Index() int {
	c.mustLive("Index")
	return c.index
}

// Len returns the length of the borrowed vector.
func (c *CursorMut[T]) Len() int {
	c.mustLive("Len")
	return c.vec.length
}

// AtEnd reports whether the cursor is at the end-of-sequence position.
func (c *CursorMut[T]) AtEnd() bool {
	c.mustLive("AtEnd")
	return c.index == c.vec.length
}

// Current returns a pointer to the element at the cursor, or false at the
// end-of-sequence position. The pointer is valid until the next mutation
// through the cursor.
func (c *CursorMut[T]) Current() (*T, bool) {
	c.mustLive("Current")
	if c.index >= c.vec.length {
		return nil, false
	}
	c.ensurePath()
	return &c.path.leaf.items[c.path.pos], true
}

// Value returns a copy of the element at the cursor, or false at the
// end-of-sequence position.
func (c *CursorMut[T]) Value() (T, bool) {
	p, ok := c.Current()
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Set overwrites the element at the cursor.
func (c *CursorMut[T]) Set(item T) error {
	if err := c.live(); err != nil {
		return err
	}
	p, ok := c.Current()
	if !ok {
		return outOfBounds(c.index, c.vec.length)
	}
	*p = item
	return nil
}

// MoveNext advances the cursor by one. From the last element it lands on the
// end-of-sequence position. At end-of-sequence it does not move and returns
// false.
func (c *CursorMut[T]) MoveNext() bool {
	c.mustLive("MoveNext")
	t := c.vec
	if c.index >= t.length {
		return false
	}
	c.ensurePath()
	c.index++
	c.path.pos++
	if c.path.pos < len(c.path.leaf.items) || c.index == t.length {
		return true
	}
	c.stepLeaf(true)
	return true
}

// MovePrev moves the cursor back by one. At offset 0 it does not move and
// returns ErrIndexOutOfBounds.
func (c *CursorMut[T]) MovePrev() error {
	if err := c.live(); err != nil {
		return err
	}
	if c.index == 0 {
		return outOfBounds(-1, c.vec.length)
	}
	c.ensurePath()
	c.index--
	if c.path.pos > 0 {
		c.path.pos--
		return nil
	}
	c.stepLeaf(false)
	return nil
}

// Move moves the cursor by delta positions. The target must lie within
// 0…Len(); otherwise the cursor does not move.
func (c *CursorMut[T]) Move(delta int) error {
	if err := c.live(); err != nil {
		return err
	}
	target := c.index + delta
	if target < 0 || target > c.vec.length {
		return outOfBounds(target, c.vec.length)
	}
	if delta == 0 {
		return nil
	}
	c.ensurePath()
	pos := c.path.pos + delta
	n := len(c.path.leaf.items)
	if (pos >= 0 && pos < n) || (target == c.vec.length && pos == n) {
		c.index, c.path.pos = target, pos
		return nil
	}
	c.index = target
	c.valid = false
	return nil
}

// Seek moves the cursor to the absolute offset index within 0…Len().
func (c *CursorMut[T]) Seek(index int) error {
	if err := c.live(); err != nil {
		return err
	}
	if index < 0 || index > c.vec.length {
		return outOfBounds(index, c.vec.length)
	}
	c.index = index
	c.valid = false
	return nil
}

// InsertBefore inserts item at the cursor's offset, in front of the current
// element. The offset does not change, thus afterwards the cursor designates
// the inserted element.
func (c *CursorMut[T]) InsertBefore(item T) error {
	if err := c.live(); err != nil {
		return err
	}
	t := c.vec
	if t.root == nil {
		t.ensureRoot()
		c.valid = false
	}
	c.ensurePath()
	if t.insertAtPath(&c.path, item) {
		c.valid = false
	}
	return nil
}

// RemoveCurrent removes and returns the element at the cursor. The offset
// does not change, thus afterwards the cursor designates the element
// following the removed one, or end-of-sequence.
func (c *CursorMut[T]) RemoveCurrent() (T, error) {
	var zero T
	if err := c.live(); err != nil {
		return zero, err
	}
	t := c.vec
	if c.index >= t.length {
		return zero, outOfBounds(c.index, t.length)
	}
	c.ensurePath()
	item, restructured := t.removeAtPath(&c.path)
	if restructured || (c.path.pos >= len(c.path.leaf.items) && c.index < t.length) {
		c.valid = false
	}
	return item, nil
}

func (c *CursorMut[T]) live() error {
	if c == nil || c.vec == nil {
		return ErrCursorClosed
	}
	assert(c.vec.cursor == c, "open cursor does not hold its vector's borrow")
	return nil
}

func (c *CursorMut[T]) mustLive(op string) {
	if err := c.live(); err != nil {
		panic(errors.Wrapf(err, "bvec.CursorMut.%s", op))
	}
}

func (c *CursorMut[T]) ensurePath() {
	if !c.valid {
		c.resync()
	}
}

// resync re-derives the cached path for the cursor's offset from the root.
func (c *CursorMut[T]) resync() {
	t := c.vec
	if t.root == nil {
		c.path.frames = c.path.frames[:0]
		c.path.leaf, c.path.pos = nil, 0
	} else {
		t.descend(c.index, c.index == t.length, &c.path)
	}
	c.valid = true
}

// stepLeaf moves the cached path to the first element of the next leaf
// (forward) or the last element of the previous leaf. It ascends until a
// frame has a sibling slot in the step direction, then descends along the
// near edge of that sibling.
func (c *CursorMut[T]) stepLeaf(forward bool) {
	frames := c.path.frames
	i := len(frames) - 1
	for ; i >= 0; i-- {
		f := &frames[i]
		if forward && f.slot+1 < len(f.node.children) {
			f.slot++
			break
		}
		if !forward && f.slot > 0 {
			f.slot--
			break
		}
	}
	assert(i >= 0, "cursor stepped beyond the tree")
	n := frames[i].node.children[frames[i].slot]
	frames = frames[:i+1]
	for !n.isLeaf() {
		inner := n.(*innerNode[T])
		slot := 0
		if !forward {
			slot = len(inner.children) - 1
		}
		frames = append(frames, pathFrame[T]{node: inner, slot: slot})
		n = inner.children[slot]
	}
	c.path.frames = frames
	c.path.leaf = n.(*leafNode[T])
	if forward {
		c.path.pos = 0
	} else {
		c.path.pos = len(c.path.leaf.items) - 1
	}
}

// noCopy may be embedded into structs which must not be copied after the
// first use. `go vet` reports copies through its copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
