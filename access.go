package bvec

import "github.com/cockroachdb/errors"

// Get returns the element at index.
func (t *Vec[T]) Get(index int) (T, error) {
	var zero T
	if err := t.checkRead(); err != nil {
		return zero, err
	}
	if index < 0 || index >= t.length {
		return zero, outOfBounds(index, t.length)
	}
	leaf, pos := t.find(index)
	return leaf.items[pos], nil
}

// GetMut returns a pointer to the element at index. The pointer is valid
// until the next structural change of the vector (insert, remove, clear).
func (t *Vec[T]) GetMut(index int) (*T, error) {
	if err := t.checkWrite(); err != nil {
		return nil, err
	}
	if index < 0 || index >= t.length {
		return nil, outOfBounds(index, t.length)
	}
	leaf, pos := t.find(index)
	return &leaf.items[pos], nil
}

// Set overwrites the element at index.
func (t *Vec[T]) Set(index int, item T) error {
	p, err := t.GetMut(index)
	if err != nil {
		return err
	}
	*p = item
	return nil
}

// At returns the element at index. Like slice indexing, it panics if index is
// out of range, and it panics if a cursor is open.
func (t *Vec[T]) At(index int) T {
	item, err := t.Get(index)
	if err != nil {
		panic(errors.Wrap(err, "bvec.At"))
	}
	return item
}

// First returns the first element, if any. It panics if a cursor is open.
func (t *Vec[T]) First() (T, bool) {
	t.mustRead("First")
	item, err := t.Get(0)
	return item, err == nil
}

// Last returns the last element, if any. It panics if a cursor is open.
func (t *Vec[T]) Last() (T, bool) {
	t.mustRead("Last")
	item, err := t.Get(t.Len() - 1)
	return item, err == nil
}

// find descends to the leaf owning index without recording a path.
func (t *Vec[T]) find(index int) (*leafNode[T], int) {
	n := t.root
	for h := t.height; h > 1; h-- {
		inner := n.(*innerNode[T])
		slot, local := inner.locate(index, false)
		n = inner.children[slot]
		index = local
	}
	return n.(*leafNode[T]), index
}
