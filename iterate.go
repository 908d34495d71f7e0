package bvec

import "iter"

// All returns an iterator over index/element pairs in order.
//
// The vector must not be modified while the iteration runs; mutating calls
// from within the loop body fail with ErrBorrowed. All panics if a cursor is
// open.
func (t *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		t.mustRead("All")
		defer t.beginRead()()
		i := 0
		t.forEachLeaf(t.root, t.height, true, func(leaf *leafNode[T]) bool {
			for _, item := range leaf.items {
				if !yield(i, item) {
					return false
				}
				i++
			}
			return true
		})
	}
}

// Values returns an iterator over the elements in order.
func (t *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range t.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs in reverse order.
func (t *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		t.mustRead("Backward")
		defer t.beginRead()()
		i := t.length - 1
		t.forEachLeaf(t.root, t.height, false, func(leaf *leafNode[T]) bool {
			for j := len(leaf.items) - 1; j >= 0; j-- {
				if !yield(i, leaf.items[j]) {
					return false
				}
				i--
			}
			return true
		})
	}
}

// Drain returns an iterator which removes elements from the front of the
// vector and yields them. Stopping early leaves the remaining elements in
// place.
func (t *Vec[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.mustWrite("Drain")
		defer t.beginRead()()
		var p treePath[T]
		for t.length > 0 {
			t.descend(0, false, &p)
			item, _ := t.removeAtPath(&p)
			if !yield(item) {
				return
			}
		}
	}
}

// Extend appends all elements of seq. seq must not access the vector.
func (t *Vec[T]) Extend(seq iter.Seq[T]) error {
	return t.WithCursor(t.Len(), func(c *CursorMut[T]) error {
		for item := range seq {
			if err := c.InsertBefore(item); err != nil {
				return err
			}
			c.MoveNext()
		}
		return nil
	})
}

// beginRead registers a running iteration and returns its release function.
func (t *Vec[T]) beginRead() func() {
	t.readers++
	return func() { t.readers-- }
}

func (t *Vec[T]) forEachLeaf(n treeNode[T], height int, forward bool, fn func(*leafNode[T]) bool) bool {
	if n == nil {
		return true
	}
	if height == 1 {
		return fn(n.(*leafNode[T]))
	}
	inner := n.(*innerNode[T])
	for i := range inner.children {
		if !forward {
			i = len(inner.children) - 1 - i
		}
		if !t.forEachLeaf(inner.children[i], height-1, forward, fn) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold equal elements in the same order. Tree
// shapes may differ.
func Equal[T comparable](a, b *Vec[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	next, stop := iter.Pull(b.Values())
	defer stop()
	for x := range a.Values() {
		y, ok := next()
		if !ok || x != y {
			return false
		}
	}
	return true
}
