package bvec

import (
	"iter"
	"slices"
)

// FromSlice creates a vector holding a copy of items in O(n).
//
// Leaves are filled evenly instead of one element at a time, and every
// internal level is packed the same way, so the result satisfies all
// occupancy bounds without a single split.
func FromSlice[T any](cfg Config, items []T) (*Vec[T], error) {
	t, err := NewWithConfig[T](cfg)
	if err != nil {
		return nil, err
	}
	t.bulkLoad(items)
	return t, nil
}

// Collect creates a vector from the elements of seq.
func Collect[T any](cfg Config, seq iter.Seq[T]) (*Vec[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return FromSlice(cfg, slices.Collect(seq))
}

// Clone returns a copy of the vector with the same tree shape. Elements are
// copied by assignment. It panics if a cursor is open.
func (t *Vec[T]) Clone() *Vec[T] {
	t.mustRead("Clone")
	c := &Vec[T]{cfg: t.cfg.normalized(), height: t.height, length: t.length}
	if t.root != nil {
		c.root = c.cloneNode(t.root, t.height)
	}
	return c
}

func (t *Vec[T]) cloneNode(n treeNode[T], height int) treeNode[T] {
	if height == 1 {
		return t.makeLeaf(n.(*leafNode[T]).items)
	}
	inner := n.(*innerNode[T])
	children := make([]treeNode[T], len(inner.children))
	for i, child := range inner.children {
		children[i] = t.cloneNode(child, height-1)
	}
	return t.makeInner(children...)
}

// bulkLoad replaces the (empty) tree by a packed tree holding items.
func (t *Vec[T]) bulkLoad(items []T) {
	if len(items) == 0 {
		return
	}
	level := make([]treeNode[T], 0, len(items)/t.cfg.LeafCap+1)
	for lo, hi := range evenRuns(len(items), t.cfg.LeafCap) {
		level = append(level, t.makeLeaf(items[lo:hi]))
	}
	height := 1
	for len(level) > 1 {
		next := make([]treeNode[T], 0, len(level)/t.cfg.Fanout+1)
		for lo, hi := range evenRuns(len(level), t.cfg.Fanout) {
			next = append(next, t.makeInner(level[lo:hi]...))
		}
		level = next
		height++
	}
	t.root, t.height, t.length = level[0], height, len(items)
	tracer().Debugf("bvec: bulk-loaded %d elements, height %d", len(items), height)
}

// evenRuns partitions n entries into the fewest runs of at most limit
// entries, with run lengths differing by at most one. Yields [lo, hi) bounds.
//
// With two or more runs every run holds at least ceil(limit/2) entries.
func evenRuns(n, limit int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if n == 0 {
			return
		}
		k := (n + limit - 1) / limit
		base, extra := n/k, n%k
		lo := 0
		for i := range k {
			hi := lo + base
			if i < extra {
				hi++
			}
			if !yield(lo, hi) {
				return
			}
			lo = hi
		}
	}
}

// Builder stages elements at both ends and builds a vector from them in one
// bulk-load.
//
// The zero Builder is valid and builds with DefaultConfig.
type Builder[T any] struct {
	cfg Config
	// front keeps prepended elements in reverse logical order.
	front []T
	back  []T
	done  bool
	vec   *Vec[T]
}

// NewBuilder creates an empty builder for vectors of the given configuration.
func NewBuilder[T any](cfg Config) (*Builder[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Builder[T]{cfg: cfg.normalized()}, nil
}

// Append stages items at the back.
func (b *Builder[T]) Append(items ...T) error {
	if b == nil {
		return ErrInvalidConfig
	}
	if b.done {
		return ErrBuildCompleted
	}
	b.back = append(b.back, items...)
	return nil
}

// Prepend stages items at the front, keeping their order.
func (b *Builder[T]) Prepend(items ...T) error {
	if b == nil {
		return ErrInvalidConfig
	}
	if b.done {
		return ErrBuildCompleted
	}
	for i := len(items) - 1; i >= 0; i-- {
		b.front = append(b.front, items[i])
	}
	return nil
}

// Len returns the number of staged elements.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

// Vec returns the vector built from all staged elements.
//
// Staging more elements after Vec has been called is illegal, but Vec may be
// called multiple times; it returns the same vector.
func (b *Builder[T]) Vec() (*Vec[T], error) {
	if b == nil {
		return nil, ErrInvalidConfig
	}
	if b.vec == nil {
		items := make([]T, 0, b.Len())
		for i := len(b.front) - 1; i >= 0; i-- {
			items = append(items, b.front[i])
		}
		items = append(items, b.back...)
		v, err := FromSlice(b.cfg, items)
		if err != nil {
			return nil, err
		}
		b.vec = v
	}
	b.done = true
	return b.vec, nil
}

// Reset drops the staged elements and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front, b.back = nil, nil
	b.done = false
	b.vec = nil
}
