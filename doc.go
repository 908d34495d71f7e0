/*
Package bvec provides a positional sequence container backed by a B+ tree.

A Vec behaves like a slice which supports insertion and removal at arbitrary
positions in logarithmic time. Elements live in leaves; internal nodes keep
the element count of every child subtree, which routes positional lookups
without visiting elements.

	Operation     |   Vec           |  Slice
	--------------+-----------------+--------
	Index         |   O(log n)      |   O(1)
	Iterate       |   O(n)          |   O(n)
	Insert        |   O(log n)      |   O(n)
	Remove        |   O(log n)      |   O(n)
	Append        |   O(log n)      |   O(1) amortized

The package is intentionally not a map/set container: it is indexed by offset,
not by key.

Tree shape is set by a Config with two parameters: the branch fanout B
(maximum children of an internal node) and the leaf capacity C (maximum
elements of a leaf). Every non-root internal node holds between ceil(B/2) and
B children, every non-root leaf between ceil(C/2) and C elements, and all
leaves are at equal depth.

# Cursors

A CursorMut walks a vector and edits it in place, caching the path from the
root to the current leaf. A cursor holds an exclusive borrow of its vector:
while it is open, other accessors of the vector fail with ErrBorrowed (or
panic, if they do not return an error). Close releases the borrow.

	v := bvec.New[int]()
	...
	err := v.WithCursor(0, func(c *bvec.CursorMut[int]) error {
		for p, ok := c.Current(); ok; p, ok = c.Current() {
			*p *= 2
			c.MoveNext()
		}
		return nil
	})

A cursor is typed by its vector's element type and cannot be used as a cursor
of any other element type, not even a wider interface type. Otherwise a
*CursorMut[*bytes.Buffer] could insert arbitrary io.Readers into a
Vec[*bytes.Buffer].

Vectors are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bvec

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bvec'
func tracer() tracing.Trace {
	return tracing.Select("bvec")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(errors.AssertionFailedf("bvec: %s", msg))
	}
}
