package bvec

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfig signals an invalid vector configuration.
	ErrInvalidConfig = errors.New("bvec: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("bvec: index out of bounds")
	// ErrBorrowed signals access to a vector while a cursor holds its exclusive borrow.
	ErrBorrowed = errors.New("bvec: vector is borrowed by an open cursor")
	// ErrCursorClosed signals use of a cursor after Close.
	ErrCursorClosed = errors.New("bvec: cursor is closed")
	// ErrBuildCompleted signals staging into a Builder after its vector was built.
	ErrBuildCompleted = errors.New("bvec: build already completed")
	// ErrInvariantViolated is reported by Check for a structurally broken tree.
	ErrInvariantViolated = errors.New("bvec: tree invariant violated")
)

func outOfBounds(index, length int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "index %d, length %d", index, length)
}
