package vec

import "errors"

var (
	// ErrOutOfBounds indicates an index outside the live region [0, Size()).
	ErrOutOfBounds = errors.New("vec: index out of range")

	// ErrAlloc indicates that a backing store could not be obtained: the byte
	// size overflows, the budget refused it, or the runtime rejected the length.
	ErrAlloc = errors.New("vec: allocation failed")

	// ErrNegativeSize indicates a negative size passed to Make or Resize.
	ErrNegativeSize = errors.New("vec: negative size")
)
