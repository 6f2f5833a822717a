package sequence

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by panics raised on contract violations.
//
// Strict positional access and traversal bounds follow the same policy as
// indexing a Go slice: an index outside the valid range is a programmer error
// and panics. The panic value wraps one of these sentinels, so a recovering
// caller can classify it with errors.Is.
var (
	// ErrIndexOutOfRange is carried by panics from strict positional access
	// (Get, ForEach bounds, ListIteratorAt, iterator stepping past an end)
	// when an index is outside the valid range.
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrNilFunction is carried by panics from transformation operations
	// handed a nil function object or predicate.
	ErrNilFunction = errors.New("sequence: nil function object")
)

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}

// checkIndex panics unless index is in [0, size).
func checkIndex(index, size int) {
	if index < 0 || index >= size {
		panic(outOfRange(index, size))
	}
}

// checkNotNil panics when a required function object is absent. The caller
// compares the interface value against nil, which catches a literal nil
// argument, the only absent form the contract guards against.
func checkNotNil(name string, absent bool) {
	if absent {
		panic(fmt.Errorf("%w: %s", ErrNilFunction, name))
	}
}
