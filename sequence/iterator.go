package sequence

import (
	"fmt"
	"iter"
)

// Iterator bridging. All, Values and Backward expose a Sequence to
// range-over-func loops; ListIterator is the bidirectional cursor escape
// hatch for callers that need explicit stepping. None of the transformation
// algebra uses cursors internally.

// All returns an iterator over index/element pairs in positional order,
// like [slices.All].
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range s.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in positional order,
// like [slices.Values].
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from last to first,
// like [slices.Backward].
func (s *Sequence[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(i, s.items[i]) {
				return
			}
		}
	}
}

// ListIterator returns a bidirectional cursor positioned before index 0.
func (s *Sequence[T]) ListIterator() *ListIterator[T] {
	return &ListIterator[T]{items: s.items}
}

// ListIteratorAt returns a bidirectional cursor positioned so that the first
// call to Next returns the element at index. index may equal Size(), which
// positions the cursor after the last element; any other value outside
// [0, Size()] panics with [ErrIndexOutOfRange].
func (s *Sequence[T]) ListIteratorAt(index int) *ListIterator[T] {
	if index < 0 || index > len(s.items) {
		panic(outOfRange(index, len(s.items)))
	}
	return &ListIterator[T]{items: s.items, cursor: index}
}

// ListIterator is a bidirectional cursor over a sequence. The cursor sits
// between elements: Next returns the element after it and advances, Previous
// returns the element before it and retreats. It reads a fixed snapshot, so
// it never observes mutation.
type ListIterator[T any] struct {
	items  []T
	cursor int
}

// HasNext reports whether a call to Next would succeed.
func (it *ListIterator[T]) HasNext() bool { return it.cursor < len(it.items) }

// Next returns the element after the cursor and advances past it.
// Panics with [ErrIndexOutOfRange] when the cursor is at the end.
func (it *ListIterator[T]) Next() T {
	if it.cursor >= len(it.items) {
		panic(fmt.Errorf("%w: Next past end at index %d", ErrIndexOutOfRange, it.cursor))
	}
	item := it.items[it.cursor]
	it.cursor++
	return item
}

// HasPrevious reports whether a call to Previous would succeed.
func (it *ListIterator[T]) HasPrevious() bool { return it.cursor > 0 }

// Previous returns the element before the cursor and retreats before it.
// Panics with [ErrIndexOutOfRange] when the cursor is at the beginning.
func (it *ListIterator[T]) Previous() T {
	if it.cursor <= 0 {
		panic(fmt.Errorf("%w: Previous past beginning", ErrIndexOutOfRange))
	}
	it.cursor--
	return it.items[it.cursor]
}

// NextIndex returns the index of the element a call to Next would return;
// equal to Size() when the cursor is at the end.
func (it *ListIterator[T]) NextIndex() int { return it.cursor }

// PreviousIndex returns the index of the element a call to Previous would
// return; -1 when the cursor is at the beginning.
func (it *ListIterator[T]) PreviousIndex() int { return it.cursor - 1 }
