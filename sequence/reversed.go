package sequence

import (
	"fmt"
	"iter"
	"strings"
)

// Reversed is the lazy view returned by [Sequence.AsReversed]. It re-expresses
// a fixed source sequence from last to first without materializing a reversed
// copy: position i of the view is position Size()-1-i of the source.
//
// The view is restartable: it may be traversed any number of times, and each
// traversal starts again from the true last source element. Because the
// source is immutable, the view is a stable snapshot, safe for concurrent
// read-only use.
type Reversed[T any] struct {
	source *Sequence[T]
}

// Size returns the number of elements in the view (equal to the source size).
func (r *Reversed[T]) Size() int { return r.source.Size() }

// IsEmpty reports whether the view contains no elements.
func (r *Reversed[T]) IsEmpty() bool { return r.source.IsEmpty() }

// Get returns the element at index of the view; panics with
// [ErrIndexOutOfRange] when index is outside [0, Size()).
func (r *Reversed[T]) Get(index int) T {
	checkIndex(index, r.source.Size())
	return r.source.items[r.source.Size()-1-index]
}

// GetFirst returns the source's last element, or false when empty.
func (r *Reversed[T]) GetFirst() (T, bool) { return r.source.GetLast() }

// GetLast returns the source's first element, or false when empty.
func (r *Reversed[T]) GetLast() (T, bool) { return r.source.GetFirst() }

// Each calls action(element, index) for every element of the view in view
// order; index is the position within the view, not the source.
func (r *Reversed[T]) Each(action func(T, int)) {
	checkNotNil("action", action == nil)
	n := len(r.source.items)
	for i := 0; i < n; i++ {
		action(r.source.items[n-1-i], i)
	}
}

// Values returns an iterator over the view's elements, last source element
// first. The iterator may be ranged over repeatedly; each range restarts.
func (r *Reversed[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(r.source.items) - 1; i >= 0; i-- {
			if !yield(r.source.items[i]) {
				return
			}
		}
	}
}

// All returns an iterator over view-index/element pairs.
func (r *Reversed[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := len(r.source.items)
		for i := 0; i < n; i++ {
			if !yield(i, r.source.items[n-1-i]) {
				return
			}
		}
	}
}

// ToSequence materializes the view into an independently owned Sequence.
func (r *Reversed[T]) ToSequence() *Sequence[T] {
	n := len(r.source.items)
	out := make([]T, n)
	for i, item := range r.source.items {
		out[n-1-i] = item
	}
	return wrap(out)
}

// String implements [fmt.Stringer]; elements render in view order.
func (r *Reversed[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range r.Values() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
