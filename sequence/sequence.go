package sequence

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// Sequence is a generic, immutable, ordered collection of elements of a
// single type, with O(1) access by position.
//
// Every method that transforms the sequence returns a *new* Sequence, leaving
// the original unchanged. This design is goroutine-safe for reads (multiple
// goroutines may read the same sequence concurrently) and avoids accidental
// aliasing bugs in pipelines.
//
// # Creating a sequence
//
//	s := sequence.New("ted", "mary", "bob", "sally")
//	s := sequence.From([]int{1, 2, 3})
//	s := sequence.Empty[int]()
//
// # Method chaining
//
//	result := sequence.New(1, 2, 3, 4, 5, 6).
//	    Select(fn.PredicateFunc[int](func(n int) bool { return n%2 == 0 })).
//	    TakeWhile(fn.PredicateFunc[int](func(n int) bool { return n < 6 }))
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are exposed as package-level
// functions in this package:
//
//	lengths := sequence.Collect(names, strfn.Length())
//	byInitial := sequence.GroupBy(names, initialOf)
//
// # Access policies
//
// Indexed access is strict: [Sequence.Get] panics with [ErrIndexOutOfRange]
// when the index is outside [0, Size()). Bulk boundary access is forgiving:
// [Sequence.GetFirst] and [Sequence.GetLast] report absence with a false
// second return instead of failing, so callers probing an edge of a possibly
// empty sequence need no size check first.
type Sequence[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence from a variadic list of elements (copied).
func New[T any](items ...T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// From creates a Sequence from a slice (the slice is copied).
func From[T any](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{items: []T{}}
}

// wrap takes ownership of items without copying. For internal use by
// operations that just built the slice and hold the only reference to it.
func wrap[T any](items []T) *Sequence[T] {
	return &Sequence[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the element at index.
// Panics with [ErrIndexOutOfRange] when index is outside [0, Size()).
func (s *Sequence[T]) Get(index int) T {
	checkIndex(index, len(s.items))
	return s.items[index]
}

// Size returns the number of elements in the sequence.
func (s *Sequence[T]) Size() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no elements.
func (s *Sequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsNotEmpty reports whether the sequence has at least one element.
func (s *Sequence[T]) IsNotEmpty() bool { return len(s.items) > 0 }

// GetFirst returns the element at index 0.
// Returns the zero value and false when the sequence is empty.
func (s *Sequence[T]) GetFirst() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[0], true
}

// GetLast returns the element at index Size()-1.
// Returns the zero value and false when the sequence is empty.
func (s *Sequence[T]) GetLast() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// IndexOf returns the index of the first element equal (by value equality)
// to value, or -1 when no element matches.
func (s *Sequence[T]) IndexOf(value T) int {
	for i, item := range s.items {
		if equal(item, value) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal (by value equality)
// to value, or -1 when no element matches.
func (s *Sequence[T]) LastIndexOf(value T) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if equal(s.items[i], value) {
			return i
		}
	}
	return -1
}

// ToSlice returns a copy of the elements as a plain Go slice.
func (s *Sequence[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// String returns a human-readable rendering of the elements.
// It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	return fmt.Sprintf("%v", s.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Each calls action(element, index) for every element in positional order.
func (s *Sequence[T]) Each(action func(T, int)) {
	checkNotNil("action", action == nil)
	for i, item := range s.items {
		action(item, i)
	}
}

// ForEach applies action to every element in the inclusive index range
// [startIndex, endIndex]. When startIndex <= endIndex iteration ascends;
// when startIndex > endIndex it descends, so
//
//	people.ForEach(0, 1, log)   // visits index 0 then 1
//	people.ForEach(1, 0, log)   // visits index 1 then 0
//
// Both bounds must be valid positions; otherwise ForEach panics with
// [ErrIndexOutOfRange]. In particular there is no valid inclusive range over
// an empty sequence.
func (s *Sequence[T]) ForEach(startIndex, endIndex int, action func(T)) {
	checkNotNil("action", action == nil)
	checkIndex(startIndex, len(s.items))
	checkIndex(endIndex, len(s.items))
	if startIndex <= endIndex {
		for i := startIndex; i <= endIndex; i++ {
			action(s.items[i])
		}
		return
	}
	for i := startIndex; i >= endIndex; i-- {
		action(s.items[i])
	}
}

// ForEachWithIndex behaves like [Sequence.ForEach] over the inclusive range
// [fromIndex, toIndex], additionally supplying each element's absolute
// position to action.
func (s *Sequence[T]) ForEachWithIndex(fromIndex, toIndex int, action func(T, int)) {
	checkNotNil("action", action == nil)
	checkIndex(fromIndex, len(s.items))
	checkIndex(toIndex, len(s.items))
	if fromIndex <= toIndex {
		for i := fromIndex; i <= toIndex; i++ {
			action(s.items[i], i)
		}
		return
	}
	for i := fromIndex; i >= toIndex; i-- {
		action(s.items[i], i)
	}
}

// ReverseForEach applies action to every element from last to first.
// It allocates nothing beyond iteration state; no reversed copy is built.
func (s *Sequence[T]) ReverseForEach(action func(T)) {
	checkNotNil("action", action == nil)
	for i := len(s.items) - 1; i >= 0; i-- {
		action(s.items[i])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality
// ─────────────────────────────────────────────────────────────────────────────

// Equal follows the ordered-sequence contract: two sequences are equal iff
// they have the same size and pairwise-equal elements in the same order.
func (s *Sequence[T]) Equal(other *Sequence[T]) bool {
	if other == nil || len(s.items) != len(other.items) {
		return false
	}
	for i := range s.items {
		if !equal(s.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

// Hash returns an order-sensitive hash over the elements' rendered values.
// Sequences that compare [Sequence.Equal] hash identically. The hash is a
// convenience for memoization and diagnostics, not an identity.
func (s *Sequence[T]) Hash() uint64 {
	h := fnv.New64a()
	for _, item := range s.items {
		fmt.Fprintf(h, "%v\x00", item)
	}
	return h.Sum64()
}

// equal is the value-equality relation used by index scans, Distinct and
// Equal. reflect.DeepEqual is total over any element type, unlike ==, which
// panics at runtime for non-comparable dynamic types.
func equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
