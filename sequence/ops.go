package sequence

import "github.com/hasbyte1/go-sequences/fn"

// Type-preserving transformation algebra. Every operation returns a new
// Sequence (or result value) and leaves the receiver untouched; any panic
// raised by a supplied predicate propagates to the caller unmodified.

// Select returns a new sequence with only the elements satisfying predicate,
// preserving relative order.
func (s *Sequence[T]) Select(predicate fn.Predicate[T]) *Sequence[T] {
	checkNotNil("predicate", predicate == nil)
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if predicate.Accepts(item) {
			out = append(out, item)
		}
	}
	return wrap(out)
}

// Reject returns a new sequence with the elements satisfying predicate
// removed. It is the complement of [Sequence.Select].
func (s *Sequence[T]) Reject(predicate fn.Predicate[T]) *Sequence[T] {
	checkNotNil("predicate", predicate == nil)
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if !predicate.Accepts(item) {
			out = append(out, item)
		}
	}
	return wrap(out)
}

// Partition splits the sequence in a single pass into the elements satisfying
// predicate and the rest. The two halves are disjoint, each preserves source
// order, and together they contain every source element exactly once.
func (s *Sequence[T]) Partition(predicate fn.Predicate[T]) *Partition[T] {
	checkNotNil("predicate", predicate == nil)
	selected := make([]T, 0, len(s.items))
	rejected := make([]T, 0)
	for _, item := range s.items {
		if predicate.Accepts(item) {
			selected = append(selected, item)
		} else {
			rejected = append(rejected, item)
		}
	}
	return &Partition[T]{selected: wrap(selected), rejected: wrap(rejected)}
}

// TakeWhile returns the longest prefix in which every element satisfies
// predicate. It short-circuits at the first failing element; the predicate is
// never evaluated on the remaining suffix.
func (s *Sequence[T]) TakeWhile(predicate fn.Predicate[T]) *Sequence[T] {
	checkNotNil("predicate", predicate == nil)
	return From(s.items[:s.prefixLen(predicate)])
}

// DropWhile returns the suffix starting at the first element that fails
// predicate, inclusive. Like [Sequence.TakeWhile] it stops evaluating the
// predicate at that element, so for any predicate p,
// s.TakeWhile(p) concatenated with s.DropWhile(p) reconstructs s.
func (s *Sequence[T]) DropWhile(predicate fn.Predicate[T]) *Sequence[T] {
	checkNotNil("predicate", predicate == nil)
	return From(s.items[s.prefixLen(predicate):])
}

// PartitionWhile returns a partition whose selected half equals
// TakeWhile(predicate) and whose rejected half is the remaining suffix,
// computed in one pass.
func (s *Sequence[T]) PartitionWhile(predicate fn.Predicate[T]) *Partition[T] {
	checkNotNil("predicate", predicate == nil)
	n := s.prefixLen(predicate)
	return &Partition[T]{selected: From(s.items[:n]), rejected: From(s.items[n:])}
}

// prefixLen returns the length of the longest prefix satisfying predicate,
// evaluating the predicate at most once per element and not at all past the
// first failure.
func (s *Sequence[T]) prefixLen(predicate fn.Predicate[T]) int {
	for i, item := range s.items {
		if !predicate.Accepts(item) {
			return i
		}
	}
	return len(s.items)
}

// Distinct returns a new sequence containing each distinct element (by value
// equality) exactly once, in first-occurrence order. The seen-set is keyed on
// the elements themselves, so the dynamic element type must be usable as a
// map key; for element types that are not, use [DistinctBy] with an explicit
// key extractor.
func (s *Sequence[T]) Distinct() *Sequence[T] {
	seen := make(map[any]struct{}, len(s.items))
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		k := any(item)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return wrap(out)
}

// ZipWithIndex pairs each element with its absolute position.
// The result has the same size as the input. It is a package-level function
// rather than a method because a method returning Sequence[Pair[T, int]]
// creates an instantiation cycle the compiler rejects.
func ZipWithIndex[T any](s *Sequence[T]) *Sequence[Pair[T, int]] {
	out := make([]Pair[T, int], len(s.items))
	for i, item := range s.items {
		out[i] = Pair[T, int]{First: item, Second: i}
	}
	return wrap(out)
}

// AsReversed returns a lazy view producing the elements from last to first
// without materializing a reversed copy. The view is restartable: every
// traversal starts again from the true last element.
func (s *Sequence[T]) AsReversed() *Reversed[T] {
	return &Reversed[T]{source: s}
}

// ToStack returns a new, independently owned stack populated so that popping
// repeatedly yields the elements in reverse positional order: the original
// last element pops first.
func (s *Sequence[T]) ToStack() *Stack[T] {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return &Stack[T]{items: items}
}
