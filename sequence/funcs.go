package sequence

import "github.com/hasbyte1/go-sequences/fn"

// This file contains package-level generic functions for operations whose
// signature needs a type parameter a method cannot carry: a new element type
// (Collect and friends), a key type (GroupBy), a second source (Zip), or a
// per-call parameter type (SelectWith). Go generics do not allow methods to
// introduce their own type parameters, so these operations are stand-alone
// functions, composable with the method-based algebra:
//
//	upper := sequence.Collect(names.Select(nonEmpty), strfn.ToUpperCase())

// Collect applies function to every element and returns a new sequence of the
// results, one output per input, order-preserved.
func Collect[T, R any](s *Sequence[T], function fn.Function[T, R]) *Sequence[R] {
	checkNotNil("function", function == nil)
	out := make([]R, len(s.items))
	for i, item := range s.items {
		out[i] = function.ValueOf(item)
	}
	return wrap(out)
}

// CollectWith is the two-argument analog of [Collect]: one shared binary
// function object plus a per-call parameter, avoiding a capturing closure.
func CollectWith[T, P, R any](s *Sequence[T], function fn.Function2[T, P, R], parameter P) *Sequence[R] {
	checkNotNil("function", function == nil)
	out := make([]R, len(s.items))
	for i, item := range s.items {
		out[i] = function.Value(item, parameter)
	}
	return wrap(out)
}

// CollectIf fuses filter and map in one pass: function is applied only to the
// elements satisfying predicate, and only their results appear in the output.
func CollectIf[T, R any](s *Sequence[T], predicate fn.Predicate[T], function fn.Function[T, R]) *Sequence[R] {
	checkNotNil("predicate", predicate == nil)
	checkNotNil("function", function == nil)
	out := make([]R, 0, len(s.items))
	for _, item := range s.items {
		if predicate.Accepts(item) {
			out = append(out, function.ValueOf(item))
		}
	}
	return wrap(out)
}

// FlatCollect maps each element to a sub-sequence and concatenates all
// sub-sequences, in order, into one flat result. Flattening is one level
// deep only.
func FlatCollect[T, R any](s *Sequence[T], function fn.Function[T, []R]) *Sequence[R] {
	checkNotNil("function", function == nil)
	out := make([]R, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, function.ValueOf(item)...)
	}
	return wrap(out)
}

// SelectWith keeps the elements for which predicate.Accepts(element,
// parameter) holds, preserving relative order.
func SelectWith[T, P any](s *Sequence[T], predicate fn.Predicate2[T, P], parameter P) *Sequence[T] {
	checkNotNil("predicate", predicate == nil)
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if predicate.Accepts(item, parameter) {
			out = append(out, item)
		}
	}
	return wrap(out)
}

// RejectWith drops the elements for which predicate.Accepts(element,
// parameter) holds. It is the complement of [SelectWith].
func RejectWith[T, P any](s *Sequence[T], predicate fn.Predicate2[T, P], parameter P) *Sequence[T] {
	checkNotNil("predicate", predicate == nil)
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if !predicate.Accepts(item, parameter) {
			out = append(out, item)
		}
	}
	return wrap(out)
}

// SelectInstancesOf keeps the elements whose dynamic type is assignable to S,
// narrowing the result's element type.
//
//	mixed := sequence.New[any](1, "two", 3, "four")
//	ints := sequence.SelectInstancesOf[int](mixed) // [1 3]
func SelectInstancesOf[S, T any](s *Sequence[T]) *Sequence[S] {
	out := make([]S, 0, len(s.items))
	for _, item := range s.items {
		if v, ok := any(item).(S); ok {
			out = append(out, v)
		}
	}
	return wrap(out)
}

// GroupBy assigns each element exactly one key via function and returns a
// multimap from key to the elements that produced it. Keys are ordered by
// first insertion; values under a key preserve source order.
func GroupBy[T any, K comparable](s *Sequence[T], function fn.Function[T, K]) *Multimap[K, T] {
	checkNotNil("function", function == nil)
	m := newMultimap[K, T]()
	for _, item := range s.items {
		m.add(function.ValueOf(item), item)
	}
	return m
}

// GroupByEach is like [GroupBy] but function yields any number of keys per
// element, and the element is filed under every one of them.
func GroupByEach[T any, K comparable](s *Sequence[T], function fn.Function[T, []K]) *Multimap[K, T] {
	checkNotNil("function", function == nil)
	m := newMultimap[K, T]()
	for _, item := range s.items {
		for _, key := range function.ValueOf(item) {
			m.add(key, item)
		}
	}
	return m
}

// Zip pairs each element of s with the element of other at the same position.
// The result length is min(s.Size(), other.Size()); the longer input's tail
// is silently dropped.
func Zip[T, S any](s *Sequence[T], other *Sequence[S]) *Sequence[Pair[T, S]] {
	n := len(s.items)
	if len(other.items) < n {
		n = len(other.items)
	}
	out := make([]Pair[T, S], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[T, S]{First: s.items[i], Second: other.items[i]}
	}
	return wrap(out)
}

// DistinctBy returns a new sequence containing the first element for each
// distinct key, in first-occurrence order. It is the escape hatch for element
// types that cannot themselves key the seen-set used by [Sequence.Distinct].
func DistinctBy[T any, K comparable](s *Sequence[T], key fn.Function[T, K]) *Sequence[T] {
	checkNotNil("key", key == nil)
	seen := make(map[K]struct{}, len(s.items))
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		k := key.ValueOf(item)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return wrap(out)
}
