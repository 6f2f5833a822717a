// Package sequence provides a generic, immutable indexed sequence with a full
// transformation algebra (select/reject, partition, collect, group-by, zip,
// windowing predicates) plus primitive-specialized projections that avoid
// boxing numeric results.
//
// # Overview
//
// The central type is [Sequence][T], an immutable wrapper around a slice of T
// with strict positional access and a chainable, order-preserving API:
//
//	people := sequence.New("ted", "mary", "bob", "sally")
//	people.GetFirst()        // "ted", true
//	people.IndexOf("bob")    // 2
//	people.ForEach(0, 1, collect) // visits "ted", "mary"
//
// # Immutability
//
// Every transformation returns a new Sequence; the receiver is never
// modified, and no derived sequence aliases caller-visible state. This makes
// all sequences safe to share across goroutines for reads without locking.
//
// # Function objects
//
// Customizable behavior is supplied through the contracts in package fn:
// immutable, shareable function objects. Factories such as package strfn
// return ready-made instances:
//
//	upper := sequence.Collect(people, strfn.ToUpperCase())
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type (or need a key, parameter, or
// second-source type) are package-level functions: [Collect], [CollectWith],
// [CollectIf], [FlatCollect], [GroupBy], [GroupByEach], [Zip],
// [SelectInstancesOf], [SelectWith], [RejectWith], [DistinctBy].
//
// # Primitive-specialized projections
//
// The eight Collect* methods ([Sequence.CollectBool] through
// [Sequence.CollectInt64]) project elements into raw primitive slices, so
// large numeric transforms allocate nothing per element:
//
//	lengths := people.CollectInt(strfn.Length()) // *IntSequence, no boxing
//
// # Error policy
//
// Strict positional access (Get, ForEach bounds) panics with
// [ErrIndexOutOfRange] outside [0, Size()), exactly like indexing a Go slice;
// boundary access (GetFirst/GetLast) is forgiving and reports absence with a
// second return value. A nil function object panics with [ErrNilFunction].
// Panics raised inside caller-supplied functions propagate unmodified.
package sequence
