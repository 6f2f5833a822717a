// Package fn defines the function-object contracts consumed by the sequence
// transformation algebra: unary and binary transforms, unary and binary
// predicates, and one primitive-returning transform per primitive kind.
//
// # Function objects
//
// A function object is an immutable value wrapping a pure computation. It
// carries no mutable state, so a single instance is safe to share across any
// number of invocations and goroutines:
//
//	upper := strfn.ToUpperCase()
//	a := upper.ValueOf("go")   // "GO"
//	b := upper.ValueOf("seq")  // "SEQ"
//
// # Adapters
//
// Each interface has a matching ...Func adapter so ordinary functions can be
// used wherever a function object is expected, in the same way
// http.HandlerFunc adapts a plain function to http.Handler:
//
//	even := fn.PredicateFunc[int](func(n int) bool { return n%2 == 0 })
//	evens := numbers.Select(even)
//
// # Primitive-returning transforms
//
// Transforms that produce a primitive value have their own interface per kind
// (BoolFunction, ByteFunction, RuneFunction, Float32Function, Float64Function,
// IntFunction, Int16Function, Int64Function). Keeping these paths separate is
// what lets sequence.Collect* produce raw primitive slices with no values ever
// passing through an interface on the per-element path.
//
// # Diagnostics
//
// Implementations may additionally implement fmt.Stringer to describe the
// computation they perform. The description is for logging and debugging only;
// nothing in this module dispatches on it or uses it for equality.
package fn
