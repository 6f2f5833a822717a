package fn

// Function is a unary transform from T to R.
//
// Implementations must be pure and immutable: ValueOf must not retain or
// mutate its argument, and a single instance must be safe for concurrent use.
type Function[T, R any] interface {
	// ValueOf computes the result for value.
	ValueOf(value T) R
}

// FunctionFunc adapts an ordinary function to the [Function] interface.
type FunctionFunc[T, R any] func(T) R

// ValueOf calls f(value).
func (f FunctionFunc[T, R]) ValueOf(value T) R { return f(value) }

// Function2 is a binary transform. The second argument is a per-call
// parameter, so one shared Function2 instance plus a parameter replaces a
// freshly captured closure on every call.
type Function2[T, P, R any] interface {
	// Value computes the result for value and parameter.
	Value(value T, parameter P) R
}

// Function2Func adapts an ordinary function to the [Function2] interface.
type Function2Func[T, P, R any] func(T, P) R

// Value calls f(value, parameter).
func (f Function2Func[T, P, R]) Value(value T, parameter P) R { return f(value, parameter) }

// Predicate is a unary boolean-valued test.
type Predicate[T any] interface {
	// Accepts reports whether value satisfies the predicate.
	Accepts(value T) bool
}

// PredicateFunc adapts an ordinary function to the [Predicate] interface.
type PredicateFunc[T any] func(T) bool

// Accepts calls p(value).
func (p PredicateFunc[T]) Accepts(value T) bool { return p(value) }

// Predicate2 is a binary boolean-valued test; like [Function2], the second
// argument is a per-call parameter for a reusable predicate.
type Predicate2[T, P any] interface {
	// Accepts reports whether value satisfies the predicate given parameter.
	Accepts(value T, parameter P) bool
}

// Predicate2Func adapts an ordinary function to the [Predicate2] interface.
type Predicate2Func[T, P any] func(T, P) bool

// Accepts calls p(value, parameter).
func (p Predicate2Func[T, P]) Accepts(value T, parameter P) bool { return p(value, parameter) }
