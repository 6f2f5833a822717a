package sequence

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip] and [ZipWithIndex].
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair. It exists because Go will not infer type parameters
// of a composite literal at call sites that only name the values.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
