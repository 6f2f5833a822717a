package sequence

import "fmt"

// Partition is the result of [Sequence.Partition] and
// [Sequence.PartitionWhile]: two disjoint, order-preserving views over one
// source sequence. Every source element appears in exactly one half.
type Partition[T any] struct {
	selected *Sequence[T]
	rejected *Sequence[T]
}

// Selected returns the elements that satisfied the predicate, in source order.
func (p *Partition[T]) Selected() *Sequence[T] { return p.selected }

// Rejected returns the elements that did not satisfy the predicate, in source
// order.
func (p *Partition[T]) Rejected() *Sequence[T] { return p.rejected }

// String implements [fmt.Stringer].
func (p *Partition[T]) String() string {
	return fmt.Sprintf("selected=%v rejected=%v", p.selected, p.rejected)
}
