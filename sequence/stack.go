package sequence

import "fmt"

// Stack is a last-in-first-out view produced by [Sequence.ToStack]. Unlike
// [Sequence] it is mutable: Push and Pop modify the receiver. A stack built
// from a sequence owns its storage independently, so popping never affects
// the source.
type Stack[T any] struct {
	items []T // top of stack is the last element
}

// NewStack creates a stack; the last argument ends up on top.
func NewStack[T any](items ...T) *Stack[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Stack[T]{items: dst}
}

// Push places values on the stack; the last argument ends up on top.
func (s *Stack[T]) Push(values ...T) {
	s.items = append(s.items, values...)
}

// Pop removes and returns the top value.
// Returns the zero value and false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero // release the reference
	s.items = s.items[:len(s.items)-1]
	return top, true
}

// Peek returns the top value without removing it.
// Returns the zero value and false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Size returns the number of values on the stack.
func (s *Stack[T]) Size() int { return len(s.items) }

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// String implements [fmt.Stringer]; the top of the stack renders last.
func (s *Stack[T]) String() string { return fmt.Sprintf("%v", s.items) }
