package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sequences/sequence"
)

// ─────────────────────────────────────────────────────────────────────────────
// iter.Seq bridges
// ─────────────────────────────────────────────────────────────────────────────

func TestValues(t *testing.T) {
	var got []string
	for v := range people().Values() {
		got = append(got, v)
	}
	require.Equal(t, []string{"ted", "mary", "bob", "sally"}, got)
}

func TestAll(t *testing.T) {
	got := map[int]string{}
	for i, v := range people().All() {
		got[i] = v
	}
	require.Equal(t, map[int]string{0: "ted", 1: "mary", 2: "bob", 3: "sally"}, got)
}

func TestBackward(t *testing.T) {
	var indexes []int
	var values []string
	for i, v := range people().Backward() {
		indexes = append(indexes, i)
		values = append(values, v)
	}
	require.Equal(t, []int{3, 2, 1, 0}, indexes)
	require.Equal(t, []string{"sally", "bob", "mary", "ted"}, values)
}

func TestValuesEarlyStop(t *testing.T) {
	var got []string
	for v := range people().Values() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"ted", "mary"}, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// ListIterator
// ─────────────────────────────────────────────────────────────────────────────

func TestListIteratorForward(t *testing.T) {
	it := people().ListIterator()

	var got []string
	for it.HasNext() {
		got = append(got, it.Next())
	}
	require.Equal(t, []string{"ted", "mary", "bob", "sally"}, got)
	require.False(t, it.HasNext())
	require.Equal(t, 4, it.NextIndex())
}

func TestListIteratorBidirectional(t *testing.T) {
	it := people().ListIterator()

	require.Equal(t, "ted", it.Next())
	require.Equal(t, "mary", it.Next())
	require.Equal(t, 2, it.NextIndex())
	require.Equal(t, 1, it.PreviousIndex())

	require.Equal(t, "mary", it.Previous())
	require.Equal(t, "ted", it.Previous())
	require.False(t, it.HasPrevious())
	require.Equal(t, -1, it.PreviousIndex())
}

func TestListIteratorAt(t *testing.T) {
	s := people()

	it := s.ListIteratorAt(2)
	require.Equal(t, "bob", it.Next())

	it = s.ListIteratorAt(s.Size()) // positioned after the last element
	require.False(t, it.HasNext())
	require.Equal(t, "sally", it.Previous())

	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() { s.ListIteratorAt(-1) })
	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() { s.ListIteratorAt(s.Size() + 1) })
}

func TestListIteratorStepPastEndsPanics(t *testing.T) {
	it := ints(1).ListIterator()
	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() { it.Previous() })
	it.Next()
	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() { it.Next() })
}
