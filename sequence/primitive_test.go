package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sequences/fn"
	"github.com/hasbyte1/go-sequences/sequence"
	"github.com/hasbyte1/go-sequences/strfn"
)

// ─────────────────────────────────────────────────────────────────────────────
// Projections
// ─────────────────────────────────────────────────────────────────────────────

func TestCollectInt(t *testing.T) {
	got := sequence.New("a", "bb", "ccc").CollectInt(strfn.Length())
	require.Equal(t, []int{1, 2, 3}, got.ToSlice())
	require.Equal(t, 3, got.Size())
}

func TestCollectBool(t *testing.T) {
	got := ints(1, 2, 3, 4).CollectBool(fn.BoolFunctionFunc[int](func(n int) bool { return n%2 == 0 }))
	require.Equal(t, []bool{false, true, false, true}, got.ToSlice())
}

func TestCollectByte(t *testing.T) {
	got := ints(65, 66, 67).CollectByte(fn.ByteFunctionFunc[int](func(n int) byte { return byte(n) }))
	require.Equal(t, []byte{'A', 'B', 'C'}, got.ToSlice())
}

func TestCollectRune(t *testing.T) {
	first := fn.RuneFunctionFunc[string](func(s string) rune { return []rune(s)[0] })
	got := sequence.New("go", "seq").CollectRune(first)
	require.Equal(t, []rune{'g', 's'}, got.ToSlice())
}

func TestCollectFloat32(t *testing.T) {
	half := fn.Float32FunctionFunc[int](func(n int) float32 { return float32(n) / 2 })
	got := ints(1, 2, 3).CollectFloat32(half)
	require.Equal(t, []float32{0.5, 1, 1.5}, got.ToSlice())
}

func TestCollectFloat64(t *testing.T) {
	half := fn.Float64FunctionFunc[int](func(n int) float64 { return float64(n) / 2 })
	got := ints(1, 2, 3).CollectFloat64(half)
	require.Equal(t, []float64{0.5, 1, 1.5}, got.ToSlice())
}

func TestCollectInt16(t *testing.T) {
	got := ints(1, 2).CollectInt16(fn.Int16FunctionFunc[int](func(n int) int16 { return int16(n * 100) }))
	require.Equal(t, []int16{100, 200}, got.ToSlice())
}

func TestCollectInt64(t *testing.T) {
	got := ints(1, 2).CollectInt64(fn.Int64FunctionFunc[int](func(n int) int64 { return int64(n) << 40 }))
	require.Equal(t, []int64{1 << 40, 2 << 40}, got.ToSlice())
}

func TestCollectNilFunctionPanics(t *testing.T) {
	s := ints(1)
	requirePanicIs(t, sequence.ErrNilFunction, func() { s.CollectInt(nil) })
	requirePanicIs(t, sequence.ErrNilFunction, func() { s.CollectBool(nil) })
	requirePanicIs(t, sequence.ErrNilFunction, func() { s.CollectFloat64(nil) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Primitive sequence behavior
// ─────────────────────────────────────────────────────────────────────────────

func TestIntSequenceAccess(t *testing.T) {
	s := sequence.NewIntSequence(10, 20, 30)

	require.Equal(t, 20, s.Get(1))
	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() { s.Get(3) })

	first, ok := s.GetFirst()
	require.True(t, ok)
	require.Equal(t, 10, first)

	last, ok := s.GetLast()
	require.True(t, ok)
	require.Equal(t, 30, last)

	require.Equal(t, 2, s.IndexOf(30))
	require.Equal(t, -1, s.IndexOf(99))
}

func TestIntSequenceEmptyBoundaries(t *testing.T) {
	s := sequence.NewIntSequence()
	_, ok := s.GetFirst()
	require.False(t, ok)
	_, ok = s.GetLast()
	require.False(t, ok)
	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() { s.Get(0) })
}

func TestIntSequenceAggregates(t *testing.T) {
	s := sequence.NewIntSequence(4, 1, 7, 2)
	require.Equal(t, 14, s.Sum())

	min, ok := s.Min()
	require.True(t, ok)
	require.Equal(t, 1, min)

	max, ok := s.Max()
	require.True(t, ok)
	require.Equal(t, 7, max)
}

func TestAggregatesOnEmpty(t *testing.T) {
	s := sequence.NewFloat64Sequence()
	require.Zero(t, s.Sum())
	_, ok := s.Min()
	require.False(t, ok)
	_, ok = s.Max()
	require.False(t, ok)
}

func TestIntSequenceTraversal(t *testing.T) {
	s := sequence.NewIntSequence(1, 2, 3)

	var forward []int
	s.Each(func(v, _ int) { forward = append(forward, v) })
	require.Equal(t, []int{1, 2, 3}, forward)

	var backward []int
	s.ReverseForEach(func(v int) { backward = append(backward, v) })
	require.Equal(t, []int{3, 2, 1}, backward)
}

func TestPrimitiveSequenceEqual(t *testing.T) {
	require.True(t, sequence.NewIntSequence(1, 2).Equal(sequence.NewIntSequence(1, 2)))
	require.False(t, sequence.NewIntSequence(1, 2).Equal(sequence.NewIntSequence(2, 1)))
	require.False(t, sequence.NewIntSequence(1).Equal(nil))
	require.True(t, sequence.NewBoolSequence(true).Equal(sequence.NewBoolSequence(true)))
}

func TestPrimitiveToSliceIsIndependent(t *testing.T) {
	s := sequence.NewRuneSequence('a', 'b')
	out := s.ToSlice()
	out[0] = 'z'
	require.Equal(t, 'a', s.Get(0))
}
