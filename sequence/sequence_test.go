package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sequences/sequence"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func people() *sequence.Sequence[string] {
	return sequence.New("ted", "mary", "bob", "sally")
}

func ints(ns ...int) *sequence.Sequence[int] { return sequence.New(ns...) }

// requirePanicIs runs f and asserts it panics with an error matching target.
func requirePanicIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestFromCopiesInput(t *testing.T) {
	src := []string{"a", "b", "c"}
	s := sequence.From(src)
	src[0] = "z" // mutating the source slice must not affect the sequence
	require.Equal(t, "a", s.Get(0))
}

func TestToSliceIsIndependent(t *testing.T) {
	s := ints(1, 2, 3)
	out := s.ToSlice()
	out[0] = 99
	require.Equal(t, 1, s.Get(0))
}

func TestEmpty(t *testing.T) {
	s := sequence.Empty[int]()
	require.Equal(t, 0, s.Size())
	require.True(t, s.IsEmpty())
	require.False(t, s.IsNotEmpty())
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional access
// ─────────────────────────────────────────────────────────────────────────────

func TestGetStrict(t *testing.T) {
	s := people()
	require.Equal(t, "ted", s.Get(0))
	require.Equal(t, "sally", s.Get(3))

	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() { s.Get(4) })
	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() { s.Get(-1) })
}

func TestGetOnEmptyPanics(t *testing.T) {
	s := sequence.Empty[string]()
	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() { s.Get(0) })
}

func TestGetFirstGetLast(t *testing.T) {
	s := people()

	first, ok := s.GetFirst()
	require.True(t, ok)
	require.Equal(t, "ted", first)

	last, ok := s.GetLast()
	require.True(t, ok)
	require.Equal(t, "sally", last)
}

func TestGetFirstGetLastEmptyAreForgiving(t *testing.T) {
	s := sequence.Empty[string]()

	first, ok := s.GetFirst()
	require.False(t, ok)
	require.Zero(t, first)

	last, ok := s.GetLast()
	require.False(t, ok)
	require.Zero(t, last)
}

func TestIndexOf(t *testing.T) {
	s := people()
	require.Equal(t, 2, s.IndexOf("bob"))
	require.Equal(t, -1, s.IndexOf("alice"))
}

func TestLastIndexOf(t *testing.T) {
	s := sequence.New("a", "b", "a", "c")
	require.Equal(t, 2, s.LastIndexOf("a"))
	require.Equal(t, 1, s.LastIndexOf("b"))
	require.Equal(t, -1, s.LastIndexOf("z"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

func TestForEachAscending(t *testing.T) {
	var got []string
	people().ForEach(0, 1, func(name string) { got = append(got, name) })
	require.Equal(t, []string{"ted", "mary"}, got)
}

func TestForEachDescending(t *testing.T) {
	var got []string
	people().ForEach(3, 1, func(name string) { got = append(got, name) })
	require.Equal(t, []string{"sally", "bob", "mary"}, got)
}

func TestForEachSingleIndex(t *testing.T) {
	var got []string
	people().ForEach(2, 2, func(name string) { got = append(got, name) })
	require.Equal(t, []string{"bob"}, got)
}

func TestForEachBoundsChecked(t *testing.T) {
	s := people()
	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() {
		s.ForEach(0, 4, func(string) {})
	})
	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() {
		s.ForEach(-1, 2, func(string) {})
	})
	requirePanicIs(t, sequence.ErrIndexOutOfRange, func() {
		sequence.Empty[string]().ForEach(0, 0, func(string) {})
	})
}

func TestForEachWithIndex(t *testing.T) {
	type visit struct {
		name  string
		index int
	}
	var got []visit
	people().ForEachWithIndex(1, 3, func(name string, i int) {
		got = append(got, visit{name, i})
	})
	require.Equal(t, []visit{{"mary", 1}, {"bob", 2}, {"sally", 3}}, got)

	got = got[:0]
	people().ForEachWithIndex(2, 0, func(name string, i int) {
		got = append(got, visit{name, i})
	})
	require.Equal(t, []visit{{"bob", 2}, {"mary", 1}, {"ted", 0}}, got)
}

func TestReverseForEach(t *testing.T) {
	var got []string
	people().ReverseForEach(func(name string) { got = append(got, name) })
	require.Equal(t, []string{"sally", "bob", "mary", "ted"}, got)
}

func TestReverseForEachEmpty(t *testing.T) {
	calls := 0
	sequence.Empty[int]().ReverseForEach(func(int) { calls++ })
	require.Zero(t, calls)
}

func TestEach(t *testing.T) {
	var names []string
	var indexes []int
	people().Each(func(name string, i int) {
		names = append(names, name)
		indexes = append(indexes, i)
	})
	require.Equal(t, []string{"ted", "mary", "bob", "sally"}, names)
	require.Equal(t, []int{0, 1, 2, 3}, indexes)
}

func TestNilActionPanics(t *testing.T) {
	requirePanicIs(t, sequence.ErrNilFunction, func() { people().Each(nil) })
	requirePanicIs(t, sequence.ErrNilFunction, func() { people().ForEach(0, 1, nil) })
	requirePanicIs(t, sequence.ErrNilFunction, func() { people().ReverseForEach(nil) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality
// ─────────────────────────────────────────────────────────────────────────────

func TestEqual(t *testing.T) {
	require.True(t, ints(1, 2, 3).Equal(ints(1, 2, 3)))
	require.False(t, ints(1, 2, 3).Equal(ints(1, 2)))
	require.False(t, ints(1, 2, 3).Equal(ints(3, 2, 1)))
	require.False(t, ints(1).Equal(nil))
	require.True(t, sequence.Empty[int]().Equal(ints()))
}

func TestEqualSequencesHashIdentically(t *testing.T) {
	a := sequence.New("x", "y")
	b := sequence.New("x", "y")
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestHashIsOrderSensitive(t *testing.T) {
	require.NotEqual(t, ints(1, 2).Hash(), ints(2, 1).Hash())
}

func TestString(t *testing.T) {
	require.Equal(t, "[1 2 3]", ints(1, 2, 3).String())
}
