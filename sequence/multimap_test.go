package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sequences/fn"
	"github.com/hasbyte1/go-sequences/sequence"
	"github.com/hasbyte1/go-sequences/strfn"
)

func initialOf() fn.Function[string, string] {
	return fn.FunctionFunc[string, string](func(s string) string { return s[:1] })
}

func TestMultimapInsertionOrder(t *testing.T) {
	m := sequence.GroupBy(sequence.New("bob", "sally", "ben", "ted", "sam"), initialOf())

	require.Equal(t, []string{"b", "s", "t"}, m.Keys().ToSlice())
	require.Equal(t, []string{"bob", "ben"}, m.Get("b").ToSlice())
	require.Equal(t, []string{"sally", "sam"}, m.Get("s").ToSlice())
	require.Equal(t, []string{"ted"}, m.Get("t").ToSlice())
}

func TestMultimapLookup(t *testing.T) {
	m := sequence.GroupBy(people(), initialOf())

	require.True(t, m.ContainsKey("t"))
	require.False(t, m.ContainsKey("z"))
	require.True(t, m.Get("z").IsEmpty(), "absent key yields an empty sequence")
}

func TestMultimapSizes(t *testing.T) {
	m := sequence.GroupBy(people(), initialOf())
	require.Equal(t, 4, m.KeysSize())
	require.Equal(t, 4, m.Size())
	require.False(t, m.IsEmpty())
}

func TestMultimapForEachKeyValue(t *testing.T) {
	m := sequence.GroupBy(sequence.New("aa", "ab", "ba"), initialOf())

	var keys []string
	var counts []int
	m.ForEachKeyValue(func(k string, vs *sequence.Sequence[string]) {
		keys = append(keys, k)
		counts = append(counts, vs.Size())
	})
	require.Equal(t, []string{"a", "b"}, keys)
	require.Equal(t, []int{2, 1}, counts)
}

func TestMultimapString(t *testing.T) {
	m := sequence.GroupBy(sequence.New("aa", "ab", "ba"), initialOf())
	require.Equal(t, "{a=[aa ab], b=[ba]}", m.String())
}

func TestGroupByUpperCasedKeys(t *testing.T) {
	m := sequence.GroupBy(sequence.New("go", "git", "make"), strfn.ToUpperCase())
	require.Equal(t, []string{"GO", "GIT", "MAKE"}, m.Keys().ToSlice())
	require.Equal(t, []string{"go"}, m.Get("GO").ToSlice())
}
