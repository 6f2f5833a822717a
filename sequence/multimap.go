package sequence

import (
	"fmt"
	"strings"
)

// Multimap is the grouping result produced by [GroupBy] and [GroupByEach]: an
// ordered mapping from key to the sequence of elements filed under it.
//
// Keys are ordered by first insertion, and the values under each key preserve
// the order in which they were filed. Once returned by a grouping operation a
// Multimap is never mutated again, so it shares the read-only concurrency
// guarantees of [Sequence].
type Multimap[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
	size   int
}

func newMultimap[K comparable, T any]() *Multimap[K, T] {
	return &Multimap[K, T]{groups: make(map[K][]T)}
}

// add files value under key, registering the key on first use.
// This is the only write path; grouping operations call it element by element.
func (m *Multimap[K, T]) add(key K, value T) {
	if _, seen := m.groups[key]; !seen {
		m.keys = append(m.keys, key)
	}
	m.groups[key] = append(m.groups[key], value)
	m.size++
}

// Keys returns the keys as a sequence, in first-insertion order.
func (m *Multimap[K, T]) Keys() *Sequence[K] {
	return From(m.keys)
}

// Get returns the elements filed under key, in insertion order.
// Returns an empty sequence for a key that was never inserted.
func (m *Multimap[K, T]) Get(key K) *Sequence[T] {
	return From(m.groups[key])
}

// ContainsKey reports whether at least one element was filed under key.
func (m *Multimap[K, T]) ContainsKey(key K) bool {
	_, ok := m.groups[key]
	return ok
}

// KeysSize returns the number of distinct keys.
func (m *Multimap[K, T]) KeysSize() int { return len(m.keys) }

// Size returns the total number of filed values across all keys. With
// [GroupByEach] one source element may be counted under several keys.
func (m *Multimap[K, T]) Size() int { return m.size }

// IsEmpty reports whether no values have been filed.
func (m *Multimap[K, T]) IsEmpty() bool { return m.size == 0 }

// ForEachKeyValue calls action once per key, in first-insertion order, with
// the key's value sequence.
func (m *Multimap[K, T]) ForEachKeyValue(action func(K, *Sequence[T])) {
	checkNotNil("action", action == nil)
	for _, key := range m.keys {
		action(key, m.Get(key))
	}
}

// String implements [fmt.Stringer]; keys render in first-insertion order.
func (m *Multimap[K, T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", key, m.groups[key])
	}
	b.WriteByte('}')
	return b.String()
}
