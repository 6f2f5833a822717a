package sequence

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-sequences/fn"
)

// Primitive-specialized sequences and projections.
//
// The eight Collect* methods perform the same elementwise transform as
// [Collect] but accept a primitive-returning function object and write
// straight into a raw primitive slice. No element or result ever passes
// through an interface value on the per-element path, so a bulk numeric
// projection performs zero per-element heap allocation. The eight kinds are
// deliberately separate, parallel code paths; collapsing them into one
// generic transform over `any` would reintroduce exactly the allocation this
// layer exists to avoid.

// number bounds the kinds that support Sum, Min and Max.
type number interface {
	constraints.Integer | constraints.Float
}

func sumOf[N number](items []N) N {
	var sum N
	for _, v := range items {
		sum += v
	}
	return sum
}

func minOf[N number](items []N) (N, bool) {
	var min N
	if len(items) == 0 {
		return min, false
	}
	min = items[0]
	for _, v := range items[1:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

func maxOf[N number](items []N) (N, bool) {
	var max N
	if len(items) == 0 {
		return max, false
	}
	max = items[0]
	for _, v := range items[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}

func primIndexOf[N comparable](items []N, value N) int {
	for i, v := range items {
		if v == value {
			return i
		}
	}
	return -1
}

func primEqual[N comparable](a, b []N) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Projections
// ─────────────────────────────────────────────────────────────────────────────

// CollectBool transforms every element to a bool, producing an unboxed
// [BoolSequence] of the same size.
func (s *Sequence[T]) CollectBool(function fn.BoolFunction[T]) *BoolSequence {
	checkNotNil("function", function == nil)
	out := make([]bool, len(s.items))
	for i, item := range s.items {
		out[i] = function.BoolValueOf(item)
	}
	return &BoolSequence{items: out}
}

// CollectByte transforms every element to a byte, producing an unboxed
// [ByteSequence] of the same size.
func (s *Sequence[T]) CollectByte(function fn.ByteFunction[T]) *ByteSequence {
	checkNotNil("function", function == nil)
	out := make([]byte, len(s.items))
	for i, item := range s.items {
		out[i] = function.ByteValueOf(item)
	}
	return &ByteSequence{items: out}
}

// CollectRune transforms every element to a rune, producing an unboxed
// [RuneSequence] of the same size.
func (s *Sequence[T]) CollectRune(function fn.RuneFunction[T]) *RuneSequence {
	checkNotNil("function", function == nil)
	out := make([]rune, len(s.items))
	for i, item := range s.items {
		out[i] = function.RuneValueOf(item)
	}
	return &RuneSequence{items: out}
}

// CollectFloat32 transforms every element to a float32, producing an unboxed
// [Float32Sequence] of the same size.
func (s *Sequence[T]) CollectFloat32(function fn.Float32Function[T]) *Float32Sequence {
	checkNotNil("function", function == nil)
	out := make([]float32, len(s.items))
	for i, item := range s.items {
		out[i] = function.Float32ValueOf(item)
	}
	return &Float32Sequence{items: out}
}

// CollectFloat64 transforms every element to a float64, producing an unboxed
// [Float64Sequence] of the same size.
func (s *Sequence[T]) CollectFloat64(function fn.Float64Function[T]) *Float64Sequence {
	checkNotNil("function", function == nil)
	out := make([]float64, len(s.items))
	for i, item := range s.items {
		out[i] = function.Float64ValueOf(item)
	}
	return &Float64Sequence{items: out}
}

// CollectInt transforms every element to an int, producing an unboxed
// [IntSequence] of the same size.
func (s *Sequence[T]) CollectInt(function fn.IntFunction[T]) *IntSequence {
	checkNotNil("function", function == nil)
	out := make([]int, len(s.items))
	for i, item := range s.items {
		out[i] = function.IntValueOf(item)
	}
	return &IntSequence{items: out}
}

// CollectInt16 transforms every element to an int16, producing an unboxed
// [Int16Sequence] of the same size.
func (s *Sequence[T]) CollectInt16(function fn.Int16Function[T]) *Int16Sequence {
	checkNotNil("function", function == nil)
	out := make([]int16, len(s.items))
	for i, item := range s.items {
		out[i] = function.Int16ValueOf(item)
	}
	return &Int16Sequence{items: out}
}

// CollectInt64 transforms every element to an int64, producing an unboxed
// [Int64Sequence] of the same size.
func (s *Sequence[T]) CollectInt64(function fn.Int64Function[T]) *Int64Sequence {
	checkNotNil("function", function == nil)
	out := make([]int64, len(s.items))
	for i, item := range s.items {
		out[i] = function.Int64ValueOf(item)
	}
	return &Int64Sequence{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// BoolSequence
// ─────────────────────────────────────────────────────────────────────────────

// BoolSequence is an immutable ordered sequence of bool values stored in a
// raw []bool. Access policies match [Sequence]: Get is strict, GetFirst and
// GetLast are forgiving.
type BoolSequence struct {
	items []bool
}

// NewBoolSequence creates a BoolSequence from a variadic list of values.
func NewBoolSequence(items ...bool) *BoolSequence {
	dst := make([]bool, len(items))
	copy(dst, items)
	return &BoolSequence{items: dst}
}

// Get returns the value at index; panics with [ErrIndexOutOfRange] when index
// is outside [0, Size()).
func (s *BoolSequence) Get(index int) bool {
	checkIndex(index, len(s.items))
	return s.items[index]
}

// Size returns the number of values.
func (s *BoolSequence) Size() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no values.
func (s *BoolSequence) IsEmpty() bool { return len(s.items) == 0 }

// GetFirst returns the first value, or false as second result when empty.
func (s *BoolSequence) GetFirst() (bool, bool) {
	if len(s.items) == 0 {
		return false, false
	}
	return s.items[0], true
}

// GetLast returns the last value, or false as second result when empty.
func (s *BoolSequence) GetLast() (bool, bool) {
	if len(s.items) == 0 {
		return false, false
	}
	return s.items[len(s.items)-1], true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (s *BoolSequence) IndexOf(value bool) int { return primIndexOf(s.items, value) }

// ToSlice returns a copy of the values as a plain []bool.
func (s *BoolSequence) ToSlice() []bool {
	out := make([]bool, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls action(value, index) for every value in positional order.
func (s *BoolSequence) Each(action func(bool, int)) {
	for i, v := range s.items {
		action(v, i)
	}
}

// ReverseForEach applies action to every value from last to first.
func (s *BoolSequence) ReverseForEach(action func(bool)) {
	for i := len(s.items) - 1; i >= 0; i-- {
		action(s.items[i])
	}
}

// Equal reports whether both sequences hold the same values in the same order.
func (s *BoolSequence) Equal(other *BoolSequence) bool {
	return other != nil && primEqual(s.items, other.items)
}

// String implements [fmt.Stringer].
func (s *BoolSequence) String() string { return fmt.Sprintf("%v", s.items) }

// ─────────────────────────────────────────────────────────────────────────────
// ByteSequence
// ─────────────────────────────────────────────────────────────────────────────

// ByteSequence is an immutable ordered sequence of byte values stored in a
// raw []byte.
type ByteSequence struct {
	items []byte
}

// NewByteSequence creates a ByteSequence from a variadic list of values.
func NewByteSequence(items ...byte) *ByteSequence {
	dst := make([]byte, len(items))
	copy(dst, items)
	return &ByteSequence{items: dst}
}

// Get returns the value at index; panics with [ErrIndexOutOfRange] when index
// is outside [0, Size()).
func (s *ByteSequence) Get(index int) byte {
	checkIndex(index, len(s.items))
	return s.items[index]
}

// Size returns the number of values.
func (s *ByteSequence) Size() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no values.
func (s *ByteSequence) IsEmpty() bool { return len(s.items) == 0 }

// GetFirst returns the first value, or false as second result when empty.
func (s *ByteSequence) GetFirst() (byte, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[0], true
}

// GetLast returns the last value, or false as second result when empty.
func (s *ByteSequence) GetLast() (byte, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (s *ByteSequence) IndexOf(value byte) int { return primIndexOf(s.items, value) }

// ToSlice returns a copy of the values as a plain []byte.
func (s *ByteSequence) ToSlice() []byte {
	out := make([]byte, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls action(value, index) for every value in positional order.
func (s *ByteSequence) Each(action func(byte, int)) {
	for i, v := range s.items {
		action(v, i)
	}
}

// ReverseForEach applies action to every value from last to first.
func (s *ByteSequence) ReverseForEach(action func(byte)) {
	for i := len(s.items) - 1; i >= 0; i-- {
		action(s.items[i])
	}
}

// Sum returns the sum of all values.
func (s *ByteSequence) Sum() byte { return sumOf(s.items) }

// Min returns the smallest value, or false as second result when empty.
func (s *ByteSequence) Min() (byte, bool) { return minOf(s.items) }

// Max returns the largest value, or false as second result when empty.
func (s *ByteSequence) Max() (byte, bool) { return maxOf(s.items) }

// Equal reports whether both sequences hold the same values in the same order.
func (s *ByteSequence) Equal(other *ByteSequence) bool {
	return other != nil && primEqual(s.items, other.items)
}

// String implements [fmt.Stringer].
func (s *ByteSequence) String() string { return fmt.Sprintf("%v", s.items) }

// ─────────────────────────────────────────────────────────────────────────────
// RuneSequence
// ─────────────────────────────────────────────────────────────────────────────

// RuneSequence is an immutable ordered sequence of rune values stored in a
// raw []rune.
type RuneSequence struct {
	items []rune
}

// NewRuneSequence creates a RuneSequence from a variadic list of values.
func NewRuneSequence(items ...rune) *RuneSequence {
	dst := make([]rune, len(items))
	copy(dst, items)
	return &RuneSequence{items: dst}
}

// Get returns the value at index; panics with [ErrIndexOutOfRange] when index
// is outside [0, Size()).
func (s *RuneSequence) Get(index int) rune {
	checkIndex(index, len(s.items))
	return s.items[index]
}

// Size returns the number of values.
func (s *RuneSequence) Size() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no values.
func (s *RuneSequence) IsEmpty() bool { return len(s.items) == 0 }

// GetFirst returns the first value, or false as second result when empty.
func (s *RuneSequence) GetFirst() (rune, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[0], true
}

// GetLast returns the last value, or false as second result when empty.
func (s *RuneSequence) GetLast() (rune, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (s *RuneSequence) IndexOf(value rune) int { return primIndexOf(s.items, value) }

// ToSlice returns a copy of the values as a plain []rune.
func (s *RuneSequence) ToSlice() []rune {
	out := make([]rune, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls action(value, index) for every value in positional order.
func (s *RuneSequence) Each(action func(rune, int)) {
	for i, v := range s.items {
		action(v, i)
	}
}

// ReverseForEach applies action to every value from last to first.
func (s *RuneSequence) ReverseForEach(action func(rune)) {
	for i := len(s.items) - 1; i >= 0; i-- {
		action(s.items[i])
	}
}

// Sum returns the sum of all values.
func (s *RuneSequence) Sum() rune { return sumOf(s.items) }

// Min returns the smallest value, or false as second result when empty.
func (s *RuneSequence) Min() (rune, bool) { return minOf(s.items) }

// Max returns the largest value, or false as second result when empty.
func (s *RuneSequence) Max() (rune, bool) { return maxOf(s.items) }

// Equal reports whether both sequences hold the same values in the same order.
func (s *RuneSequence) Equal(other *RuneSequence) bool {
	return other != nil && primEqual(s.items, other.items)
}

// String implements [fmt.Stringer]. Values render as code points.
func (s *RuneSequence) String() string { return fmt.Sprintf("%v", s.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Float32Sequence
// ─────────────────────────────────────────────────────────────────────────────

// Float32Sequence is an immutable ordered sequence of float32 values stored
// in a raw []float32.
type Float32Sequence struct {
	items []float32
}

// NewFloat32Sequence creates a Float32Sequence from a variadic list of values.
func NewFloat32Sequence(items ...float32) *Float32Sequence {
	dst := make([]float32, len(items))
	copy(dst, items)
	return &Float32Sequence{items: dst}
}

// Get returns the value at index; panics with [ErrIndexOutOfRange] when index
// is outside [0, Size()).
func (s *Float32Sequence) Get(index int) float32 {
	checkIndex(index, len(s.items))
	return s.items[index]
}

// Size returns the number of values.
func (s *Float32Sequence) Size() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no values.
func (s *Float32Sequence) IsEmpty() bool { return len(s.items) == 0 }

// GetFirst returns the first value, or false as second result when empty.
func (s *Float32Sequence) GetFirst() (float32, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[0], true
}

// GetLast returns the last value, or false as second result when empty.
func (s *Float32Sequence) GetLast() (float32, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (s *Float32Sequence) IndexOf(value float32) int { return primIndexOf(s.items, value) }

// ToSlice returns a copy of the values as a plain []float32.
func (s *Float32Sequence) ToSlice() []float32 {
	out := make([]float32, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls action(value, index) for every value in positional order.
func (s *Float32Sequence) Each(action func(float32, int)) {
	for i, v := range s.items {
		action(v, i)
	}
}

// ReverseForEach applies action to every value from last to first.
func (s *Float32Sequence) ReverseForEach(action func(float32)) {
	for i := len(s.items) - 1; i >= 0; i-- {
		action(s.items[i])
	}
}

// Sum returns the sum of all values.
func (s *Float32Sequence) Sum() float32 { return sumOf(s.items) }

// Min returns the smallest value, or false as second result when empty.
func (s *Float32Sequence) Min() (float32, bool) { return minOf(s.items) }

// Max returns the largest value, or false as second result when empty.
func (s *Float32Sequence) Max() (float32, bool) { return maxOf(s.items) }

// Equal reports whether both sequences hold the same values in the same order.
func (s *Float32Sequence) Equal(other *Float32Sequence) bool {
	return other != nil && primEqual(s.items, other.items)
}

// String implements [fmt.Stringer].
func (s *Float32Sequence) String() string { return fmt.Sprintf("%v", s.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Float64Sequence
// ─────────────────────────────────────────────────────────────────────────────

// Float64Sequence is an immutable ordered sequence of float64 values stored
// in a raw []float64.
type Float64Sequence struct {
	items []float64
}

// NewFloat64Sequence creates a Float64Sequence from a variadic list of values.
func NewFloat64Sequence(items ...float64) *Float64Sequence {
	dst := make([]float64, len(items))
	copy(dst, items)
	return &Float64Sequence{items: dst}
}

// Get returns the value at index; panics with [ErrIndexOutOfRange] when index
// is outside [0, Size()).
func (s *Float64Sequence) Get(index int) float64 {
	checkIndex(index, len(s.items))
	return s.items[index]
}

// Size returns the number of values.
func (s *Float64Sequence) Size() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no values.
func (s *Float64Sequence) IsEmpty() bool { return len(s.items) == 0 }

// GetFirst returns the first value, or false as second result when empty.
func (s *Float64Sequence) GetFirst() (float64, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[0], true
}

// GetLast returns the last value, or false as second result when empty.
func (s *Float64Sequence) GetLast() (float64, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (s *Float64Sequence) IndexOf(value float64) int { return primIndexOf(s.items, value) }

// ToSlice returns a copy of the values as a plain []float64.
func (s *Float64Sequence) ToSlice() []float64 {
	out := make([]float64, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls action(value, index) for every value in positional order.
func (s *Float64Sequence) Each(action func(float64, int)) {
	for i, v := range s.items {
		action(v, i)
	}
}

// ReverseForEach applies action to every value from last to first.
func (s *Float64Sequence) ReverseForEach(action func(float64)) {
	for i := len(s.items) - 1; i >= 0; i-- {
		action(s.items[i])
	}
}

// Sum returns the sum of all values.
func (s *Float64Sequence) Sum() float64 { return sumOf(s.items) }

// Min returns the smallest value, or false as second result when empty.
func (s *Float64Sequence) Min() (float64, bool) { return minOf(s.items) }

// Max returns the largest value, or false as second result when empty.
func (s *Float64Sequence) Max() (float64, bool) { return maxOf(s.items) }

// Equal reports whether both sequences hold the same values in the same order.
func (s *Float64Sequence) Equal(other *Float64Sequence) bool {
	return other != nil && primEqual(s.items, other.items)
}

// String implements [fmt.Stringer].
func (s *Float64Sequence) String() string { return fmt.Sprintf("%v", s.items) }

// ─────────────────────────────────────────────────────────────────────────────
// IntSequence
// ─────────────────────────────────────────────────────────────────────────────

// IntSequence is an immutable ordered sequence of int values stored in a
// raw []int.
type IntSequence struct {
	items []int
}

// NewIntSequence creates an IntSequence from a variadic list of values.
func NewIntSequence(items ...int) *IntSequence {
	dst := make([]int, len(items))
	copy(dst, items)
	return &IntSequence{items: dst}
}

// Get returns the value at index; panics with [ErrIndexOutOfRange] when index
// is outside [0, Size()).
func (s *IntSequence) Get(index int) int {
	checkIndex(index, len(s.items))
	return s.items[index]
}

// Size returns the number of values.
func (s *IntSequence) Size() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no values.
func (s *IntSequence) IsEmpty() bool { return len(s.items) == 0 }

// GetFirst returns the first value, or false as second result when empty.
func (s *IntSequence) GetFirst() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[0], true
}

// GetLast returns the last value, or false as second result when empty.
func (s *IntSequence) GetLast() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (s *IntSequence) IndexOf(value int) int { return primIndexOf(s.items, value) }

// ToSlice returns a copy of the values as a plain []int.
func (s *IntSequence) ToSlice() []int {
	out := make([]int, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls action(value, index) for every value in positional order.
func (s *IntSequence) Each(action func(int, int)) {
	for i, v := range s.items {
		action(v, i)
	}
}

// ReverseForEach applies action to every value from last to first.
func (s *IntSequence) ReverseForEach(action func(int)) {
	for i := len(s.items) - 1; i >= 0; i-- {
		action(s.items[i])
	}
}

// Sum returns the sum of all values.
func (s *IntSequence) Sum() int { return sumOf(s.items) }

// Min returns the smallest value, or false as second result when empty.
func (s *IntSequence) Min() (int, bool) { return minOf(s.items) }

// Max returns the largest value, or false as second result when empty.
func (s *IntSequence) Max() (int, bool) { return maxOf(s.items) }

// Equal reports whether both sequences hold the same values in the same order.
func (s *IntSequence) Equal(other *IntSequence) bool {
	return other != nil && primEqual(s.items, other.items)
}

// String implements [fmt.Stringer].
func (s *IntSequence) String() string { return fmt.Sprintf("%v", s.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Int16Sequence
// ─────────────────────────────────────────────────────────────────────────────

// Int16Sequence is an immutable ordered sequence of int16 values stored in a
// raw []int16.
type Int16Sequence struct {
	items []int16
}

// NewInt16Sequence creates an Int16Sequence from a variadic list of values.
func NewInt16Sequence(items ...int16) *Int16Sequence {
	dst := make([]int16, len(items))
	copy(dst, items)
	return &Int16Sequence{items: dst}
}

// Get returns the value at index; panics with [ErrIndexOutOfRange] when index
// is outside [0, Size()).
func (s *Int16Sequence) Get(index int) int16 {
	checkIndex(index, len(s.items))
	return s.items[index]
}

// Size returns the number of values.
func (s *Int16Sequence) Size() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no values.
func (s *Int16Sequence) IsEmpty() bool { return len(s.items) == 0 }

// GetFirst returns the first value, or false as second result when empty.
func (s *Int16Sequence) GetFirst() (int16, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[0], true
}

// GetLast returns the last value, or false as second result when empty.
func (s *Int16Sequence) GetLast() (int16, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (s *Int16Sequence) IndexOf(value int16) int { return primIndexOf(s.items, value) }

// ToSlice returns a copy of the values as a plain []int16.
func (s *Int16Sequence) ToSlice() []int16 {
	out := make([]int16, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls action(value, index) for every value in positional order.
func (s *Int16Sequence) Each(action func(int16, int)) {
	for i, v := range s.items {
		action(v, i)
	}
}

// ReverseForEach applies action to every value from last to first.
func (s *Int16Sequence) ReverseForEach(action func(int16)) {
	for i := len(s.items) - 1; i >= 0; i-- {
		action(s.items[i])
	}
}

// Sum returns the sum of all values.
func (s *Int16Sequence) Sum() int16 { return sumOf(s.items) }

// Min returns the smallest value, or false as second result when empty.
func (s *Int16Sequence) Min() (int16, bool) { return minOf(s.items) }

// Max returns the largest value, or false as second result when empty.
func (s *Int16Sequence) Max() (int16, bool) { return maxOf(s.items) }

// Equal reports whether both sequences hold the same values in the same order.
func (s *Int16Sequence) Equal(other *Int16Sequence) bool {
	return other != nil && primEqual(s.items, other.items)
}

// String implements [fmt.Stringer].
func (s *Int16Sequence) String() string { return fmt.Sprintf("%v", s.items) }

// ─────────────────────────────────────────────────────────────────────────────
// Int64Sequence
// ─────────────────────────────────────────────────────────────────────────────

// Int64Sequence is an immutable ordered sequence of int64 values stored in a
// raw []int64.
type Int64Sequence struct {
	items []int64
}

// NewInt64Sequence creates an Int64Sequence from a variadic list of values.
func NewInt64Sequence(items ...int64) *Int64Sequence {
	dst := make([]int64, len(items))
	copy(dst, items)
	return &Int64Sequence{items: dst}
}

// Get returns the value at index; panics with [ErrIndexOutOfRange] when index
// is outside [0, Size()).
func (s *Int64Sequence) Get(index int) int64 {
	checkIndex(index, len(s.items))
	return s.items[index]
}

// Size returns the number of values.
func (s *Int64Sequence) Size() int { return len(s.items) }

// IsEmpty reports whether the sequence contains no values.
func (s *Int64Sequence) IsEmpty() bool { return len(s.items) == 0 }

// GetFirst returns the first value, or false as second result when empty.
func (s *Int64Sequence) GetFirst() (int64, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[0], true
}

// GetLast returns the last value, or false as second result when empty.
func (s *Int64Sequence) GetLast() (int64, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// IndexOf returns the index of the first occurrence of value, or -1.
func (s *Int64Sequence) IndexOf(value int64) int { return primIndexOf(s.items, value) }

// ToSlice returns a copy of the values as a plain []int64.
func (s *Int64Sequence) ToSlice() []int64 {
	out := make([]int64, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls action(value, index) for every value in positional order.
func (s *Int64Sequence) Each(action func(int64, int)) {
	for i, v := range s.items {
		action(v, i)
	}
}

// ReverseForEach applies action to every value from last to first.
func (s *Int64Sequence) ReverseForEach(action func(int64)) {
	for i := len(s.items) - 1; i >= 0; i-- {
		action(s.items[i])
	}
}

// Sum returns the sum of all values.
func (s *Int64Sequence) Sum() int64 { return sumOf(s.items) }

// Min returns the smallest value, or false as second result when empty.
func (s *Int64Sequence) Min() (int64, bool) { return minOf(s.items) }

// Max returns the largest value, or false as second result when empty.
func (s *Int64Sequence) Max() (int64, bool) { return maxOf(s.items) }

// Equal reports whether both sequences hold the same values in the same order.
func (s *Int64Sequence) Equal(other *Int64Sequence) bool {
	return other != nil && primEqual(s.items, other.items)
}

// String implements [fmt.Stringer].
func (s *Int64Sequence) String() string { return fmt.Sprintf("%v", s.items) }
