package fn

// This file declares the eight primitive-returning transform contracts.
//
// They exist so that bulk projections (sequence.Sequence.CollectInt and its
// siblings) can move values from T straight into a raw primitive slice.
// The dedicated interfaces keep the eight output paths separate end to end;
// results never travel through an interface value on the per-element path.

// BoolFunction is a unary transform from T to bool.
type BoolFunction[T any] interface {
	BoolValueOf(value T) bool
}

// BoolFunctionFunc adapts an ordinary function to [BoolFunction].
type BoolFunctionFunc[T any] func(T) bool

func (f BoolFunctionFunc[T]) BoolValueOf(value T) bool { return f(value) }

// ByteFunction is a unary transform from T to byte.
type ByteFunction[T any] interface {
	ByteValueOf(value T) byte
}

// ByteFunctionFunc adapts an ordinary function to [ByteFunction].
type ByteFunctionFunc[T any] func(T) byte

func (f ByteFunctionFunc[T]) ByteValueOf(value T) byte { return f(value) }

// RuneFunction is a unary transform from T to rune.
type RuneFunction[T any] interface {
	RuneValueOf(value T) rune
}

// RuneFunctionFunc adapts an ordinary function to [RuneFunction].
type RuneFunctionFunc[T any] func(T) rune

func (f RuneFunctionFunc[T]) RuneValueOf(value T) rune { return f(value) }

// Float32Function is a unary transform from T to float32.
type Float32Function[T any] interface {
	Float32ValueOf(value T) float32
}

// Float32FunctionFunc adapts an ordinary function to [Float32Function].
type Float32FunctionFunc[T any] func(T) float32

func (f Float32FunctionFunc[T]) Float32ValueOf(value T) float32 { return f(value) }

// Float64Function is a unary transform from T to float64.
type Float64Function[T any] interface {
	Float64ValueOf(value T) float64
}

// Float64FunctionFunc adapts an ordinary function to [Float64Function].
type Float64FunctionFunc[T any] func(T) float64

func (f Float64FunctionFunc[T]) Float64ValueOf(value T) float64 { return f(value) }

// IntFunction is a unary transform from T to int.
type IntFunction[T any] interface {
	IntValueOf(value T) int
}

// IntFunctionFunc adapts an ordinary function to [IntFunction].
type IntFunctionFunc[T any] func(T) int

func (f IntFunctionFunc[T]) IntValueOf(value T) int { return f(value) }

// Int16Function is a unary transform from T to int16.
type Int16Function[T any] interface {
	Int16ValueOf(value T) int16
}

// Int16FunctionFunc adapts an ordinary function to [Int16Function].
type Int16FunctionFunc[T any] func(T) int16

func (f Int16FunctionFunc[T]) Int16ValueOf(value T) int16 { return f(value) }

// Int64Function is a unary transform from T to int64.
type Int64Function[T any] interface {
	Int64ValueOf(value T) int64
}

// Int64FunctionFunc adapts an ordinary function to [Int64Function].
type Int64FunctionFunc[T any] func(T) int64

func (f Int64FunctionFunc[T]) Int64ValueOf(value T) int64 { return f(value) }
