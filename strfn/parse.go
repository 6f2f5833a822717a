package strfn

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-sequences/fn"
)

// Sentinel errors carried by panics from string function objects.
var (
	// ErrParse is carried by panics from the ToPrimitive* functions when the
	// input does not lexically represent a value of the target kind. The
	// underlying strconv error is wrapped alongside it, so errors.As still
	// recovers the original *strconv.NumError.
	ErrParse = errors.New("strfn: invalid text for primitive kind")

	// ErrEmptyString is carried by the panic from [ToFirstChar] on empty
	// input.
	ErrEmptyString = errors.New("strfn: empty string")
)

// parse-to-primitive singletons, one per primitive kind. The function-object
// signatures plug directly into the sequence Collect* projections and carry
// no error channel, so lexically invalid input panics wrapping ErrParse.
var (
	toPrimitiveBool    = toPrimitiveBoolFunction{}
	toPrimitiveByte    = toPrimitiveByteFunction{}
	toPrimitiveRune    = toPrimitiveRuneFunction{}
	toPrimitiveFloat32 = toPrimitiveFloat32Function{}
	toPrimitiveFloat64 = toPrimitiveFloat64Function{}
	toPrimitiveInt     = toPrimitiveIntFunction{}
	toPrimitiveInt16   = toPrimitiveInt16Function{}
	toPrimitiveInt64   = toPrimitiveInt64Function{}
	toInt              = toIntFunction{}
)

// ToPrimitiveBool returns the shared function object parsing a string as a
// bool, accepting the [strconv.ParseBool] lexicon.
func ToPrimitiveBool() fn.BoolFunction[string] { return toPrimitiveBool }

// ToPrimitiveByte returns the shared function object parsing a string as an
// unsigned 8-bit decimal value.
func ToPrimitiveByte() fn.ByteFunction[string] { return toPrimitiveByte }

// ToPrimitiveRune returns the shared function object parsing a string as a
// decimal code point.
func ToPrimitiveRune() fn.RuneFunction[string] { return toPrimitiveRune }

// ToPrimitiveFloat32 returns the shared function object parsing a string as a
// float32.
func ToPrimitiveFloat32() fn.Float32Function[string] { return toPrimitiveFloat32 }

// ToPrimitiveFloat64 returns the shared function object parsing a string as a
// float64.
func ToPrimitiveFloat64() fn.Float64Function[string] { return toPrimitiveFloat64 }

// ToPrimitiveInt returns the shared function object parsing a string as a
// decimal int.
func ToPrimitiveInt() fn.IntFunction[string] { return toPrimitiveInt }

// ToPrimitiveInt16 returns the shared function object parsing a string as a
// decimal int16.
func ToPrimitiveInt16() fn.Int16Function[string] { return toPrimitiveInt16 }

// ToPrimitiveInt64 returns the shared function object parsing a string as a
// decimal int64.
func ToPrimitiveInt64() fn.Int64Function[string] { return toPrimitiveInt64 }

// ToInt returns the shared general (non-primitive-specialized) transform
// parsing a string as a decimal int, for use with [sequence.Collect] when a
// Sequence result is wanted rather than an IntSequence.
func ToInt() fn.Function[string, int] { return toInt }

func parseFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrParse, err)
}

type toPrimitiveBoolFunction struct{}

func (toPrimitiveBoolFunction) BoolValueOf(s string) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		panic(parseFailure(err))
	}
	return v
}

func (toPrimitiveBoolFunction) String() string { return "string.toPrimitiveBool()" }

type toPrimitiveByteFunction struct{}

func (toPrimitiveByteFunction) ByteValueOf(s string) byte {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		panic(parseFailure(err))
	}
	return byte(v)
}

func (toPrimitiveByteFunction) String() string { return "string.toPrimitiveByte()" }

type toPrimitiveRuneFunction struct{}

func (toPrimitiveRuneFunction) RuneValueOf(s string) rune {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		panic(parseFailure(err))
	}
	return rune(v)
}

func (toPrimitiveRuneFunction) String() string { return "string.toPrimitiveRune()" }

type toPrimitiveFloat32Function struct{}

func (toPrimitiveFloat32Function) Float32ValueOf(s string) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		panic(parseFailure(err))
	}
	return float32(v)
}

func (toPrimitiveFloat32Function) String() string { return "string.toPrimitiveFloat32()" }

type toPrimitiveFloat64Function struct{}

func (toPrimitiveFloat64Function) Float64ValueOf(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(parseFailure(err))
	}
	return v
}

func (toPrimitiveFloat64Function) String() string { return "string.toPrimitiveFloat64()" }

type toPrimitiveIntFunction struct{}

func (toPrimitiveIntFunction) IntValueOf(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		panic(parseFailure(err))
	}
	return v
}

func (toPrimitiveIntFunction) String() string { return "string.toPrimitiveInt()" }

type toPrimitiveInt16Function struct{}

func (toPrimitiveInt16Function) Int16ValueOf(s string) int16 {
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		panic(parseFailure(err))
	}
	return int16(v)
}

func (toPrimitiveInt16Function) String() string { return "string.toPrimitiveInt16()" }

type toPrimitiveInt64Function struct{}

func (toPrimitiveInt64Function) Int64ValueOf(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		panic(parseFailure(err))
	}
	return v
}

func (toPrimitiveInt64Function) String() string { return "string.toPrimitiveInt64()" }

type toIntFunction struct{}

func (toIntFunction) ValueOf(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		panic(parseFailure(err))
	}
	return v
}

func (toIntFunction) String() string { return "string.toInt()" }
